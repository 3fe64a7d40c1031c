package main

import (
	"errors"
	"os"

	"accident-analyzer/analyzer"
	"accident-analyzer/config"
	"accident-analyzer/generator"
	"accident-analyzer/models"
	"accident-analyzer/services"
	"accident-analyzer/storage"
	"accident-analyzer/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg, cfgErr := config.Load()
	logger := utils.NewLogger(utils.Options{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFilePath,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if cfgErr != nil {
		logger.Warn("Config file ignored: %v", cfgErr)
	}

	logger.Info("Traffic Accident Analysis System")
	logger.Info("Data file: %s", cfg.DataFilePath)

	run(cfg, logger)

	// Every failure above is reported as text; the process always ends cleanly.
	os.Exit(0)
}

// run drives the generate → analyze → cleanup pipeline. It never terminates
// the process: each stage failure is reported and the remaining stages decide
// for themselves whether they can still proceed.
func run(cfg *config.Config, logger *utils.Logger) {
	// Deferred up front so the data file never outlives the run, even when
	// analysis fails partway through.
	defer cleanup(cfg.DataFilePath, logger)

	// =============== Generation ===================================
	gen := generator.NewGenerator(cfg, logger)
	accidents := gen.Generate()

	var writer storage.DatasetWriter = storage.NewJSONWriter(cfg.DataFilePath, logger)
	if err := writer.WriteAccidents(accidents); err != nil {
		logger.Error("Error creating file: %v", err)
		// The data file is treated as absent from here on; the analyzer
		// will report the missing file and the run still finishes.
	}

	// ========= PostgreSQL mirror (optional) ============
	if cfg.DatabaseURL != "" {
		mirrorToPostgres(cfg.DatabaseURL, accidents, logger)
	}

	// =========== Analysis ======================
	anlz := analyzer.NewAnalyzer(logger)
	records, err := anlz.Load(cfg.DataFilePath)
	if err != nil {
		reportLoadError(err, logger)
		return
	}

	report := &models.AnalysisReport{
		TotalRecords: len(records),
		SearchKey:    cfg.SearchKey,
		SearchTerm:   cfg.SearchTerm,
	}
	report.SearchResults = anlz.Search(records, cfg.SearchKey, cfg.SearchTerm)
	for _, key := range cfg.FrequencyKeys {
		value, count := anlz.MostFrequentByKey(records, key)
		report.Frequencies = append(report.Frequencies, models.FrequencyResult{
			Key:   key,
			Value: value,
			Count: count,
		})
	}

	services.PrintAnalysisReport(report)
}

// mirrorToPostgres copies the generated dataset into PostgreSQL. Any failure
// here is reported and the run continues; the mirror is best-effort.
func mirrorToPostgres(connStr string, accidents []*models.Accident, logger *utils.Logger) {
	pgWriter, err := storage.NewPostgresWriter(connStr, logger)
	if err != nil {
		logger.Error("Cannot connect to PostgreSQL: %v", err)
		return
	}
	defer pgWriter.Close()

	if err := pgWriter.CreateTable(); err != nil {
		logger.Error("Failed to create DB table: %v", err)
		return
	}
	if err := pgWriter.BatchInsert(accidents); err != nil {
		logger.Error("Failed to insert into PostgreSQL: %v", err)
	}
}

// reportLoadError translates a load failure into the right console message
func reportLoadError(err error, logger *utils.Logger) {
	var loadErr *analyzer.LoadError
	if !errors.As(err, &loadErr) {
		logger.Error("An unexpected error occurred: %v", err)
		return
	}

	switch loadErr.Kind {
	case analyzer.KindFileNotFound:
		logger.Error("File not found at %s", loadErr.Path)
	case analyzer.KindParseError:
		logger.Error("The file %s is not valid JSON", loadErr.Path)
	case analyzer.KindShapeError:
		logger.Warn("JSON structure is not a list of records. Analysis stopped.")
	default:
		logger.Error("An unexpected error occurred: %v", loadErr.Err)
	}
}

// cleanup removes the backing data file if it is still present
func cleanup(path string, logger *utils.Logger) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.Error("Failed to delete %s: %v", path, err)
		return
	}
	logger.Info("Cleaned up and deleted %s", path)
}
