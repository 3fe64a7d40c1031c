package generator

import (
	"accident-analyzer/config"
	"accident-analyzer/models"
	"accident-analyzer/utils"
)

// Generator produces the synthetic accident dataset
type Generator struct {
	cfg    *config.Config
	logger *utils.Logger
}

// NewGenerator creates a new Generator
func NewGenerator(cfg *config.Config, logger *utils.Logger) *Generator {
	return &Generator{cfg: cfg, logger: logger}
}

// Generate returns the fixed sample dataset in insertion order
func (g *Generator) Generate() []*models.Accident {
	accidents := models.SampleAccidents()
	g.logger.Info("Generated %d accident records", len(accidents))
	return accidents
}
