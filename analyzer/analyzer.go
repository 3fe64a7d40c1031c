package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"accident-analyzer/models"
	"accident-analyzer/utils"
)

// Analyzer runs searches and frequency queries over the loaded dataset
type Analyzer struct {
	logger *utils.Logger
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(logger *utils.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Load reads the dataset file into an ordered slice of records. The returned
// error is always a *LoadError; its Kind distinguishes a missing file from
// malformed JSON and from JSON that is not a list of record objects.
func (a *Analyzer) Load(path string) ([]models.Record, error) {
	// Any stat failure counts as an absent file, exists-check style; that
	// covers ENOTDIR when a path component is a regular file.
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Kind: KindFileNotFound, Path: path, Err: err}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: KindUnexpected, Path: path, Err: err}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &LoadError{Kind: KindParseError, Path: path, Err: err}
	}

	list, ok := parsed.([]any)
	if !ok {
		return nil, &LoadError{Kind: KindShapeError, Path: path,
			Err: fmt.Errorf("top-level value is %T, want a list of records", parsed)}
	}

	records := make([]models.Record, 0, len(list))
	for i, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, &LoadError{Kind: KindShapeError, Path: path,
				Err: fmt.Errorf("element %d is %T, want a record object", i, el)}
		}
		records = append(records, models.Record(obj))
	}

	a.logger.Info("Total accident records loaded: %d", len(records))
	return records, nil
}

// Search returns the records whose key field contains value as a substring,
// case-insensitively. Both the field value and the query are coerced to their
// string form first, so numeric and text queries work uniformly.
//
// Key presence is only checked against the first record; a key appearing only
// on later records is reported missing and yields no results. This mirrors
// the historical behavior and is intentionally not tightened.
func (a *Analyzer) Search(data []models.Record, key string, value any) []models.Record {
	if len(data) == 0 {
		a.logger.Warn("Search key '%s' not found in data", key)
		return nil
	}
	if _, ok := data[0][key]; !ok {
		a.logger.Warn("Search key '%s' not found in data", key)
		return nil
	}

	term := strings.ToLower(fmt.Sprint(value))

	var results []models.Record
	for _, r := range data {
		if strings.Contains(strings.ToLower(r.String(key)), term) {
			results = append(results, r)
		}
	}
	return results
}

// MostFrequentByKey counts the distinct values of key across all records and
// returns the most common one with its count. Records where the key is absent
// or null are skipped. Ties are broken by first occurrence in record order.
// Returns (nil, 0) when no record contributes a value.
func (a *Analyzer) MostFrequentByKey(data []models.Record, key string) (any, int) {
	counts := make(map[any]int)
	var order []any

	for _, r := range data {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch v.(type) {
		case string, float64, bool:
			// JSON scalars only; nested values cannot be counted
		default:
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	var best any
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount
}
