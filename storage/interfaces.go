package storage

import "accident-analyzer/models"

// DatasetWriter defines the interface for persisting generated accident records
type DatasetWriter interface {
	WriteAccidents(accidents []*models.Accident) error
}
