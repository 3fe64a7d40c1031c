package analyzer

import "fmt"

// ErrorKind classifies failures while loading the dataset file
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindFileNotFound
	KindParseError
	KindShapeError
)

func (k ErrorKind) String() string {
	switch k {
	case KindFileNotFound:
		return "file not found"
	case KindParseError:
		return "invalid JSON"
	case KindShapeError:
		return "unexpected JSON shape"
	default:
		return "unexpected error"
	}
}

// LoadError reports why the dataset file could not be loaded. Callers inspect
// Kind with errors.As to pick the right message.
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }
