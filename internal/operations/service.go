package operations

import (
	"fmt"
	"os"

	"github.com/spendlens/spendlens/internal/model"
)

// SourceError reports that the operations file could not be loaded, either
// because it is missing or because its contents do not parse.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("operations source %s unavailable: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Load reads the full transaction table from an operations CSV file.
// Any failure is reported as a *SourceError so callers at the ingestion
// boundary can decide whether to abort or substitute an empty table.
func Load(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	txns, err := Read(f)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return txns, nil
}
