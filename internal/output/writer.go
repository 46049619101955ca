// Package output writes and reads the JSON report documents: UTF-8,
// 4-space indentation, non-ASCII characters left unescaped.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/analyze"
)

// NoMatchesMessage is the sentinel message rendered when a keyword search
// finds nothing. The report file carries a single message record instead
// of an empty list, matching the established file contract.
const NoMatchesMessage = "no matches found"

func init() {
	// Report amounts are plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// WriteDocument serializes doc as indented JSON to w.
func WriteDocument(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

// WriteFile writes doc as indented JSON to path.
func WriteFile(path string, doc any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	if err = WriteDocument(f, doc); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadDocument decodes a JSON document from r into into.
func ReadDocument(r io.Reader, into any) error {
	if err := json.NewDecoder(r).Decode(into); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	return nil
}

// ReadFile decodes a JSON document from path into into.
func ReadFile(path string, into any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadDocument(f, into)
}

// SearchDocument renders a search result for the JSON report: the matches
// themselves, or the no-match sentinel record when the result is empty.
func SearchDocument(result analyze.SearchResult) any {
	if result.Empty() {
		return []map[string]string{{"message": NoMatchesMessage}}
	}
	return result.Matches
}

// ErrorDocument renders an error as a structured JSON payload.
func ErrorDocument(err error) any {
	return map[string]string{"error": err.Error()}
}
