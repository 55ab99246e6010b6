// Package catalog reads course catalogs from delimited text files.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noelbolando/um-ai-hackathon-2026/internal/domain"
)

// Required column names, matched case-insensitively after trimming.
const (
	ColCode        = "course code"
	ColDescription = "course description"
	ColSemester    = "semester taught"
	ColInstructor  = "taught by"
)

var requiredColumns = []string{ColCode, ColDescription, ColSemester, ColInstructor}

// Read parses all catalog rows from r. Extra columns are ignored; a
// missing required column fails immediately with ErrCatalogSchema, before
// any row is returned. Rows are not validated here — empty fields are
// passed through so the ingester can report per-row outcomes.
func Read(r io.Reader) ([]domain.Course, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", domain.ErrCatalogSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrCatalogSchema, name)
		}
	}

	// Rows may legitimately have fewer fields than the header when
	// trailing columns are empty in hand-edited files.
	cr.FieldsPerRecord = -1

	var courses []domain.Course
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		courses = append(courses, domain.Course{
			Code:        field(record, cols[ColCode]),
			Description: field(record, cols[ColDescription]),
			Semester:    field(record, cols[ColSemester]),
			Instructor:  field(record, cols[ColInstructor]),
		})
	}
	return courses, nil
}

// Load reads a catalog from a CSV file on disk.
func Load(path string) ([]domain.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
