// ABOUTME: Extractor turning CSV drill rows into Records.
// ABOUTME: Skips malformed rows instead of failing the whole read.

package extract

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harper/drillbook/internal/models"
)

// MinFields is the number of positional fields a data row needs.
const MinFields = 5

const (
	fieldName        = 0
	fieldTheme       = 2
	fieldSubCategory = 3
	fieldLink        = 4
)

// ErrInputNotFound is returned by ReadFile when the source file does not exist.
var ErrInputNotFound = errors.New("input not found")

// Skip describes a data row that did not produce a Record.
type Skip struct {
	Line   int
	Reason string
}

type Result struct {
	Records []*models.Record
	Skipped []Skip
}

// FromRows converts data rows (header already removed) into Records. Line
// numbers in Skipped count the header as line 1.
func FromRows(rows [][]string) *Result {
	res := &Result{Records: []*models.Record{}}
	for i, row := range rows {
		res.add(i+2, row)
	}
	return res
}

func (res *Result) add(line int, row []string) {
	if len(row) < MinFields {
		res.Skipped = append(res.Skipped, Skip{
			Line:   line,
			Reason: fmt.Sprintf("has %d fields, need %d", len(row), MinFields),
		})
		return
	}
	if strings.TrimSpace(row[fieldName]) == "" {
		res.Skipped = append(res.Skipped, Skip{Line: line, Reason: "empty name"})
		return
	}

	res.Records = append(res.Records, models.NewRecord(
		row[fieldName],
		field(row, fieldTheme),
		field(row, fieldSubCategory),
		field(row, fieldLink),
	))
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Read parses CSV from r, discards the header row and converts the rest.
func Read(r io.Reader) (*Result, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	res := &Result{Records: []*models.Record{}}
	header := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			if header {
				header = false
				continue
			}
			res.Skipped = append(res.Skipped, Skip{Line: parseErr.StartLine, Reason: parseErr.Err.Error()})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if header {
			header = false
			continue
		}
		line, _ := cr.FieldPos(0)
		res.add(line, row)
	}
	return res, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) (*Result, error) {
	f, err := os.Open(path) //nolint:gosec // Input path comes from the user's config
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

func skipBOM(br *bufio.Reader) error {
	r, _, err := br.ReadRune()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	if r != '\uFEFF' {
		return br.UnreadRune()
	}
	return nil
}
