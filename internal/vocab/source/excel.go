package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column resolution is fuzzy on purpose: header wording shifts between
// dataset releases, so columns are matched by substring markers rather
// than position. Zero or multiple matches have no safe fallback, so
// both fail fast with a typed error.
var (
	ErrColumnNotFound  = errors.New("source: no column matches marker")
	ErrColumnAmbiguous = errors.New("source: multiple columns match marker")
)

type Workbook struct {
	f *excelize.File
}

func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: opening workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

func (w *Workbook) Close() error {
	if w == nil || w.f == nil {
		return nil
	}
	return w.f.Close()
}

// SheetCodeNames reads one sheet and returns code -> curated name. The
// code column is the one whose header contains codeMarker but not
// nameMarker; the name column must contain both. Blank codes and blank
// names are dropped.
func (w *Workbook) SheetCodeNames(sheet, codeMarker, nameMarker string) (map[string]string, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("source: reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("source: sheet %q is empty", sheet)
	}

	header := rows[0]
	codeIdx, err := resolveColumn(header, func(h string) bool {
		return strings.Contains(h, codeMarker) && !strings.Contains(h, nameMarker)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q code marker %q", err, sheet, codeMarker)
	}
	nameIdx, err := resolveColumn(header, func(h string) bool {
		return strings.Contains(h, nameMarker) && strings.Contains(strings.ToUpper(h), strings.ToUpper(codeMarker))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q name marker %q", err, sheet, nameMarker)
	}

	out := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] {
		if codeIdx >= len(row) || nameIdx >= len(row) {
			continue
		}
		code := strings.TrimSpace(row[codeIdx])
		name := strings.TrimSpace(row[nameIdx])
		if code == "" || name == "" {
			continue
		}
		out[code] = name
	}
	return out, nil
}

func resolveColumn(header []string, match func(string) bool) (int, error) {
	found := -1
	for i, h := range header {
		if !match(strings.TrimSpace(h)) {
			continue
		}
		if found >= 0 {
			return -1, ErrColumnAmbiguous
		}
		found = i
	}
	if found < 0 {
		return -1, ErrColumnNotFound
	}
	return found, nil
}
