package source

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	const sheet = "ICD-10-CM"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatal(err)
	}
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				t.Fatal(err)
			}
		}
	}
	p := filepath.Join(t.TempDir(), "codes.xlsx")
	if err := f.SaveAs(p); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSheetCodeNames(t *testing.T) {
	p := writeWorkbook(t, [][]string{
		{"年度", "ICD-10-CM代碼", "ICD-10-CM中文名稱"},
		{"2023", "A00", "霍亂"},
		{"2023", "A01", "傷寒"},
		{"2023", "", "孤兒名稱"},
		{"2023", "A02", ""},
	})

	wb, err := OpenWorkbook(p)
	if err != nil {
		t.Fatalf("OpenWorkbook: %v", err)
	}
	defer wb.Close()

	codes, err := wb.SheetCodeNames("ICD-10-CM", "CM", "中文")
	if err != nil {
		t.Fatalf("SheetCodeNames: %v", err)
	}
	if len(codes) != 2 {
		t.Fatalf("expected 2 codes, got %d: %v", len(codes), codes)
	}
	if codes["A00"] != "霍亂" || codes["A01"] != "傷寒" {
		t.Fatalf("unexpected codes: %v", codes)
	}
}

func TestSheetCodeNamesColumnNotFound(t *testing.T) {
	p := writeWorkbook(t, [][]string{
		{"code", "name"},
		{"A00", "x"},
	})
	wb, err := OpenWorkbook(p)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	_, err = wb.SheetCodeNames("ICD-10-CM", "CM", "中文")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestSheetCodeNamesAmbiguousColumn(t *testing.T) {
	p := writeWorkbook(t, [][]string{
		{"ICD-10-CM代碼", "ICD-10-CM舊代碼", "ICD-10-CM中文名稱"},
		{"A00", "A00.0", "霍亂"},
	})
	wb, err := OpenWorkbook(p)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	_, err = wb.SheetCodeNames("ICD-10-CM", "CM", "中文")
	if !errors.Is(err, ErrColumnAmbiguous) {
		t.Fatalf("expected ErrColumnAmbiguous, got %v", err)
	}
}

func TestSheetCodeNamesMissingSheet(t *testing.T) {
	p := writeWorkbook(t, [][]string{{"ICD-10-CM代碼", "ICD-10-CM中文名稱"}})
	wb, err := OpenWorkbook(p)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	if _, err := wb.SheetCodeNames("ICD-10-PCS", "PCS", "中文"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}
