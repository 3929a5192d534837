package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildFixture builds the named case into an in-memory workbook.
func buildFixture(t *testing.T, name string) *excelize.File {
	t.Helper()
	for _, c := range Classic() {
		if c.Name != name {
			continue
		}
		f := excelize.NewFile()
		if err := c.Build(f); err != nil {
			t.Fatalf("failed to build %s: %v", name, err)
		}
		return f
	}
	t.Fatalf("no case named %s", name)
	return nil
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateAll(dir); err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}

	for _, c := range Classic() {
		path := filepath.Join(dir, c.Name+".xlsx")
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("fixture %s not written: %v", c.Name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("fixture %s is empty", c.Name)
		}
	}
}

func TestGenerateAll_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	if err := GenerateAll(dir); err != nil {
		t.Fatalf("GenerateAll should create the directory: %v", err)
	}
}

func TestCorpusSize(t *testing.T) {
	cases := Classic()
	if len(cases) != 30 {
		t.Fatalf("expected 30 classic cases, got %d", len(cases))
	}
	for i, c := range cases {
		prefix := fmt.Sprintf("classic%02d_", i+1)
		if !strings.HasPrefix(c.Name, prefix) {
			t.Errorf("case %d named %q, want prefix %q", i, c.Name, prefix)
		}
	}
}

func TestCaseNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Classic() {
		if seen[c.Name] {
			t.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestBasicTableContent(t *testing.T) {
	f := buildFixture(t, "classic01_basic_table_with_headers")
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows (header + 4 data), got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][1] != "Age" || rows[0][2] != "City" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Alice" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}

func TestMultipleWorksheets(t *testing.T) {
	f := buildFixture(t, "classic02_multiple_worksheets")
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Fatalf("expected 3 sheets, got %v", sheets)
	}
	want := map[string]bool{"Sales": true, "Costs": true, "Summary": true}
	for _, s := range sheets {
		if !want[s] {
			t.Errorf("unexpected sheet %q", s)
		}
	}
}

func TestTallTableRowCount(t *testing.T) {
	f := buildFixture(t, "classic06_tall_table")
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 201 {
		t.Errorf("expected 201 rows (header + 200), got %d", len(rows))
	}
}

func TestSparseRowPlacement(t *testing.T) {
	f := buildFixture(t, "classic11_sparse_rows")
	defer f.Close()

	for cell, want := range map[string]string{
		"A1":  "First",
		"A5":  "Fifth",
		"A10": "Tenth",
		"A20": "Twentieth",
		"A50": "Fiftieth",
	} {
		got, err := f.GetCellValue("Sheet1", cell)
		if err != nil {
			t.Fatalf("GetCellValue %s failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}

	// The gap rows stay empty.
	if got, _ := f.GetCellValue("Sheet1", "A2"); got != "" {
		t.Errorf("cell A2 should be empty, got %q", got)
	}
}

func TestSparseColumnPlacement(t *testing.T) {
	f := buildFixture(t, "classic12_sparse_columns")
	defer f.Close()

	if got, _ := f.GetCellValue("Sheet1", "J3"); got != "VeryFar" {
		t.Errorf("cell J3 = %q, want VeryFar", got)
	}
	if got, _ := f.GetCellValue("Sheet1", "B1"); got != "" {
		t.Errorf("cell B1 should be empty, got %q", got)
	}
}

func TestLongSheetName(t *testing.T) {
	f := buildFixture(t, "classic22_long_sheet_name")
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "VeryLongSheetNameThatIsMaxLen" {
		t.Fatalf("expected single sheet VeryLongSheetNameThatIsMaxLen, got %v", sheets)
	}
	if got, _ := f.GetCellValue(sheets[0], "A2"); got != "Row1" {
		t.Errorf("cell A2 = %q, want Row1", got)
	}
}

func TestColoredFonts(t *testing.T) {
	f := buildFixture(t, "classic24_red_text")
	defer f.Close()

	idx, err := f.GetCellStyle("Sheet1", "A2")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	style, err := f.GetStyle(idx)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Font == nil || !strings.Contains(strings.ToUpper(style.Font.Color), "FF0000") {
		t.Errorf("expected red font on A2, got %+v", style.Font)
	}
}

func TestFormulaCells(t *testing.T) {
	f := buildFixture(t, "classic29_formula_results")
	defer f.Close()

	got, err := f.GetCellFormula("Sheet1", "C2")
	if err != nil {
		t.Fatalf("GetCellFormula failed: %v", err)
	}
	if got != "A2+B2" {
		t.Errorf("C2 formula = %q, want A2+B2", got)
	}

	got, err = f.GetCellFormula("Sheet1", "D5")
	if err != nil {
		t.Fatalf("GetCellFormula failed: %v", err)
	}
	if got != "SUM(D2:D4)" {
		t.Errorf("D5 formula = %q, want SUM(D2:D4)", got)
	}
}

func TestMixedEmptyAndFilledSheets(t *testing.T) {
	f := buildFixture(t, "classic30_mixed_empty_and_filled_sheets")
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 4 {
		t.Fatalf("expected 4 sheets, got %v", sheets)
	}

	rows, err := f.GetRows("Empty")
	if err != nil {
		t.Fatalf("GetRows Empty failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("sheet Empty should have no rows, got %d", len(rows))
	}

	rows, err = f.GetRows("Data")
	if err != nil {
		t.Fatalf("GetRows Data failed: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "Hello" {
		t.Errorf("unexpected Data sheet contents: %v", rows)
	}
}
