// Package fixtures generates the classic xlsx corpus the benchmark converts
// and compares. Each case targets one layout trait of the Excel-to-PDF
// pipeline: table shape, pagination, cell types, text length, escaping,
// sparsity, fonts, formulas.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shps951023/minipdf-bench/internal/logger"
)

// Case is one xlsx fixture in the classic corpus.
type Case struct {
	Name  string
	Build func(f *excelize.File) error
}

// Classic returns the corpus in its canonical order. Case names double as
// file stems for the generated xlsx and both PDFs downstream.
func Classic() []Case {
	return []Case{
		{"classic01_basic_table_with_headers", basicTableWithHeaders},
		{"classic02_multiple_worksheets", multipleWorksheets},
		{"classic03_empty_workbook", emptyWorkbook},
		{"classic04_single_cell", singleCell},
		{"classic05_wide_table", wideTable},
		{"classic06_tall_table", tallTable},
		{"classic07_numbers_only", numbersOnly},
		{"classic08_mixed_text_and_numbers", mixedTextAndNumbers},
		{"classic09_long_text", longText},
		{"classic10_special_xml_characters", specialXMLCharacters},
		{"classic11_sparse_rows", sparseRows},
		{"classic12_sparse_columns", sparseColumns},
		{"classic13_date_strings", dateStrings},
		{"classic14_decimal_numbers", decimalNumbers},
		{"classic15_negative_numbers", negativeNumbers},
		{"classic16_percentage_strings", percentageStrings},
		{"classic17_currency_strings", currencyStrings},
		{"classic18_large_dataset", largeDataset},
		{"classic19_single_column_list", singleColumnList},
		{"classic20_all_empty_cells", allEmptyCells},
		{"classic21_header_only", headerOnly},
		{"classic22_long_sheet_name", longSheetName},
		{"classic23_unicode_text", unicodeText},
		{"classic24_red_text", redText},
		{"classic25_multiple_colors", multipleColors},
		{"classic26_inline_strings", inlineStrings},
		{"classic27_single_row", singleRow},
		{"classic28_duplicate_values", duplicateValues},
		{"classic29_formula_results", formulaResults},
		{"classic30_mixed_empty_and_filled_sheets", mixedEmptyAndFilledSheets},
	}
}

// GenerateAll writes every classic fixture into dir, creating it if needed.
func GenerateAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}

	for _, c := range Classic() {
		f := excelize.NewFile()
		if err := c.Build(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to build fixture %s: %w", c.Name, err)
		}

		path := filepath.Join(dir, c.Name+".xlsx")
		if err := f.SaveAs(path); err != nil {
			f.Close()
			return fmt.Errorf("failed to save fixture %s: %w", c.Name, err)
		}
		f.Close()
		logger.Log.Infof("generated %s.xlsx", c.Name)
	}
	return nil
}

// setRows writes rows starting at A1 of the given sheet.
func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// fontStyle registers a plain 11pt font style, colored when hex is non-empty.
func fontStyle(f *excelize.File, hex string) (int, error) {
	font := &excelize.Font{Size: 11}
	if hex != "" {
		font.Color = hex
	}
	return f.NewStyle(&excelize.Style{Font: font})
}

func basicTableWithHeaders(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Name", "Age", "City"},
		{"Alice", 30, "New York"},
		{"Bob", 25, "London"},
		{"Charlie", 35, "Tokyo"},
		{"Diana", 28, "Paris"},
	})
}

func multipleWorksheets(f *excelize.File) error {
	if err := f.SetSheetName("Sheet1", "Sales"); err != nil {
		return err
	}
	if err := setRows(f, "Sales", [][]interface{}{
		{"Quarter", "Revenue"},
		{"Q1", 100}, {"Q2", 200}, {"Q3", 350}, {"Q4", 480},
	}); err != nil {
		return err
	}

	if _, err := f.NewSheet("Costs"); err != nil {
		return err
	}
	if err := setRows(f, "Costs", [][]interface{}{
		{"Category", "Amount"},
		{"Rent", 500}, {"Salary", 3000}, {"Utilities", 200},
	}); err != nil {
		return err
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return err
	}
	return setRows(f, "Summary", [][]interface{}{
		{"Metric", "Value"},
		{"Total Revenue", 1130},
		{"Total Costs", 3700},
		{"Net", -2570},
	})
}

func emptyWorkbook(f *excelize.File) error {
	// A single sheet with no data at all.
	return nil
}

func singleCell(f *excelize.File) error {
	return f.SetCellValue("Sheet1", "A1", "Hello")
}

func wideTable(f *excelize.File) error {
	headers := make([]interface{}, 26)
	for i := 0; i < 26; i++ {
		headers[i] = string(rune('A' + i))
	}
	rows := [][]interface{}{headers}
	for rowIdx := 1; rowIdx <= 5; rowIdx++ {
		row := make([]interface{}, 26)
		for i := 0; i < 26; i++ {
			row[i] = fmt.Sprintf("%c%d", 'A'+i, rowIdx)
		}
		rows = append(rows, row)
	}
	return setRows(f, "Sheet1", rows)
}

// tallTable spills over one page at any sane print scaling.
func tallTable(f *excelize.File) error {
	rows := [][]interface{}{{"Row#", "Value", "Description"}}
	for i := 1; i <= 200; i++ {
		rows = append(rows, []interface{}{
			fmt.Sprintf("Row%d", i),
			fmt.Sprintf("Val%d", i),
			fmt.Sprintf("This is the description for row number %d", i),
		})
	}
	return setRows(f, "Sheet1", rows)
}

func numbersOnly(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{1.0, 2.0, 3.0},
		{4.0, 5.0, 6.0},
		{7.0, 8.0, 9.0},
		{10.0, 100.0, 1000.0},
	})
}

func mixedTextAndNumbers(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Item", "Amount"},
		{"Item", 10.5},
		{"Tax", 0.08},
		{"Total", 10.58},
		{"Discount", -1.5},
		{"Final", 9.08},
	})
}

func longText(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Long Text Column"},
		{strings.Repeat("X", 500)},
		{strings.Repeat("A", 300) + " " + strings.Repeat("B", 200)},
		{"Short"},
		{strings.Repeat("Y", 1000)},
	})
}

func specialXMLCharacters(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Special Characters"},
		{"A&B"},
		{"<tag>"},
		{`"quoted"`},
		{"it's"},
		{"Tom & Jerry < Batman > Superman"},
		{`He said "hello" & she replied 'hi'`},
	})
}

func sparseRows(f *excelize.File) error {
	for _, cv := range []struct {
		cell  string
		value string
	}{
		{"A1", "First"},
		{"A5", "Fifth"},
		{"A10", "Tenth"},
		{"A20", "Twentieth"},
		{"A50", "Fiftieth"},
	} {
		if err := f.SetCellValue("Sheet1", cv.cell, cv.value); err != nil {
			return err
		}
	}
	return nil
}

func sparseColumns(f *excelize.File) error {
	for _, cv := range []struct {
		cell  string
		value string
	}{
		{"A1", "Left"},
		{"D1", "Right"},
		{"A2", "Data1"},
		{"F2", "FarRight"},
		{"A3", "Row3"},
		{"J3", "VeryFar"},
	} {
		if err := f.SetCellValue("Sheet1", cv.cell, cv.value); err != nil {
			return err
		}
	}
	return nil
}

// dateStrings stores dates as plain text so no number-format rendering kicks in.
func dateStrings(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Date", "Event"},
		{"2025-01-15", "Launch"},
		{"2025-06-30", "Release"},
		{"2025-12-25", "Holiday"},
		{"2026-01-01", "New Year"},
		{"2026-02-23", "Today"},
	})
}

func decimalNumbers(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Constant", "Value"},
		{"Pi", 3.14159},
		{"e", 2.71828},
		{"Sqrt(2)", 1.41421},
		{"Phi", 1.61803},
		{"Ln(2)", 0.69315},
	})
}

func negativeNumbers(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Label", "Value"},
		{"Loss", -100.0},
		{"Small Loss", -0.5},
		{"Zero", 0.0},
		{"Gain", 50.0},
		{"Big Loss", -99999.99},
		{"Tiny", -0.001},
	})
}

func percentageStrings(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Metric", "Rate"},
		{"Conversion", "12.5%"},
		{"Bounce", "45.3%"},
		{"Retention", "88.7%"},
		{"Churn", "3.2%"},
		{"Growth", "156.0%"},
	})
}

func currencyStrings(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Item", "Price"},
		{"Widget", "$19.99"},
		{"Gadget", "$149.00"},
		{"Premium", "$1,299.99"},
		{"Budget", "$4.50"},
		{"Euro Item", "€49.99"},
		{"Yen Item", "¥5000"},
	})
}

func largeDataset(f *excelize.File) error {
	headers := make([]interface{}, 10)
	for c := 0; c < 10; c++ {
		headers[c] = fmt.Sprintf("Col%d", c)
	}
	rows := [][]interface{}{headers}
	for r := 0; r < 1000; r++ {
		row := make([]interface{}, 10)
		for c := 0; c < 10; c++ {
			row[c] = fmt.Sprintf("R%dC%d", r, c)
		}
		rows = append(rows, row)
	}
	return setRows(f, "Sheet1", rows)
}

func singleColumnList(f *excelize.File) error {
	rows := [][]interface{}{{"Items"}}
	for i := 1; i <= 20; i++ {
		rows = append(rows, []interface{}{fmt.Sprintf("Item %d", i)})
	}
	return setRows(f, "Sheet1", rows)
}

func allEmptyCells(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"", "", ""},
		{"", "", ""},
		{"", "", ""},
	})
}

func headerOnly(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Col1", "Col2", "Col3", "Col4", "Col5"},
	})
}

// longSheetName pushes against the 31-character sheet name limit.
func longSheetName(f *excelize.File) error {
	if err := f.SetSheetName("Sheet1", "VeryLongSheetNameThatIsMaxLen"); err != nil {
		return err
	}
	return setRows(f, "VeryLongSheetNameThatIsMaxLen", [][]interface{}{
		{"Data", "Value"},
		{"Row1", 100},
		{"Row2", 200},
	})
}

func unicodeText(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Language", "Greeting", "Extra"},
		{"English", "Hello", "World"},
		{"Chinese", "你好", "世界"},
		{"Japanese", "こんにちは", "世界"},
		{"Korean", "안녕하세요", "세계"},
		{"Arabic", "مرحبا", "العالم"},
		{"Emoji", "😀🎉", "✅❌"},
	})
}

func redText(f *excelize.File) error {
	if err := setRows(f, "Sheet1", [][]interface{}{
		{"Status", "Message"},
		{"Error", "Something went wrong"},
		{"OK", "All systems operational"},
		{"Warning", "Check disk space"},
	}); err != nil {
		return err
	}

	red, err := fontStyle(f, "FF0000")
	if err != nil {
		return err
	}
	if err := f.SetCellStyle("Sheet1", "A2", "B2", red); err != nil {
		return err
	}

	normal, err := fontStyle(f, "")
	if err != nil {
		return err
	}
	if err := f.SetCellStyle("Sheet1", "A3", "B3", normal); err != nil {
		return err
	}

	orange, err := fontStyle(f, "FFA500")
	if err != nil {
		return err
	}
	return f.SetCellStyle("Sheet1", "A4", "B4", orange)
}

func multipleColors(f *excelize.File) error {
	colors := []struct {
		name string
		hex  string
	}{
		{"Red", "FF0000"},
		{"Green", "00FF00"},
		{"Blue", "0000FF"},
		{"Yellow", "FFFF00"},
		{"Magenta", "FF00FF"},
		{"Cyan", "00FFFF"},
		{"Orange", "FFA500"},
		{"Purple", "800080"},
	}

	rows := [][]interface{}{{"Color Name", "Sample Text"}}
	for _, c := range colors {
		rows = append(rows, []interface{}{
			c.name,
			fmt.Sprintf("This is %s text", strings.ToLower(c.name)),
		})
	}
	if err := setRows(f, "Sheet1", rows); err != nil {
		return err
	}

	for i, c := range colors {
		style, err := fontStyle(f, c.hex)
		if err != nil {
			return err
		}
		row := i + 2
		cellA, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		cellB, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle("Sheet1", cellA, cellB, style); err != nil {
			return err
		}
	}
	return nil
}

func inlineStrings(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Inline1", "Inline2", "Inline3"},
		{"ValueA", "ValueB", "ValueC"},
		{"Test1", "Test2", "Test3"},
	})
}

func singleRow(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	})
}

func duplicateValues(f *excelize.File) error {
	return setRows(f, "Sheet1", [][]interface{}{
		{"Yes", "No", "Yes", "No"},
		{"No", "Yes", "No", "Yes"},
		{"Yes", "Yes", "Yes", "Yes"},
		{"No", "No", "No", "No"},
		{"Yes", "No", "Yes", "No"},
	})
}

func formulaResults(f *excelize.File) error {
	if err := setRows(f, "Sheet1", [][]interface{}{
		{"A", "B", "Sum", "Product"},
		{10, 20},
		{5, 15},
		{100, 200},
		{"", ""},
	}); err != nil {
		return err
	}

	for _, cf := range []struct {
		cell    string
		formula string
	}{
		{"C2", "A2+B2"}, {"D2", "A2*B2"},
		{"C3", "A3+B3"}, {"D3", "A3*B3"},
		{"C4", "A4+B4"}, {"D4", "A4*B4"},
		{"C5", "SUM(C2:C4)"}, {"D5", "SUM(D2:D4)"},
	} {
		if err := f.SetCellFormula("Sheet1", cf.cell, cf.formula); err != nil {
			return err
		}
	}
	return nil
}

func mixedEmptyAndFilledSheets(f *excelize.File) error {
	if err := f.SetSheetName("Sheet1", "Empty"); err != nil {
		return err
	}

	if _, err := f.NewSheet("Data"); err != nil {
		return err
	}
	if err := setRows(f, "Data", [][]interface{}{
		{"Hello", "World"},
		{"Foo", "Bar"},
		{"Baz", "Qux"},
	}); err != nil {
		return err
	}

	if _, err := f.NewSheet("AlsoEmpty"); err != nil {
		return err
	}

	if _, err := f.NewSheet("MoreData"); err != nil {
		return err
	}
	return setRows(f, "MoreData", [][]interface{}{
		{"Column1", "Column2", "Column3"},
		{1, 2, 3},
	})
}
