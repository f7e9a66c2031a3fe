package tableio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/yuuki-courage/aads/internal/domain"
)

type SheetFilter int

const (
	// SearchTermSheets lê apenas as abas de relatório de termos de busca
	SearchTermSheets SheetFilter = iota
	AllSheets
)

// Abas de relatório de termos de busca da planilha em massa
var searchTermReportSheets = map[string]bool{
	"SP検索ワードレポート": true,
	"SB検索ワードレポート": true,
}

const (
	minColumnWidth = 10
	maxColumnWidth = 80
)

var ErrNoSheets = errors.New("no sheets to write")

// Sheet é uma aba a ser gravada
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// ReadXLSX lê as abas de um arquivo xlsx. Cada aba vira uma tabela com origem "arquivo#aba";
// abas sem cabeçalho ou sem linhas são ignoradas.
func ReadXLSX(path string, filter SheetFilter) ([]domain.InputTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer f.Close()

	var tables []domain.InputTable
	for _, sheet := range f.GetSheetList() {
		if filter == SearchTermSheets && !searchTermReportSheets[sheet] {
			continue
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("erro ao ler aba %s de %s: %w", sheet, path, err)
		}
		table := tableFromRows(rows)
		if len(table.Headers) == 0 || len(table.Rows) == 0 {
			continue
		}
		table.SourceFile = path + "#" + sheet
		tables = append(tables, table)
	}
	return tables, nil
}

func tableFromRows(rows [][]string) domain.InputTable {
	if len(rows) == 0 {
		return domain.InputTable{}
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := domain.InputTable{Headers: headers}
	for _, cells := range rows[1:] {
		row := make(domain.DataRow, len(headers))
		for i, header := range headers {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			row[header] = value
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// WriteXLSX grava as abas com cabeçalho em negrito e congelado, criando o diretório se preciso
func WriteXLSX(path string, sheets []Sheet) error {
	f, err := buildWorkbook(sheets)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("erro ao salvar %s: %w", path, err)
	}
	return nil
}

// EncodeXLSX escreve a pasta de trabalho no writer (respostas HTTP)
func EncodeXLSX(w io.Writer, sheets []Sheet) error {
	f, err := buildWorkbook(sheets)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func buildWorkbook(sheets []Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	f := excelize.NewFile()
	_ = f.SetDocProps(&excelize.DocProperties{Creator: "aads"})

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "left"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, err
		}

		if err := writeSheet(f, sheet, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("erro ao gravar aba %s: %w", sheet.Name, err)
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SetRowStyle(sheet.Name, 1, 1, headerStyle); err != nil {
		return err
	}
	if err := f.SetPanes(sheet.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return fitColumns(f, sheet)
}

// fitColumns ajusta a largura de cada coluna ao maior texto, entre 10 e 80
func fitColumns(f *excelize.File, sheet Sheet) error {
	for col := range sheet.Header {
		width := minColumnWidth
		measure := func(v any) {
			n := utf8.RuneCountInString(fmt.Sprint(v))
			if n > width {
				width = min(n+2, maxColumnWidth)
			}
		}
		measure(sheet.Header[col])
		for _, row := range sheet.Rows {
			if col < len(row) && row[col] != nil {
				measure(row[col])
			}
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// BulkSheet converte linhas da planilha de alterações em uma aba; colunas numéricas preenchidas viram números
func BulkSheet(name string, rows []domain.BulkOutputRow) Sheet {
	sheet := Sheet{Name: name, Header: domain.BulkHeader[:]}
	for _, row := range rows {
		values := row.Values()
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = cellValue(domain.BulkHeader[i], v)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet
}

func cellValue(column, value string) any {
	if value == "" || !domain.NumericColumns[column] {
		return value
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	return value
}
