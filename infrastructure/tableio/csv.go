package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
)

// ReadCSV lê um relatório CSV. Linhas em branco são ignoradas e células faltantes viram "".
func ReadCSV(path string) (domain.InputTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.InputTable{}, fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer f.Close()

	table, err := DecodeCSV(f)
	if err != nil {
		return domain.InputTable{}, fmt.Errorf("erro ao ler %s: %w", path, err)
	}
	table.SourceFile = path
	return table, nil
}

// DecodeCSV interpreta o conteúdo CSV; a primeira linha não vazia é o cabeçalho
func DecodeCSV(r io.Reader) (domain.InputTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var table domain.InputTable
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.InputTable{}, err
		}
		if blankRecord(record) {
			continue
		}

		if table.Headers == nil {
			table.Headers = make([]string, len(record))
			for i, h := range record {
				table.Headers[i] = strings.TrimSpace(h)
			}
			continue
		}

		row := make(domain.DataRow, len(table.Headers))
		for i, header := range table.Headers {
			value := ""
			if i < len(record) {
				value = record[i]
			}
			row[header] = value
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// WriteCSV grava cabeçalho e linhas em um arquivo CSV, criando o diretório se preciso
func WriteCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar %s: %w", path, err)
	}
	defer f.Close()

	if err := EncodeCSV(f, header, rows); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", path, err)
	}
	return f.Close()
}

func EncodeCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
