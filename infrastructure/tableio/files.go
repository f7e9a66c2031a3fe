// Package tableio é a fronteira de leitura e escrita das planilhas (xlsx/csv)
package tableio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
)

// ResolveInputFiles expande curingas (* e ?) no nome do arquivo, sem diferenciar maiúsculas.
// Um caminho sem curinga é retornado como está.
func ResolveInputFiles(pattern string) ([]string, error) {
	normalized := filepath.FromSlash(strings.ReplaceAll(pattern, `\`, "/"))
	if !strings.ContainsAny(normalized, "*?") {
		return []string{pattern}, nil
	}

	dir, base := filepath.Split(normalized)
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("diretório de entrada não encontrado: %s: %w", dir, err)
	}

	lowered := strings.ToLower(base)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(lowered, strings.ToLower(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("padrão de entrada inválido %q: %w", pattern, err)
		}
		if ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReadTables lê todos os arquivos do padrão. Arquivos .csv são lidos como CSV, os demais como xlsx.
func ReadTables(pattern string, filter SheetFilter) ([]domain.InputTable, error) {
	files, err := ResolveInputFiles(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("nenhum arquivo corresponde a %s", pattern)
	}

	var tables []domain.InputTable
	for _, file := range files {
		if strings.EqualFold(filepath.Ext(file), ".csv") {
			table, err := ReadCSV(file)
			if err != nil {
				return nil, err
			}
			tables = append(tables, table)
			continue
		}

		sheets, err := ReadXLSX(file, filter)
		if err != nil {
			return nil, err
		}
		tables = append(tables, sheets...)
	}
	return tables, nil
}
