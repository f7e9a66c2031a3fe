package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/yuuki-courage/aads/pkg/utils"
)

// Formatos de saída aceitos pelos relatórios
const (
	formatConsole = "console"
	formatJSON    = "json"
	formatXLSX    = "xlsx"
)

// maxConsoleRows limita as tabelas impressas no terminal
const maxConsoleRows = 20

// parseFormat normaliza o formato; valores desconhecidos caem no fallback
func parseFormat(value, fallback string, allowed ...string) string {
	raw := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if raw == a {
			return raw
		}
	}
	return fallback
}

// printTable imprime uma tabela alinhada por tabulação
func printTable(w io.Writer, title string, header []string, rows [][]string) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func yen(v float64) string {
	return "¥" + humanize.Comma(int64(utils.RoundHalfUp(v)))
}

func integer(v float64) string {
	return humanize.Comma(int64(utils.RoundHalfUp(v)))
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
