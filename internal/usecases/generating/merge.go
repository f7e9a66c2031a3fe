package generating

import (
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
)

const identitySeparator = "|"

// IdentityKey identifica a entidade lógica alterada por uma linha
func IdentityKey(row domain.BulkOutputRow) string {
	return strings.Join([]string{
		row.Entity,
		row.Operation,
		row.CampaignName,
		row.CampaignID,
		row.AdGroupName,
		row.KeywordText,
		row.MatchType,
		row.ProductTargetingExpression,
	}, identitySeparator)
}

// Merge achata as listas de cada etapa, na ordem de execução, e mantém só a última
// ocorrência de cada chave de identidade. As linhas saem na posição da ocorrência vencedora.
func Merge(stages [][]domain.BulkOutputRow) []domain.BulkOutputRow {
	var flat []domain.BulkOutputRow
	for _, rows := range stages {
		flat = append(flat, rows...)
	}

	last := make(map[string]int, len(flat))
	for i, row := range flat {
		last[IdentityKey(row)] = i
	}

	out := make([]domain.BulkOutputRow, 0, len(last))
	for i, row := range flat {
		if last[IdentityKey(row)] == i {
			out = append(out, row)
		}
	}
	return out
}
