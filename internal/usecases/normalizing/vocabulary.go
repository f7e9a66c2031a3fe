package normalizing

import (
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
)

// stateVocabulary cobre os termos japoneses e ingleses de estado
var stateVocabulary = map[string]string{
	"有効":       domain.StateEnabled,
	"一時停止":     domain.StatePaused,
	"非掲載":      domain.StateArchived,
	"アーカイブ済み":  domain.StateArchived,
	"enabled":  domain.StateEnabled,
	"paused":   domain.StatePaused,
	"archived": domain.StateArchived,
}

// matchTypeVocabulary cobre as variantes com nome completo de cada tipo de correspondência
var matchTypeVocabulary = map[string]string{
	"完全一致":         domain.MatchExact,
	"exact match":  domain.MatchExact,
	"フレーズ一致":       domain.MatchPhrase,
	"phrase match": domain.MatchPhrase,
	"部分一致":         domain.MatchBroad,
	"broad match":  domain.MatchBroad,
}

// autoTargetingSubtypes são as expressões de segmentação que indicam campanha automática
var autoTargetingSubtypes = map[string]bool{
	"close-match": true,
	"loose-match": true,
	"substitutes": true,
	"complements": true,
}

// NormalizeState mapeia o estado para o vocabulário fechado. Vazio vira fallback e
// termos desconhecidos passam em minúsculas.
func NormalizeState(value, fallback string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return fallback
	}
	if mapped, ok := stateVocabulary[raw]; ok {
		return mapped
	}
	lower := strings.ToLower(raw)
	if mapped, ok := stateVocabulary[lower]; ok {
		return mapped
	}
	return lower
}

// NormalizeMatchType mapeia o tipo de correspondência. Vazio vira exact e termos
// desconhecidos passam em minúsculas.
func NormalizeMatchType(value string) string {
	raw := strings.ToLower(strings.TrimSpace(value))
	if raw == "" {
		return domain.MatchExact
	}
	if mapped, ok := matchTypeVocabulary[raw]; ok {
		return mapped
	}
	if strings.Contains(raw, "negative") {
		switch {
		case strings.Contains(raw, "exact"):
			return domain.MatchNegativeExact
		case strings.Contains(raw, "phrase"):
			return domain.MatchNegativePhrase
		case strings.Contains(raw, "broad"):
			return domain.MatchNegativeBroad
		}
	}
	return raw
}

// IsAutoTargetingExpression indica se a expressão é um subtipo de segmentação automática
func IsAutoTargetingExpression(expr string) bool {
	return autoTargetingSubtypes[expr]
}
