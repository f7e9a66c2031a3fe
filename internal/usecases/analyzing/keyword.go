package analyzing

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/yuuki-courage/aads/internal/domain"
)

// NormalizeKeyword converte largura total em meia largura, minúsculas e espaços simples
func NormalizeKeyword(text string) string {
	s := width.Fold.String(text)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// MatchKeywords associa palavras-chave de anúncio às palavras rastreadas no ranking.
// O mapeamento manual tem prioridade sobre a igualdade normalizada.
func MatchKeywords(adKeywords, rankingKeywords []string, mappings []domain.KeywordMapping) []domain.KeywordMatchResult {
	rankingByNorm := make(map[string]string, len(rankingKeywords))
	for _, rk := range rankingKeywords {
		rankingByNorm[NormalizeKeyword(rk)] = rk
	}

	manual := make(map[string]string, len(mappings))
	for _, m := range mappings {
		manual[NormalizeKeyword(m.AdKeyword)] = m.RankingKeyword
	}

	var results []domain.KeywordMatchResult
	for _, ad := range adKeywords {
		normAd := NormalizeKeyword(ad)

		if mapped := manual[normAd]; mapped != "" {
			results = append(results, domain.KeywordMatchResult{
				AdKeyword:      ad,
				RankingKeyword: mapped,
				NormalizedKey:  NormalizeKeyword(mapped),
				Source:         domain.MatchSourceMapping,
			})
			continue
		}

		if ranking, ok := rankingByNorm[normAd]; ok {
			source := domain.MatchSourceNormalized
			if ranking == ad {
				source = domain.MatchSourceExact
			}
			results = append(results, domain.KeywordMatchResult{
				AdKeyword:      ad,
				RankingKeyword: ranking,
				NormalizedKey:  normAd,
				Source:         source,
			})
		}
	}
	return results
}
