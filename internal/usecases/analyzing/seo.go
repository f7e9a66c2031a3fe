package analyzing

import (
	"fmt"
	"math"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// CalcSeoFactor retorna o fator de lance para a posição orgânica. Posições fora da tabela,
// não positivas ou ausentes retornam 1.0. Uma tabela nil usa a tabela padrão.
func CalcSeoFactor(position *int, factors map[int]float64) float64 {
	if position == nil || *position <= 0 {
		return 1.0
	}
	if factors == nil {
		factors = DefaultSeoFactors()
	}
	if f, ok := factors[*position]; ok {
		return f
	}
	return 1.0
}

func bestOrganicPosition(rankings []domain.KeywordRankingInfo) *int {
	var best *int
	for _, r := range rankings {
		if r.OrganicPosition == nil {
			continue
		}
		if best == nil || *r.OrganicPosition < *best {
			p := *r.OrganicPosition
			best = &p
		}
	}
	return best
}

// ApplySeoAdjustment reduz o lance de palavras-chave bem posicionadas organicamente.
// Recomendações sem ranking ou com fator 1.0 mantêm o lance.
func ApplySeoAdjustment(recs []domain.CpcRecommendation, data *domain.SeoRankingData, cfg domain.SeoConfig) []domain.CpcRecommendation {
	out := make([]domain.CpcRecommendation, len(recs))
	copy(out, recs)
	if data == nil || !cfg.Enabled {
		return out
	}

	for i, rec := range out {
		rankings := data.Rankings[NormalizeKeyword(rec.KeywordText)]
		if len(rankings) == 0 {
			continue
		}

		position := bestOrganicPosition(rankings)
		factor := CalcSeoFactor(position, cfg.Factors)
		if factor >= 1.0 {
			one := 1.0
			out[i].SeoFactor = &one
			out[i].OrganicPosition = position
			continue
		}

		adjusted := rec.RecommendedBid * factor
		if cfg.CpcCeiling > 0 {
			adjusted = math.Min(adjusted, cfg.CpcCeiling)
		}

		seoReason := fmt.Sprintf("seoFactor=%.2f organic=#%d", factor, *position)
		f := factor
		out[i].RecommendedBid = math.Max(1, utils.RoundHalfUp(adjusted))
		out[i].SeoFactor = &f
		out[i].OrganicPosition = position
		out[i].SeoReason = seoReason
		out[i].Reason = rec.Reason + " " + seoReason
	}
	return out
}
