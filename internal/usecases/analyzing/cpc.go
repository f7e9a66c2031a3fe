package analyzing

import (
	"fmt"
	"math"
	"sort"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// RecommendCpc calcula o lance recomendado por palavra-chave ou alvo com cliques suficientes.
// O resultado é ordenado por cliques (desc). O lance nunca fica abaixo de 1.
func RecommendCpc(records []domain.NormalizedRecord, skus []domain.SkuClassification, opts CpcOptions) []domain.CpcRecommendation {
	skuAdjust := make(map[string]float64, len(skus))
	for _, s := range skus {
		skuAdjust[s.SKU] = s.BidAdjust
	}

	var result []domain.CpcRecommendation
	for _, r := range records {
		if r.KeywordText == "" && r.ProductTargetingExpression == "" {
			continue
		}
		if r.Clicks < opts.MinClicks {
			continue
		}

		avgCpc := normalizing.SafeDivide(r.Spend, r.Clicks)
		acos := normalizing.SafeDivide(r.Spend, r.Sales)
		acosFactor := 1.0
		if acos > 0 {
			acosFactor = opts.TargetAcos / acos
		}
		skuFactor, ok := skuAdjust[r.SKU]
		if !ok {
			skuFactor = 1
		}
		currentBid := r.Bid.Or(avgCpc)

		keyword := r.KeywordText
		if keyword == "" {
			keyword = r.ProductTargetingExpression
		}

		result = append(result, domain.CpcRecommendation{
			CampaignID:     r.CampaignID,
			CampaignName:   r.CampaignName,
			AdGroupID:      r.AdGroupID,
			AdGroupName:    r.AdGroupName,
			KeywordID:      r.KeywordID,
			KeywordText:    keyword,
			MatchType:      normalizing.NormalizeMatchType(r.MatchType),
			SKU:            r.SKU,
			Clicks:         r.Clicks,
			AvgCpc:         avgCpc,
			CurrentBid:     currentBid,
			RecommendedBid: math.Max(1, utils.RoundHalfUp(currentBid*acosFactor*skuFactor)),
			BidAdjust:      skuFactor,
			Reason:         fmt.Sprintf("targetAcos=%.2f skuFactor=%.2f", opts.TargetAcos, skuFactor),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Clicks > result[j].Clicks
	})
	return result
}
