package analyzing

import (
	"fmt"
	"math"
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// PlacementOffAmazon é reconhecido mas não é base nem ajustável
const PlacementOffAmazon = "Off Amazon"

const (
	minPlacementClicks   = 5
	placementCvrLift     = 1.2
	placementAcosCeiling = 1.5
	maxPlacementIncrease = 900
)

var adjustablePlacements = []string{domain.PlacementTopOfSearch, domain.PlacementProductPages}

// NormalizePlacementLabel mapeia o rótulo bruto (inglês ou japonês) para um dos rótulos
// reconhecidos. Rótulos desconhecidos retornam vazio.
func NormalizePlacementLabel(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(lower, "top") && strings.Contains(lower, "search"):
		return domain.PlacementTopOfSearch
	case strings.Contains(lower, "product") && strings.Contains(lower, "page"):
		return domain.PlacementProductPages
	case strings.Contains(lower, "rest"):
		return domain.PlacementRestOfSearch
	case strings.Contains(lower, "off") && strings.Contains(lower, "amazon"):
		return PlacementOffAmazon
	case strings.Contains(lower, "検索結果") && strings.Contains(lower, "上部"):
		return domain.PlacementTopOfSearch
	case strings.Contains(lower, "商品ページ"):
		return domain.PlacementProductPages
	case strings.Contains(lower, "検索結果") && strings.Contains(lower, "その他"):
		return domain.PlacementRestOfSearch
	case strings.Contains(lower, "amazon以外"):
		return PlacementOffAmazon
	}
	return ""
}

type placementStats struct {
	clicks, impressions, spend, sales, orders float64
}

// AnalyzePlacement recomenda modificadores de lance para topo da busca e páginas de produto,
// usando o restante da busca como base de cada campanha.
func AnalyzePlacement(records []domain.NormalizedRecord, targetAcos float64) []domain.PlacementRecommendation {
	byCampaign := make(map[string]map[string]*placementStats)
	var order []string
	names := make(map[string]string)

	for _, r := range records {
		if r.CampaignID != "" && r.CampaignName != "" {
			names[r.CampaignID] = r.CampaignName
		}
		if r.CampaignID == "" || r.Placement == "" {
			continue
		}
		label := NormalizePlacementLabel(r.Placement)
		if label == "" {
			continue
		}

		placements, ok := byCampaign[r.CampaignID]
		if !ok {
			placements = make(map[string]*placementStats)
			byCampaign[r.CampaignID] = placements
			order = append(order, r.CampaignID)
		}
		stats, ok := placements[label]
		if !ok {
			stats = &placementStats{}
			placements[label] = stats
		}
		stats.clicks += r.Clicks
		stats.impressions += r.Impressions
		stats.spend += r.Spend
		stats.sales += r.Sales
		stats.orders += r.Orders
	}

	var recs []domain.PlacementRecommendation
	for _, campaignID := range order {
		placements := byCampaign[campaignID]
		baseline := placements[domain.PlacementRestOfSearch]
		if baseline == nil || baseline.clicks == 0 {
			continue
		}
		baselineCvr := normalizing.SafeDivide(baseline.orders, baseline.clicks)

		for _, placementType := range adjustablePlacements {
			stats := placements[placementType]
			if stats == nil || stats.clicks < minPlacementClicks {
				continue
			}

			pct, reason, ok := decidePlacement(stats, baselineCvr, targetAcos)
			if !ok {
				continue
			}
			recs = append(recs, domain.PlacementRecommendation{
				CampaignID:            campaignID,
				CampaignName:          names[campaignID],
				PlacementType:         placementType,
				RecommendedPercentage: pct,
				Reason:                reason,
			})
		}
	}
	return recs
}

func decidePlacement(stats *placementStats, baselineCvr, targetAcos float64) (float64, string, bool) {
	cvr := normalizing.SafeDivide(stats.orders, stats.clicks)
	acos := normalizing.SafeDivide(stats.spend, stats.sales)

	switch {
	case cvr > baselineCvr*placementCvrLift && acos <= targetAcos:
		ratio := normalizing.SafeDivide(cvr, baselineCvr)
		pct := math.Min(utils.RoundHalfUp((ratio-1)*100), maxPlacementIncrease)
		return pct, fmt.Sprintf("CVR %.1f%% > baseline %.1f%%, ACOS %.1f%% within target",
			cvr*100, baselineCvr*100, acos*100), true
	case acos > targetAcos*placementAcosCeiling:
		return 0, fmt.Sprintf("ACOS %.1f%% exceeds %.0f%% threshold, remove modifier",
			acos*100, targetAcos*placementAcosCeiling*100), true
	case acos > targetAcos && acos <= targetAcos*placementAcosCeiling:
		pct := math.Max(utils.RoundHalfUp(normalizing.SafeDivide(targetAcos, acos)*50), 0)
		return pct, fmt.Sprintf("ACOS %.1f%% above target, reduced modifier", acos*100), true
	}
	return 0, "", false
}
