package analyzing

import (
	"fmt"
	"math"
	"sort"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
	"github.com/yuuki-courage/aads/pkg/utils"
)

type periodAggregate struct {
	campaignID   string
	campaignName string
	impressions  float64
	clicks       float64
	spend        float64
}

func aggregatePeriod(records []domain.NormalizedRecord) (map[string]*periodAggregate, []string) {
	byKey := make(map[string]*periodAggregate)
	var order []string
	for _, r := range records {
		key := r.CampaignKey()
		if key == "" {
			continue
		}
		agg, ok := byKey[key]
		if !ok {
			agg = &periodAggregate{campaignID: r.CampaignID, campaignName: r.CampaignName}
			byKey[key] = agg
			order = append(order, key)
		}
		agg.impressions += r.Impressions
		agg.clicks += r.Clicks
		agg.spend += r.Spend
	}
	return byKey, order
}

// DetectAnomalies compara cada campanha do período atual com o período base e retorna as que
// ultrapassam algum limite de variação, ordenadas pela variação de gasto.
func DetectAnomalies(current, baseline []domain.NormalizedRecord, thresholds AnomalyThresholds) []domain.CampaignAnomaly {
	currentAgg, order := aggregatePeriod(current)
	baselineAgg, _ := aggregatePeriod(baseline)

	var anomalies []domain.CampaignAnomaly
	for _, key := range order {
		cur := currentAgg[key]
		base, ok := baselineAgg[key]
		if !ok {
			continue
		}

		currentCpc := normalizing.SafeDivide(cur.spend, cur.clicks)
		baselineCpc := normalizing.SafeDivide(base.spend, base.clicks)
		impressionChange := normalizing.SafeDivide(cur.impressions-base.impressions, math.Max(base.impressions, 1))
		spendChange := normalizing.SafeDivide(cur.spend-base.spend, math.Max(base.spend, 1))
		cpcChange := normalizing.SafeDivide(currentCpc-baselineCpc, math.Max(baselineCpc, 1e-9))

		var types []string
		if impressionChange > thresholds.Impression {
			types = append(types, fmt.Sprintf("impressions+%s%%", domain.FormatNumber(utils.RoundHalfUp(impressionChange*100))))
		}
		if spendChange > thresholds.Spend {
			types = append(types, fmt.Sprintf("spend+%s%%", domain.FormatNumber(utils.RoundHalfUp(spendChange*100))))
		}
		if cpcChange > thresholds.Cpc {
			types = append(types, fmt.Sprintf("cpc+%s%%", domain.FormatNumber(utils.RoundHalfUp(cpcChange*100))))
		}
		if len(types) == 0 {
			continue
		}

		anomalies = append(anomalies, domain.CampaignAnomaly{
			CampaignID:          cur.campaignID,
			CampaignName:        cur.campaignName,
			AnomalyTypes:        types,
			ImpressionChangePct: impressionChange * 100,
			SpendChangePct:      spendChange * 100,
			CpcChangePct:        cpcChange * 100,
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].SpendChangePct > anomalies[j].SpendChangePct
	})
	return anomalies
}
