// Package analyzing contém os motores analíticos. Cada função depende apenas dos registros
// normalizados e pode rodar em paralelo com as demais.
package analyzing

import (
	"sort"
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
)

type campaignAccumulator struct {
	metrics     domain.CampaignMetrics
	budget      float64
	budgetCount int
}

// AnalyzePerformance consolida as métricas por campanha, ordenadas por vendas (desc, estável)
func AnalyzePerformance(records []domain.NormalizedRecord) []domain.CampaignMetrics {
	byKey := make(map[string]*campaignAccumulator)
	var order []string

	for _, r := range records {
		key := r.CampaignKey()
		if key == "" {
			continue
		}

		acc, ok := byKey[key]
		if !ok {
			acc = &campaignAccumulator{metrics: domain.CampaignMetrics{
				CampaignID:    r.CampaignID,
				CampaignName:  r.CampaignName,
				TargetingType: r.TargetingType,
				State:         r.State,
			}}
			byKey[key] = acc
			order = append(order, key)
		}

		acc.metrics.Clicks += r.Clicks
		acc.metrics.Impressions += r.Impressions
		acc.metrics.Spend += r.Spend
		acc.metrics.Sales += r.Sales
		acc.metrics.Orders += r.Orders
		if r.DailyBudget.Present {
			acc.budget += r.DailyBudget.Value
			acc.budgetCount++
		}
	}

	result := make([]domain.CampaignMetrics, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		m := acc.metrics
		m.CTR = normalizing.SafeDivide(m.Clicks, m.Impressions)
		m.CVR = normalizing.SafeDivide(m.Orders, m.Clicks)
		m.ACOS = normalizing.SafeDivide(m.Spend, m.Sales)
		m.ROAS = normalizing.SafeDivide(m.Sales, m.Spend)
		if acc.budgetCount > 0 {
			m.DailyBudget = domain.Number(acc.budget / float64(acc.budgetCount))
		}
		result = append(result, m)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Sales > result[j].Sales
	})
	return result
}

// ComputeTotals soma os KPIs de todos os registros
func ComputeTotals(records []domain.NormalizedRecord, tables []domain.InputTable, campaigns int) domain.KpiTotals {
	files := make(map[string]bool)
	for _, t := range tables {
		name := t.SourceFile
		if idx := strings.Index(name, "#"); idx >= 0 {
			name = name[:idx]
		}
		files[name] = true
	}

	totals := domain.KpiTotals{Files: len(files), Rows: len(records), Campaigns: campaigns}
	for _, r := range records {
		totals.Clicks += r.Clicks
		totals.Impressions += r.Impressions
		totals.Spend += r.Spend
		totals.Sales += r.Sales
		totals.Orders += r.Orders
	}
	totals.CTR = normalizing.SafeDivide(totals.Clicks, totals.Impressions)
	totals.CVR = normalizing.SafeDivide(totals.Orders, totals.Clicks)
	totals.ACOS = normalizing.SafeDivide(totals.Spend, totals.Sales)
	totals.ROAS = normalizing.SafeDivide(totals.Sales, totals.Spend)
	return totals
}
