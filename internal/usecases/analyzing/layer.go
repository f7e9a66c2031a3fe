package analyzing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
)

// Origem de uma classificação de camada
const (
	MatchedByNaming    = "naming"
	MatchedByTargeting = "targeting"
	MatchedByFallback  = "fallback"
)

// chave da política usada para campanhas manuais (o tipo de correspondência não é conhecido no nível da campanha)
const manualFallbackKey = "manual-exact"

type compiledPattern struct {
	regex *regexp.Regexp
	layer domain.LayerID
}

// ClassifyLayers atribui cada campanha a uma camada da política: padrão de nome, depois tipo
// de segmentação e por fim a camada padrão.
func ClassifyLayers(metrics []domain.CampaignMetrics, policy *domain.CampaignLayerPolicy) ([]domain.CampaignLayerClassification, error) {
	if policy == nil {
		return nil, nil
	}

	patterns := make([]compiledPattern, 0, len(policy.NamingPatterns))
	for _, np := range policy.NamingPatterns {
		re, err := regexp.Compile(np.Pattern)
		if err != nil {
			return nil, fmt.Errorf("padrão de nome inválido %q: %w", np.Pattern, err)
		}
		patterns = append(patterns, compiledPattern{regex: re, layer: np.Layer})
	}

	out := make([]domain.CampaignLayerClassification, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, classifyLayer(m, patterns, policy.FallbackClassification))
	}
	return out, nil
}

func classifyLayer(m domain.CampaignMetrics, patterns []compiledPattern, fallback map[string]domain.LayerID) domain.CampaignLayerClassification {
	result := domain.CampaignLayerClassification{CampaignName: m.CampaignName}

	for _, p := range patterns {
		if p.regex.MatchString(m.CampaignName) {
			result.Layer = p.layer
			result.Confidence = domain.ConfidenceHigh
			result.MatchedBy = MatchedByNaming
			return result
		}
	}

	key := ""
	switch strings.ToLower(m.TargetingType) {
	case domain.TargetingAuto:
		key = domain.TargetingAuto
	case domain.TargetingManual:
		key = manualFallbackKey
	}
	if layer, ok := fallback[key]; ok && key != "" && layer != "" {
		result.Layer = layer
		result.Confidence = domain.ConfidenceMedium
		result.MatchedBy = MatchedByTargeting
		return result
	}

	result.Layer = domain.DefaultLayer
	result.Confidence = domain.ConfidenceLow
	result.MatchedBy = MatchedByFallback
	return result
}

// SummarizeLayers agrega gasto e vendas por camada, na ordem L0..L4
func SummarizeLayers(metrics []domain.CampaignMetrics, classes []domain.CampaignLayerClassification, policy *domain.CampaignLayerPolicy) *domain.LayerSummary {
	if policy == nil || len(classes) == 0 {
		return nil
	}

	byName := make(map[string]domain.CampaignMetrics, len(metrics))
	for _, m := range metrics {
		if _, ok := byName[m.CampaignName]; !ok {
			byName[m.CampaignName] = m
		}
	}

	summary := &domain.LayerSummary{}
	var totalSpend float64
	for _, layerID := range domain.LayerOrder {
		row := domain.LayerSummaryRow{Layer: layerID, Name: policy.Layers[layerID].Name}
		allPaused := true
		for _, c := range classes {
			if c.Layer != layerID {
				continue
			}
			row.Campaigns++
			if m, ok := byName[c.CampaignName]; ok {
				row.Spend += m.Spend
				row.Sales += m.Sales
				if m.State != domain.StatePaused {
					allPaused = false
				}
			}
		}
		if row.Sales > 0 {
			row.ACOS = row.Spend / row.Sales
		}
		row.Paused = row.Campaigns > 0 && allPaused
		totalSpend += row.Spend
		summary.Rows = append(summary.Rows, row)
	}

	if totalSpend > 0 {
		for i := range summary.Rows {
			summary.Rows[i].BudgetShare = summary.Rows[i].Spend / totalSpend
		}
	}

	for _, c := range classes {
		if c.Confidence == domain.ConfidenceLow {
			summary.LowConfidence = append(summary.LowConfidence, c)
		}
	}
	return summary
}
