package analyzing

// CpcOptions configura o otimizador de lances
type CpcOptions struct {
	MinClicks  float64
	TargetAcos float64
}

// PromotionOptions configura a classificação de termos automáticos
type PromotionOptions struct {
	MinClicks             float64
	MinCvr                float64
	NegativeAcosThreshold float64
}

// AnomalyThresholds são as variações mínimas (razão) que caracterizam uma anomalia
type AnomalyThresholds struct {
	Impression float64
	Spend      float64
	Cpc        float64
}

// SkuRule define os limites e os multiplicadores de um rótulo de SKU
type SkuRule struct {
	MaxAcos      float64
	MinCvr       float64
	BidAdjust    float64
	BudgetAdjust float64
}

// PruneRule define quando um SKU deve ser podado
type PruneRule struct {
	MinAcos      float64
	MaxCvr       float64
	BidAdjust    float64
	BudgetAdjust float64
}

// SkuRules é a tabela completa de classificação de SKUs
type SkuRules struct {
	MinClicks float64
	Focus     SkuRule
	Nurture   SkuRule
	Improve   SkuRule
	Prune     PruneRule
}

// DefaultSkuRules retorna a tabela padrão de classificação
func DefaultSkuRules() SkuRules {
	return SkuRules{
		MinClicks: 5,
		Focus:     SkuRule{MaxAcos: 0.15, MinCvr: 0.05, BidAdjust: 1.2, BudgetAdjust: 1.15},
		Nurture:   SkuRule{MaxAcos: 0.25, MinCvr: 0.03, BidAdjust: 1.05, BudgetAdjust: 1.0},
		Improve:   SkuRule{BidAdjust: 1.0, BudgetAdjust: 1.0},
		Prune:     PruneRule{MinAcos: 0.35, MaxCvr: 0.015, BidAdjust: 0.8, BudgetAdjust: 0.85},
	}
}

// DefaultSeoFactors é a tabela padrão posição orgânica -> fator de lance
func DefaultSeoFactors() map[int]float64 {
	return map[int]float64{1: 0.5, 2: 0.6, 3: 0.7, 4: 0.8}
}
