package domain

// CampaignBudget é o orçamento diário desejado para uma campanha
type CampaignBudget struct {
	CampaignName string  `json:"campaignName" yaml:"campaignName"`
	DailyBudget  float64 `json:"dailyBudget" yaml:"dailyBudget"`
}

// StrategyData guarda as metas de orçamento na ordem em que foram informadas
type StrategyData struct {
	TargetAcos       *float64         `json:"targetAcos,omitempty" yaml:"targetAcos,omitempty"`
	TotalDailyBudget *float64         `json:"totalDailyBudget,omitempty" yaml:"totalDailyBudget,omitempty"`
	Budgets          []CampaignBudget `json:"budgets" yaml:"budgets"`
}
