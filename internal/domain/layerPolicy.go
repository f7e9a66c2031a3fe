package domain

type LayerID string

const (
	LayerL0 LayerID = "L0"
	LayerL1 LayerID = "L1"
	LayerL2 LayerID = "L2"
	LayerL3 LayerID = "L3"
	LayerL4 LayerID = "L4"
)

// LayerOrder é a ordem fixa das camadas
var LayerOrder = []LayerID{LayerL0, LayerL1, LayerL2, LayerL3, LayerL4}

// DefaultLayer é a camada usada quando nada mais classifica a campanha
const DefaultLayer = LayerL2

// IsValidLayerID indica se o id pertence ao conjunto fixo de camadas
func IsValidLayerID(id LayerID) bool {
	for _, l := range LayerOrder {
		if l == id {
			return true
		}
	}
	return false
}

type LayerDefinition struct {
	Name           string  `json:"name" yaml:"name"`
	NameJa         string  `json:"nameJa" yaml:"nameJa"`
	Purpose        string  `json:"purpose" yaml:"purpose"`
	AlwaysOn       bool    `json:"alwaysOn" yaml:"alwaysOn"`
	BudgetSharePct float64 `json:"budgetSharePct" yaml:"budgetSharePct"`
	CampaignPrefix string  `json:"campaignPrefix" yaml:"campaignPrefix"`
	TargetAcos     float64 `json:"targetAcos" yaml:"targetAcos"`
}

type NamingPattern struct {
	Pattern string  `json:"pattern" yaml:"pattern"`
	Layer   LayerID `json:"layer" yaml:"layer"`
}

type LayerPromotionRule struct {
	From        LayerID `json:"from" yaml:"from"`
	To          LayerID `json:"to" yaml:"to"`
	Description string  `json:"description" yaml:"description"`
}

// CampaignLayerPolicy é o documento versionado que define as camadas estratégicas
type CampaignLayerPolicy struct {
	Version                string                      `json:"version" yaml:"version"`
	Layers                 map[LayerID]LayerDefinition `json:"layers" yaml:"layers"`
	NamingPatterns         []NamingPattern             `json:"namingPatterns" yaml:"namingPatterns"`
	FallbackClassification map[string]LayerID          `json:"fallbackClassification" yaml:"fallbackClassification"`
	PromotionRules         []LayerPromotionRule        `json:"promotionRules" yaml:"promotionRules"`
}
