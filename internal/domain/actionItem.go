package domain

type ActionType string

const (
	ActionNegativeKeyword          ActionType = "negative_keyword"
	ActionNegativeProductTargeting ActionType = "negative_product_targeting"
	ActionKeyword                  ActionType = "keyword"
	ActionPlacement                ActionType = "placement"
)

// IsValid indica se o tipo de ação é conhecido
func (t ActionType) IsValid() bool {
	switch t {
	case ActionNegativeKeyword, ActionNegativeProductTargeting, ActionKeyword, ActionPlacement:
		return true
	}
	return false
}

// ActionItem é uma ação avulsa informada pelo operador. O campo Type define quais campos valem.
type ActionItem struct {
	Type         ActionType `json:"type" yaml:"type"`
	CampaignID   string     `json:"campaignId" yaml:"campaignId"`
	CampaignName string     `json:"campaignName" yaml:"campaignName"`
	AdGroupID    string     `json:"adGroupId,omitempty" yaml:"adGroupId,omitempty"`
	AdGroupName  string     `json:"adGroupName,omitempty" yaml:"adGroupName,omitempty"`
	KeywordText  string     `json:"keywordText,omitempty" yaml:"keywordText,omitempty"`
	MatchType    string     `json:"matchType,omitempty" yaml:"matchType,omitempty"`
	ASIN         string     `json:"asin,omitempty" yaml:"asin,omitempty"`
	Bid          *float64   `json:"bid,omitempty" yaml:"bid,omitempty"`
	Placement    string     `json:"placement,omitempty" yaml:"placement,omitempty"`
	Percentage   *float64   `json:"percentage,omitempty" yaml:"percentage,omitempty"`
}

type ActionItemsConfig struct {
	Actions []ActionItem `json:"actions" yaml:"actions"`
}
