package domain

// Valores padrão do template de campanhas
const (
	DefaultBiddingStrategy    = "Dynamic bids - down only"
	DefaultTemplateBudget     = 1000
	DefaultTemplateBid        = 50
	DefaultCampaignNameFormat = "{brand}_{typeLabel}_{suffix}"
	DefaultAdGroupNameFormat  = "{code}_{descriptor}"
)

// Chaves dos tipos de campanha do template
const (
	CampaignKindAuto   = "auto"
	CampaignKindPhrase = "phrase"
	CampaignKindBroad  = "broad"
	CampaignKindAsin   = "asin"
	CampaignKindManual = "manual"
)

type TemplateMode string

const (
	TemplateModeCreate TemplateMode = "create"
	TemplateModeUpdate TemplateMode = "update"
)

type KeywordEntry struct {
	Text string   `json:"text" yaml:"text"`
	Bid  *float64 `json:"bid,omitempty" yaml:"bid,omitempty"`
}

type ProductTargetEntry struct {
	ASIN string   `json:"asin" yaml:"asin"`
	Bid  *float64 `json:"bid,omitempty" yaml:"bid,omitempty"`
}

// CampaignSettings são os campos comuns a todos os tipos de campanha do template
type CampaignSettings struct {
	Enabled                bool     `json:"enabled" yaml:"enabled"`
	DailyBudget            float64  `json:"dailyBudget" yaml:"dailyBudget"`
	DefaultBid             float64  `json:"defaultBid" yaml:"defaultBid"`
	BiddingStrategy        string   `json:"biddingStrategy,omitempty" yaml:"biddingStrategy,omitempty"`
	TopOfSearchPercentage  *float64 `json:"topOfSearchPercentage,omitempty" yaml:"topOfSearchPercentage,omitempty"`
	ProductPagesPercentage *float64 `json:"productPagesPercentage,omitempty" yaml:"productPagesPercentage,omitempty"`
	SKUs                   []string `json:"skus,omitempty" yaml:"skus,omitempty"`
}

// CampaignSpec é a união dos tipos de campanha aceitos pelo template
type CampaignSpec interface {
	Settings() CampaignSettings
}

type AutoCampaign struct {
	CampaignSettings `json:",inline" yaml:",inline"`
}

type KeywordCampaign struct {
	CampaignSettings `json:",inline" yaml:",inline"`
	Keywords         []KeywordEntry `json:"keywords" yaml:"keywords"`
}

type AsinCampaign struct {
	CampaignSettings `json:",inline" yaml:",inline"`
	Targets          []ProductTargetEntry `json:"targets" yaml:"targets"`
}

type ManualAdGroup struct {
	Name           string               `json:"name" yaml:"name"`
	DefaultBid     float64              `json:"defaultBid" yaml:"defaultBid"`
	Keywords       []KeywordEntry       `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	ProductTargets []ProductTargetEntry `json:"productTargets,omitempty" yaml:"productTargets,omitempty"`
	SKUs           []string             `json:"skus,omitempty" yaml:"skus,omitempty"`
}

type ManualCampaign struct {
	Name                   string          `json:"name" yaml:"name"`
	DailyBudget            float64         `json:"dailyBudget" yaml:"dailyBudget"`
	TargetingType          string          `json:"targetingType" yaml:"targetingType"`
	BiddingStrategy        string          `json:"biddingStrategy,omitempty" yaml:"biddingStrategy,omitempty"`
	TopOfSearchPercentage  *float64        `json:"topOfSearchPercentage,omitempty" yaml:"topOfSearchPercentage,omitempty"`
	ProductPagesPercentage *float64        `json:"productPagesPercentage,omitempty" yaml:"productPagesPercentage,omitempty"`
	AdGroups               []ManualAdGroup `json:"adGroups" yaml:"adGroups"`
	NegativeKeywords       []string        `json:"negativeKeywords,omitempty" yaml:"negativeKeywords,omitempty"`
	SKUs                   []string        `json:"skus,omitempty" yaml:"skus,omitempty"`
}

func (c AutoCampaign) Settings() CampaignSettings    { return c.CampaignSettings }
func (c KeywordCampaign) Settings() CampaignSettings { return c.CampaignSettings }
func (c AsinCampaign) Settings() CampaignSettings    { return c.CampaignSettings }

func (c ManualCampaign) Settings() CampaignSettings {
	return CampaignSettings{
		Enabled:                true,
		DailyBudget:            c.DailyBudget,
		BiddingStrategy:        c.BiddingStrategy,
		TopOfSearchPercentage:  c.TopOfSearchPercentage,
		ProductPagesPercentage: c.ProductPagesPercentage,
		SKUs:                   c.SKUs,
	}
}

type CampaignSet struct {
	Auto   *AutoCampaign    `json:"auto,omitempty" yaml:"auto,omitempty"`
	Phrase *KeywordCampaign `json:"phrase,omitempty" yaml:"phrase,omitempty"`
	Broad  *KeywordCampaign `json:"broad,omitempty" yaml:"broad,omitempty"`
	Asin   *AsinCampaign    `json:"asin,omitempty" yaml:"asin,omitempty"`
	Manual []ManualCampaign `json:"manual,omitempty" yaml:"manual,omitempty"`
}

// TypedCampaign associa uma campanha do template à sua chave de tipo
type TypedCampaign struct {
	Kind string
	Spec CampaignSpec
}

// Specs retorna as campanhas habilitadas na ordem auto, phrase, broad, asin e depois as manuais
func (s CampaignSet) Specs() []TypedCampaign {
	var out []TypedCampaign
	if s.Auto != nil && s.Auto.Enabled {
		out = append(out, TypedCampaign{Kind: CampaignKindAuto, Spec: *s.Auto})
	}
	if s.Phrase != nil && s.Phrase.Enabled {
		out = append(out, TypedCampaign{Kind: CampaignKindPhrase, Spec: *s.Phrase})
	}
	if s.Broad != nil && s.Broad.Enabled {
		out = append(out, TypedCampaign{Kind: CampaignKindBroad, Spec: *s.Broad})
	}
	if s.Asin != nil && s.Asin.Enabled {
		out = append(out, TypedCampaign{Kind: CampaignKindAsin, Spec: *s.Asin})
	}
	for _, m := range s.Manual {
		out = append(out, TypedCampaign{Kind: CampaignKindManual, Spec: m})
	}
	return out
}

type NamingConvention struct {
	CampaignTemplate   string            `json:"campaignTemplate,omitempty" yaml:"campaignTemplate,omitempty"`
	AdGroupTemplate    string            `json:"adGroupTemplate,omitempty" yaml:"adGroupTemplate,omitempty"`
	TypeLabels         map[string]string `json:"typeLabels,omitempty" yaml:"typeLabels,omitempty"`
	AdGroupDescriptors map[string]string `json:"adGroupDescriptors,omitempty" yaml:"adGroupDescriptors,omitempty"`
}

// CampaignTemplateConfig descreve a estrutura de campanhas de uma marca
type CampaignTemplateConfig struct {
	BrandName        string            `json:"brandName" yaml:"brandName"`
	BrandCode        string            `json:"brandCode" yaml:"brandCode"`
	DateSuffix       string            `json:"dateSuffix" yaml:"dateSuffix"`
	PortfolioID      string            `json:"portfolioId,omitempty" yaml:"portfolioId,omitempty"`
	SKUs             []string          `json:"skus" yaml:"skus"`
	Campaigns        *CampaignSet      `json:"campaigns" yaml:"campaigns"`
	NegativeKeywords []string          `json:"negativeKeywords,omitempty" yaml:"negativeKeywords,omitempty"`
	BiddingStrategy  string            `json:"biddingStrategy,omitempty" yaml:"biddingStrategy,omitempty"`
	Naming           *NamingConvention `json:"naming,omitempty" yaml:"naming,omitempty"`
}
