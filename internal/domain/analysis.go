package domain

// CampaignMetrics representa o consolidado de performance de uma campanha
type CampaignMetrics struct {
	CampaignID    string         `json:"campaign_id"`
	CampaignName  string         `json:"campaign_name"`
	TargetingType string         `json:"targeting_type"`
	State         string         `json:"state"`
	Clicks        float64        `json:"clicks"`
	Impressions   float64        `json:"impressions"`
	Spend         float64        `json:"spend"`
	Sales         float64        `json:"sales"`
	Orders        float64        `json:"orders"`
	CTR           float64        `json:"ctr"`
	CVR           float64        `json:"cvr"`
	ACOS          float64        `json:"acos"`
	ROAS          float64        `json:"roas"`
	DailyBudget   OptionalNumber `json:"daily_budget"`
}

// AdGroupNode é o resumo estrutural de um grupo de anúncios
type AdGroupNode struct {
	AdGroupID          string  `json:"ad_group_id"`
	AdGroupName        string  `json:"ad_group_name"`
	KeywordCount       int     `json:"keyword_count"`
	ProductTargetCount int     `json:"product_target_count"`
	Spend              float64 `json:"spend"`
	Sales              float64 `json:"sales"`
	ACOS               float64 `json:"acos"`
}

// CampaignStructureNode é o resumo estrutural de uma campanha
type CampaignStructureNode struct {
	CampaignID   string        `json:"campaign_id"`
	CampaignName string        `json:"campaign_name"`
	AdGroups     []AdGroupNode `json:"ad_groups"`
}

type SkuLabel string

const (
	SkuFocus   SkuLabel = "focus"
	SkuNurture SkuLabel = "nurture"
	SkuImprove SkuLabel = "improve"
	SkuPrune   SkuLabel = "prune"
)

type SkuClassification struct {
	SKU          string   `json:"sku"`
	Label        SkuLabel `json:"label"`
	BidAdjust    float64  `json:"bid_adjust"`
	BudgetAdjust float64  `json:"budget_adjust"`
	Reason       string   `json:"reason"`
}

// CpcRecommendation é a recomendação de lance para uma palavra-chave ou alvo
type CpcRecommendation struct {
	CampaignID      string   `json:"campaign_id"`
	CampaignName    string   `json:"campaign_name"`
	AdGroupID       string   `json:"ad_group_id"`
	AdGroupName     string   `json:"ad_group_name"`
	KeywordID       string   `json:"keyword_id"`
	KeywordText     string   `json:"keyword_text"`
	MatchType       string   `json:"match_type"`
	SKU             string   `json:"sku"`
	Clicks          float64  `json:"clicks"`
	AvgCpc          float64  `json:"avg_cpc"`
	CurrentBid      float64  `json:"current_bid"`
	RecommendedBid  float64  `json:"recommended_bid"`
	BidAdjust       float64  `json:"bid_adjust"`
	Reason          string   `json:"reason"`
	SeoFactor       *float64 `json:"seo_factor,omitempty"`
	OrganicPosition *int     `json:"organic_position,omitempty"`
	SeoReason       string   `json:"seo_reason,omitempty"`
}

// PromotionCandidate é um termo de busca automático que deve virar segmentação manual
type PromotionCandidate struct {
	CampaignID             string  `json:"campaign_id"`
	CampaignName           string  `json:"campaign_name"`
	AdGroupID              string  `json:"ad_group_id"`
	AdGroupName            string  `json:"ad_group_name"`
	KeywordText            string  `json:"keyword_text"`
	MatchType              string  `json:"match_type"`
	SKU                    string  `json:"sku"`
	Clicks                 float64 `json:"clicks"`
	Spend                  float64 `json:"spend"`
	Orders                 float64 `json:"orders"`
	CVR                    float64 `json:"cvr"`
	AvgCpc                 float64 `json:"avg_cpc"`
	RecommendedBid         float64 `json:"recommended_bid"`
	RecommendedAdGroupName string  `json:"recommended_ad_group_name"`
}

// NegativeCandidate é um termo que deve ser negativado
type NegativeCandidate struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdGroupID    string `json:"ad_group_id"`
	AdGroupName  string `json:"ad_group_name"`
	KeywordText  string `json:"keyword_text"`
	MatchType    string `json:"match_type"`
	Reason       string `json:"reason"`
}

// Rótulos de posicionamento reconhecidos
const (
	PlacementTopOfSearch  = "Top of Search"
	PlacementProductPages = "Product Pages"
	PlacementRestOfSearch = "Rest of Search"
)

type PlacementRecommendation struct {
	CampaignID            string  `json:"campaign_id"`
	CampaignName          string  `json:"campaign_name"`
	PlacementType         string  `json:"placement_type"`
	CurrentPercentage     float64 `json:"current_percentage"`
	RecommendedPercentage float64 `json:"recommended_percentage"`
	Reason                string  `json:"reason"`
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type CampaignLayerClassification struct {
	CampaignName string     `json:"campaign_name"`
	Layer        LayerID    `json:"layer"`
	Confidence   Confidence `json:"confidence"`
	MatchedBy    string     `json:"matched_by"`
}

// LayerSummaryRow consolida as campanhas de uma camada
type LayerSummaryRow struct {
	Layer       LayerID `json:"layer"`
	Name        string  `json:"name"`
	Campaigns   int     `json:"campaigns"`
	Spend       float64 `json:"spend"`
	Sales       float64 `json:"sales"`
	ACOS        float64 `json:"acos"`
	BudgetShare float64 `json:"budget_share"`
	Paused      bool    `json:"paused"`
}

type LayerSummary struct {
	Rows          []LayerSummaryRow             `json:"rows"`
	LowConfidence []CampaignLayerClassification `json:"low_confidence"`
}

// CampaignAnomaly é uma variação relevante entre dois períodos
type CampaignAnomaly struct {
	CampaignID          string   `json:"campaign_id"`
	CampaignName        string   `json:"campaign_name"`
	AnomalyTypes        []string `json:"anomaly_types"`
	ImpressionChangePct float64  `json:"impression_change_pct"`
	SpendChangePct      float64  `json:"spend_change_pct"`
	CpcChangePct        float64  `json:"cpc_change_pct"`
}

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// AnalysisResult é o resultado completo de uma execução de análise
type AnalysisResult struct {
	RunID               string                        `json:"run_id"`
	Input               []InputTable                  `json:"-"`
	Records             []NormalizedRecord            `json:"records,omitempty"`
	DateRange           *DateRange                    `json:"date_range"`
	CampaignMetrics     []CampaignMetrics             `json:"campaign_metrics"`
	Structure           []CampaignStructureNode       `json:"structure"`
	SkuClassification   []SkuClassification           `json:"sku_classification"`
	CpcRecommendations  []CpcRecommendation           `json:"cpc_recommendations"`
	PromotionCandidates []PromotionCandidate          `json:"promotion_candidates"`
	NegativeCandidates  []NegativeCandidate           `json:"negative_candidates"`
	Placements          []PlacementRecommendation     `json:"placements"`
	LayerClassification []CampaignLayerClassification `json:"layer_classification,omitempty"`
	LayerSummary        *LayerSummary                 `json:"layer_summary,omitempty"`
	Anomalies           []CampaignAnomaly             `json:"anomalies,omitempty"`
	SeoRankingData      *SeoRankingData               `json:"seo_ranking_data,omitempty"`
}

// KpiTotals é o total geral dos registros de uma análise
type KpiTotals struct {
	Files       int     `json:"files"`
	Rows        int     `json:"rows"`
	Campaigns   int     `json:"campaigns"`
	Clicks      float64 `json:"clicks"`
	Impressions float64 `json:"impressions"`
	Spend       float64 `json:"spend"`
	Sales       float64 `json:"sales"`
	Orders      float64 `json:"orders"`
	CTR         float64 `json:"ctr"`
	CVR         float64 `json:"cvr"`
	ACOS        float64 `json:"acos"`
	ROAS        float64 `json:"roas"`
}

// StageCount é a quantidade de linhas produzida por uma etapa antes da mesclagem
type StageCount struct {
	Stage string `json:"stage"`
	Rows  int    `json:"rows"`
}

type GenerateSummary struct {
	StageCounts []StageCount `json:"stage_counts"`
	TotalRows   int          `json:"total_rows"`
}

// GenerateResult é a planilha de alterações final
type GenerateResult struct {
	RunID    string          `json:"run_id"`
	Rows     []BulkOutputRow `json:"rows"`
	Summary  GenerateSummary `json:"summary"`
	Warnings []string        `json:"warnings,omitempty"`
}
