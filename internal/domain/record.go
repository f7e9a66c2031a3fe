// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"math"
	"strconv"
)

// Valores fechados de tipo de correspondência
const (
	MatchExact          = "exact"
	MatchPhrase         = "phrase"
	MatchBroad          = "broad"
	MatchNegativeExact  = "negative exact"
	MatchNegativePhrase = "negative phrase"
	MatchNegativeBroad  = "negative broad"
)

// Valores fechados de estado
const (
	StateEnabled  = "enabled"
	StatePaused   = "paused"
	StateArchived = "archived"
)

// Tipos de segmentação de campanha
const (
	TargetingAuto   = "auto"
	TargetingManual = "manual"
)

// DataRow é uma linha bruta: cabeçalho -> valor primitivo (string, número, bool, data ou nil)
type DataRow map[string]any

// InputTable é uma tabela produzida pela camada de leitura (xlsx/csv/json)
type InputTable struct {
	SourceFile string    `json:"sourceFile"`
	Headers    []string  `json:"headers"`
	Rows       []DataRow `json:"rows"`
}

// OptionalNumber é um número finito ou ausente. Nunca carrega NaN.
type OptionalNumber struct {
	Value   float64
	Present bool
}

// Number cria um OptionalNumber presente. Valores não finitos viram ausentes.
func Number(v float64) OptionalNumber {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return OptionalNumber{}
	}
	return OptionalNumber{Value: v, Present: true}
}

// NoNumber retorna o sentinela de ausência
func NoNumber() OptionalNumber {
	return OptionalNumber{}
}

// Or retorna o valor ou o fallback quando ausente
func (n OptionalNumber) Or(fallback float64) float64 {
	if !n.Present {
		return fallback
	}
	return n.Value
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if !n.Present {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" || string(data) == `""` {
		*n = OptionalNumber{}
		return nil
	}
	v, err := strconv.ParseFloat(string(bytes.Trim(data, `"`)), 64)
	if err != nil {
		*n = OptionalNumber{}
		return nil
	}
	*n = Number(v)
	return nil
}

// NormalizedRecord é uma linha de performance já normalizada. Imutável após a criação.
type NormalizedRecord struct {
	CampaignID                 string         `json:"campaign_id"`
	CampaignName               string         `json:"campaign_name"`
	AdGroupID                  string         `json:"ad_group_id"`
	AdGroupName                string         `json:"ad_group_name"`
	KeywordID                  string         `json:"keyword_id"`
	KeywordText                string         `json:"keyword_text"`
	CustomerSearchTerm         string         `json:"customer_search_term"`
	ProductTargetingExpression string         `json:"product_targeting_expression"`
	MatchType                  string         `json:"match_type"`
	TargetingType              string         `json:"targeting_type"`
	SKU                        string         `json:"sku"`
	ASIN                       string         `json:"asin"`
	PortfolioID                string         `json:"portfolio_id"`
	State                      string         `json:"state"`
	CampaignStatus             string         `json:"campaign_status"`
	Placement                  string         `json:"placement"`
	DailyBudget                OptionalNumber `json:"daily_budget"`
	Bid                        OptionalNumber `json:"bid"`
	AdGroupDefaultBid          OptionalNumber `json:"ad_group_default_bid"`
	Clicks                     float64        `json:"clicks"`
	Impressions                float64        `json:"impressions"`
	Spend                      float64        `json:"spend"`
	Sales                      float64        `json:"sales"`
	Orders                     float64        `json:"orders"`
	CTR                        float64        `json:"ctr"`
	CVR                        float64        `json:"cvr"`
	ACOS                       float64        `json:"acos"`
	ROAS                       float64        `json:"roas"`
	SourceFile                 string         `json:"source_file"`
}

// CampaignKey é o ID da campanha, ou o nome quando o ID está vazio
func (r NormalizedRecord) CampaignKey() string {
	if r.CampaignID != "" {
		return r.CampaignID
	}
	return r.CampaignName
}
