package domain

import (
	"strconv"
	"strings"
)

// Produto padrão de todas as linhas geradas
const DefaultProduct = "Sponsored Products"

// BulkHeader é o cabeçalho canônico da planilha de alterações. A ordem faz parte do contrato.
var BulkHeader = [...]string{
	"Product",
	"Entity",
	"Operation",
	"Campaign Name",
	"Campaign ID",
	"Portfolio ID",
	"Ad Group Name",
	"Ad Group ID",
	"Ad Group Default Bid",
	"SKU / ASIN",
	"Keyword Text",
	"Product Targeting Expression",
	"Match Type",
	"Campaign Targeting Type",
	"State",
	"Daily Budget",
	"Bid",
	"Start Date",
	"End Date",
	"Bidding Strategy",
	"Placement (Top of Search)",
	"Percentage",
	"Placement (Product Pages)",
	"Targeting Type",
	"Keyword ID",
	"Product Targeting ID",
	"Campaign Status",
}

// NumericColumns são as colunas cujo conteúdo é numérico quando preenchido
var NumericColumns = map[string]bool{
	"Ad Group Default Bid": true,
	"Daily Budget":         true,
	"Bid":                  true,
	"Percentage":           true,
}

// BulkOutputRow é uma linha da planilha de alterações (uma mutação de entidade)
type BulkOutputRow struct {
	Product                    string `json:"Product"`
	Entity                     string `json:"Entity"`
	Operation                  string `json:"Operation"`
	CampaignName               string `json:"Campaign Name"`
	CampaignID                 string `json:"Campaign ID"`
	PortfolioID                string `json:"Portfolio ID"`
	AdGroupName                string `json:"Ad Group Name"`
	AdGroupID                  string `json:"Ad Group ID"`
	AdGroupDefaultBid          string `json:"Ad Group Default Bid"`
	SKUOrASIN                  string `json:"SKU / ASIN"`
	KeywordText                string `json:"Keyword Text"`
	ProductTargetingExpression string `json:"Product Targeting Expression"`
	MatchType                  string `json:"Match Type"`
	CampaignTargetingType      string `json:"Campaign Targeting Type"`
	State                      string `json:"State"`
	DailyBudget                string `json:"Daily Budget"`
	Bid                        string `json:"Bid"`
	StartDate                  string `json:"Start Date"`
	EndDate                    string `json:"End Date"`
	BiddingStrategy            string `json:"Bidding Strategy"`
	PlacementTopOfSearch       string `json:"Placement (Top of Search)"`
	Percentage                 string `json:"Percentage"`
	PlacementProductPages      string `json:"Placement (Product Pages)"`
	TargetingType              string `json:"Targeting Type"`
	KeywordID                  string `json:"Keyword ID"`
	ProductTargetingID         string `json:"Product Targeting ID"`
	CampaignStatus             string `json:"Campaign Status"`
}

// NewBulkRow cria a linha modelo, toda em branco exceto o produto
func NewBulkRow() BulkOutputRow {
	return BulkOutputRow{Product: DefaultProduct}
}

// Values retorna as células na ordem de BulkHeader
func (r BulkOutputRow) Values() []string {
	return []string{
		r.Product,
		r.Entity,
		r.Operation,
		r.CampaignName,
		r.CampaignID,
		r.PortfolioID,
		r.AdGroupName,
		r.AdGroupID,
		r.AdGroupDefaultBid,
		r.SKUOrASIN,
		r.KeywordText,
		r.ProductTargetingExpression,
		r.MatchType,
		r.CampaignTargetingType,
		r.State,
		r.DailyBudget,
		r.Bid,
		r.StartDate,
		r.EndDate,
		r.BiddingStrategy,
		r.PlacementTopOfSearch,
		r.Percentage,
		r.PlacementProductPages,
		r.TargetingType,
		r.KeywordID,
		r.ProductTargetingID,
		r.CampaignStatus,
	}
}

// FormatNumber formata um número para uma célula (sem zeros à direita)
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatOptional formata um OptionalNumber; ausente vira célula vazia
func FormatOptional(n OptionalNumber) string {
	if !n.Present {
		return ""
	}
	return FormatNumber(n.Value)
}

// HeaderLine retorna o cabeçalho como texto separado por vírgulas (útil em logs)
func HeaderLine() string {
	return strings.Join(BulkHeader[:], ",")
}
