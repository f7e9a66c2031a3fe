// Package normalizing resolve cabeçalhos bilíngues e converte linhas brutas em registros normalizados
package normalizing

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field é um campo canônico do registro normalizado
type Field string

const (
	FieldCampaignID                 Field = "campaignId"
	FieldCampaignName               Field = "campaignName"
	FieldAdGroupID                  Field = "adGroupId"
	FieldAdGroupName                Field = "adGroupName"
	FieldKeywordID                  Field = "keywordId"
	FieldKeywordText                Field = "keywordText"
	FieldCustomerSearchTerm         Field = "customerSearchTerm"
	FieldProductTargetingExpression Field = "productTargetingExpression"
	FieldMatchType                  Field = "matchType"
	FieldClicks                     Field = "clicks"
	FieldImpressions                Field = "impressions"
	FieldSpend                      Field = "spend"
	FieldSales                      Field = "sales"
	FieldOrders                     Field = "orders"
	FieldSKU                        Field = "sku"
	FieldASIN                       Field = "asin"
	FieldDailyBudget                Field = "dailyBudget"
	FieldBid                        Field = "bid"
	FieldAdGroupDefaultBid          Field = "adGroupDefaultBid"
	FieldState                      Field = "state"
	FieldTargetingType              Field = "targetingType"
	FieldPortfolioID                Field = "portfolioId"
	FieldPlacement                  Field = "placement"
)

// FieldCandidates lista, em ordem de prioridade, os nomes de cabeçalho aceitos para um campo
type FieldCandidates struct {
	Field Field
	Names []string
}

// HeaderCandidates é a tabela completa de candidatos, em ordem estável
type HeaderCandidates []FieldCandidates

// HeaderMap associa cada campo canônico ao índice da coluna, ou -1 quando ausente
type HeaderMap map[Field]int

// Index retorna o índice resolvido do campo, -1 quando o campo não existe no mapa
func (m HeaderMap) Index(f Field) int {
	idx, ok := m[f]
	if !ok {
		return -1
	}
	return idx
}

// DefaultHeaderCandidates retorna uma cópia da tabela de cabeçalhos inglês/japonês
func DefaultHeaderCandidates() HeaderCandidates {
	return HeaderCandidates{
		{FieldCampaignID, []string{"Campaign ID", "キャンペーンID", "campaign_id"}},
		{FieldCampaignName, []string{"Campaign Name", "キャンペーン名", "キャンペーン名（情報提供のみ）", "campaign_name"}},
		{FieldAdGroupID, []string{"Ad Group ID", "広告グループID", "ad_group_id"}},
		{FieldAdGroupName, []string{"Ad Group Name", "広告グループ名", "広告グループ名（情報提供のみ）", "ad_group_name"}},
		{FieldKeywordID, []string{"Keyword ID", "キーワードID", "keyword_id"}},
		{FieldKeywordText, []string{"Keyword Text", "キーワードテキスト", "Search Term", "search_term"}},
		{FieldCustomerSearchTerm, []string{"カスタマー検索用語", "Customer Search Term", "customer_search_term"}},
		{FieldProductTargetingExpression, []string{"Product Targeting Expression", "Targeting Expression", "商品ターゲティング式"}},
		{FieldMatchType, []string{"Match Type", "マッチタイプ", "match_type"}},
		{FieldClicks, []string{"Clicks", "クリック数", "clicks"}},
		{FieldImpressions, []string{"Impressions", "インプレッション数", "impressions"}},
		{FieldSpend, []string{"Spend", "支出", "spend"}},
		{FieldSales, []string{"Sales", "売上", "sales"}},
		{FieldOrders, []string{"Orders", "注文", "注文数", "orders"}},
		{FieldSKU, []string{"SKU", "sku"}},
		{FieldASIN, []string{"ASIN", "ASIN（情報提供のみ）", "asin"}},
		{FieldDailyBudget, []string{"Daily Budget", "Campaign Daily Budget", "New_Daily_Budget", "日次予算", "campaign_daily_budget"}},
		{FieldBid, []string{"Bid", "入札額", "bid"}},
		{FieldAdGroupDefaultBid, []string{"Ad Group Default Bid", "ad_group_default_bid"}},
		{FieldState, []string{"State", "state", "キャンペーンのステータス", "status"}},
		{FieldTargetingType, []string{"Targeting Type", "ターゲティングの種類", "Campaign Targeting Type", "targeting_type"}},
		{FieldPortfolioID, []string{"Portfolio ID", "ポートフォリオID", "portfolio_id"}},
		{FieldPlacement, []string{"Placement", "Placement Type", "掲載枠", "placement"}},
	}
}

var invisibleRunes = strings.NewReplacer(
	"\ufeff", "",
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\u2060", "",
	"\u00a0", "",
)

// NormalizeHeaderToken aplica NFKC, remove BOM e caracteres de largura zero, colapsa espaços e converte para minúsculas
func NormalizeHeaderToken(value string) string {
	s := norm.NFKC.String(value)
	s = invisibleRunes.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// FindHeader retorna o índice do primeiro cabeçalho que corresponde a um candidato, ou -1.
// Ordem: igualdade exata, igualdade normalizada e por fim contenção normalizada.
func FindHeader(headers []string, candidates []string) int {
	if len(headers) == 0 {
		return -1
	}

	for _, name := range candidates {
		for i, h := range headers {
			if h == name {
				return i
			}
		}
	}

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeaderToken(h)
	}

	for _, candidate := range candidates {
		nc := NormalizeHeaderToken(candidate)
		for i, h := range normalized {
			if h == nc {
				return i
			}
		}
	}

	for _, candidate := range candidates {
		nc := NormalizeHeaderToken(candidate)
		if nc == "" {
			continue
		}
		for i, h := range normalized {
			if strings.Contains(h, nc) {
				return i
			}
		}
	}
	return -1
}

// ResolveHeaders resolve todos os campos da tabela de candidatos contra a linha de cabeçalho
func ResolveHeaders(headers []string, candidates HeaderCandidates) HeaderMap {
	m := make(HeaderMap, len(candidates))
	for _, fc := range candidates {
		m[fc.Field] = FindHeader(headers, fc.Names)
	}
	return m
}
