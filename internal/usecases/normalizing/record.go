package normalizing

import (
	"strconv"
	"strings"
	"time"

	"github.com/yuuki-courage/aads/internal/domain"
)

// Text converte um valor bruto em texto sem espaços nas pontas
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return ""
	}
}

type rowReader struct {
	row     domain.DataRow
	headers []string
	index   HeaderMap
}

func (r rowReader) pick(f Field) any {
	idx := r.index.Index(f)
	if idx < 0 || idx >= len(r.headers) {
		return nil
	}
	return r.row[r.headers[idx]]
}

func (r rowReader) text(f Field) string {
	return Text(r.pick(f))
}

func (r rowReader) number(f Field) float64 {
	return AsNumber(r.pick(f), 0)
}

func (r rowReader) optional(f Field) domain.OptionalNumber {
	return ToNumber(r.pick(f))
}

// NormalizeRecord converte uma linha bruta em registro normalizado usando o mapa de cabeçalhos da tabela
func NormalizeRecord(row domain.DataRow, table domain.InputTable, index HeaderMap) domain.NormalizedRecord {
	r := rowReader{row: row, headers: table.Headers, index: index}

	clicks := r.number(FieldClicks)
	impressions := r.number(FieldImpressions)
	spend := r.number(FieldSpend)
	sales := r.number(FieldSales)
	orders := r.number(FieldOrders)

	expression := r.text(FieldProductTargetingExpression)
	targetingType := r.text(FieldTargetingType)
	if targetingType == "" && IsAutoTargetingExpression(expression) {
		targetingType = domain.TargetingAuto
	}

	state := NormalizeState(r.text(FieldState), domain.StateEnabled)

	return domain.NormalizedRecord{
		CampaignID:                 r.text(FieldCampaignID),
		CampaignName:               r.text(FieldCampaignName),
		AdGroupID:                  r.text(FieldAdGroupID),
		AdGroupName:                r.text(FieldAdGroupName),
		KeywordID:                  r.text(FieldKeywordID),
		KeywordText:                r.text(FieldKeywordText),
		CustomerSearchTerm:         r.text(FieldCustomerSearchTerm),
		ProductTargetingExpression: expression,
		MatchType:                  NormalizeMatchType(r.text(FieldMatchType)),
		TargetingType:              targetingType,
		SKU:                        r.text(FieldSKU),
		ASIN:                       r.text(FieldASIN),
		PortfolioID:                r.text(FieldPortfolioID),
		State:                      state,
		CampaignStatus:             state,
		Placement:                  r.text(FieldPlacement),
		DailyBudget:                r.optional(FieldDailyBudget),
		Bid:                        r.optional(FieldBid),
		AdGroupDefaultBid:          r.optional(FieldAdGroupDefaultBid),
		Clicks:                     clicks,
		Impressions:                impressions,
		Spend:                      spend,
		Sales:                      sales,
		Orders:                     orders,
		CTR:                        SafeDivide(clicks, impressions),
		CVR:                        SafeDivide(orders, clicks),
		ACOS:                       SafeDivide(spend, sales),
		ROAS:                       SafeDivide(sales, spend),
		SourceFile:                 table.SourceFile,
	}
}

// Keep indica se o registro carrega informação suficiente para entrar na análise.
// Linhas sem identificação, sem termo e sem métricas são descartadas como ruído.
func Keep(r domain.NormalizedRecord) bool {
	if r.CampaignID != "" || r.CampaignName != "" {
		return true
	}
	if r.KeywordText != "" || r.CustomerSearchTerm != "" || r.ProductTargetingExpression != "" {
		return true
	}
	return r.Clicks != 0 || r.Impressions != 0 || r.Spend != 0 || r.Sales != 0
}

// NormalizeTables normaliza todas as linhas de todas as tabelas, descartando ruído
func NormalizeTables(tables []domain.InputTable, candidates HeaderCandidates) []domain.NormalizedRecord {
	var records []domain.NormalizedRecord
	for _, table := range tables {
		index := ResolveHeaders(table.Headers, candidates)
		for _, row := range table.Rows {
			rec := NormalizeRecord(row, table, index)
			if Keep(rec) {
				records = append(records, rec)
			}
		}
	}
	return records
}
