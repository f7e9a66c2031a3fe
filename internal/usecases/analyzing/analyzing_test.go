package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuuki-courage/aads/internal/domain"
)

func TestAnalyzePerformance(t *testing.T) {
	records := []domain.NormalizedRecord{
		{CampaignID: "c1", CampaignName: "Camp A", Clicks: 10, Impressions: 100, Spend: 500, Sales: 1000, Orders: 2, DailyBudget: domain.Number(1000)},
		{CampaignID: "c1", CampaignName: "Camp A", Clicks: 10, Impressions: 100, Spend: 500, Sales: 1000, Orders: 2, DailyBudget: domain.Number(2000)},
		{CampaignID: "c2", CampaignName: "Camp B", Clicks: 5, Impressions: 50, Spend: 100, Sales: 5000, Orders: 1},
		{CampaignName: "Sem ID", Clicks: 1, Spend: 10},
		{Clicks: 99},
	}

	metrics := AnalyzePerformance(records)
	require.Len(t, metrics, 3)

	assert.Equal(t, "c2", metrics[0].CampaignID)
	assert.Equal(t, "c1", metrics[1].CampaignID)
	assert.Equal(t, "Sem ID", metrics[2].CampaignName)

	a := metrics[1]
	assert.Equal(t, 20.0, a.Clicks)
	assert.Equal(t, 1000.0, a.Spend)
	assert.InDelta(t, 0.1, a.CTR, 1e-9)
	assert.InDelta(t, 0.2, a.CVR, 1e-9)
	assert.InDelta(t, 0.5, a.ACOS, 1e-9)
	assert.InDelta(t, 2.0, a.ROAS, 1e-9)
	assert.Equal(t, domain.Number(1500), a.DailyBudget)

	assert.False(t, metrics[0].DailyBudget.Present)
	assert.Equal(t, 0.0, metrics[2].ACOS)
}

func TestAnalyzePerformance_EmpateMantemOrdem(t *testing.T) {
	records := []domain.NormalizedRecord{
		{CampaignID: "z", Sales: 100},
		{CampaignID: "a", Sales: 100},
	}
	metrics := AnalyzePerformance(records)
	require.Len(t, metrics, 2)
	assert.Equal(t, "z", metrics[0].CampaignID)
	assert.Equal(t, "a", metrics[1].CampaignID)
}

func TestComputeTotals(t *testing.T) {
	records := []domain.NormalizedRecord{
		{Clicks: 10, Impressions: 200, Spend: 100, Sales: 400, Orders: 2},
		{Clicks: 10, Impressions: 200, Spend: 100, Sales: 0, Orders: 0},
	}
	tables := []domain.InputTable{
		{SourceFile: "report.xlsx#SP検索ワードレポート"},
		{SourceFile: "report.xlsx#SB検索ワードレポート"},
		{SourceFile: "other.csv"},
	}

	totals := ComputeTotals(records, tables, 4)
	assert.Equal(t, 2, totals.Files)
	assert.Equal(t, 2, totals.Rows)
	assert.Equal(t, 4, totals.Campaigns)
	assert.InDelta(t, 0.05, totals.CTR, 1e-9)
	assert.InDelta(t, 0.1, totals.CVR, 1e-9)
	assert.InDelta(t, 0.5, totals.ACOS, 1e-9)
	assert.InDelta(t, 2.0, totals.ROAS, 1e-9)
}

func TestBuildStructure(t *testing.T) {
	records := []domain.NormalizedRecord{
		{CampaignID: "c2", CampaignName: "Beta", AdGroupID: "g1", AdGroupName: "G1", KeywordText: "kw", Spend: 10},
		{CampaignID: "c1", CampaignName: "Alpha", AdGroupID: "g2", KeywordText: "kw1", Spend: 5, Sales: 10},
		{CampaignID: "c1", CampaignName: "Alpha", AdGroupID: "g2", ProductTargetingExpression: `asin="B0"`, Spend: 5, Sales: 10},
		{CampaignID: "c1", CampaignName: "Alpha", AdGroupID: "g3", KeywordText: "kw2", Spend: 50},
		{CampaignID: "c1", CampaignName: "Alpha", Spend: 1},
	}

	structure := BuildStructure(records)
	require.Len(t, structure, 2)
	assert.Equal(t, "Alpha", structure[0].CampaignName)
	assert.Equal(t, "Beta", structure[1].CampaignName)

	groups := structure[0].AdGroups
	require.Len(t, groups, 3)
	assert.Equal(t, "g3", groups[0].AdGroupID)
	assert.Equal(t, "g2", groups[1].AdGroupID)
	assert.Equal(t, 1, groups[1].KeywordCount)
	assert.Equal(t, 1, groups[1].ProductTargetCount)
	assert.InDelta(t, 0.5, groups[1].ACOS, 1e-9)
	assert.Equal(t, "", groups[2].AdGroupID)
	assert.Equal(t, 0.0, groups[0].ACOS)
}

func TestClassifySkus(t *testing.T) {
	rules := DefaultSkuRules()
	tests := []struct {
		name   string
		record domain.NormalizedRecord
		label  domain.SkuLabel
		bid    float64
		reason string
	}{
		{
			name:   "Poucos cliques",
			record: domain.NormalizedRecord{SKU: "S", Clicks: 3, Orders: 3, Spend: 1, Sales: 100},
			label:  domain.SkuImprove, bid: 1.0, reason: "data-insufficient(clicks<5)",
		},
		{
			name:   "Alta performance",
			record: domain.NormalizedRecord{SKU: "S", Clicks: 100, Orders: 10, Spend: 100, Sales: 1000},
			label:  domain.SkuFocus, bid: 1.2, reason: "high-performance",
		},
		{
			name:   "Crescimento estável",
			record: domain.NormalizedRecord{SKU: "S", Clicks: 100, Orders: 4, Spend: 200, Sales: 1000},
			label:  domain.SkuNurture, bid: 1.05, reason: "stable-growth",
		},
		{
			name:   "Baixa eficiência por ACOS",
			record: domain.NormalizedRecord{SKU: "S", Clicks: 100, Orders: 5, Spend: 400, Sales: 1000},
			label:  domain.SkuPrune, bid: 0.8, reason: "low-efficiency",
		},
		{
			name:   "Sem pedidos",
			record: domain.NormalizedRecord{SKU: "S", Clicks: 100, Spend: 400},
			label:  domain.SkuPrune, bid: 0.8, reason: "low-efficiency",
		},
		{
			name:   "CVR muito baixo",
			record: domain.NormalizedRecord{SKU: "S", Clicks: 100, Orders: 1, Spend: 300, Sales: 1000},
			label:  domain.SkuPrune, bid: 0.8, reason: "low-efficiency",
		},
		{
			name:   "Faixa intermediária",
			record: domain.NormalizedRecord{SKU: "S", Clicks: 100, Orders: 2, Spend: 300, Sales: 1000},
			label:  domain.SkuImprove, bid: 1.0, reason: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifySkus([]domain.NormalizedRecord{tt.record}, rules)
			require.Len(t, result, 1)
			assert.Equal(t, tt.label, result[0].Label)
			assert.Equal(t, tt.bid, result[0].BidAdjust)
			assert.Equal(t, tt.reason, result[0].Reason)
		})
	}
}

func TestClassifySkus_TodosRotulados(t *testing.T) {
	records := []domain.NormalizedRecord{
		{SKU: "b-sku", Clicks: 1},
		{SKU: "A-sku", Clicks: 50, Orders: 5, Spend: 50, Sales: 1000},
		{SKU: "", Clicks: 100},
		{SKU: "b-sku", Clicks: 2},
	}

	result := ClassifySkus(records, DefaultSkuRules())
	require.Len(t, result, 2)
	assert.Equal(t, "A-sku", result[0].SKU)
	assert.Equal(t, "b-sku", result[1].SKU)
	for _, r := range result {
		assert.Contains(t, []domain.SkuLabel{domain.SkuFocus, domain.SkuNurture, domain.SkuImprove, domain.SkuPrune}, r.Label)
	}
}

func TestRecommendCpc(t *testing.T) {
	opts := CpcOptions{MinClicks: 5, TargetAcos: 0.25}

	t.Run("ACOS no alvo mantém o lance", func(t *testing.T) {
		records := []domain.NormalizedRecord{
			{CampaignID: "c1", KeywordText: "kw", MatchType: "exact", Clicks: 10, Spend: 500, Sales: 2000, Bid: domain.Number(50)},
		}
		recs := RecommendCpc(records, nil, opts)
		require.Len(t, recs, 1)
		assert.Equal(t, 50.0, recs[0].RecommendedBid)
		assert.Equal(t, 50.0, recs[0].CurrentBid)
		assert.Equal(t, "targetAcos=0.25 skuFactor=1.00", recs[0].Reason)
	})

	t.Run("Sem lance usa o CPC médio e aplica o fator do SKU", func(t *testing.T) {
		records := []domain.NormalizedRecord{
			{KeywordText: "kw", SKU: "S1", Clicks: 10, Spend: 400},
		}
		skus := []domain.SkuClassification{{SKU: "S1", BidAdjust: 1.2}}
		recs := RecommendCpc(records, skus, opts)
		require.Len(t, recs, 1)
		assert.Equal(t, 40.0, recs[0].CurrentBid)
		assert.Equal(t, 48.0, recs[0].RecommendedBid)
		assert.Equal(t, 1.2, recs[0].BidAdjust)
	})

	t.Run("Lance mínimo é 1", func(t *testing.T) {
		records := []domain.NormalizedRecord{
			{KeywordText: "kw", Clicks: 10, Spend: 10, Sales: 1, Bid: domain.Number(1)},
		}
		recs := RecommendCpc(records, nil, opts)
		require.Len(t, recs, 1)
		assert.Equal(t, 1.0, recs[0].RecommendedBid)
	})

	t.Run("Filtra cliques insuficientes e linhas sem alvo", func(t *testing.T) {
		records := []domain.NormalizedRecord{
			{KeywordText: "poucos", Clicks: 4, Spend: 10},
			{Clicks: 100, Spend: 10},
			{ProductTargetingExpression: `asin="B0X"`, Clicks: 20, Spend: 100},
			{KeywordText: "muitos", Clicks: 30, Spend: 100},
		}
		recs := RecommendCpc(records, nil, opts)
		require.Len(t, recs, 2)
		assert.Equal(t, "muitos", recs[0].KeywordText)
		assert.Equal(t, `asin="B0X"`, recs[1].KeywordText)
		for _, r := range recs {
			assert.GreaterOrEqual(t, r.RecommendedBid, 1.0)
		}
	})
}
