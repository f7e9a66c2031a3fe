package normalizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuuki-courage/aads/internal/domain"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		present bool
	}{
		{name: "Número simples", input: "123", want: 123, present: true},
		{name: "Separador de milhar", input: "1,234", want: 1234, present: true},
		{name: "Símbolo de moeda iene", input: "¥1,234", want: 1234, present: true},
		{name: "Moeda dólar com decimais", input: "$1,234.56", want: 1234.56, present: true},
		{name: "Sufixo japonês", input: "1,000円", want: 1000, present: true},
		{name: "Ponto de largura total", input: "12．5", want: 12.5, present: true},
		{name: "Negativo", input: "-42", want: -42, present: true},
		{name: "Número nativo", input: 3.5, want: 3.5, present: true},
		{name: "Inteiro nativo", input: 7, want: 7, present: true},
		{name: "Texto vazio", input: "", present: false},
		{name: "Nulo", input: nil, present: false},
		{name: "Texto não numérico", input: "abc", present: false},
		{name: "NaN literal", input: "NaN", present: false},
		{name: "Infinity literal", input: "Infinity", present: false},
		{name: "Dígitos de largura total são inválidos", input: "１２３", present: false},
		{name: "Apenas sinal", input: "-", present: false},
		{name: "NaN nativo", input: math.NaN(), present: false},
		{name: "Infinito nativo", input: math.Inf(1), present: false},
		{name: "Booleano", input: true, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNumber(tt.input)
			assert.Equal(t, tt.present, got.Present)
			if tt.present {
				assert.InDelta(t, tt.want, got.Value, 1e-9)
			}
			assert.False(t, math.IsNaN(got.Value))
		})
	}
}

func TestAsNumber(t *testing.T) {
	assert.Equal(t, 0.0, AsNumber("", 0))
	assert.Equal(t, 9.0, AsNumber("oops", 9))
	assert.Equal(t, 1500.0, AsNumber("1,500", 0))
}

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "Divisão exata", a: 10, b: 5, want: 2},
		{name: "Divisor zero", a: 10, b: 0, want: 0},
		{name: "Numerador NaN", a: math.NaN(), b: 2, want: 0},
		{name: "Divisor infinito", a: 1, b: math.Inf(1), want: 0},
		{name: "Numerador infinito", a: math.Inf(-1), b: 1, want: 0},
		{name: "Fração", a: 1, b: 4, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeDivide(tt.a, tt.b))
		})
	}
}

func TestNormalizeState(t *testing.T) {
	assert.Equal(t, "enabled", NormalizeState("有効", "enabled"))
	assert.Equal(t, "paused", NormalizeState(" 一時停止 ", "enabled"))
	assert.Equal(t, "archived", NormalizeState("非掲載", "enabled"))
	assert.Equal(t, "paused", NormalizeState("Paused", "enabled"))
	assert.Equal(t, "enabled", NormalizeState("", "enabled"))
	assert.Equal(t, "incomplete", NormalizeState("INCOMPLETE", "enabled"))
}

func TestNormalizeMatchType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "exact"},
		{"完全一致", "exact"},
		{"Exact Match", "exact"},
		{"フレーズ一致", "phrase"},
		{"phrase match", "phrase"},
		{"部分一致", "broad"},
		{"Negative Exact", "negative exact"},
		{"negative_phrase", "negative phrase"},
		{"NEGATIVE BROAD", "negative broad"},
		{"Topic", "topic"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMatchType(tt.input))
		})
	}
}

func TestNormalizeHeaderToken(t *testing.T) {
	assert.Equal(t, "campaign name", NormalizeHeaderToken("\ufeff  Campaign\u200b   Name "))
	assert.Equal(t, "campaign id", NormalizeHeaderToken("Ｃａｍｐａｉｇｎ　ＩＤ"))
}

func TestFindHeader(t *testing.T) {
	tests := []struct {
		name       string
		headers    []string
		candidates []string
		want       int
	}{
		{
			name:       "Correspondência exata respeita a prioridade dos candidatos",
			headers:    []string{"campaign_id", "Campaign ID"},
			candidates: []string{"Campaign ID", "campaign_id"},
			want:       1,
		},
		{
			name:       "Correspondência normalizada com BOM e espaços",
			headers:    []string{"\ufeffCampaign  ID"},
			candidates: []string{"Campaign ID"},
			want:       0,
		},
		{
			name:       "Cabeçalho japonês",
			headers:    []string{"キャンペーン名", "クリック数"},
			candidates: []string{"Clicks", "クリック数"},
			want:       1,
		},
		{
			name:       "Correspondência por contenção",
			headers:    []string{"Spend (JPY)", "Other"},
			candidates: []string{"Spend"},
			want:       0,
		},
		{
			name:       "Campo ausente",
			headers:    []string{"Foo", "Bar"},
			candidates: []string{"Clicks"},
			want:       -1,
		},
		{
			name:       "Cabeçalho vazio",
			headers:    nil,
			candidates: []string{"Clicks"},
			want:       -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindHeader(tt.headers, tt.candidates))
		})
	}
}

func TestResolveHeaders_EmptyHeaders(t *testing.T) {
	m := ResolveHeaders(nil, DefaultHeaderCandidates())
	for _, fc := range DefaultHeaderCandidates() {
		assert.Equal(t, -1, m.Index(fc.Field), string(fc.Field))
	}
}

func TestNormalizeTables(t *testing.T) {
	table := domain.InputTable{
		SourceFile: "bulk-A1-20240101-20240114-1.xlsx#SP検索ワードレポート",
		Headers: []string{
			"キャンペーンID", "キャンペーン名", "広告グループ名", "カスタマー検索用語",
			"商品ターゲティング式", "マッチタイプ", "クリック数", "インプレッション数",
			"支出", "売上", "注文数", "入札額", "キャンペーンのステータス",
		},
		Rows: []domain.DataRow{
			{
				"キャンペーンID": "C1", "キャンペーン名": "Brand_Auto", "広告グループ名": "AG",
				"カスタマー検索用語": "red shoes", "商品ターゲティング式": "close-match",
				"マッチタイプ": "完全一致", "クリック数": "10", "インプレッション数": "1,000",
				"支出": "¥500", "売上": "¥2,000", "注文数": 2.0, "入札額": "", "キャンペーンのステータス": "一時停止",
			},
			{},
		},
	}

	records := NormalizeTables([]domain.InputTable{table}, DefaultHeaderCandidates())
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "C1", r.CampaignID)
	assert.Equal(t, "Brand_Auto", r.CampaignName)
	assert.Equal(t, "red shoes", r.CustomerSearchTerm)
	assert.Equal(t, "exact", r.MatchType)
	assert.Equal(t, "auto", r.TargetingType)
	assert.Equal(t, "paused", r.State)
	assert.Equal(t, "paused", r.CampaignStatus)
	assert.Equal(t, 10.0, r.Clicks)
	assert.Equal(t, 1000.0, r.Impressions)
	assert.Equal(t, 500.0, r.Spend)
	assert.Equal(t, 2000.0, r.Sales)
	assert.Equal(t, 2.0, r.Orders)
	assert.False(t, r.Bid.Present)
	assert.False(t, r.DailyBudget.Present)
	assert.InDelta(t, 0.01, r.CTR, 1e-9)
	assert.InDelta(t, 0.2, r.CVR, 1e-9)
	assert.InDelta(t, 0.25, r.ACOS, 1e-9)
	assert.InDelta(t, 4.0, r.ROAS, 1e-9)
	assert.Equal(t, table.SourceFile, r.SourceFile)
}

func TestKeep(t *testing.T) {
	assert.False(t, Keep(domain.NormalizedRecord{}))
	assert.True(t, Keep(domain.NormalizedRecord{CampaignName: "X"}))
	assert.True(t, Keep(domain.NormalizedRecord{ProductTargetingExpression: "asin=\"B0\""}))
	assert.True(t, Keep(domain.NormalizedRecord{Spend: 1}))
	assert.False(t, Keep(domain.NormalizedRecord{Orders: 3}))
}
