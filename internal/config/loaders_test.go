package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuuki-courage/aads/internal/domain"
)

const validPolicy = `{
  "version": "1.0",
  "layers": {
    "L0": {"name": "Brand", "nameJa": "ブランド", "campaignPrefix": "L0_", "budgetSharePct": 10},
    "L1": {"name": "Core", "nameJa": "コア", "campaignPrefix": "L1_"},
    "L2": {"name": "Growth", "nameJa": "成長", "campaignPrefix": "L2_"},
    "L3": {"name": "Discovery", "nameJa": "発見", "campaignPrefix": "L3_"},
    "L4": {"name": "Defense", "nameJa": "防御", "campaignPrefix": "L4_"}
  },
  "namingPatterns": [{"pattern": "^L0_", "layer": "L0"}],
  "fallbackClassification": {"auto": "L3", "manual-exact": "L1"},
  "promotionRules": [{"from": "L3", "to": "L1", "description": "promover termos"}]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLayerPolicy(t *testing.T) {
	path := writeFile(t, "policy.json", validPolicy)

	policy, err := LoadLayerPolicy(path)

	require.NoError(t, err)
	require.NotNil(t, policy)
	assert.Equal(t, "1.0", policy.Version)
	assert.Equal(t, "ブランド", policy.Layers[domain.LayerL0].NameJa)
	assert.Equal(t, 10.0, policy.Layers[domain.LayerL0].BudgetSharePct)
	assert.Equal(t, domain.LayerL3, policy.FallbackClassification["auto"])
	require.Len(t, policy.NamingPatterns, 1)
	assert.Equal(t, domain.LayerL0, policy.NamingPatterns[0].Layer)
}

func TestLoadLayerPolicy_ArquivoExplicitoAusente(t *testing.T) {
	_, err := LoadLayerPolicy(filepath.Join(t.TempDir(), "nao-existe.json"))
	assert.Error(t, err)
}

func TestLoadLayerPolicy_PadraoAusente(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	policy, err := LoadLayerPolicy("")

	assert.NoError(t, err)
	assert.Nil(t, policy)
}

func TestLoadLayerPolicy_CaminhoPadraoInformadoAusente(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	policy, err := LoadLayerPolicy(DefaultLayerPolicyPath)

	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, policy)
}

func TestLoadLayerPolicy_PadraoPresente(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.Dir(DefaultLayerPolicyPath)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultLayerPolicyPath), []byte(validPolicy), 0o644))
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	policy, err := LoadLayerPolicy("")

	require.NoError(t, err)
	require.NotNil(t, policy)
	assert.Equal(t, "1.0", policy.Version)
}

func TestParseLayerPolicy_Validacao(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "Sem versão",
			doc:     `{"layers": {}}`,
			wantErr: "campaign-layer-policy: missing or invalid 'version'",
		},
		{
			name:    "Sem camadas",
			doc:     `{"version": "1"}`,
			wantErr: "campaign-layer-policy: missing or invalid 'layers'",
		},
		{
			name:    "Camada ausente",
			doc:     `{"version": "1", "layers": {"L0": {"name": "a", "nameJa": "b", "campaignPrefix": "c"}}}`,
			wantErr: "campaign-layer-policy: missing layer definition for 'L1'",
		},
		{
			name:    "Camada incompleta",
			doc:     `{"version": "1", "layers": {"L0": {"name": "a", "nameJa": ""}}}`,
			wantErr: "campaign-layer-policy: incomplete layer definition for 'L0'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			require.NoError(t, json.UnmarshalFromString(tt.doc, &doc))

			_, err := ParseLayerPolicy(doc)

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestParseLayerPolicy_SecoesObrigatorias(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc map[string]any)
		wantErr string
	}{
		{
			name:    "namingPatterns não é lista",
			mutate:  func(doc map[string]any) { doc["namingPatterns"] = "x" },
			wantErr: "campaign-layer-policy: 'namingPatterns' must be an array",
		},
		{
			name: "Padrão com camada inválida",
			mutate: func(doc map[string]any) {
				doc["namingPatterns"] = []any{map[string]any{"pattern": "^X", "layer": "L9"}}
			},
			wantErr: `campaign-layer-policy: invalid naming pattern: {"layer":"L9","pattern":"^X"}`,
		},
		{
			name:    "Sem fallback",
			mutate:  func(doc map[string]any) { delete(doc, "fallbackClassification") },
			wantErr: "campaign-layer-policy: missing 'fallbackClassification'",
		},
		{
			name:    "Sem regras de promoção",
			mutate:  func(doc map[string]any) { delete(doc, "promotionRules") },
			wantErr: "campaign-layer-policy: 'promotionRules' must be an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			require.NoError(t, json.UnmarshalFromString(validPolicy, &doc))
			tt.mutate(doc)

			_, err := ParseLayerPolicy(doc)

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateCampaignTemplate(t *testing.T) {
	t.Run("Documento não é objeto", func(t *testing.T) {
		err := ValidateCampaignTemplate([]any{})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Config must be an object"}, verr.Errors)
	})

	t.Run("Reúne todos os erros", func(t *testing.T) {
		err := ValidateCampaignTemplate(map[string]any{
			"brandName": "  ",
			"skus":      []any{},
			"campaigns": map[string]any{"auto": map[string]any{"enabled": false}},
		})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"brandName is required and must be a non-empty string",
			"brandCode is required and must be a non-empty string",
			"dateSuffix is required and must be a non-empty string",
			"skus must be a non-empty array",
			"At least one campaign type must be enabled or manual campaigns defined",
		}, verr.Errors)
	})

	t.Run("Sem campanhas", func(t *testing.T) {
		err := ValidateCampaignTemplate(map[string]any{
			"brandName": "B", "brandCode": "C", "dateSuffix": "2501", "skus": []any{"S1"},
		})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"campaigns is required and must be an object"}, verr.Errors)
	})

	t.Run("Manual basta", func(t *testing.T) {
		err := ValidateCampaignTemplate(map[string]any{
			"brandName": "B", "brandCode": "C", "dateSuffix": "2501", "skus": []any{"S1"},
			"campaigns": map[string]any{"manual": []any{map[string]any{"name": "M"}}},
		})
		assert.NoError(t, err)
	})
}

func TestLoadCampaignTemplate_YAML(t *testing.T) {
	path := writeFile(t, "template.yaml", `
brandName: Marca
brandCode: MK
dateSuffix: "2501"
skus: [SKU-1]
campaigns:
  auto:
    enabled: true
    dailyBudget: 2000
    defaultBid: 40
  phrase:
    enabled: true
    dailyBudget: 1000
    defaultBid: 45
    keywords:
      - text: tênis
        bid: 60
`)

	cfg, err := LoadCampaignTemplate(path)

	require.NoError(t, err)
	assert.Equal(t, "Marca", cfg.BrandName)
	assert.Equal(t, "2501", cfg.DateSuffix)
	require.NotNil(t, cfg.Campaigns.Auto)
	assert.True(t, cfg.Campaigns.Auto.Enabled)
	assert.Equal(t, 40.0, cfg.Campaigns.Auto.DefaultBid)
	require.NotNil(t, cfg.Campaigns.Phrase)
	require.Len(t, cfg.Campaigns.Phrase.Keywords, 1)
	assert.Equal(t, 60.0, *cfg.Campaigns.Phrase.Keywords[0].Bid)
	assert.Len(t, cfg.Campaigns.Specs(), 2)
}

func TestLoadCampaignTemplate_Invalido(t *testing.T) {
	path := writeFile(t, "template.json", `{"brandName": "B"}`)

	_, err := LoadCampaignTemplate(path)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 4)
}

func TestLoadActionItems(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLen  int
		wantErrs []string
	}{
		{
			name:    "Ações válidas",
			content: `{"actions": [{"type": "keyword", "campaignName": "C", "keywordText": "kw", "bid": 30}, {"type": "placement", "campaignId": "1"}]}`,
			wantLen: 2,
		},
		{
			name:     "Sem lista de ações",
			content:  `{"actions": {}}`,
			wantErrs: []string{"Invalid config: 'actions' must be an array"},
		},
		{
			name:     "Tipo desconhecido",
			content:  `{"actions": [{"type": "keyword"}, {"type": "budget"}]}`,
			wantErrs: []string{"actions[1]: unknown type 'budget'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "actions.json", tt.content)

			cfg, err := LoadActionItems(path)

			if tt.wantErrs != nil {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErrs, verr.Errors)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cfg.Actions, tt.wantLen)
		})
	}
}

func TestLoadStrategy(t *testing.T) {
	path := writeFile(t, "strategy.yml", `
targetAcos: 0.2
budgets:
  - campaignName: Camp B
    dailyBudget: 1500
  - campaignName: Camp A
    dailyBudget: 800.6
`)

	strategy, err := LoadStrategy(path)

	require.NoError(t, err)
	require.NotNil(t, strategy.TargetAcos)
	assert.Equal(t, 0.2, *strategy.TargetAcos)
	require.Len(t, strategy.Budgets, 2)
	assert.Equal(t, "Camp B", strategy.Budgets[0].CampaignName)
	assert.Equal(t, 800.6, strategy.Budgets[1].DailyBudget)
}

func TestLoadStrategy_OrcamentoInvalido(t *testing.T) {
	path := writeFile(t, "strategy.json", `{"budgets": [{"campaignName": "", "dailyBudget": 0}]}`)

	_, err := LoadStrategy(path)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"budgets[0]: campaignName is required",
		"budgets[0]: dailyBudget must be positive",
	}, verr.Errors)
}

func TestLoadKeywordMappings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []domain.KeywordMapping
	}{
		{
			name:    "Lista simples",
			content: `[{"adKeyword": "tenis", "rankingKeyword": "tênis corrida"}]`,
			want:    []domain.KeywordMapping{{AdKeyword: "tenis", RankingKeyword: "tênis corrida"}},
		},
		{
			name:    "Objeto com mappings e entradas vazias",
			content: `{"mappings": [{"adKeyword": "a", "rankingKeyword": "b"}, {"adKeyword": "", "rankingKeyword": "c"}]}`,
			want:    []domain.KeywordMapping{{AdKeyword: "a", RankingKeyword: "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "mappings.json", tt.content)

			got, err := LoadKeywordMappings(path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeoFactors(t *testing.T) {
	factors, err := ParseSeoFactors("1:0.5, 2:0.6,3:0.7,4:0.8,")
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 0.5, 2: 0.6, 3: 0.7, 4: 0.8}, factors)

	_, err = ParseSeoFactors("1-0.5")
	assert.Error(t, err)

	_, err = ParseSeoFactors("x:0.5")
	assert.Error(t, err)
}
