package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yuuki-courage/aads/infrastructure/repository/mocks"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/analyzing"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
	"github.com/yuuki-courage/aads/pkg/apiErrors"
	"github.com/yuuki-courage/aads/pkg/log"
)

const rankingPath = "/data/ranking.db"

func intPtr(v int) *int { return &v }

func sampleTables() []domain.InputTable {
	return []domain.InputTable{{
		SourceFile: "bulk-A1-20240101-20240114-1.xlsx#Sponsored Products",
		Headers: []string{
			"Campaign ID", "Campaign Name", "Ad Group ID", "Ad Group Name", "Keyword ID",
			"Keyword Text", "Customer Search Term", "Match Type", "Targeting Type", "Clicks",
			"Impressions", "Spend", "Sales", "Orders", "Bid", "SKU", "ASIN",
		},
		Rows: []domain.DataRow{
			{
				"Campaign ID": "C1", "Campaign Name": "Marca_Manual", "Ad Group ID": "AG1", "Ad Group Name": "grupo",
				"Keyword ID": "K1", "Keyword Text": "red shoes", "Match Type": "exact", "Targeting Type": "manual",
				"Clicks": 10, "Impressions": 1000, "Spend": 500, "Sales": 2000, "Orders": 2, "Bid": 60,
				"SKU": "S1", "ASIN": "B01",
			},
			{
				"Campaign ID": "C2", "Campaign Name": "Marca_Auto", "Ad Group ID": "AG2", "Ad Group Name": "auto",
				"Customer Search Term": "blue shoes", "Targeting Type": "auto",
				"Clicks": 12, "Impressions": 800, "Spend": 300, "Sales": 1500, "Orders": 3,
				"SKU": "S1", "ASIN": "B01",
			},
		},
	}}
}

func testOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.LayerPolicyPath = ""
	opts.RankingDBPath = rankingPath
	return opts
}

func TestAnalyze_SemBancoDeRanking(t *testing.T) {
	log.SetupTestLogger()
	svc := NewService(testOptions(t), nil)

	result, err := svc.Analyze(context.Background(), AnalyzeInput{RunID: "run-1", Tables: sampleTables()})

	require.NoError(t, err)
	assert.Equal(t, "run-1", result.RunID)
	assert.Len(t, result.Records, 2)
	assert.Len(t, result.CampaignMetrics, 2)
	assert.Len(t, result.Structure, 2)
	require.Len(t, result.SkuClassification, 1)
	require.Len(t, result.CpcRecommendations, 1)
	assert.Equal(t, "red shoes", result.CpcRecommendations[0].KeywordText)
	require.Len(t, result.PromotionCandidates, 1)
	assert.Equal(t, "blue shoes", result.PromotionCandidates[0].KeywordText)
	assert.Nil(t, result.SeoRankingData)
	assert.Nil(t, result.LayerClassification)
	assert.Nil(t, result.Anomalies)

	require.NotNil(t, result.DateRange)
	assert.Equal(t, domain.DateRange{StartDate: "2024-01-01", EndDate: "2024-01-14", Days: 13}, *result.DateRange)
}

func TestAnalyze_AjusteSeo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	opener := mocks.NewMockRankingOpener(ctrl)
	repo := mocks.NewMockRankingRepository(ctrl)

	opener.EXPECT().Available(rankingPath).Return(true)
	opener.EXPECT().Open(gomock.Any(), rankingPath).Return(repo, nil)
	repo.EXPECT().GetTrackedKeywords(gomock.Any()).Return([]string{"Red Shoes"}, nil)
	repo.EXPECT().GetLatestSnapshotDate(gomock.Any()).Return("2025-01-12T08:00:00Z", nil)
	repo.EXPECT().GetLatestRanking(gomock.Any(), "Red Shoes", "B01").Return(&domain.KeywordRankingInfo{
		Keyword: "Red Shoes", ASIN: "B01", OrganicPosition: intPtr(1), Found: true,
	}, nil)
	repo.EXPECT().Close().Return(nil)

	opts := testOptions(t)
	svc := NewService(opts, opener)

	result, err := svc.Analyze(context.Background(), AnalyzeInput{Tables: sampleTables()})

	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	require.NotNil(t, result.SeoRankingData)
	assert.Equal(t, rankingPath, result.SeoRankingData.DBPath)
	assert.Equal(t, "2025-01-12T08:00:00Z", result.SeoRankingData.SnapshotDate)
	assert.Equal(t, 1, result.SeoRankingData.MatchedKeywords())

	records := normalizing.NormalizeTables(sampleTables(), opts.Headers)
	plain := analyzing.RecommendCpc(records, analyzing.ClassifySkus(records, opts.SkuRules), opts.Cpc)
	require.Len(t, plain, 1)

	rec := result.CpcRecommendations[0]
	require.NotNil(t, rec.SeoFactor)
	assert.Equal(t, 0.5, *rec.SeoFactor)
	assert.Equal(t, 1, *rec.OrganicPosition)
	assert.Less(t, rec.RecommendedBid, plain[0].RecommendedBid)
}

func TestAnalyze_SeoDesligadoNaoAbreBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada esperada no opener
	opener := mocks.NewMockRankingOpener(ctrl)

	opts := testOptions(t)
	opts.Seo.Enabled = false
	result, err := NewService(opts, opener).Analyze(context.Background(), AnalyzeInput{Tables: sampleTables()})

	require.NoError(t, err)
	assert.Nil(t, result.SeoRankingData)
	assert.Nil(t, result.CpcRecommendations[0].SeoFactor)
}

func TestAnalyze_FalhaAoAbrirDesativaSeo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	opener := mocks.NewMockRankingOpener(ctrl)
	opener.EXPECT().Available(rankingPath).Return(true)
	opener.EXPECT().Open(gomock.Any(), rankingPath).Return(nil, errors.New("arquivo corrompido"))

	opts := testOptions(t)
	result, err := NewService(opts, opener).Analyze(context.Background(), AnalyzeInput{Tables: sampleTables()})

	require.NoError(t, err)
	assert.Nil(t, result.SeoRankingData)

	records := normalizing.NormalizeTables(sampleTables(), opts.Headers)
	plain := analyzing.RecommendCpc(records, analyzing.ClassifySkus(records, opts.SkuRules), opts.Cpc)
	require.Len(t, result.CpcRecommendations, len(plain))
	for i, rec := range result.CpcRecommendations {
		assert.Nil(t, rec.SeoFactor)
		assert.Nil(t, rec.OrganicPosition)
		assert.Equal(t, plain[i].RecommendedBid, rec.RecommendedBid)
	}
}

func TestAnalyze_FalhasDoRanking(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(opener *mocks.MockRankingOpener, repo *mocks.MockRankingRepository)
		wantCode string
	}{
		{
			name: "Falha na consulta fecha o banco",
			setup: func(opener *mocks.MockRankingOpener, repo *mocks.MockRankingRepository) {
				opener.EXPECT().Available(rankingPath).Return(true)
				opener.EXPECT().Open(gomock.Any(), rankingPath).Return(repo, nil)
				repo.EXPECT().GetTrackedKeywords(gomock.Any()).Return(nil, errors.New("tabela ausente"))
				repo.EXPECT().Close().Return(nil)
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			opener := mocks.NewMockRankingOpener(ctrl)
			repo := mocks.NewMockRankingRepository(ctrl)
			tt.setup(opener, repo)

			_, err := NewService(testOptions(t), opener).Analyze(context.Background(), AnalyzeInput{Tables: sampleTables()})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRankingLookup)
			var perr *PipelineError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantCode, perr.Code)
			assert.Equal(t, "seo", perr.Stage)
		})
	}
}

func TestAnalyze_Erros(t *testing.T) {
	t.Run("Sem tabelas", func(t *testing.T) {
		_, err := NewService(testOptions(t), nil).Analyze(context.Background(), AnalyzeInput{})
		assert.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("Política explícita ausente", func(t *testing.T) {
		opts := testOptions(t)
		opts.LayerPolicyPath = filepath.Join(t.TempDir(), "policy.json")

		_, err := NewService(opts, nil).Analyze(context.Background(), AnalyzeInput{Tables: sampleTables()})

		assert.ErrorIs(t, err, ErrLayerPolicy)
	})

	t.Run("Mapeamento explícito ausente", func(t *testing.T) {
		opts := testOptions(t)
		opts.KeywordMappingPath = filepath.Join(t.TempDir(), "mappings.json")

		_, err := NewService(opts, nil).Analyze(context.Background(), AnalyzeInput{Tables: sampleTables()})

		var perr *PipelineError
		require.ErrorAs(t, err, &perr)
		assert.ErrorIs(t, err, ErrKeywordMappings)
		assert.Equal(t, apiErrors.ErrResourceNotFound, perr.Code)
	})
}

func TestAnalyze_Anomalias(t *testing.T) {
	baseline := sampleTables()
	baseline[0].Rows = baseline[0].Rows[:1]
	baseline[0].Rows[0] = domain.DataRow{
		"Campaign ID": "C1", "Campaign Name": "Marca_Manual", "Clicks": 10, "Impressions": 100, "Spend": 100,
	}

	result, err := NewService(testOptions(t), nil).Analyze(context.Background(), AnalyzeInput{
		Tables:   sampleTables(),
		Baseline: baseline,
	})

	require.NoError(t, err)
	require.NotEmpty(t, result.Anomalies)
	assert.Equal(t, "C1", result.Anomalies[0].CampaignID)
	assert.Contains(t, result.Anomalies[0].AnomalyTypes, "impressions+900%")
}

func TestGenerate(t *testing.T) {
	svc := NewService(testOptions(t), nil)
	analysis, err := svc.Analyze(context.Background(), AnalyzeInput{RunID: "run-2", Tables: sampleTables()})
	require.NoError(t, err)

	t.Run("Todas as etapas", func(t *testing.T) {
		result, err := svc.Generate(context.Background(), GenerateInput{Analysis: analysis})

		require.NoError(t, err)
		assert.Equal(t, "run-2", result.RunID)
		stages := make([]string, 0, len(result.Summary.StageCounts))
		for _, c := range result.Summary.StageCounts {
			stages = append(stages, c.Stage)
		}
		assert.Equal(t, []string{"budget", "cpc", "promotion", "negative-sync", "negative", "placement"}, stages)
		assert.Equal(t, len(result.Rows), result.Summary.TotalRows)
		// cpc + promoção + negativa de sincronização
		assert.Equal(t, 3, result.Summary.TotalRows)
	})

	t.Run("Somente etapas selecionadas", func(t *testing.T) {
		stages, err := ParseStages("3.5,cpc")
		require.NoError(t, err)

		result, err := svc.Generate(context.Background(), GenerateInput{Analysis: analysis, Stages: stages})

		require.NoError(t, err)
		require.Len(t, result.Summary.StageCounts, 2)
		assert.Equal(t, domain.StageCount{Stage: "cpc", Rows: 1}, result.Summary.StageCounts[0])
		assert.Equal(t, domain.StageCount{Stage: "negative-sync", Rows: 1}, result.Summary.StageCounts[1])
		assert.Equal(t, "Keyword", result.Rows[0].Entity)
		assert.Equal(t, "Negative Keyword", result.Rows[1].Entity)
	})

	t.Run("Orçamento da estratégia", func(t *testing.T) {
		strategy := &domain.StrategyData{Budgets: []domain.CampaignBudget{{CampaignName: "Marca_Auto", DailyBudget: 1999.6}}}

		result, err := svc.Generate(context.Background(), GenerateInput{
			Analysis: analysis,
			Strategy: strategy,
			Stages:   []Stage{StageBudget},
		})

		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "C2", result.Rows[0].CampaignID)
		assert.Equal(t, "2000", result.Rows[0].DailyBudget)
	})

	t.Run("Sem análise", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), GenerateInput{})

		var perr *PipelineError
		require.ErrorAs(t, err, &perr)
		assert.ErrorIs(t, err, ErrMissingAnalysis)
		assert.Equal(t, apiErrors.ErrMissingContext, perr.Code)
	})
}

func TestParseStages(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Stage
		wantErr bool
	}{
		{name: "Vazio equivale a todas", input: nil, want: AllStages},
		{name: "Ids numéricos", input: []string{"5,1,3.5"}, want: []Stage{StageBudget, StageNegativeSync, StagePlacement}},
		{name: "Nomes e repetições", input: []string{"negative", " CPC ", "negative"}, want: []Stage{StageCpc, StageNegative}},
		{name: "Desconhecida", input: []string{"6"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStages(tt.input...)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSeoRankingData_SemAsinsUsaRastreados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRankingRepository(ctrl)
	repo.EXPECT().GetTrackedKeywords(gomock.Any()).Return([]string{"tênis corrida"}, nil)
	repo.EXPECT().GetLatestSnapshotDate(gomock.Any()).Return("", nil)
	repo.EXPECT().GetTrackedAsins(gomock.Any()).Return([]string{"B1", "B2"}, nil)
	repo.EXPECT().GetLatestRanking(gomock.Any(), "tênis corrida", "B1").Return(&domain.KeywordRankingInfo{Found: false}, nil)
	repo.EXPECT().GetLatestRanking(gomock.Any(), "tênis corrida", "B2").Return(&domain.KeywordRankingInfo{
		Keyword: "tênis corrida", ASIN: "B2", OrganicPosition: intPtr(4), Found: true,
	}, nil)

	records := []domain.NormalizedRecord{{KeywordText: "tenis"}, {KeywordText: "tenis"}}
	mappings := []domain.KeywordMapping{{AdKeyword: "tenis", RankingKeyword: "tênis corrida"}}

	data, err := BuildSeoRankingData(context.Background(), repo, records, mappings)

	require.NoError(t, err)
	require.Len(t, data.Rankings["tenis"], 1)
	assert.Equal(t, "B2", data.Rankings["tenis"][0].ASIN)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		Optimisation: config.Optimisation{
			TargetAcos: 0.3, MinClicksCpc: 8, MinClicksPromotion: 6, MinCvrPromotion: 0.05, NegativeAcosThreshold: 0.6,
		},
		Anomaly:     config.Anomaly{ImpressionThreshold: 1, SpendThreshold: 2, CpcThreshold: 3},
		Seo:         config.Seo{Enabled: true, CpcCeiling: 80},
		RankingDB:   config.RankingDB{Path: "ranking.db", Driver: config.DriverSQLite},
		LayerPolicy: config.LayerPolicy{Path: "policy.json"},
	}

	opts := OptionsFromConfig(cfg)

	assert.Equal(t, analyzing.CpcOptions{MinClicks: 8, TargetAcos: 0.3}, opts.Cpc)
	assert.Equal(t, analyzing.PromotionOptions{MinClicks: 6, MinCvr: 0.05, NegativeAcosThreshold: 0.6}, opts.Promotion)
	assert.Equal(t, analyzing.AnomalyThresholds{Impression: 1, Spend: 2, Cpc: 3}, opts.Anomaly)
	assert.Equal(t, analyzing.DefaultSeoFactors(), opts.Seo.Factors)
	assert.Equal(t, 80.0, opts.Seo.CpcCeiling)
	assert.Equal(t, 0.3, opts.TargetAcos)
	assert.Equal(t, "ranking.db", opts.RankingDBPath)
	assert.Equal(t, "policy.json", opts.LayerPolicyPath)
}

func TestPipelineError(t *testing.T) {
	err := NewPipelineError(ErrUnknownStage, apiErrors.ErrInvalidRequest, "generate", "bloco 9")

	assert.Equal(t, "unknown stage [generate]: bloco 9", err.Error())
	assert.True(t, errors.Is(err, ErrUnknownStage))
}
