package pipeline

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/analyzing"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
	"github.com/yuuki-courage/aads/pkg/apiErrors"
	"github.com/yuuki-courage/aads/pkg/log"
	"github.com/yuuki-courage/aads/pkg/utils"
)

func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (*domain.AnalysisResult, error) {
	if len(in.Tables) == 0 {
		return nil, NewPipelineError(ErrNoInput, apiErrors.ErrMissingRequiredData, "analyze", "Nenhuma tabela de entrada informada")
	}

	runID, err := resolveRunID(in.RunID)
	if err != nil {
		return nil, NewPipelineError(ErrGenerateID, apiErrors.ErrInternalServer, "analyze", err.Error())
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	// Recursos explícitos que falham interrompem a execução antes dos motores
	policy, err := config.LoadLayerPolicy(s.opts.LayerPolicyPath)
	if err != nil {
		return nil, NewPipelineError(ErrLayerPolicy, apiErrors.ErrInvalidLayerPolicy, "layers", err.Error())
	}
	var mappings []domain.KeywordMapping
	if s.opts.KeywordMappingPath != "" {
		mappings, err = config.LoadKeywordMappings(s.opts.KeywordMappingPath)
		if err != nil {
			code := apiErrors.ErrInvalidConfig
			if errors.Is(err, os.ErrNotExist) {
				code = apiErrors.ErrResourceNotFound
			}
			return nil, NewPipelineError(ErrKeywordMappings, code, "seo", err.Error())
		}
	}

	records := normalizing.NormalizeTables(in.Tables, s.opts.Headers)
	result := &domain.AnalysisResult{
		RunID:     runID,
		Input:     in.Tables,
		Records:   records,
		DateRange: dateRangeOf(in.Tables),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.CampaignMetrics = analyzing.AnalyzePerformance(records)
		return nil
	})
	g.Go(func() error {
		result.Structure = analyzing.BuildStructure(records)
		return nil
	})
	g.Go(func() error {
		result.SkuClassification = analyzing.ClassifySkus(records, s.opts.SkuRules)
		return nil
	})
	g.Go(func() error {
		result.PromotionCandidates, result.NegativeCandidates = analyzing.ClassifyPromotions(records, s.opts.Promotion)
		return nil
	})
	g.Go(func() error {
		result.Placements = analyzing.AnalyzePlacement(records, s.opts.TargetAcos)
		return nil
	})
	g.Go(func() error {
		data, err := s.loadSeoRankingData(gctx, records, mappings)
		result.SeoRankingData = data
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cpc := analyzing.RecommendCpc(records, result.SkuClassification, s.opts.Cpc)
	result.CpcRecommendations = analyzing.ApplySeoAdjustment(cpc, result.SeoRankingData, s.opts.Seo)

	if policy != nil {
		classes, err := analyzing.ClassifyLayers(result.CampaignMetrics, policy)
		if err != nil {
			return nil, NewPipelineError(ErrLayerPolicy, apiErrors.ErrInvalidLayerPolicy, "layers", err.Error())
		}
		result.LayerClassification = classes
		result.LayerSummary = analyzing.SummarizeLayers(result.CampaignMetrics, classes, policy)
	}

	if len(in.Baseline) > 0 {
		baseline := normalizing.NormalizeTables(in.Baseline, s.opts.Headers)
		result.Anomalies = analyzing.DetectAnomalies(records, baseline, s.opts.Anomaly)
	}

	logger.WithFields(log.Fields{
		"count_records":    len(records),
		"count_campaigns":  len(result.CampaignMetrics),
		"count_cpc":        len(result.CpcRecommendations),
		"count_promotions": len(result.PromotionCandidates),
		"count_negatives":  len(result.NegativeCandidates),
		"count_placements": len(result.Placements),
		"count_anomalies":  len(result.Anomalies),
		"kpi_seo_keywords": result.SeoRankingData.MatchedKeywords(),
	}).Info("Análise concluída")

	return result, nil
}

func dateRangeOf(tables []domain.InputTable) *domain.DateRange {
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.SourceFile)
	}

	start, end, ok := utils.WidestDateRange(names)
	if !ok {
		return nil
	}
	return &domain.DateRange{
		StartDate: utils.FormatDate(start),
		EndDate:   utils.FormatDate(end),
		Days:      utils.DaysBetween(start, end),
	}
}
