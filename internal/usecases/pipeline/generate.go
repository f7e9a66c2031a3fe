package pipeline

import (
	"context"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/generating"
	"github.com/yuuki-courage/aads/internal/usecases/spine"
	"github.com/yuuki-courage/aads/pkg/apiErrors"
	"github.com/yuuki-courage/aads/pkg/log"
)

// Generate executa as etapas selecionadas na ordem fixa e mescla o resultado.
// Em conflito de identidade vence a linha da etapa mais tardia.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*domain.GenerateResult, error) {
	analysis := in.Analysis
	if analysis == nil {
		return nil, NewPipelineError(ErrMissingAnalysis, apiErrors.ErrMissingContext, "generate", "Execute a análise antes de gerar a planilha")
	}

	stages := in.Stages
	if len(stages) == 0 {
		stages = AllStages
	}
	selected := make(map[Stage]bool, len(stages))
	for _, stage := range stages {
		selected[stage] = true
	}

	runID, err := resolveRunID(analysis.RunID)
	if err != nil {
		return nil, NewPipelineError(ErrGenerateID, apiErrors.ErrInternalServer, "generate", err.Error())
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	var (
		blocks [][]domain.BulkOutputRow
		counts []domain.StageCount
	)
	emit := func(stage Stage, rows []domain.BulkOutputRow) {
		blocks = append(blocks, rows)
		counts = append(counts, domain.StageCount{Stage: string(stage), Rows: len(rows)})
		logger.WithField("stage_"+string(stage), len(rows)).Debug("Etapa gerada")
	}

	if selected[StageBudget] {
		emit(StageBudget, generating.BudgetRows(analysis.Records, in.Strategy))
	}
	if selected[StageCpc] {
		emit(StageCpc, generating.CpcRows(analysis.CpcRecommendations))
	}

	idx := spine.Build(analysis.Records)

	if selected[StagePromotion] {
		emit(StagePromotion, generating.PromotionRows(analysis.PromotionCandidates, idx))
	}
	if selected[StageNegativeSync] {
		emit(StageNegativeSync, generating.NegativeSyncRows(analysis.PromotionCandidates))
	}
	if selected[StageNegative] {
		emit(StageNegative, generating.NegativeRows(analysis.NegativeCandidates))
	}
	if selected[StagePlacement] {
		emit(StagePlacement, generating.PlacementRows(analysis.Placements))
	}

	rows := generating.Merge(blocks)

	logger.WithFields(log.Fields{
		"total_rows":   len(rows),
		"count_stages": len(counts),
	}).Info("Planilha de alterações gerada")

	return &domain.GenerateResult{
		RunID: runID,
		Rows:  rows,
		Summary: domain.GenerateSummary{
			StageCounts: counts,
			TotalRows:   len(rows),
		},
	}, nil
}
