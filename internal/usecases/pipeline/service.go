// Package pipeline orquestra a análise e a geração da planilha de alterações
package pipeline

import (
	"context"

	"github.com/yuuki-courage/aads/infrastructure/repository"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// Pipeline é o contrato usado pela API, pelo agendador e pelo CLI
type Pipeline interface {
	// Analyze normaliza as tabelas de entrada e executa todos os motores de análise
	Analyze(ctx context.Context, in AnalyzeInput) (*domain.AnalysisResult, error)

	// Generate transforma uma análise na planilha de alterações deduplicada
	Generate(ctx context.Context, in GenerateInput) (*domain.GenerateResult, error)
}

type AnalyzeInput struct {
	RunID    string
	Tables   []domain.InputTable
	Baseline []domain.InputTable // período anterior, opcional (detecção de anomalias)
}

type GenerateInput struct {
	Analysis *domain.AnalysisResult
	Strategy *domain.StrategyData
	Stages   []Stage
}

type Service struct {
	opts   Options
	opener repository.RankingOpener
}

// NewService cria o pipeline. opener pode ser nil quando não há banco de ranking.
func NewService(opts Options, opener repository.RankingOpener) *Service {
	if opts.Headers == nil {
		opts.Headers = DefaultOptions().Headers
	}
	return &Service{
		opts:   opts,
		opener: opener,
	}
}

// Options retorna as opções com que o serviço foi criado
func (s *Service) Options() Options {
	return s.opts
}

func resolveRunID(runID string) (string, error) {
	if runID != "" {
		return runID, nil
	}
	return utils.GenerateRunID()
}
