package scheduler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/yuuki-courage/aads/infrastructure/tableio"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/log"
	"github.com/yuuki-courage/aads/pkg/utils"
)

const outputTimestampLayout = "20060102-150405"

var (
	ErrGenerationRunning = errors.New("geração em massa já em andamento")
	ErrNoInputConfigured = errors.New("BULK_GENERATION_INPUT não configurado")
)

// BulkGenerationConfig representa a configuração do agendador de geração em massa
type BulkGenerationConfig struct {
	CronSchedule string
	Enabled      bool
	Input        string
	OutputDir    string
}

// BulkGenerationService lê os relatórios configurados, executa análise e geração
// e grava a planilha de alterações no diretório de saída
type BulkGenerationService struct {
	scheduler *gocron.Scheduler
	config    BulkGenerationConfig
	pipeline  pipeline.Pipeline
	now       func() time.Time

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastOutput      string
	lastErr         string
	lastRows        int
}

func NewBulkGenerationService(p pipeline.Pipeline, appConfig *config.Config) *BulkGenerationService {
	cfg := BulkGenerationConfig{
		CronSchedule: appConfig.BulkGeneration.CronSchedule,
		Enabled:      appConfig.BulkGeneration.Enabled,
		Input:        appConfig.BulkGeneration.Input,
		OutputDir:    appConfig.BulkGeneration.OutputDir,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
		"input":         cfg.Input,
		"output":        cfg.OutputDir,
	}).Info("Configuração do agendador de geração em massa carregada")

	return &BulkGenerationService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		pipeline:  p,
		now:       time.Now,
	}
}

// Start agenda a geração; o agendador para quando o contexto é cancelado
func (s *BulkGenerationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Geração em massa agendada desabilitada por configuração")
		return nil
	}
	if s.config.Input == "" {
		return ErrNoInputConfigured
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(ctx); err != nil && !errors.Is(err, ErrGenerationRunning) {
			log.L.WithError(err).Error("Erro na geração em massa agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração em massa: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("Agendador de geração em massa iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de geração em massa")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma geração completa e retorna o caminho do arquivo gravado.
// Apenas uma execução por vez; chamadas concorrentes recebem ErrGenerationRunning.
func (s *BulkGenerationService) Run(ctx context.Context) (string, error) {
	if !s.begin() {
		log.L.Info("Geração em massa já em andamento, ignorando")
		return "", ErrGenerationRunning
	}

	output, rows, err := s.generate(ctx)
	s.finish(output, rows, err)
	return output, err
}

// TriggerManualSync dispara a geração em segundo plano. Retorna false se já houver uma em andamento.
func (s *BulkGenerationService) TriggerManualSync() bool {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if running {
		log.L.Info("Geração em massa já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando geração em massa manual")
	go func() {
		if _, err := s.Run(context.Background()); err != nil && !errors.Is(err, ErrGenerationRunning) {
			log.L.WithError(err).Error("Erro na geração em massa manual")
		}
	}()
	return true
}

// GetStatus retorna o status atual da geração
func (s *BulkGenerationService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"running":           s.running,
		"cron":              s.config.CronSchedule,
		"enabled":           s.config.Enabled,
		"input":             s.config.Input,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_output":       s.lastOutput,
		"last_error":        s.lastErr,
		"last_total_rows":   s.lastRows,
	}
}

func (s *BulkGenerationService) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = s.now()
	return true
}

func (s *BulkGenerationService) finish(output string, rows int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastCompletedAt = s.now()
	s.lastOutput = output
	s.lastRows = rows
	s.lastErr = ""
	if err != nil {
		s.lastErr = err.Error()
	}
}

func (s *BulkGenerationService) generate(ctx context.Context) (string, int, error) {
	if s.config.Input == "" {
		return "", 0, ErrNoInputConfigured
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		return "", 0, fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)
	startTime := s.now()

	tables, err := tableio.ReadTables(s.config.Input, tableio.SearchTermSheets)
	if err != nil {
		return "", 0, err
	}

	analysis, err := s.pipeline.Analyze(ctx, pipeline.AnalyzeInput{RunID: runID, Tables: tables})
	if err != nil {
		return "", 0, err
	}
	result, err := s.pipeline.Generate(ctx, pipeline.GenerateInput{Analysis: analysis})
	if err != nil {
		return "", 0, err
	}

	name := fmt.Sprintf("bulk-%s-%s.xlsx", startTime.Format(outputTimestampLayout), result.RunID)
	output := filepath.Join(s.config.OutputDir, name)
	if err := tableio.WriteXLSX(output, []tableio.Sheet{tableio.BulkSheet("Bulk_Sheet", result.Rows)}); err != nil {
		return "", 0, err
	}

	logger.WithFields(log.Fields{
		"output":     output,
		"total_rows": result.Summary.TotalRows,
		"duration":   time.Since(startTime).String(),
	}).Info("Geração em massa concluída")

	return output, result.Summary.TotalRows, nil
}
