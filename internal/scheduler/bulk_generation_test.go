package scheduler

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yuuki-courage/aads/infrastructure/tableio"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline/mocks"
	"github.com/yuuki-courage/aads/pkg/log"
)

func newTestService(t *testing.T, p pipeline.Pipeline, input string) *BulkGenerationService {
	t.Helper()
	cfg := &config.Config{BulkGeneration: config.BulkGeneration{
		CronSchedule: "0 7 * * *",
		Enabled:      true,
		Input:        input,
		OutputDir:    filepath.Join(t.TempDir(), "output"),
	}}
	svc := NewBulkGenerationService(p, cfg)
	svc.now = func() time.Time { return time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC) }
	return svc
}

func writeReport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "report-20240101-20240114.csv")
	require.NoError(t, tableio.WriteCSV(path, []string{"Campaign Name", "Clicks"}, [][]string{{"C1", "10"}}))
	return filepath.Join(dir, "*.csv")
}

func TestBulkGenerationService_Run(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	mockPipeline := mocks.NewMockPipeline(ctrl)

	analysis := &domain.AnalysisResult{RunID: "abc123"}
	row := domain.NewBulkRow()
	row.Entity = "Keyword"
	row.Operation = "Update"
	row.Bid = "40"

	mockPipeline.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in pipeline.AnalyzeInput) (*domain.AnalysisResult, error) {
			require.Len(t, in.Tables, 1)
			assert.NotEmpty(t, in.RunID)
			assert.Equal(t, "C1", in.Tables[0].Rows[0]["Campaign Name"])
			return analysis, nil
		})
	mockPipeline.EXPECT().
		Generate(gomock.Any(), pipeline.GenerateInput{Analysis: analysis}).
		Return(&domain.GenerateResult{
			RunID:   "abc123",
			Rows:    []domain.BulkOutputRow{row},
			Summary: domain.GenerateSummary{TotalRows: 1},
		}, nil)

	svc := newTestService(t, mockPipeline, writeReport(t))

	output, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "bulk-20240115-070000-abc123.xlsx", filepath.Base(output))

	tables, err := tableio.ReadXLSX(output, tableio.AllSheets)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.True(t, strings.HasSuffix(tables[0].SourceFile, "#Bulk_Sheet"))
	assert.Equal(t, "40", tables[0].Rows[0]["Bid"])

	status := svc.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, output, status["last_output"])
	assert.Equal(t, 1, status["last_total_rows"])
	assert.Equal(t, "", status["last_error"])
}

func TestBulkGenerationService_RunFalhas(t *testing.T) {
	log.SetupTestLogger()

	t.Run("Sem entrada configurada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestService(t, mocks.NewMockPipeline(ctrl), "")

		_, err := svc.Run(context.Background())

		assert.ErrorIs(t, err, ErrNoInputConfigured)
		assert.Equal(t, ErrNoInputConfigured.Error(), svc.GetStatus()["last_error"])
	})

	t.Run("Erro na análise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockPipeline := mocks.NewMockPipeline(ctrl)
		mockPipeline.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("falhou"))

		svc := newTestService(t, mockPipeline, writeReport(t))
		_, err := svc.Run(context.Background())

		assert.EqualError(t, err, "falhou")
	})

	t.Run("Execução concorrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestService(t, mocks.NewMockPipeline(ctrl), writeReport(t))
		svc.running = true

		_, err := svc.Run(context.Background())
		assert.ErrorIs(t, err, ErrGenerationRunning)
		assert.False(t, svc.TriggerManualSync())
	})
}

func TestBulkGenerationService_Start(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disabled := newTestService(t, mocks.NewMockPipeline(ctrl), "")
	disabled.config.Enabled = false
	assert.NoError(t, disabled.Start(ctx))

	noInput := newTestService(t, mocks.NewMockPipeline(ctrl), "")
	assert.ErrorIs(t, noInput.Start(ctx), ErrNoInputConfigured)

	invalidCron := newTestService(t, mocks.NewMockPipeline(ctrl), "in/*.xlsx")
	invalidCron.config.CronSchedule = "não é cron"
	assert.Error(t, invalidCron.Start(ctx))
}
