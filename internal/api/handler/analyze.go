package handler

import (
	"net/http"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/analyzing"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/log"
)

type AnalyzeRequest struct {
	RunID          string              `json:"runId,omitempty"`
	Tables         []domain.InputTable `json:"tables"`
	Baseline       []domain.InputTable `json:"baseline,omitempty"`
	IncludeRecords bool                `json:"includeRecords,omitempty"`
}

type AnalyzeResponse struct {
	Totals   domain.KpiTotals       `json:"totals"`
	Analysis *domain.AnalysisResult `json:"analysis"`
}

// Analyze executa a análise completa sobre as tabelas enviadas
func Analyze(p pipeline.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := p.Analyze(r.Context(), pipeline.AnalyzeInput{
			RunID:    req.RunID,
			Tables:   req.Tables,
			Baseline: req.Baseline,
		})
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		totals := analyzing.ComputeTotals(result.Records, req.Tables, len(result.CampaignMetrics))
		if !req.IncludeRecords {
			result.Records = nil
		}

		log.ForContext(log.WithRunID(r.Context(), result.RunID)).
			WithField("count_campaigns", totals.Campaigns).
			Info("Análise concluída via API")

		w.Header().Set(runIDHeader, result.RunID)
		writeJSON(w, http.StatusOK, AnalyzeResponse{Totals: totals, Analysis: result})
	}
}
