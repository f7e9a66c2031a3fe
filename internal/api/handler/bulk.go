package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/generating"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/apiErrors"
)

// GenerateRequest aceita uma análise pronta ou as tabelas para analisar antes de gerar
type GenerateRequest struct {
	RunID    string                 `json:"runId,omitempty"`
	Tables   []domain.InputTable    `json:"tables,omitempty"`
	Baseline []domain.InputTable    `json:"baseline,omitempty"`
	Analysis *domain.AnalysisResult `json:"analysis,omitempty"`
	Strategy *domain.StrategyData   `json:"strategy,omitempty"`
	Stages   []string               `json:"stages,omitempty"`
}

type ActionsResponse struct {
	Rows      []domain.BulkOutputRow `json:"rows"`
	TotalRows int                    `json:"total_rows"`
}

type CampaignTemplateRequest struct {
	Mode     domain.TemplateMode `json:"mode"`
	Template jsoniter.RawMessage `json:"template"`
	Tables   []domain.InputTable `json:"tables,omitempty"`
}

type CampaignTemplateResponse struct {
	RunID     string                 `json:"run_id,omitempty"`
	Rows      []domain.BulkOutputRow `json:"rows"`
	TotalRows int                    `json:"total_rows"`
	Warnings  []string               `json:"warnings,omitempty"`
}

// GenerateBulk gera a planilha de alterações deduplicada
func GenerateBulk(p pipeline.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		stages, err := pipeline.ParseStages(req.Stages...)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		if err := config.ValidateStrategy(req.Strategy); err != nil {
			writeFailure(w, r, err)
			return
		}

		analysis := req.Analysis
		if analysis == nil && len(req.Tables) > 0 {
			analysis, err = p.Analyze(r.Context(), pipeline.AnalyzeInput{
				RunID:    req.RunID,
				Tables:   req.Tables,
				Baseline: req.Baseline,
			})
			if err != nil {
				writeFailure(w, r, err)
				return
			}
		}

		result, err := p.Generate(r.Context(), pipeline.GenerateInput{
			Analysis: analysis,
			Strategy: req.Strategy,
			Stages:   stages,
		})
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeBulkRows(w, r, result.RunID, result.Rows, result)
	}
}

// ApplyActions converte ações avulsas em linhas da planilha
func ApplyActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw jsoniter.RawMessage
		if !decodeBody(w, r, &raw) {
			return
		}

		cfg, err := config.ParseActionItems(raw, ".json")
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		rows := generating.Merge([][]domain.BulkOutputRow{generating.ActionItemRows(cfg.Actions)})
		writeBulkRows(w, r, "", rows, ActionsResponse{Rows: rows, TotalRows: len(rows)})
	}
}

// CampaignTemplate gera a estrutura de campanhas do template (create) ou atualiza lances a partir das tabelas (update)
func CampaignTemplate(p pipeline.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CampaignTemplateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if len(req.Template) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Template obrigatório", nil)
			return
		}
		if req.Mode == "" {
			req.Mode = domain.TemplateModeCreate
		}

		tmpl, err := config.ParseCampaignTemplate(req.Template, ".json")
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		var analysis *domain.AnalysisResult
		if req.Mode == domain.TemplateModeUpdate && len(req.Tables) > 0 {
			analysis, err = p.Analyze(r.Context(), pipeline.AnalyzeInput{Tables: req.Tables})
			if err != nil {
				writeFailure(w, r, err)
				return
			}
		}

		rows, warnings, err := generating.CampaignTemplateRows(*tmpl, req.Mode, analysis)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		resp := CampaignTemplateResponse{Rows: rows, TotalRows: len(rows), Warnings: warnings}
		if analysis != nil {
			resp.RunID = analysis.RunID
		}
		writeBulkRows(w, r, resp.RunID, rows, resp)
	}
}
