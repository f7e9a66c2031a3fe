package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/yuuki-courage/aads/infrastructure/tableio"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/generating"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/apiErrors"
	"github.com/yuuki-courage/aads/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite do corpo das requisições (planilhas inteiras viajam como JSON)
const maxBodyBytes = 64 << 20

const (
	formatXLSX      = "xlsx"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	runIDHeader     = "X-Run-ID"
	bulkSheetName   = "Bulk_Sheet"
)

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo da requisição", err.Error())
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON inválido", err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("Erro ao escrever resposta")
	}
}

// writeFailure converte os erros da aplicação no formato padrão da API
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var (
		pipelineErr   *pipeline.PipelineError
		validationErr *config.ValidationError
	)

	switch {
	case errors.As(err, &pipelineErr):
		apiErrors.WriteError(w, pipelineErr.Code, pipelineErr.Err.Error(), pipelineErr.Details)
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidConfig, "Configuração inválida", validationErr.Errors)
	case errors.Is(err, pipeline.ErrUnknownStage), errors.Is(err, generating.ErrUnknownTemplateMode):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, generating.ErrMissingAnalysisContext):
		apiErrors.WriteError(w, apiErrors.ErrMissingContext, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao processar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func wantsXLSX(r *http.Request) bool {
	return r.URL.Query().Get("format") == formatXLSX
}

// writeBulkRows responde com as linhas em JSON ou, com ?format=xlsx, com a planilha pronta para upload
func writeBulkRows(w http.ResponseWriter, r *http.Request, runID string, rows []domain.BulkOutputRow, body any) {
	if runID != "" {
		w.Header().Set(runIDHeader, runID)
	}
	if !wantsXLSX(r) {
		writeJSON(w, http.StatusOK, body)
		return
	}

	name := "bulk.xlsx"
	if runID != "" {
		name = fmt.Sprintf("bulk-%s.xlsx", runID)
	}
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	if err := tableio.EncodeXLSX(w, []tableio.Sheet{tableio.BulkSheet(bulkSheetName, rows)}); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar xlsx")
	}
}
