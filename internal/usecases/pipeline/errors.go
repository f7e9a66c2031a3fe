package pipeline

import (
	"errors"
	"fmt"
)

// Erros específicos do pipeline
var (
	ErrNoInput         = errors.New("no input tables")
	ErrMissingAnalysis = errors.New("generate requires an analysis result")
	ErrUnknownStage    = errors.New("unknown stage")
	ErrLayerPolicy     = errors.New("campaign layer policy unavailable")
	ErrKeywordMappings = errors.New("keyword mappings unavailable")
	ErrRankingLookup   = errors.New("ranking lookup failed")
	ErrGenerateID      = errors.New("error generating run ID")
)

// PipelineError é um erro com contexto adicional sobre a etapa que falhou
type PipelineError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Stage   string // Etapa envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PipelineError) Error() string {
	msg := e.Err.Error()
	if e.Stage != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Stage)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError cria um novo PipelineError
func NewPipelineError(err error, code string, stage string, details string) *PipelineError {
	return &PipelineError{
		Err:     err,
		Code:    code,
		Stage:   stage,
		Details: details,
	}
}
