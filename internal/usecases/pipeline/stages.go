package pipeline

import (
	"fmt"
	"strings"
)

// Stage é uma etapa geradora de linhas da planilha de alterações
type Stage string

const (
	StageBudget       Stage = "budget"
	StageCpc          Stage = "cpc"
	StagePromotion    Stage = "promotion"
	StageNegativeSync Stage = "negative-sync"
	StageNegative     Stage = "negative"
	StagePlacement    Stage = "placement"
)

// AllStages é a ordem fixa de execução das etapas
var AllStages = []Stage{StageBudget, StageCpc, StagePromotion, StageNegativeSync, StageNegative, StagePlacement}

// identificadores numéricos dos blocos, aceitos por compatibilidade
var legacyStageIDs = map[string]Stage{
	"1":   StageBudget,
	"2":   StageCpc,
	"3":   StagePromotion,
	"3.5": StageNegativeSync,
	"4":   StageNegative,
	"5":   StagePlacement,
}

// ParseStages interpreta a seleção de etapas (nomes ou ids numéricos, separados por vírgula).
// A seleção vazia equivale a todas as etapas. O resultado segue sempre a ordem de AllStages.
func ParseStages(values ...string) ([]Stage, error) {
	selected := make(map[Stage]bool)
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			stage, ok := lookupStage(token)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownStage, token)
			}
			selected[stage] = true
		}
	}

	if len(selected) == 0 {
		return append([]Stage(nil), AllStages...), nil
	}

	var stages []Stage
	for _, stage := range AllStages {
		if selected[stage] {
			stages = append(stages, stage)
		}
	}
	return stages, nil
}

func lookupStage(token string) (Stage, bool) {
	if stage, ok := legacyStageIDs[token]; ok {
		return stage, true
	}
	for _, stage := range AllStages {
		if string(stage) == token {
			return stage, true
		}
	}
	return "", false
}
