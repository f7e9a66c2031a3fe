package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yuuki-courage/aads/infrastructure/repository"
	"github.com/yuuki-courage/aads/infrastructure/tableio"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/log"
)

// globalOptions são as flags persistentes compartilhadas por todos os comandos
type globalOptions struct {
	layerPolicy    string
	rankingDB      string
	keywordMapping string
	allSheets      bool
}

// app reúne o pipeline e a saída usados pelos comandos
type app struct {
	pipeline pipeline.Pipeline
	filter   tableio.SheetFilter
	out      io.Writer
}

// newApp carrega a configuração e aplica as flags por cima das variáveis de ambiente
func newApp(cmd *cobra.Command, global *globalOptions) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	log.SetLevel(cfg.App.LogLevel)

	if global.rankingDB != "" {
		cfg.RankingDB.Path = global.rankingDB
	}
	if global.layerPolicy != "" {
		cfg.LayerPolicy.Path = global.layerPolicy
	}
	if global.keywordMapping != "" {
		cfg.Seo.KeywordMappingPath = global.keywordMapping
	}

	opts := pipeline.OptionsFromConfig(cfg)
	opener := repository.NewRankingOpener(cfg.RankingDB.Driver)
	if cfg.RankingDB.Path != "" && !opener.Available(cfg.RankingDB.Path) {
		log.L.WithField("path", cfg.RankingDB.Path).Warn("Banco de ranking não encontrado, ajuste SEO indisponível")
	}

	filter := tableio.SearchTermSheets
	if global.allSheets {
		filter = tableio.AllSheets
	}

	return &app{
		pipeline: pipeline.NewService(opts, opener),
		filter:   filter,
		out:      cmd.OutOrStdout(),
	}, nil
}

// analyze lê a entrada (e o período de comparação, se houver) e executa a análise
func (a *app) analyze(ctx context.Context, input, baseline string) (*domain.AnalysisResult, error) {
	tables, err := tableio.ReadTables(input, a.filter)
	if err != nil {
		return nil, err
	}

	var baselineTables []domain.InputTable
	if baseline != "" {
		baselineTables, err = tableio.ReadTables(baseline, a.filter)
		if err != nil {
			return nil, err
		}
	}

	return a.pipeline.Analyze(ctx, pipeline.AnalyzeInput{
		Tables:   tables,
		Baseline: baselineTables,
	})
}

// writeText grava o conteúdo no arquivo ou, sem caminho, no writer informado
func writeText(w io.Writer, path string, content []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(w, string(content))
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída: %w", err)
	}
	return os.WriteFile(path, append(content, '\n'), 0o644)
}
