package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuuki-courage/aads/infrastructure/tableio"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/generating"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/log"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// Nomes das abas das planilhas de alterações
const (
	sheetBulk             = "Bulk_Sheet"
	sheetActionItems      = "Action_Items"
	sheetCampaignTemplate = "Campaign_Template"
)

// writeBulkOutput grava as linhas conforme a extensão do arquivo: .csv, .json ou xlsx
func writeBulkOutput(path, sheetName string, rows []domain.BulkOutputRow) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		values := make([][]string, 0, len(rows))
		for _, r := range rows {
			values = append(values, r.Values())
		}
		return tableio.WriteCSV(path, domain.BulkHeader[:], values)
	case ".json":
		content, err := utils.PrettyJSON(rows)
		if err != nil {
			return err
		}
		return writeText(nil, path, content)
	}
	return tableio.WriteXLSX(path, []tableio.Sheet{tableio.BulkSheet(sheetName, rows)})
}

type generateOptions struct {
	input    string
	baseline string
	output   string
	strategy string
	stages   []string
	blocks   []string
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Gera a planilha de alterações a partir da análise",
		RunE: func(cmd *cobra.Command, args []string) error {
			stages, err := pipeline.ParseStages(append(opts.stages, opts.blocks...)...)
			if err != nil {
				return err
			}

			var strategy *domain.StrategyData
			if opts.strategy != "" {
				strategy, err = config.LoadStrategy(opts.strategy)
				if err != nil {
					return err
				}
			}

			a, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			analysis, err := a.analyze(cmd.Context(), opts.input, opts.baseline)
			if err != nil {
				return err
			}

			result, err := a.pipeline.Generate(cmd.Context(), pipeline.GenerateInput{
				Analysis: analysis,
				Strategy: strategy,
				Stages:   stages,
			})
			if err != nil {
				return err
			}

			if err := writeBulkOutput(opts.output, sheetBulk, result.Rows); err != nil {
				return err
			}

			fields := log.Fields{
				"run_id":     result.RunID,
				"output":     opts.output,
				"total_rows": result.Summary.TotalRows,
			}
			for _, sc := range result.Summary.StageCounts {
				fields["stage_"+sc.Stage] = sc.Rows
			}
			log.L.WithFields(fields).Info("Planilha de alterações gerada")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Arquivo xlsx/csv ou padrão com curinga (obrigatório)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo de saída: .xlsx, .csv ou .json (obrigatório)")
	cmd.Flags().StringVar(&opts.baseline, "baseline", "", "Período anterior para detecção de anomalias")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Metas de orçamento por campanha (json/yaml)")
	cmd.Flags().StringSliceVar(&opts.stages, "stages", nil, "Etapas separadas por vírgula: budget,cpc,promotion,negative-sync,negative,placement")
	cmd.Flags().StringSliceVar(&opts.blocks, "blocks", nil, "Ids numéricos dos blocos (1,2,3,3.5,4,5)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

type applyActionsOptions struct {
	config string
	output string
}

func newApplyActionsCmd() *cobra.Command {
	var opts applyActionsOptions

	cmd := &cobra.Command{
		Use:   "apply-actions",
		Short: "Converte ações avulsas em uma planilha de alterações",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadActionItems(opts.config)
			if err != nil {
				return err
			}

			rows := generating.Merge([][]domain.BulkOutputRow{generating.ActionItemRows(cfg.Actions)})
			if err := writeBulkOutput(opts.output, sheetActionItems, rows); err != nil {
				return err
			}

			fields := log.Fields{
				"output":     opts.output,
				"total_rows": len(rows),
			}
			for _, action := range cfg.Actions {
				key := "count_" + string(action.Type)
				n, _ := fields[key].(int)
				fields[key] = n + 1
			}
			log.L.WithFields(fields).Info("Ações aplicadas")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "Arquivo de ações (json/yaml) (obrigatório)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo de saída: .xlsx, .csv ou .json (obrigatório)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

type createCampaignOptions struct {
	config string
	output string
	mode   string
	input  string
}

func newCreateCampaignCmd(global *globalOptions) *cobra.Command {
	var opts createCampaignOptions

	cmd := &cobra.Command{
		Use:   "create-campaign",
		Short: "Gera a estrutura de campanhas a partir de um template",
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := config.LoadCampaignTemplate(opts.config)
			if err != nil {
				return err
			}

			mode := domain.TemplateModeCreate
			if strings.EqualFold(strings.TrimSpace(opts.mode), string(domain.TemplateModeUpdate)) {
				mode = domain.TemplateModeUpdate
			}
			if mode == domain.TemplateModeUpdate && opts.input == "" {
				return fmt.Errorf("--input é obrigatório no modo %s", mode)
			}

			var analysis *domain.AnalysisResult
			if mode == domain.TemplateModeUpdate {
				a, err := newApp(cmd, global)
				if err != nil {
					return err
				}
				analysis, err = a.analyze(cmd.Context(), opts.input, "")
				if err != nil {
					return err
				}
			}

			rows, warnings, err := generating.CampaignTemplateRows(*template, mode, analysis)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				log.L.Warn(w)
			}

			if err := writeBulkOutput(opts.output, sheetCampaignTemplate, rows); err != nil {
				return err
			}
			log.L.WithFields(log.Fields{
				"output":     opts.output,
				"mode":       mode,
				"total_rows": len(rows),
				"warnings":   len(warnings),
			}).Info("Template de campanhas gerado")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "Template de campanhas (json/yaml) (obrigatório)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo de saída: .xlsx, .csv ou .json (obrigatório)")
	cmd.Flags().StringVar(&opts.mode, "mode", string(domain.TemplateModeCreate), "create | update")
	cmd.Flags().StringVar(&opts.input, "input", "", "Planilha em massa atual (obrigatório no modo update)")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
