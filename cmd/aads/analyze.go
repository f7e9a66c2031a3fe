package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/analyzing"
	"github.com/yuuki-courage/aads/pkg/log"
	"github.com/yuuki-courage/aads/pkg/utils"
)

type analyzeOptions struct {
	input  string
	output string
	format string
}

func newAnalyzeCmd(global *globalOptions) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Totais de KPI da planilha (CTR, CVR, ACOS, ROAS)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			result, err := a.analyze(cmd.Context(), opts.input, "")
			if err != nil {
				return err
			}

			totals := analyzing.ComputeTotals(result.Records, result.Input, len(result.CampaignMetrics))
			if parseFormat(opts.format, formatConsole, formatConsole, formatJSON) == formatJSON {
				content, err := utils.PrettyJSON(map[string]any{
					"run_id":     result.RunID,
					"date_range": result.DateRange,
					"totals":     totals,
				})
				if err != nil {
					return err
				}
				return writeText(a.out, opts.output, content)
			}

			log.L.WithFields(log.Fields{
				"run_id":          result.RunID,
				"count_files":     totals.Files,
				"count_rows":      totals.Rows,
				"count_campaigns": totals.Campaigns,
				"kpi_period":      periodLabel(result.DateRange),
				"kpi_clicks":      totals.Clicks,
				"kpi_impressions": totals.Impressions,
				"kpi_spend":       totals.Spend,
				"kpi_sales":       totals.Sales,
				"kpi_orders":      totals.Orders,
				"kpi_ctr":         utils.FormatPct(totals.CTR),
				"kpi_cvr":         utils.FormatPct(totals.CVR),
				"kpi_acos":        utils.FormatPct(totals.ACOS),
				"kpi_roas":        utils.FormatFixed(totals.ROAS, 2),
			}).Info("Análise concluída")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Arquivo xlsx/csv ou padrão com curinga (obrigatório)")
	cmd.Flags().StringVar(&opts.format, "format", formatConsole, "console | json")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo de saída do JSON (padrão: stdout)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func periodLabel(r *domain.DateRange) string {
	if r == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s ~ %s (%dd)", r.StartDate, r.EndDate, r.Days)
}

func newSummaryCmd(global *globalOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Resumo da estrutura de campanhas com agregação por camada",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			result, err := a.analyze(cmd.Context(), input, "")
			if err != nil {
				return err
			}
			return printSummary(a, result)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Arquivo xlsx/csv ou padrão com curinga (obrigatório)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func printSummary(a *app, result *domain.AnalysisResult) error {
	var kpiRows [][]string
	for _, m := range firstN(result.CampaignMetrics, maxConsoleRows) {
		kpiRows = append(kpiRows, []string{
			m.CampaignName,
			integer(m.Clicks),
			integer(m.Spend),
			integer(m.Sales),
			utils.FormatPct(m.ACOS),
			utils.FormatFixed(m.ROAS, 2),
		})
	}
	if err := printTable(a.out, "Campaign KPI Summary", []string{"campaign", "clicks", "spend", "sales", "acos", "roas"}, kpiRows); err != nil {
		return err
	}

	var structureRows [][]string
	for _, c := range firstN(result.Structure, maxConsoleRows) {
		var keywords, targets int
		for _, g := range c.AdGroups {
			keywords += g.KeywordCount
			targets += g.ProductTargetCount
		}
		structureRows = append(structureRows, []string{
			c.CampaignName,
			strconv.Itoa(len(c.AdGroups)),
			strconv.Itoa(keywords),
			strconv.Itoa(targets),
		})
	}
	if err := printTable(a.out, "Structure Summary", []string{"campaign", "adGroups", "keywords", "productTargets"}, structureRows); err != nil {
		return err
	}

	return printLayerSummary(a, result.LayerSummary)
}

func printLayerSummary(a *app, summary *domain.LayerSummary) error {
	if summary == nil {
		return nil
	}

	var totalSpend float64
	for _, row := range summary.Rows {
		totalSpend += row.Spend
	}

	rows := make([][]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		acos, share, note := "-", "-", ""
		if row.Sales > 0 {
			acos = utils.FormatPct(row.ACOS)
		}
		if totalSpend > 0 {
			share = utils.FormatPct(row.BudgetShare)
		}
		if row.Paused {
			note = "(paused)"
		}
		rows = append(rows, []string{
			string(row.Layer),
			row.Name,
			strconv.Itoa(row.Campaigns),
			yen(row.Spend),
			yen(row.Sales),
			acos,
			share,
			note,
		})
	}
	if err := printTable(a.out, "Layer Summary", []string{"Layer", "Name", "Campaigns", "Spend", "Sales", "ACOS", "Budget%", "Note"}, rows); err != nil {
		return err
	}

	if len(summary.LowConfidence) == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n%d campaign(s) classified with low confidence (fallback):\n", len(summary.LowConfidence))
	for _, c := range summary.LowConfidence {
		fmt.Fprintf(&b, "  - %s -> %s\n", c.CampaignName, c.Layer)
	}
	_, err := fmt.Fprint(a.out, b.String())
	return err
}

type anomaliesOptions struct {
	input    string
	baseline string
	output   string
	format   string
}

func newAnomaliesCmd(global *globalOptions) *cobra.Command {
	var opts anomaliesOptions

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Variações de impressões, gasto e CPC entre dois períodos",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			result, err := a.analyze(cmd.Context(), opts.input, opts.baseline)
			if err != nil {
				return err
			}

			if parseFormat(opts.format, formatConsole, formatConsole, formatJSON) == formatJSON {
				content, err := utils.PrettyJSON(map[string]any{
					"run_id":    result.RunID,
					"anomalies": result.Anomalies,
				})
				if err != nil {
					return err
				}
				return writeText(a.out, opts.output, content)
			}

			rows := make([][]string, 0, len(result.Anomalies))
			for _, an := range result.Anomalies {
				rows = append(rows, []string{
					an.CampaignName,
					strings.Join(an.AnomalyTypes, ","),
					utils.FormatFixed(an.ImpressionChangePct, 2) + "%",
					utils.FormatFixed(an.SpendChangePct, 2) + "%",
					utils.FormatFixed(an.CpcChangePct, 2) + "%",
				})
			}
			if err := printTable(a.out, "Campaign Anomalies", []string{"campaign", "types", "impressions", "spend", "cpc"}, rows); err != nil {
				return err
			}
			log.L.WithField("count_anomalies", len(result.Anomalies)).Info("Detecção de anomalias concluída")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Período atual: xlsx/csv ou padrão com curinga (obrigatório)")
	cmd.Flags().StringVar(&opts.baseline, "baseline", "", "Período anterior: xlsx/csv ou padrão com curinga (obrigatório)")
	cmd.Flags().StringVar(&opts.format, "format", formatConsole, "console | json")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo de saída do JSON (padrão: stdout)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("baseline")
	return cmd
}
