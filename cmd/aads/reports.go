package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuuki-courage/aads/infrastructure/tableio"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/pkg/log"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// Nomes das abas dos relatórios
const (
	sheetCpcReport       = "CPC_Optimisation_Report"
	sheetPromotionReport = "AutoToManual_Report"
	sheetNegativeReport  = "Negative_Keyword_Optimisation"
	sheetSeoReport       = "SEO_Report"
)

var ErrNoSeoRankingData = errors.New("nenhum dado de ranking SEO disponível, verifique --ranking-db e SEO_ENABLED")

type reportOptions struct {
	input  string
	output string
	format string
}

func newCpcReportCmd(global *globalOptions) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "cpc-report",
		Short: "Relatório de otimização de lances com ajuste pelo ranking orgânico",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			result, err := a.analyze(cmd.Context(), opts.input, "")
			if err != nil {
				return err
			}

			sheet := cpcReportSheet(result.CpcRecommendations)
			if err := tableio.WriteXLSX(opts.output, []tableio.Sheet{sheet}); err != nil {
				return err
			}
			log.L.WithFields(log.Fields{
				"output":      opts.output,
				"total_rows":  len(sheet.Rows),
				"seo_enabled": result.SeoRankingData != nil,
			}).Info("Relatório de CPC gerado")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Arquivo xlsx/csv ou padrão com curinga (obrigatório)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo xlsx de saída (obrigatório)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func cpcReportSheet(recs []domain.CpcRecommendation) tableio.Sheet {
	sheet := tableio.Sheet{
		Name: sheetCpcReport,
		Header: []string{
			"Campaign", "Ad Group", "Keyword", "Clicks(14d)", "AvgCPC(14d)", "CurrentBid",
			"RecommendedBid", "BidAdjust", "OrganicPos", "SeoFactor", "Reason",
		},
	}
	for _, r := range recs {
		organic, factor := "-", "-"
		if r.OrganicPosition != nil {
			organic = "#" + strconv.Itoa(*r.OrganicPosition)
		}
		if r.SeoFactor != nil {
			factor = utils.FormatFixed(*r.SeoFactor, 2)
		}
		sheet.Rows = append(sheet.Rows, []any{
			r.CampaignName,
			r.AdGroupName,
			r.KeywordText,
			r.Clicks,
			utils.RoundHalfUp(r.AvgCpc),
			utils.RoundHalfUp(r.CurrentBid),
			r.RecommendedBid,
			utils.FormatFixed(r.BidAdjust, 2),
			organic,
			factor,
			r.Reason,
		})
	}
	return sheet
}

func newPromotionReportCmd(global *globalOptions) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "promotion-report",
		Short: "Candidatos de promoção auto para manual e sugestões de negativação",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			result, err := a.analyze(cmd.Context(), opts.input, "")
			if err != nil {
				return err
			}

			sheets := promotionReportSheets(result.PromotionCandidates, result.NegativeCandidates)
			if err := tableio.WriteXLSX(opts.output, sheets); err != nil {
				return err
			}
			log.L.WithFields(log.Fields{
				"output":           opts.output,
				"count_promotions": len(sheets[0].Rows),
				"count_negatives":  len(sheets[1].Rows),
			}).Info("Relatório de promoção gerado")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Arquivo xlsx/csv ou padrão com curinga (obrigatório)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo xlsx de saída (obrigatório)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func promotionReportSheets(promotions []domain.PromotionCandidate, negatives []domain.NegativeCandidate) []tableio.Sheet {
	promotion := tableio.Sheet{
		Name: sheetPromotionReport,
		Header: []string{
			"Auto Campaign", "Ad Group", "Search Term", "Clicks", "Spend", "CVR(%)",
			"Suggested Match Type", "Suggested Bid", "Suggested Ad Group",
		},
	}
	for _, p := range promotions {
		promotion.Rows = append(promotion.Rows, []any{
			p.CampaignName,
			p.AdGroupName,
			p.KeywordText,
			p.Clicks,
			utils.RoundHalfUp(p.Spend),
			utils.FormatFixed(p.CVR*100, 2),
			p.MatchType,
			p.RecommendedBid,
			p.RecommendedAdGroupName,
		})
	}

	negative := tableio.Sheet{
		Name:   sheetNegativeReport,
		Header: []string{"Campaign", "Ad Group", "Term", "MatchType", "Reason"},
	}
	for _, n := range negatives {
		negative.Rows = append(negative.Rows, []any{
			n.CampaignName,
			n.AdGroupName,
			n.KeywordText,
			n.MatchType,
			n.Reason,
		})
	}
	return []tableio.Sheet{promotion, negative}
}

// seoItem é uma linha do relatório de SEO
type seoItem struct {
	Campaign       string  `json:"campaign"`
	AdGroup        string  `json:"adGroup"`
	Keyword        string  `json:"keyword"`
	Clicks         float64 `json:"clicks"`
	AvgCpc         float64 `json:"avgCpc"`
	CurrentBid     float64 `json:"currentBid"`
	RecommendedBid float64 `json:"recommendedBid"`
	OrganicPos     *int    `json:"organicPos"`
	SeoFactor      float64 `json:"seoFactor"`
	Reason         string  `json:"reason"`
}

type seoReport struct {
	DBPath          string    `json:"dbPath"`
	SnapshotDate    string    `json:"snapshotDate"`
	MatchedKeywords int       `json:"matchedKeywords"`
	Items           []seoItem `json:"items"`
}

func buildSeoReport(result *domain.AnalysisResult) (*seoReport, error) {
	data := result.SeoRankingData
	if data == nil {
		return nil, ErrNoSeoRankingData
	}

	report := &seoReport{
		DBPath:          data.DBPath,
		SnapshotDate:    data.SnapshotDate,
		MatchedKeywords: data.MatchedKeywords(),
		Items:           make([]seoItem, 0, len(result.CpcRecommendations)),
	}
	for _, r := range result.CpcRecommendations {
		factor := 1.0
		if r.SeoFactor != nil {
			factor = *r.SeoFactor
		}
		report.Items = append(report.Items, seoItem{
			Campaign:       r.CampaignName,
			AdGroup:        r.AdGroupName,
			Keyword:        r.KeywordText,
			Clicks:         r.Clicks,
			AvgCpc:         utils.RoundHalfUp(r.AvgCpc),
			CurrentBid:     utils.RoundHalfUp(r.CurrentBid),
			RecommendedBid: r.RecommendedBid,
			OrganicPos:     r.OrganicPosition,
			SeoFactor:      factor,
			Reason:         r.Reason,
		})
	}
	return report, nil
}

func (r *seoReport) sheet() tableio.Sheet {
	sheet := tableio.Sheet{
		Name: sheetSeoReport,
		Header: []string{
			"Campaign", "Ad Group", "Keyword", "Clicks(14d)", "AvgCPC", "CurrentBid",
			"RecommendedBid", "OrganicPos", "SeoFactor", "Reason",
		},
	}
	for _, item := range r.Items {
		var organic any = "-"
		if item.OrganicPos != nil {
			organic = *item.OrganicPos
		}
		sheet.Rows = append(sheet.Rows, []any{
			item.Campaign,
			item.AdGroup,
			item.Keyword,
			item.Clicks,
			item.AvgCpc,
			item.CurrentBid,
			item.RecommendedBid,
			organic,
			utils.FormatFixed(item.SeoFactor, 2),
			item.Reason,
		})
	}
	return sheet
}

func (r *seoReport) adjusted() []seoItem {
	var out []seoItem
	for _, item := range r.Items {
		if item.SeoFactor < 1 {
			out = append(out, item)
		}
	}
	return out
}

func newSeoReportCmd(global *globalOptions) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "seo-report",
		Short: "Relatório integrado de ranking orgânico e palavras-chave de anúncio",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, global)
			if err != nil {
				return err
			}
			result, err := a.analyze(cmd.Context(), opts.input, "")
			if err != nil {
				return err
			}
			report, err := buildSeoReport(result)
			if err != nil {
				return err
			}

			format := parseFormat(opts.format, formatConsole, formatConsole, formatJSON, formatXLSX)
			if format == formatConsole && strings.HasSuffix(strings.ToLower(opts.output), ".xlsx") {
				format = formatXLSX
			}

			switch format {
			case formatJSON:
				content, err := utils.PrettyJSON(report)
				if err != nil {
					return err
				}
				return writeText(a.out, opts.output, content)
			case formatXLSX:
				output := opts.output
				if output == "" {
					output = filepath.Join("output", fmt.Sprintf("seo-report-%s.xlsx", utils.TimestampForFilename(time.Now())))
				}
				if err := tableio.WriteXLSX(output, []tableio.Sheet{report.sheet()}); err != nil {
					return err
				}
				log.L.WithFields(log.Fields{
					"output":           output,
					"total_rows":       len(report.Items),
					"kpi_seo_keywords": report.MatchedKeywords,
				}).Info("Relatório de SEO gerado")
				return nil
			}
			return printSeoReport(a, report)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Arquivo xlsx/csv ou padrão com curinga (obrigatório)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Arquivo de saída (json ou xlsx)")
	cmd.Flags().StringVar(&opts.format, "format", formatConsole, "console | json | xlsx")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func printSeoReport(a *app, report *seoReport) error {
	fmt.Fprintf(a.out, "\nSEO Ranking Report\nDB: %s\nSnapshot: %s\nMatched keywords: %d\n",
		report.DBPath, report.SnapshotDate, report.MatchedKeywords)

	adjusted := report.adjusted()
	if len(adjusted) == 0 {
		fmt.Fprintln(a.out, "\nNo keywords with SEO adjustment (all factors = 1.0)")
	} else {
		rows := make([][]string, 0, len(adjusted))
		for _, item := range adjusted {
			organic := "-"
			if item.OrganicPos != nil {
				organic = "#" + strconv.Itoa(*item.OrganicPos)
			}
			rows = append(rows, []string{
				item.Keyword,
				organic,
				utils.FormatFixed(item.SeoFactor, 2),
				domain.FormatNumber(item.CurrentBid),
				domain.FormatNumber(item.RecommendedBid),
			})
		}
		if err := printTable(a.out, "SEO-adjusted keywords:", []string{"keyword", "organicPos", "seoFactor", "currentBid", "recommendedBid"}, rows); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(a.out, "\nTotal CPC recommendations: %d\nSEO-adjusted: %d\n", len(report.Items), len(adjusted))
	return err
}
