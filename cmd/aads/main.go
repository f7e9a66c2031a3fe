package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yuuki-courage/aads/pkg/log"
)

const version = "1.2.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.L.WithError(err).Error("Falha na execução do comando")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}

	root := &cobra.Command{
		Use:           "aads",
		Short:         "Análise de campanhas Sponsored Products e geração de planilhas em massa",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(cmd)
		},
	}

	root.PersistentFlags().StringVar(&global.layerPolicy, "layer-policy", "", "Caminho da política de camadas (json/yaml)")
	root.PersistentFlags().StringVar(&global.rankingDB, "ranking-db", "", "Banco de ranking orgânico (sobrepõe RANKING_DB_PATH)")
	root.PersistentFlags().StringVar(&global.keywordMapping, "keyword-mapping", "", "Mapeamento manual de palavras-chave para o ranking")
	root.PersistentFlags().BoolVar(&global.allSheets, "all-sheets", false, "Lê todas as abas do xlsx, não só os relatórios de termos de busca")

	root.AddCommand(
		newAnalyzeCmd(global),
		newSummaryCmd(global),
		newAnomaliesCmd(global),
		newCpcReportCmd(global),
		newPromotionReportCmd(global),
		newSeoReportCmd(global),
		newGenerateCmd(global),
		newApplyActionsCmd(),
		newCreateCampaignCmd(global),
	)
	return root
}

// configureLogger envia os logs para stderr; stdout fica livre para relatórios e JSON
func configureLogger(cmd *cobra.Command) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(cmd.ErrOrStderr())
}
