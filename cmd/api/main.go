package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yuuki-courage/aads/infrastructure/repository"
	"github.com/yuuki-courage/aads/internal/api"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/scheduler"
	"github.com/yuuki-courage/aads/internal/usecases/authenticating"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.SetLevel(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opener := repository.NewRankingOpener(cfg.RankingDB.Driver)
	if cfg.RankingDB.Path != "" && !opener.Available(cfg.RankingDB.Path) {
		log.L.WithField("path", cfg.RankingDB.Path).Warn("Banco de ranking não encontrado, ajuste SEO indisponível")
	}

	pipelineService := pipeline.NewService(pipeline.OptionsFromConfig(cfg), opener)
	authenticator := authenticating.NewService(cfg)

	bulkGenerationService := scheduler.NewBulkGenerationService(pipelineService, cfg)
	if err := bulkGenerationService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de geração em massa")
	}

	server := api.New(cfg, pipelineService, authenticator, bulkGenerationService)
	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
