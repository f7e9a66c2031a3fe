package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/yuuki-courage/aads/internal/api/handler"
	"github.com/yuuki-courage/aads/internal/api/handler/router"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/scheduler"
	"github.com/yuuki-courage/aads/internal/usecases/authenticating"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/log"
	"github.com/yuuki-courage/aads/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o roteador com a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	p pipeline.Pipeline,
	authenticator authenticating.Authenticator,
	bulkGenerationService *scheduler.BulkGenerationService,
) http.Handler {
	cronServices := handler.CronJobServices{}
	if bulkGenerationService != nil {
		cronServices[handler.CronJobTypeBulkGeneration] = bulkGenerationService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Analysis(p)...),
		router.WithRoutes(handler.Bulk(p)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins...),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	p pipeline.Pipeline,
	authenticator authenticating.Authenticator,
	bulkGenerationService *scheduler.BulkGenerationService,
) *Server {
	if !authenticator.Enabled() {
		log.L.Warn("AUTH_SECRET vazio: API sem autenticação")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              config.Address(),
			Handler:           NewHandler(config, p, authenticator, bulkGenerationService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
