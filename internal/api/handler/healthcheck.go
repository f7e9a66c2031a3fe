package handler

import (
	"net/http"
	"time"

	"github.com/yuuki-courage/aads/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().Format(time.RFC3339))); err != nil {
			log.L.WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
