package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type health struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func healthz(started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		body := health{Status: "ok", Uptime: time.Since(started).Round(time.Second).String()}
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Error().Err(err).Msg("write healthz response failed")
		}
	}
}
