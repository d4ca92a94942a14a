package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"dogs-catalog/internal/platform/logger"
)

// HTTPObserver recibe cada request terminado (métricas). Puede ser nil.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// AccessLog loguea una línea por request y alimenta métricas.
// Debe ir después de chimw.RequestID para que el id esté en el contexto.
func AccessLog(log logger.Logger, obs HTTPObserver) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			route := routePattern(r)

			if obs != nil {
				obs.ObserveHTTP(r.Method, route, status, elapsed)
			}

			fields := logger.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": elapsed.Milliseconds(),
			}
			if id := chimw.GetReqID(r.Context()); id != "" {
				fields["request_id"] = id
			}

			switch {
			case status >= 500:
				log.Error("http request", fields)
			case status >= 400:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}

// routePattern evita cardinalidad alta en métricas (usa /dogs/{dogID}, no el id).
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
