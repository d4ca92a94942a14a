package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "dogs-catalog/docs"
	mem "dogs-catalog/internal/adapters/storage/memory"
	pg "dogs-catalog/internal/adapters/storage/postgres"
	"dogs-catalog/internal/domain/dogs"
	"dogs-catalog/internal/domain/temperaments"
	"dogs-catalog/internal/metrics"
	"dogs-catalog/internal/middleware"
	"dogs-catalog/internal/platform/logger"
	"dogs-catalog/internal/ports/catalog"
)

type Options struct {
	// Catalog es obligatorio (cliente de The Dog API, con o sin cache).
	Catalog catalog.Catalog

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger     // nil => Nop
	Metrics *metrics.Registry // nil => sin /metrics

	// RateLimit nil => sin límite de entrada.
	RateLimit *middleware.LimiterStore

	// TrustProxy: usar X-Forwarded-For / X-Real-IP como IP del cliente.
	// Solo detrás de un proxy propio.
	TrustProxy bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.AccessLog(log, opts.Metrics))
	r.Use(chimw.Recoverer)
	if opts.RateLimit != nil {
		r.Use(middleware.RateLimit(opts.RateLimit, middleware.ClientKeyFunc(opts.TrustProxy), opts.Metrics))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		dogRepo  dogs.Repository
		tempRepo temperaments.Repository
	)

	if opts.DB != nil {
		dogRepo = pg.NewDogsRepo(opts.DB)
		tempRepo = pg.NewTemperamentsRepo(opts.DB)
	} else {
		temps := mem.NewTemperamentRepo()
		dogRepo = mem.NewDogRepo(temps)
		tempRepo = temps
	}

	// Services por módulo
	tempsSvc := temperaments.NewService(tempRepo, opts.Catalog, log)
	dogsSvc := dogs.NewService(opts.Catalog, dogRepo, tempsSvc, log)

	// Rutas por módulo
	dogs.RegisterRoutes(r, dogsSvc, log)
	temperaments.RegisterRoutes(r, tempsSvc)

	return r
}

// Serve levanta el server y lo apaga con gracia cuando se cancela ctx.
func Serve(ctx context.Context, srv *http.Server, log logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down server", nil)
	return srv.Shutdown(shutdownCtx)
}
