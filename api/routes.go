package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/report"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Config  *config.Config
	Service *service.Service
}

// Handler builds the full middleware and route stack.
func (r *Rest) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	api := humago.New(mux, handlers.NewConfig("Ledger API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))
	transaction.Register(api, r.Service.Transaction)
	report.Register(api, r.Service.Transaction)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/health", logging.LoggingWrapper("Health", r.Logger, statusHandler.Health))
	mux.HandleFunc("/", logging.LoggingWrapper("NotFound", r.Logger, statusHandler.NotFound))

	var handler http.Handler = mux
	if r.Config.RateLimit != "" {
		rateLimit, err := newRateLimit(r.Config.RateLimit, r.Logger)
		if err != nil {
			return nil, err
		}
		handler = rateLimit(handler)
	}
	handler = newCORS(r.Config.CORSOrigin)(handler)

	return handler, nil
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	handler, err := r.Handler()
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + r.Config.Port,
		Handler:           handler,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.Logger.WithField("port", r.Config.Port).Info("HttpServer.Serve.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
