// Package api serves the catalogs as a read-only JSON API.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/app"
)

// DefaultAddr is used when Runner.Addr is empty.
const DefaultAddr = "127.0.0.1:8080"

const shutdownGrace = 5 * time.Second

// Runner serves the JSON API until its context is cancelled.
type Runner struct {
	Service     *app.Service
	Addr        string
	Log         zerolog.Logger
	OnListening func(net.Addr)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("api runner requires a service")
	}
	addr := r.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	r.Log.Info().Str("addr", ln.Addr().String()).Msg("api listening")
	if r.OnListening != nil {
		r.OnListening(ln.Addr())
	}
	return r.serve(ctx, ln)
}

// serve owns ln. The shutdown hook is detached when Serve returns, so a
// failed server leaves nothing waiting on ctx.
func (r Runner) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           NewHandler(r.Service, r.Log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		r.Log.Info().Msg("api shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			r.Log.Warn().Err(err).Msg("api shutdown")
		}
	})
	defer stop()

	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
