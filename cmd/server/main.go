package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/grichal/desingPatterns/internal/api"
	"github.com/grichal/desingPatterns/internal/config"
	"github.com/grichal/desingPatterns/internal/engine"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2) engine
	eng := engine.NewEngine(cfg.Engine.Buffer)

	// 3) router
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewRouter(eng, cfg.Server.RequestTimeout),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		eng.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.Printf("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("server exited")
}
