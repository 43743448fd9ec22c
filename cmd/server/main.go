package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oskarhn/gridword-backend/internal/alphabet"
	"github.com/oskarhn/gridword-backend/internal/config"
	"github.com/oskarhn/gridword-backend/internal/engine"
	"github.com/oskarhn/gridword-backend/internal/gametimer"
	"github.com/oskarhn/gridword-backend/internal/httpapi"
	"github.com/oskarhn/gridword-backend/internal/hub"
	"github.com/oskarhn/gridword-backend/internal/lexicon"
	"github.com/oskarhn/gridword-backend/internal/scoring"
	"github.com/oskarhn/gridword-backend/internal/store"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	lex, err := lexicon.Load(cfg.DictionaryPath)
	if err != nil {
		log.Fatal("dictionary", zap.Error(err))
	}
	log.Info("dictionary loaded", zap.Int("words", lex.Len()))

	st, err := store.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	letters := cfg.Alphabet
	if letters == "" {
		letters = alphabet.Norwegian
	}
	alpha := alphabet.New(letters)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := hub.NewHub(ctx, log)
	eng := engine.New(st, h, gametimer.NewRegistry(), scoring.New(lex), alpha, log, engine.Config{
		GridSize:         cfg.GridSize,
		SelectionTimeout: cfg.SelectionTimeout,
		PlacementTimeout: cfg.PlacementTimeout,
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: httpapi.SetupRoutes(eng, h, log),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		h.Inbox() <- hub.ShutdownHub{}
		return srv.Shutdown(context.Background())
	})
	if err := g.Wait(); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
