package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/solitaire/canfield"
	"github.com/minaorangina/solitaire/internal/config"
	"github.com/minaorangina/solitaire/prefs"
	"github.com/minaorangina/solitaire/server"
	"github.com/minaorangina/solitaire/store"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatal(err.Error())
	}
	log := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend := openBackend(cfg, log)
	defer closeBackend()

	p, err := prefs.Open(ctx, backend)
	if err != nil {
		log.WithError(err).Fatal("could not load preferences")
	}

	s := server.NewServer(server.ServerOpts{
		Store:    store.NewInMemoryGameStore(log),
		Prefs:    p,
		Log:      log,
		DrawMode: canfield.DrawMode(cfg.DrawMode),
	})
	s.Addr = cfg.Addr

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Listening on %s...", cfg.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return err
		}

		// the draw mode chosen by players survives a restart
		return p.Flush(shutdownCtx, backend)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func openBackend(cfg *config.Config, log *logrus.Logger) (prefs.Backend, func()) {
	if cfg.PrefsBackend == config.BackendRedis {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		log.WithField("addr", cfg.RedisAddr).Info("preferences in redis")
		return prefs.NewRedisBackend(client, cfg.RedisKey), func() { client.Close() }
	}

	log.WithField("path", cfg.PrefsFile).Info("preferences on disk")
	return prefs.NewFileBackend(cfg.PrefsFile), func() {}
}
