package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/foomo/resinaro"
	"github.com/foomo/resinaro/config"
	"github.com/foomo/resinaro/i18n"
	"github.com/foomo/resinaro/render"
	"github.com/foomo/resinaro/store"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Println(comment, err)
		os.Exit(1)
	}
}

func newLogger(conf *config.Config) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if conf.Debug {
		options.Level = slog.LevelDebug
	}
	if conf.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, options))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, options))
}

func loadStore(ctx context.Context, conf *config.Config) (*store.Store, error) {
	if conf.PostgresDSN == "" {
		return store.LoadFile(conf.Data)
	}
	pool, errPool := pgxpool.New(ctx, conf.PostgresDSN)
	if errPool != nil {
		return nil, fmt.Errorf("could not connect to postgres: %w", errPool)
	}
	// the snapshot is read once, the pool is not needed afterwards
	defer pool.Close()
	return store.LoadPostgres(ctx, pool)
}

func main() {
	flagDebug := flag.Bool("debug", false, "debug logging and dump the effective config")
	flag.Parse()
	if len(flag.Args()) > 1 {
		fmt.Println("usage:", os.Args[0], "[-debug] [path/to/config.yaml]")
		os.Exit(1)
	}

	must("could not load .env:", config.LoadEnv())
	conf, errConf := config.Get(flag.Arg(0))
	must("config error:", errConf)
	conf.ApplyEnv()
	if *flagDebug {
		conf.Debug = true
		spew.Dump(conf)
	}
	logger := newLogger(conf)

	must("copy tables differ:", i18n.CheckAll())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listings, errStore := loadStore(ctx, conf)
	must("could not load listings:", errStore)
	logger.Info("listings loaded", slog.Int("count", listings.Count()), slog.Int("cities", len(listings.Cities())))

	renderer, errRenderer := render.New(render.Options{
		NewsletterEndpoint: conf.NewsletterEndpoint,
		Minify:             conf.Minify,
	})
	must("could not load templates:", errRenderer)

	service := resinaro.NewService(
		listings,
		conf.BaseURL,
		renderer,
		resinaro.NewMetrics(prometheus.DefaultRegisterer),
		logger,
	)
	server := &http.Server{
		Addr:              conf.Addr,
		Handler:           resinaro.NewHandler(service, conf, prometheus.DefaultGatherer, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
			logger.Error("shutdown failed", slog.Any("error", errShutdown))
		}
	}()

	logger.Info("listening", slog.String("addr", conf.Addr), slog.String("baseURL", conf.BaseURL))
	if errServe := server.ListenAndServe(); !errors.Is(errServe, http.ErrServerClosed) {
		logger.Error("server failed", slog.Any("error", errServe))
		os.Exit(1)
	}
}
