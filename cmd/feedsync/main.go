package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/feedsync/feedsync/pkg/batch"
	"github.com/feedsync/feedsync/pkg/config"
	"github.com/feedsync/feedsync/pkg/conflictlog"
	"github.com/feedsync/feedsync/pkg/flusher"
	"github.com/feedsync/feedsync/pkg/queue"
	"github.com/feedsync/feedsync/pkg/remote"
	"github.com/feedsync/feedsync/pkg/repository"
	"github.com/feedsync/feedsync/pkg/store"
	"github.com/feedsync/feedsync/pkg/syncer"
	"github.com/feedsync/feedsync/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"feedsync.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Remote.APIKey)
	log.Printf("[INFO] starting feedsync version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] feedsync failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the engine and blocks until the context is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close repositories: %v", err)
		}
	}()

	clog, err := conflictlog.New(cfg.Sync.ConflictLog)
	if err != nil {
		return fmt.Errorf("open conflict log: %w", err)
	}
	defer func() {
		if err := clog.Close(); err != nil {
			log.Printf("[WARN] failed to close conflict log: %v", err)
		}
	}()

	q := queue.New(cfg.Queue.Capacity, repos.Metadata, clog)
	if err := q.Load(ctx); err != nil {
		return fmt.Errorf("restore queue: %w", err)
	}
	q.Start(ctx)
	defer q.Stop()

	enq := &enqueueNotifier{queue: q}
	st := store.New(enq)

	articles, err := repos.Article.ListArticles(ctx)
	if err != nil {
		return fmt.Errorf("load articles: %w", err)
	}
	st.Seed(articles)
	log.Printf("[INFO] loaded %d articles from storage", len(articles))

	rc := remote.NewClient(remote.Config{
		Endpoint: cfg.Remote.Endpoint,
		APIKey:   cfg.Remote.APIKey,
		Timeout:  cfg.Remote.Timeout,
	})

	fl := flusher.New(flusher.Params{
		Queue:          q,
		Store:          st,
		Remote:         rc,
		Log:            clog,
		Debounce:       cfg.Flush.Debounce,
		Threshold:      cfg.Flush.Threshold,
		ChunkSize:      cfg.Flush.ChunkSize,
		MaxAttempts:    cfg.Flush.MaxAttempts,
		RetryBaseDelay: cfg.Flush.RetryBaseDelay,
		HealthInterval: cfg.Flush.HealthInterval,
	})
	enq.flusher = fl
	fl.Start(ctx)
	defer fl.Stop()

	sy := syncer.New(syncer.Params{
		Store:      st,
		Repo:       &syncRepo{repos: repos},
		Remote:     rc,
		Log:        clog,
		Guard:      batch.NewGuard(cfg.Sync.MassDeletionRatio),
		Interval:   cfg.Sync.Interval,
		ChunkSize:  cfg.Sync.ChunkSize,
		ChunkDelay: cfg.Sync.ChunkDelay,
	})
	sy.Start(ctx)
	defer sy.Stop()

	srv := server.New(cfg, &engine{queue: q, flusher: fl, syncer: sy}, revision, debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
