// Command autocompleted runs the namespaced autocomplete service: an
// HTTP server in front of the in-memory store, with optional periodic
// snapshotting to disk.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/arnav-k/autocompleted/internal/api"
	"github.com/arnav-k/autocompleted/internal/applog"
	"github.com/arnav-k/autocompleted/internal/config"
	"github.com/arnav-k/autocompleted/internal/constant"
	"github.com/arnav-k/autocompleted/internal/snapshot"
	"github.com/arnav-k/autocompleted/internal/store"
)

func main() {
	app := &cli.App{
		Name:  "autocompleted",
		Usage: "namespaced prefix-autocomplete service",
		Flags: config.Flags(),
		Action: func(c *cli.Context) error {
			cfg, err := config.FromContext(c)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Stderr.WriteString("autocompleted: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	applog.Initialize(cfg.LogLevel != "debug")
	defer applog.Close()

	applog.Info(constant.MsgApplicationStarting, applog.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataAddr:    cfg.Addr,
			constant.DataPort:    cfg.Port,
			constant.DataDataDir: cfg.DataDir,
			constant.DataMaxElems: cfg.MaxElems,
		},
	})

	paths := snapshot.NewPaths(cfg.DataDir)
	var loader store.Loader
	if paths.Enabled() {
		if err := paths.PrecreateDirs(); err != nil {
			applog.Fatal("Failed to pre-create snapshot directories", applog.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &applog.CustomError{
					Code:    constant.ErrCodeSnapshotMkdir,
					Message: err.Error(),
					Type:    constant.ErrTypeSnapshot,
				},
			})
			return err
		}
		applog.Info(constant.MsgDirsPrecreated, applog.LoggerInfo{ContextFunction: constant.CtxMain})
		loader = snapshot.NewFileLoader(paths)
	}

	st := store.New(store.Config{
		MaxElems:           cfg.MaxElems,
		DefaultSearchLimit: cfg.SearchLimit,
	}, loader)

	writer := snapshot.NewWriter(paths)
	scheduler := snapshot.NewScheduler(cfg.SnapshotInterval, st, writer)
	if paths.Enabled() {
		if err := scheduler.Start(); err != nil {
			return err
		}
	}

	router := api.NewRouter(st)
	server := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: router,
	}

	serverErrs := make(chan error, 1)
	go func() {
		applog.Info(constant.MsgServerStarting, applog.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data:            map[string]interface{}{constant.DataAddr: cfg.ListenAddr()},
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrs <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Ignore(syscall.SIGPIPE)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	select {
	case err := <-serverErrs:
		applog.Error(constant.MsgServerFailedToStart, applog.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &applog.CustomError{
				Code:    constant.ErrCodeAppServerStart,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
		return err
	case <-sig:
		applog.Info(constant.MsgServerShuttingDown, applog.LoggerInfo{ContextFunction: constant.CtxMain})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		applog.Error(constant.MsgServerShutdownError, applog.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &applog.CustomError{
				Code:    constant.ErrCodeAppServerShutdown,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	if paths.Enabled() {
		scheduler.Stop()
	}

	applog.Info(constant.MsgServerStopped, applog.LoggerInfo{ContextFunction: constant.CtxMain})
	return nil
}
