package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/justinjohnso-itp/lane-courier/internal/server"
)

var (
	flagAddr        string
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve live simulation state over WebSocket",
	Long: `Run the simulation and stream state snapshots to WebSocket clients.

Clients connect to ws://<addr>/ws and receive one JSON snapshot per tick.
They send input messages of the form:

  {"steering": 0.4, "actions": ["Cycle", "Deliver"]}

Steering is a normalized axis in [-1, 1]; actions are edge-triggered and
consumed on the next tick.

Examples:
  courier serve
  courier serve --addr :9000 --preset hard`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "HTTP listen address (host:port)")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(cmd *cobra.Command, args []string) {
	logger := newLogger("courier")

	sess, store, err := buildSession(flagServePreset, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	srv := server.New(logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.Handler)

	httpSrv := &http.Server{
		Addr:    flagAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("listening", "addr", flagAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	fmt.Printf("Serving simulation on ws://%s/ws\n", flagAddr)
	fmt.Println("Press Ctrl+C to stop")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// The simulation owns its state; this loop is the only goroutine that
	// touches the session. Clients feed the input mailbox, the loop drains
	// it once per tick.
	ticker := time.NewTicker(time.Second / time.Duration(flagFPS))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			logger.Info("shutting down")
			srv.Close()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(ctx); err != nil {
				logger.Warn("shutdown", "error", err)
			}
			return
		case <-ticker.C:
			in := srv.PollInput()
			sess.Step(in)
			srv.Broadcast(sess.Snapshot())
		}
	}
}
