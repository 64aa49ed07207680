// Copyright 2016 Florin Pățan
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command autoresponder
//
// This is a Slack bot that answers messages containing configured keywords
// in thread. Keywords and responses are managed from the app's Home tab.
//
// To run this you need to set the SLACK_APP_TOKEN (xapp-...) and
// SLACK_BOT_TOKEN (xoxb-...) environment variables, or put them in a .env
// file in the working directory, and that's it.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
	"github.com/spf13/cobra"

	"github.com/gobridge/autoresponder/bot"
	"github.com/gobridge/autoresponder/config"
	"github.com/gobridge/autoresponder/handlers"
	"github.com/gobridge/autoresponder/metrics"
	"github.com/gobridge/autoresponder/responses"
)

var version = "HEAD"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "autoresponder",
		Short:        "Reply in thread to Slack messages containing configured keywords",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env file is fine, the environment may be set already.
			_ = godotenv.Load()

			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, newLogger(cmd.ErrOrStderr(), cfg.Debug))
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to the YAML configuration file")
	cmd.Flags().Bool("debug", false, "log debug output, including Slack traffic")
	cmd.Flags().String("metrics-addr", "", "address serving /metrics and /healthz, disabled when empty")

	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store := responses.NewMemory(cfg.Responses...)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(reg); err != nil {
		return err
	}
	metrics.SetEntries(store.Len())

	sdkLog := slog.NewLogLogger(log.Handler(), slog.LevelDebug)
	api := slack.New(cfg.BotToken,
		slack.OptionAppLevelToken(cfg.AppToken),
		slack.OptionDebug(cfg.Debug),
		slack.OptionLog(sdkLog),
	)
	client := socketmode.New(api,
		socketmode.OptionDebug(cfg.Debug),
		socketmode.OptionLog(sdkLog),
	)

	b := bot.New(api, client, log)
	if err := b.Init(ctx); err != nil {
		return err
	}
	handlers.Register(b, store, log)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metrics.NewRouter(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	log.Info("starting", "version", version, "responses", store.Len())
	return b.Run(ctx)
}
