// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/librarium"
	"github.com/poiesic/librarium/ai"
	"github.com/poiesic/librarium/catalog"
	"github.com/poiesic/librarium/server"
)

func main() {
	app := &cli.App{
		Name:  "librariumd",
		Usage: "Academic query classification and book retrieval service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"a"},
				Usage:   "HTTP listen address",
				Value:   ":8000",
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: "all-minilm",
			},
			&cli.StringFlag{
				Name:  "api-token",
				Usage: "API token for the embedding service",
				Value: "none",
			},
			&cli.StringFlag{
				Name:  "cache-db",
				Usage: "Path to the item embedding cache directory (empty disables caching)",
			},
			&cli.StringFlag{
				Name:  "catalog-url",
				Usage: "Base URL of the product catalog service (empty disables fetching)",
			},
			&cli.BoolFlag{
				Name:  "rule-only",
				Usage: "Skip the embedding backend and classify by keyword rules only",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Action: serveCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []librarium.ServiceOption{
		librarium.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
			ai.WithAPIToken(c.String("api-token")),
		)),
	}
	if c.Bool("rule-only") {
		opts = append(opts, librarium.WithoutEmbeddings())
	}
	if path := c.String("cache-db"); path != "" {
		opts = append(opts, librarium.WithCachePath(path))
	}

	svc, err := librarium.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Close()

	serverOpts := []server.Option{}
	if url := c.String("catalog-url"); url != "" {
		client, clientErr := catalog.NewClient(url)
		if clientErr != nil {
			return clientErr
		}
		serverOpts = append(serverOpts, server.WithCatalogClient(client))
	}

	srv, err := server.NewServer(svc.Engine(), serverOpts...)
	if err != nil {
		return err
	}

	slog.Info("starting librarium service",
		"listen", c.String("listen"),
		"vectorMode", svc.Engine().VectorMode())
	return srv.Run(ctx, c.String("listen"))
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
