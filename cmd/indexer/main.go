// Copyright 2026 Coursechat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
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
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/ai/openai"
	"github.com/coursechat/coursechat/ingestion"
	"github.com/coursechat/coursechat/storage/badger"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "indexer",
		Usage: "Build and maintain the course content index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB index directory",
				Required: true,
				EnvVars:  []string{"COURSECHAT_DB"},
			},
			&cli.StringFlag{
				Name:    "embedding-host",
				Usage:   "Embedding service host URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"COURSECHAT_HOST"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				Value:   "embeddinggemma",
				EnvVars: []string{"COURSECHAT_EMBEDDING_MODEL"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API key for the embedding service",
				EnvVars: []string{"COURSECHAT_API_KEY", "OPENAI_API_KEY"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest every course transcript in a folder",
				ArgsUsage: "<folder>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to embed per request",
						Value: ingestion.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent embedding workers",
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Wipe the existing index before ingesting",
					},
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a course and its chunks from the index",
				ArgsUsage: "<course title>",
				Action:    removeCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openPipeline(c *cli.Context, opts ...ingestion.Option) (*ingestion.Pipeline, func(), error) {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open index: %w", err)
	}

	catalogRepo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	contentRepo, err := badger.NewContentRepository(backend)
	if err != nil {
		catalogRepo.Close()
		backend.Close()
		return nil, nil, err
	}

	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithAPIKey(c.String("api-key")),
	)
	embedder, err := openai.NewEmbedder(cfg)
	if err != nil {
		contentRepo.Close()
		catalogRepo.Close()
		backend.Close()
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	pipeline, err := ingestion.NewPipeline(catalogRepo, contentRepo, embedder, opts...)
	if err != nil {
		contentRepo.Close()
		catalogRepo.Close()
		backend.Close()
		return nil, nil, err
	}

	cleanup := func() {
		pipeline.Release()
		contentRepo.Close()
		catalogRepo.Close()
		backend.Close()
	}
	return pipeline, cleanup, nil
}

func ingestCommand(c *cli.Context) error {
	folder := c.Args().First()
	if folder == "" {
		return fmt.Errorf("a course folder is required")
	}

	var opts []ingestion.Option
	opts = append(opts, ingestion.WithBatchSize(c.Int("batch-size")))
	if poolSize := c.Int("pool-size"); poolSize > 0 {
		opts = append(opts, ingestion.WithPoolSize(poolSize))
	}

	pipeline, cleanup, err := openPipeline(c, opts...)
	if err != nil {
		return err
	}
	defer cleanup()

	if c.Bool("clear") {
		if err := pipeline.Clear(context.Background()); err != nil {
			return fmt.Errorf("failed to clear index: %w", err)
		}
	}

	progress := ingestion.NewProgressTracker(os.Stderr, 1)
	courses, chunks, err := pipeline.AddCourseFolder(context.Background(), folder, progress)
	if err != nil {
		return err
	}

	fmt.Printf("Indexed %d courses, %d new chunks (%.1fs)\n",
		len(courses), chunks, progress.Elapsed().Seconds())
	return nil
}

func removeCommand(c *cli.Context) error {
	title := c.Args().First()
	if title == "" {
		return fmt.Errorf("a course title is required")
	}

	pipeline, cleanup, err := openPipeline(c)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := pipeline.RemoveCourse(context.Background(), title); err != nil {
		return fmt.Errorf("failed to remove course %q: %w", title, err)
	}

	fmt.Printf("Removed course %q\n", title)
	return nil
}
