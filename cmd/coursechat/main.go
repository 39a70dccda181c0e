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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	coursechat "github.com/coursechat/coursechat"
	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/core"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "coursechat",
		Usage: "Ask questions about indexed course materials",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB index directory",
				Required: true,
				EnvVars:  []string{"COURSECHAT_DB"},
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "OpenAI-compatible service host URL for embeddings and chat",
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
				Name:    "chat-model",
				Usage:   "Chat model name",
				Value:   "qwen2.5:3b",
				EnvVars: []string{"COURSECHAT_CHAT_MODEL"},
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API key for the AI services",
				EnvVars: []string{"COURSECHAT_API_KEY", "OPENAI_API_KEY"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Ask a single question and print the answer with sources",
				ArgsUsage: "<question>",
				Action:    askCommand,
			},
			{
				Name:   "chat",
				Usage:  "Interactive chat session over the course index",
				Action: chatCommand,
			},
			{
				Name:   "stats",
				Usage:  "Show what is indexed",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openSystem(c *cli.Context) (*coursechat.System, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithAPIKey(c.String("api-key")),
	)
	return coursechat.NewSystem(c.String("db"), coursechat.WithAIConfig(cfg))
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	sys, err := openSystem(c)
	if err != nil {
		return fmt.Errorf("failed to open course index: %w", err)
	}
	defer sys.Close()

	answer, citations, err := sys.Answer(context.Background(), sys.NewSessionID(), question)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	printCitations(citations)
	return nil
}

func chatCommand(c *cli.Context) error {
	sys, err := openSystem(c)
	if err != nil {
		return fmt.Errorf("failed to open course index: %w", err)
	}
	defer sys.Close()

	ctx := context.Background()
	sessionID := sys.NewSessionID()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Ask about the indexed courses. Type 'exit' to quit.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, citations, err := sys.Answer(ctx, sessionID, question)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		fmt.Println(answer)
		printCitations(citations)
		fmt.Println()
	}
	return scanner.Err()
}

func statsCommand(c *cli.Context) error {
	sys, err := openSystem(c)
	if err != nil {
		return fmt.Errorf("failed to open course index: %w", err)
	}
	defer sys.Close()

	titles, err := sys.CourseTitles(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Courses indexed: %d\n", len(titles))
	for _, title := range titles {
		fmt.Printf("  %s\n", title)
	}
	return nil
}

func printCitations(citations []core.Citation) {
	if len(citations) == 0 {
		return
	}

	fmt.Println("\nSources:")
	seen := make(map[string]bool)
	for _, c := range citations {
		label := c.Label()
		if seen[label] {
			continue
		}
		seen[label] = true

		if c.Link != "" {
			fmt.Printf("  %s (%s)\n", label, c.Link)
		} else {
			fmt.Printf("  %s\n", label)
		}
	}
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
