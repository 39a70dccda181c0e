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

// Package coursechat answers questions about indexed course material.
// It wires storage, retrieval, tools, sessions, and the chat
// orchestrator into one System.
package coursechat

import (
	"context"
	"log/slog"

	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/ai/openai"
	"github.com/coursechat/coursechat/assistant"
	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/ingestion"
	"github.com/coursechat/coursechat/search"
	"github.com/coursechat/coursechat/session"
	"github.com/coursechat/coursechat/storage"
	"github.com/coursechat/coursechat/storage/badger"
	"github.com/coursechat/coursechat/tool"
)

// System is the assembled question answering stack over a course
// index: badger-backed catalog and content collections, an AI
// provider, the searcher and its tools, a session store, and the
// assistant orchestrating them.
type System struct {
	backend     *badger.Backend
	catalogRepo storage.CatalogRepository
	contentRepo storage.ContentRepository
	provider    ai.AIProvider
	searcher    *search.Searcher
	registry    *tool.Registry
	sessions    *session.Store
	assistant   *assistant.Assistant
	logger      *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig     *ai.Config
	provider     ai.AIProvider
	maxResults   int
	maxExchanges int
	inMemory     bool
}

// WithAIConfig sets the AI service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = cfg
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI
// client setup. Intended for tests.
func WithProvider(p ai.AIProvider) SystemOption {
	return func(o *systemOptions) {
		o.provider = p
	}
}

// WithMaxResults sets how many chunks a search returns.
func WithMaxResults(n int) SystemOption {
	return func(o *systemOptions) {
		o.maxResults = n
	}
}

// WithMaxHistory sets how many recent exchanges each session keeps.
func WithMaxHistory(n int) SystemOption {
	return func(o *systemOptions) {
		o.maxExchanges = n
	}
}

// WithInMemoryStorage keeps the index in memory instead of on disk.
// Intended for tests and experiments.
func WithInMemoryStorage() SystemOption {
	return func(o *systemOptions) {
		o.inMemory = true
	}
}

// NewSystem opens the index at filePath and assembles the full stack.
func NewSystem(filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	catalogRepo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	contentRepo, err := badger.NewContentRepository(backend)
	if err != nil {
		catalogRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			contentRepo.Close()
			catalogRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	var searchOpts []search.Option
	if options.maxResults > 0 {
		searchOpts = append(searchOpts, search.WithMaxResults(options.maxResults))
	}
	searcher, err := search.NewSearcher(catalogRepo, contentRepo, provider.Embedder(), searchOpts...)
	if err != nil {
		closeAll(provider, contentRepo, catalogRepo, backend)
		return nil, err
	}

	registry := tool.NewRegistry()
	if err := registry.Register(tool.NewSearchTool(searcher)); err != nil {
		closeAll(provider, contentRepo, catalogRepo, backend)
		return nil, err
	}
	if err := registry.Register(tool.NewOutlineTool(searcher)); err != nil {
		closeAll(provider, contentRepo, catalogRepo, backend)
		return nil, err
	}

	var sessionOpts []session.Option
	if options.maxExchanges > 0 {
		sessionOpts = append(sessionOpts, session.WithMaxExchanges(options.maxExchanges))
	}
	sessions := session.NewStore(sessionOpts...)

	asst, err := assistant.New(provider.Generator(), registry, sessions)
	if err != nil {
		closeAll(provider, contentRepo, catalogRepo, backend)
		return nil, err
	}

	return &System{
		backend:     backend,
		catalogRepo: catalogRepo,
		contentRepo: contentRepo,
		provider:    provider,
		searcher:    searcher,
		registry:    registry,
		sessions:    sessions,
		assistant:   asst,
		logger:      slog.Default(),
	}, nil
}

// Answer responds to a question within a session, returning the
// answer text and the citations behind any retrieved content.
func (s *System) Answer(ctx context.Context, sessionID, question string) (string, []core.Citation, error) {
	return s.assistant.Answer(ctx, sessionID, question)
}

// NewSessionID issues a fresh conversation session identifier.
func (s *System) NewSessionID() string {
	return s.sessions.NewSessionID()
}

// ClearSession forgets a session's conversation history.
func (s *System) ClearSession(sessionID string) {
	s.sessions.Clear(sessionID)
}

// NewIngestionPipeline creates a pipeline writing into this system's
// collections.
func (s *System) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.catalogRepo, s.contentRepo, s.provider.Embedder(), opts...)
}

// Searcher returns the retrieval layer for direct queries.
func (s *System) Searcher() *search.Searcher {
	return s.searcher
}

// CourseTitles returns all indexed course titles in lexical order.
func (s *System) CourseTitles(ctx context.Context) ([]string, error) {
	return s.catalogRepo.ListCourseTitles(ctx)
}

// CourseCount returns how many courses are indexed.
func (s *System) CourseCount(ctx context.Context) (int, error) {
	titles, err := s.catalogRepo.ListCourseTitles(ctx)
	if err != nil {
		return 0, err
	}
	return len(titles), nil
}

// Close shuts down the AI provider, repositories, and storage backend.
func (s *System) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.contentRepo.Close(); err != nil {
		s.logger.Error("error closing content repository", "err", err)
		return err
	}
	if err := s.catalogRepo.Close(); err != nil {
		s.logger.Error("error closing catalog repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func closeAll(provider ai.AIProvider, content storage.ContentRepository, catalog storage.CatalogRepository, backend *badger.Backend) {
	provider.Close()
	content.Close()
	catalog.Close()
	backend.Close()
}
