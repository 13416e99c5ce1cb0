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


package librarium

import (
	"context"
	"log/slog"

	"github.com/poiesic/librarium/ai"
	"github.com/poiesic/librarium/ai/openai"
	"github.com/poiesic/librarium/classify"
	"github.com/poiesic/librarium/knowledge"
	"github.com/poiesic/librarium/storage/badger"
)

// Service bundles the knowledge base, embedding backend, vector cache and
// classification engine behind one constructor.
type Service struct {
	engine *classify.Engine
	cache  *badger.VectorCache
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig      *ai.Config
	base          *knowledge.Base
	cachePath     string
	logger        *slog.Logger
	ruleOnly      bool
	engineOptions []classify.Option
}

// WithAIConfig sets the embedding backend configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithKnowledgeBase replaces the default academic knowledge base.
func WithKnowledgeBase(base *knowledge.Base) ServiceOption {
	return func(o *serviceOptions) {
		o.base = base
	}
}

// WithCachePath enables the on-disk item embedding cache at the given path.
func WithCachePath(path string) ServiceOption {
	return func(o *serviceOptions) {
		o.cachePath = path
	}
}

// WithServiceLogger sets the logger for the service and its engine.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithoutEmbeddings skips the embedding backend entirely and runs
// rule-only, regardless of AI configuration.
func WithoutEmbeddings() ServiceOption {
	return func(o *serviceOptions) {
		o.ruleOnly = true
	}
}

// WithEngineOptions forwards extra options to the underlying engine, such
// as classify.WithClassifyThreshold.
func WithEngineOptions(opts ...classify.Option) ServiceOption {
	return func(o *serviceOptions) {
		o.engineOptions = append(o.engineOptions, opts...)
	}
}

// NewService assembles the full classification service. An unreachable
// embedding backend is not an error; the engine degrades to rule-only and
// says so in the log.
func NewService(ctx context.Context, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
		base:     knowledge.DefaultBase(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	svc := &Service{logger: options.logger}

	engineOpts := append([]classify.Option{classify.WithLogger(options.logger)}, options.engineOptions...)

	if options.cachePath != "" {
		backend, err := badger.OpenBackend(options.cachePath, false)
		if err != nil {
			return nil, err
		}
		cache, err := badger.NewVectorCache(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		svc.cache = cache
		engineOpts = append(engineOpts, classify.WithVectorCache(cache))
	}

	var embedder ai.Embedder
	if !options.ruleOnly {
		e, err := openai.NewEmbedder(options.aiConfig)
		if err != nil {
			// Misconfiguration, not backend downtime: the engine handles
			// downtime itself, a bad config should surface immediately.
			svc.closePartial()
			return nil, err
		}
		embedder = e
	}

	engine, err := classify.NewEngine(ctx, options.base, embedder, engineOpts...)
	if err != nil {
		svc.closePartial()
		return nil, err
	}
	svc.engine = engine
	return svc, nil
}

// Engine returns the classification engine.
func (s *Service) Engine() *classify.Engine {
	return s.engine
}

// Close releases the engine's worker pool and the cache storage.
func (s *Service) Close() error {
	if s.engine != nil {
		s.engine.Release()
	}
	return s.closePartial()
}

// closePartial closes the cache, which owns the storage backend.
func (s *Service) closePartial() error {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Error("error closing vector cache", "err", err)
			return err
		}
		s.cache = nil
	}
	return nil
}
