package guidance

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"careerpath/pkg/llm"
)

// Source reports whether content came from the generation API or the
// built-in texts.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceBuiltin   Source = "builtin"
)

// Result is one piece of guidance content.
type Result struct {
	Role    string
	Kind    Kind
	Content string
	Source  Source
}

// Service produces career guidance content. A nil client means no API key
// is configured and every request is served from the built-in texts; that is
// a supported state, surfaced once at startup as an info notice. Generation
// failures of any sort are logged and masked by the built-in fallback, never
// returned to the caller as errors.
type Service struct {
	client llm.Client
	cache  Cache
	logger *logrus.Logger
	group  singleflight.Group
}

func NewService(client llm.Client, cache Cache, logger *logrus.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Generated reports whether AI generation is configured.
func (s *Service) Generated() bool {
	return s.client != nil
}

// Get returns guidance content for a role. Roles are free-form non-empty
// strings: related career fields are not limited to the 12 trained labels.
func (s *Service) Get(ctx context.Context, role string, kind Kind) Result {
	role = strings.TrimSpace(role)

	if s.client == nil {
		return Result{Role: role, Kind: kind, Content: fallbackFor(role, kind), Source: SourceBuiltin}
	}

	key := cacheKey(role, kind)
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warnf("guidance cache read: %v", err)
	} else if ok {
		return Result{Role: role, Kind: kind, Content: cached, Source: SourceGenerated}
	}

	// collapse concurrent generation for the same role+kind
	content, err, _ := s.group.Do(key, func() (any, error) {
		return s.generate(ctx, role, kind)
	})
	if err != nil {
		s.logger.Warnf("generate %s guidance for %q: %v; using builtin content", kind, role, err)
		return Result{Role: role, Kind: kind, Content: fallbackFor(role, kind), Source: SourceBuiltin}
	}

	text := content.(string)
	if err := s.cache.Set(ctx, key, text); err != nil {
		s.logger.Warnf("guidance cache write: %v", err)
	}
	return Result{Role: role, Kind: kind, Content: text, Source: SourceGenerated}
}

func (s *Service) generate(ctx context.Context, role string, kind Kind) (string, error) {
	spec := promptSpecs[kind]
	return s.client.Chat(ctx,
		[]llm.Message{
			{Role: llm.RoleSystem, Content: spec.system},
			{Role: llm.RoleUser, Content: spec.user(role)},
		},
		llm.WithTemperature(spec.temperature),
		llm.WithMaxTokens(spec.maxTokens),
	)
}
