package lesson

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/shirley/readingcoach/internal/llm"
)

// Service generates lessons by walking the provider tiers in order and
// falling back to mock content. Safe for concurrent use.
type Service struct {
	tiers    []llm.Tier
	cfg      Config
	gate     Gate
	shuffler *Shuffler
	log      *zap.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the logger for chain decisions.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithShuffler replaces the randomly seeded shuffler, e.g. with a fixed
// seed in tests.
func WithShuffler(sh *Shuffler) Option {
	return func(s *Service) {
		if sh != nil {
			s.shuffler = sh
		}
	}
}

// NewService creates a lesson service over tiers, tried in slice order.
// No tiers is valid: every lesson is then mock content.
func NewService(tiers []llm.Tier, cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, _ := ParseMode(string(cfg.Mode))
	cfg.Mode = mode
	gate, _ := ParseGate(cfg.Gate)

	s := &Service{
		tiers: tiers,
		cfg:   cfg,
		gate:  gate,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shuffler == nil {
		s.shuffler = NewShuffler(nil)
	}
	return s, nil
}

// Providers returns the tier names in fallback order.
func (s *Service) Providers() []string {
	names := make([]string, len(s.tiers))
	for i, t := range s.tiers {
		names[i] = t.Name
	}
	return names
}

type candidate struct {
	content  LessonContent
	outcome  Outcome
	provider string
	model    string
}

// Generate always returns a lesson with Meta populated. Provider errors and
// rejected output move on to the next tier; when every tier fails the best
// rejected result with an English article is served as degraded content,
// or mock content otherwise.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) LessonContent {
	topic := req.Topic()
	log := s.log.With(zap.String("theme", topic.En), zap.String("level", string(topic.Level)))

	if len(s.tiers) == 0 {
		log.Info("no LLM provider configured, serving mock lesson")
		return MockContent(topic, ReasonNoKey, s.cfg.Version)
	}

	ctx = llm.WithPurpose(ctx, "lesson")
	llmReq := s.request(topic)
	reason := ReasonException
	var best *candidate

	for _, tier := range s.tiers {
		c, o, model, err := s.attempt(ctx, tier, llmReq, topic)
		if err != nil {
			reason = reasonFor(err)
			log.Warn("lesson provider failed",
				zap.String("provider", tier.Name),
				zap.String("reason", reason),
				zap.Error(err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		gerr := s.gate.Accept(c, o)
		if gerr == nil {
			log.Info("lesson accepted", zap.String("provider", tier.Name), zap.String("model", model))
			return s.finish(c, topic, tier.Name, model, "")
		}

		reason = ReasonBadOutput
		log.Warn("lesson output rejected",
			zap.String("provider", tier.Name),
			zap.Stringer("outcome", o),
			zap.Error(gerr))
		if s.cfg.AllowDegraded && len(c.Article.ParagraphsEn) > 0 &&
			(best == nil || len(o.Missing) < len(best.outcome.Missing)) {
			best = &candidate{content: c, outcome: o, provider: tier.Name, model: model}
		}
	}

	if best != nil {
		log.Warn("serving degraded lesson", zap.String("provider", best.provider), zap.Stringer("outcome", best.outcome))
		return s.finish(best.content, topic, best.provider, best.model, ReasonBadOutput)
	}
	log.Warn("all lesson providers failed, serving mock lesson", zap.String("reason", reason))
	return MockContent(topic, reason, s.cfg.Version)
}

func (s *Service) request(topic Topic) llm.Request {
	req := llm.UserPrompt(SystemPrompt(s.cfg.Mode), BuildPrompt(topic, s.cfg.Mode))
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature
	if s.cfg.Mode == ModeJSON {
		if s.cfg.StructuredOutput {
			req.Schema = ContentSchema
		} else {
			req.JSON = true
		}
	}
	return req
}

func (s *Service) attempt(ctx context.Context, tier llm.Tier, req llm.Request, topic Topic) (LessonContent, Outcome, string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := tier.Provider.Generate(ctx, req)
	if err != nil {
		return LessonContent{}, Outcome{}, "", err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return LessonContent{}, Outcome{}, "", &llm.ErrInvalidResponse{Err: errors.New("empty response")}
	}

	c, o := Parse(resp.Content, s.cfg.Mode, topic)
	model := resp.Model
	if model == "" {
		model = tier.Provider.ModelID()
	}
	return c, o, model, nil
}

func (s *Service) finish(c LessonContent, topic Topic, provider, model, reason string) LessonContent {
	c.Quiz = s.shuffler.ShuffleQuiz(c.Quiz)
	c.Meta = Meta{
		Provider: provider,
		Model:    model,
		Reason:   reason,
		Level:    topic.Level,
		Version:  s.cfg.Version,
	}
	c.ensureArrays()
	return c
}

// reasonFor maps a provider error to the reason reported in Meta.
func reasonFor(err error) string {
	if code, ok := llm.StatusCode(err); ok {
		return APIErrorReason(code)
	}
	var invalid *llm.ErrInvalidResponse
	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &invalid) || errors.As(err, &truncated) {
		return ReasonBadOutput
	}
	return ReasonException
}
