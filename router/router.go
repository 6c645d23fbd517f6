package router

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/curatorlabs/topicroute/config"
)

// Router routes research topics to hosted model endpoints. All state
// is read-only after New returns, so a single Router may be shared by
// any number of goroutines.
type Router struct {
	registry  *ProfileRegistry
	sensitive *keywordMatcher
	technical *keywordMatcher
	defaultID string
	logger    *zap.Logger
	observer  DecisionObserver
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets a custom zap logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver attaches a DecisionObserver for instrumentation.
func WithObserver(obs DecisionObserver) Option {
	return func(r *Router) {
		r.observer = obs
	}
}

// New builds a Router from routing configuration. The configuration is
// validated first; rule targets and aliases must name configured
// models.
func New(cfg *config.Config, opts ...Option) (*Router, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid routing config: %w", err)
	}

	registry := NewProfileRegistry()
	for _, m := range cfg.Routing.Models {
		registry.Register(&ModelProfile{
			ID:              m.ID,
			Name:            m.Name,
			BestFor:         m.BestFor,
			AvoidFor:        m.AvoidFor,
			ComplianceNotes: m.ComplianceNotes,
		})
	}
	for alias, target := range cfg.Routing.Aliases {
		if err := registry.RegisterAlias(alias, target); err != nil {
			return nil, err
		}
	}
	if err := registry.SetDefault(cfg.Routing.DefaultModel); err != nil {
		return nil, err
	}

	sensitive := make([]Rule, 0, len(cfg.Routing.SensitiveRules))
	for _, sr := range cfg.Routing.SensitiveRules {
		sensitive = append(sensitive, Rule{Keyword: sr.Keyword, Target: sr.Model})
	}
	technical := make([]Rule, 0, len(cfg.Routing.TechnicalKeywords))
	for _, kw := range cfg.Routing.TechnicalKeywords {
		technical = append(technical, Rule{Keyword: kw, Target: cfg.Routing.DefaultModel})
	}

	r := &Router{
		registry:  registry,
		sensitive: newKeywordMatcher(sensitive),
		technical: newKeywordMatcher(technical),
		defaultID: cfg.Routing.DefaultModel,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.logger.Info("router initialized",
		zap.Int("models", registry.Len()),
		zap.Int("sensitive_rules", len(sensitive)),
		zap.Int("technical_keywords", len(technical)),
		zap.String("default_model", r.defaultID))

	return r, nil
}

// Registry exposes the model profiles backing this Router.
func (r *Router) Registry() *ProfileRegistry {
	return r.registry
}

// Select chooses exactly one model for the given topic.
//
// A non-empty directive wins unconditionally: its text is scanned for
// any configured model ID or alias, and a directive naming none fails
// with *UnknownModelError. Without a directive the topic is scanned
// against the sensitive keyword list, then the technical keyword list,
// in configured order with first match winning; the sensitive scan
// runs first, so a topic matching both sets routes as sensitive. If
// nothing matches, the default model is returned.
//
// Select is a pure function of its inputs and the Router's static
// configuration: no I/O, no hidden state, identical inputs yield
// identical Decisions.
func (r *Router) Select(topic, directive string) (*Decision, error) {
	if directive != "" {
		modelID, matched, ok := r.registry.FindIn(directive)
		if !ok {
			r.logger.Warn("directive names no configured model",
				zap.String("directive", directive))
			if r.observer != nil {
				r.observer.ObserveUnknownDirective()
			}
			return nil, &UnknownModelError{Directive: directive, Known: r.registry.List()}
		}
		return r.decide(&Decision{
			ModelID:     modelID,
			Reason:      ReasonExplicitOverride,
			Match:       matched,
			Explanation: fmt.Sprintf("explicit override: directive %q names %s", directive, modelID),
		}), nil
	}

	if rule, ok := r.sensitive.match(topic); ok {
		return r.decide(&Decision{
			ModelID:     rule.Target,
			Reason:      ReasonSensitiveKeyword,
			Match:       rule.Keyword,
			Explanation: fmt.Sprintf("topic mentions %q; %s is configured for politically sensitive material", rule.Keyword, rule.Target),
		}), nil
	}

	if rule, ok := r.technical.match(topic); ok {
		return r.decide(&Decision{
			ModelID:     rule.Target,
			Reason:      ReasonTechnicalKeyword,
			Match:       rule.Keyword,
			Explanation: fmt.Sprintf("topic mentions %q; %s handles technical and scripting work", rule.Keyword, rule.Target),
		}), nil
	}

	return r.decide(&Decision{
		ModelID:     r.defaultID,
		Reason:      ReasonDefault,
		Explanation: fmt.Sprintf("no rule matched; using default model %s", r.defaultID),
	}), nil
}

func (r *Router) decide(d *Decision) *Decision {
	r.logger.Debug("routing decision",
		zap.String("model", d.ModelID),
		zap.String("reason", string(d.Reason)),
		zap.String("match", d.Match))
	if r.observer != nil {
		r.observer.ObserveDecision(d.ModelID, d.Reason)
	}
	return d
}
