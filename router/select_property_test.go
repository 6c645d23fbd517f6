package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/curatorlabs/topicroute/config"
)

// Select must behave as a pure function: identical inputs always
// produce identical decisions.
func TestSelect_PropertyIdempotent(t *testing.T) {
	r, err := New(config.DefaultConfig())
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		topic := rapid.String().Draw(rt, "topic")
		directive := rapid.SampledFrom([]string{
			"", "kimi", "use claude", "Switch to Western model", "gemini please",
		}).Draw(rt, "directive")

		first, err1 := r.Select(topic, directive)
		second, err2 := r.Select(topic, directive)

		if (err1 == nil) != (err2 == nil) {
			rt.Fatalf("non-deterministic error: %v vs %v", err1, err2)
		}
		if err1 == nil && *first != *second {
			rt.Fatalf("non-deterministic decision: %+v vs %+v", first, second)
		}
	})
}

// Every successful call selects exactly one configured model.
func TestSelect_PropertyAlwaysKnownModel(t *testing.T) {
	r, err := New(config.DefaultConfig())
	require.NoError(t, err)

	known := make(map[string]bool)
	for _, id := range r.Registry().List() {
		known[id] = true
	}

	rapid.Check(t, func(rt *rapid.T) {
		topic := rapid.String().Draw(rt, "topic")

		d, err := r.Select(topic, "")
		if err != nil {
			rt.Fatalf("keyword routing must not fail: %v", err)
		}
		if !known[d.ModelID] {
			rt.Fatalf("selected unconfigured model %q", d.ModelID)
		}
	})
}

// A directive naming a known model wins over any topic content.
func TestSelect_PropertyDirectiveWins(t *testing.T) {
	r, err := New(config.DefaultConfig())
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		topic := rapid.String().Draw(rt, "topic")
		directive := rapid.SampledFrom([]string{
			"kimi", "claude", "gemini", "Switch to Western model", "USE CLAUDE NOW",
		}).Draw(rt, "directive")

		d, err := r.Select(topic, directive)
		if err != nil {
			rt.Fatalf("known directive must not fail: %v", err)
		}
		if d.Reason != ReasonExplicitOverride {
			rt.Fatalf("directive %q did not override (reason %s)", directive, d.Reason)
		}
	})
}

// Any topic mentioning the first-listed sensitive keyword routes to the
// sensitive-topic model, whatever surrounds it.
func TestSelect_PropertySensitiveKeyword(t *testing.T) {
	r, err := New(config.DefaultConfig())
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		prefix := rapid.String().Draw(rt, "prefix")
		suffix := rapid.String().Draw(rt, "suffix")
		casing := rapid.SampledFrom([]string{"tiananmen", "Tiananmen", "TIANANMEN"}).Draw(rt, "casing")

		d, err := r.Select(prefix+casing+suffix, "")
		if err != nil {
			rt.Fatalf("keyword routing must not fail: %v", err)
		}
		if d.ModelID != "claude" {
			rt.Fatalf("topic containing %q routed to %s", casing, d.ModelID)
		}
		if !strings.EqualFold(d.Match, "tiananmen") {
			rt.Fatalf("unexpected match %q", d.Match)
		}
	})
}
