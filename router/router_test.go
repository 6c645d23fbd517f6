package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/curatorlabs/topicroute/config"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := New(config.DefaultConfig(), WithLogger(zap.NewNop()))
	require.NoError(t, err)
	return r
}

func TestRouter_Select_Keywords(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		topic      string
		wantModel  string
		wantReason Reason
	}{
		{
			name:       "sensitive keyword routes to claude",
			topic:      "Tank Man photographs from Tiananmen Square",
			wantModel:  "claude",
			wantReason: ReasonSensitiveKeyword,
		},
		{
			name:       "sensitive match is case-insensitive",
			topic:      "protest art after TIANANMEN",
			wantModel:  "claude",
			wantReason: ReasonSensitiveKeyword,
		},
		{
			name:       "dissident artist routes to claude",
			topic:      "Ai Weiwei's Sunflower Seeds installation",
			wantModel:  "claude",
			wantReason: ReasonSensitiveKeyword,
		},
		{
			name:       "technical keyword routes to primary",
			topic:      "Blender metaball cluster with dramatic lighting",
			wantModel:  "kimi",
			wantReason: ReasonTechnicalKeyword,
		},
		{
			name:       "python scripting routes to primary",
			topic:      "Python scripting for a Palladian villa generator",
			wantModel:  "kimi",
			wantReason: ReasonTechnicalKeyword,
		},
		{
			name:       "sensitive wins over technical",
			topic:      "Blender reconstruction of Tiananmen gate",
			wantModel:  "claude",
			wantReason: ReasonSensitiveKeyword,
		},
		{
			name:       "empty topic falls back to default",
			topic:      "",
			wantModel:  "kimi",
			wantReason: ReasonDefault,
		},
		{
			name:       "unmatched topic falls back to default",
			topic:      "Venetian color theory in the cinquecento",
			wantModel:  "kimi",
			wantReason: ReasonDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := r.Select(tt.topic, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, d.ModelID)
			assert.Equal(t, tt.wantReason, d.Reason)
			assert.NotEmpty(t, d.Explanation)
			if tt.wantReason == ReasonDefault {
				assert.Empty(t, d.Match)
			} else {
				assert.NotEmpty(t, d.Match)
			}
		})
	}
}

func TestRouter_Select_ExplicitDirective(t *testing.T) {
	r := newTestRouter(t)

	t.Run("directive wins over technical keywords", func(t *testing.T) {
		d, err := r.Select("Blender geometry nodes for the Villa Rotonda", "Switch to Western model")
		require.NoError(t, err)
		assert.Equal(t, "claude", d.ModelID)
		assert.Equal(t, ReasonExplicitOverride, d.Reason)
	})

	t.Run("directive wins over sensitive keywords", func(t *testing.T) {
		d, err := r.Select("Ai Weiwei retrospective", "use gemini for this one")
		require.NoError(t, err)
		assert.Equal(t, "gemini", d.ModelID)
		assert.Equal(t, ReasonExplicitOverride, d.Reason)
	})

	t.Run("directive naming the model ID directly", func(t *testing.T) {
		d, err := r.Select("", "kimi")
		require.NoError(t, err)
		assert.Equal(t, "kimi", d.ModelID)
	})

	t.Run("unknown model fails loudly", func(t *testing.T) {
		d, err := r.Select("anything", "switch to Foo")
		require.Error(t, err)
		assert.Nil(t, d)

		var unknown *UnknownModelError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "switch to Foo", unknown.Directive)
		assert.Equal(t, []string{"claude", "gemini", "kimi"}, unknown.Known)
	})
}

func TestRouter_Select_Idempotent(t *testing.T) {
	r := newTestRouter(t)

	first, err := r.Select("Tiananmen protest posters", "")
	require.NoError(t, err)
	second, err := r.Select("Tiananmen protest posters", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRouter_Select_Observer(t *testing.T) {
	obs := &recordingObserver{}
	r, err := New(config.DefaultConfig(), WithObserver(obs))
	require.NoError(t, err)

	_, err = r.Select("Blender camera rig", "")
	require.NoError(t, err)
	_, err = r.Select("", "route via Foo")
	require.Error(t, err)

	assert.Equal(t, []string{"kimi/technical_keyword"}, obs.decisions)
	assert.Equal(t, 1, obs.unknown)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Routing.DefaultModel = "nonexistent"

	_, err := New(cfg)
	require.Error(t, err)
}

type recordingObserver struct {
	decisions []string
	unknown   int
}

func (o *recordingObserver) ObserveDecision(modelID string, reason Reason) {
	o.decisions = append(o.decisions, modelID+"/"+string(reason))
}

func (o *recordingObserver) ObserveUnknownDirective() {
	o.unknown++
}
