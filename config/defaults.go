package config

// DefaultConfig returns the built-in routing table. It mirrors the
// operator's working notes: Kimi is the primary endpoint for technical
// and scripting topics, Claude handles politically sensitive material,
// Gemini stands by as the multimodal alternate.
func DefaultConfig() *Config {
	return &Config{
		Routing: DefaultRoutingConfig(),
		Log:     DefaultLogConfig(),
	}
}

// DefaultRoutingConfig returns the built-in routing table.
func DefaultRoutingConfig() RoutingConfig {
	return RoutingConfig{
		DefaultModel: "kimi",
		Models: []ModelConfig{
			{
				ID:              "kimi",
				Name:            "Kimi (Moonshot AI)",
				BestFor:         []string{"blender scripting", "python", "classical architecture", "3d modeling", "geometry"},
				AvoidFor:        []string{"politically sensitive topics", "contemporary dissident artists"},
				ComplianceNotes: "PRC-hosted endpoint; politically sensitive material may be refused, sanitized, or logged under local content regulations.",
			},
			{
				ID:              "claude",
				Name:            "Claude (Anthropic)",
				BestFor:         []string{"politically sensitive art history", "contemporary dissident artists", "cultural heritage destruction"},
				ComplianceNotes: "US-hosted endpoint; suited to topics a PRC-hosted endpoint may refuse or sanitize.",
			},
			{
				ID:              "gemini",
				Name:            "Gemini (Google)",
				BestFor:         []string{"multimodal analysis", "image-heavy research"},
				ComplianceNotes: "US-hosted alternate when Claude is unavailable.",
			},
		},
		Aliases: map[string]string{
			"western model": "claude",
			"moonshot":      "kimi",
			"google model":  "gemini",
		},
		SensitiveRules: []SensitiveRule{
			{Keyword: "tiananmen", Model: "claude"},
			{Keyword: "ai weiwei", Model: "claude"},
			{Keyword: "taiwan", Model: "claude"},
			{Keyword: "hong kong", Model: "claude"},
			{Keyword: "tibet", Model: "claude"},
			{Keyword: "xinjiang", Model: "claude"},
			{Keyword: "taliban", Model: "claude"},
			{Keyword: "isis", Model: "claude"},
			{Keyword: "cultural heritage destruction", Model: "claude"},
			{Keyword: "dissident", Model: "claude"},
		},
		TechnicalKeywords: []string{
			"blender",
			"python scripting",
			"python",
			"geometry nodes",
			"bpy",
			"classical architecture",
			"palladio",
			"palladian",
			"vignelli",
			"rendering",
			"3d modeling",
		},
	}
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "console",
	}
}
