// Package config loads the scoring policy by layering an optional YAML file
// and environment variables over the built-in defaults.
//
// Order of precedence (low -> high):
//  1. scoring.DefaultPolicy()
//  2. YAML file pointed to by NEXUS_SCORING_CONFIG (or --config)
//  3. environment variables with the NEXUS_SCORING_ prefix
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cyranoaladin/nexus-scoring/internal/scoring"
)

// EnvConfigPath names the environment variable holding the policy file path.
const EnvConfigPath = "NEXUS_SCORING_CONFIG"

const envPrefix = "NEXUS_SCORING_"

// Load builds the scoring policy. path overrides the NEXUS_SCORING_CONFIG
// environment variable; empty means no file layer.
func Load(path string) (scoring.Policy, error) {
	policy := scoring.DefaultPolicy()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return scoring.Policy{}, err
		}
	}

	// NEXUS_SCORING_STRESS_ALERT_MIN -> stress_alert_min, matching the
	// koanf tags on scoring.Policy.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return scoring.Policy{}, err
	}

	if err := k.UnmarshalWithConf("", &policy, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return scoring.Policy{}, err
	}

	if err := validate(policy); err != nil {
		return scoring.Policy{}, err
	}
	return policy, nil
}

func validate(p scoring.Policy) error {
	if len(p.DomainOrder) == 0 {
		return errors.New("domain_order must not be empty")
	}
	b := p.PriorityBands
	if !(b.Critical < b.High && b.High < b.Medium) {
		return errors.New("priority_bands must be strictly increasing")
	}
	if p.Thresholds.Conditional.Readiness > p.Thresholds.Confirmed.Readiness {
		return errors.New("conditional readiness threshold must not exceed confirmed")
	}
	return nil
}
