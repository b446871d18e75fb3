// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the wechat-connect authors

// Package config holds configuration for the wechat-connect tooling,
// populated from environment variables via the caarlos0/env library.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrEmptyURL is returned when no probe URL was configured.
var ErrEmptyURL = errors.New("probe url must not be empty")

// Probe configures the errprobe diagnostic tool.
type Probe struct {
	// URL is the endpoint the probe sends its GET request to.
	URL string `env:"PROBE_URL"`
	// RequestTimeout bounds the probe request.
	RequestTimeout time.Duration `env:"PROBE_TIMEOUT" envDefault:"15s"`
	// Strict switches the error detection from the historical
	// substring heuristic to the strict envelope check.
	Strict bool `env:"PROBE_STRICT" envDefault:"false"`
}

// GetProbeConfig builds a [Probe] from the environment and validates
// it.
func GetProbeConfig() (*Probe, error) {
	cfg := &Probe{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (p *Probe) validate() error {
	if p.URL == "" {
		return ErrEmptyURL
	}
	u, err := url.Parse(p.URL)
	if err != nil {
		return fmt.Errorf("invalid probe url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("probe url %q must include scheme and host", p.URL)
	}
	if p.RequestTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %s", p.RequestTimeout)
	}
	return nil
}
