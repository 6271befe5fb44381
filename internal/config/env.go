// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the env and
// envPrefix tags of [StructuredConfig]. SERVER_CORS_ORIGIN entries are
// trimmed and empty entries dropped, the same way the -cors-origin flag
// treats them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Server.CORSOrigins = cleanOrigins(cfg.Server.CORSOrigins)
	return nil
}

func cleanOrigins(origins []string) []string {
	if origins == nil {
		return nil
	}

	cleaned := origins[:0]
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
