package config

import (
	"runtime"
	"slices"
	"time"
)

const (
	DefaultTokenIssuer     = "go-task-keeper"
	DefaultTokenDuration   = 2 * time.Hour
	DefaultBcryptCost      = 10
	DefaultVersion         = "dev"
	DefaultLogLevel        = "info"
	DefaultHTTPAddress     = ":4001"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxListDelay    = 5 * time.Second
	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 4
	DefaultConnMaxLifetime = 30 * time.Minute

	DefaultAdapterAddress = "http://localhost:4001"
	DefaultAdapterTimeout = 10 * time.Second
)

// DefaultCORSOrigins are always allowed. Configured origins are added to them.
var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://qa-practice-client.web.app",
}

// withDefaultOrigins returns DefaultCORSOrigins followed by the configured
// origins that are not already among them.
func withDefaultOrigins(configured []string) []string {
	origins := append([]string(nil), DefaultCORSOrigins...)
	for _, o := range configured {
		if !slices.Contains(origins, o) {
			origins = append(origins, o)
		}
	}
	return origins
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			Version:       DefaultVersion,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    DefaultMaxOpenConns,
				MaxIdleConns:    DefaultMaxIdleConns,
				ConnMaxLifetime: DefaultConnMaxLifetime,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxListDelay:    DefaultMaxListDelay,
			CORSOrigins:     append([]string(nil), DefaultCORSOrigins...),
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			Hashers: runtime.NumCPU(),
		},
	}
}
