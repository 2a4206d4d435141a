package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads config.toml from the given
// directory (if any), and binds environment variables with the SEARCHD_
// prefix.
//
// Config precedence (highest to lowest):
//  1. Environment variables (SEARCHD_API_LISTEN, SEARCHD_STORAGE_DRIVER, etc.)
//  2. config.toml file values
//  3. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("SEARCHD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps NewDefaultConfig as the single
// source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	// API
	v.SetDefault("api.listen", d.API.Listen)

	// Storage
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.postgres_dsn", d.Storage.PostgresDSN)

	// Chunking
	v.SetDefault("chunking.max_chars", d.Chunking.MaxChars)

	// Embedding
	v.SetDefault("embedding.provider", d.Embedding.Provider)
	v.SetDefault("embedding.dimension", d.Embedding.Dimension)
	v.SetDefault("embedding.http.base_url", d.Embedding.HTTP.BaseURL)
	v.SetDefault("embedding.http.api_token", d.Embedding.HTTP.APIToken)

	// Summary
	v.SetDefault("summary.provider", d.Summary.Provider)
	v.SetDefault("summary.prompt", d.Summary.Prompt)
	v.SetDefault("summary.http.base_url", d.Summary.HTTP.BaseURL)
	v.SetDefault("summary.http.api_token", d.Summary.HTTP.APIToken)

	// Search
	v.SetDefault("search.lexical_threshold", d.Search.LexicalThreshold)
	v.SetDefault("search.vector_threshold", d.Search.VectorThreshold)

	// Events
	v.SetDefault("events.provider", d.Events.Provider)
	v.SetDefault("events.brokers", d.Events.Brokers)
	v.SetDefault("events.topic", d.Events.Topic)
}

// FromViper materializes a Config from a configured viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		API: APIConfig{
			Listen: v.GetString("api.listen"),
		},
		Storage: StorageConfig{
			Driver:      v.GetString("storage.driver"),
			PostgresDSN: v.GetString("storage.postgres_dsn"),
		},
		Chunking: ChunkingConfig{
			MaxChars: v.GetInt("chunking.max_chars"),
		},
		Embedding: EmbeddingConfig{
			Provider:  v.GetString("embedding.provider"),
			Dimension: v.GetInt("embedding.dimension"),
			HTTP: HTTPProviderConfig{
				BaseURL:  v.GetString("embedding.http.base_url"),
				APIToken: v.GetString("embedding.http.api_token"),
			},
		},
		Summary: SummaryConfig{
			Provider: v.GetString("summary.provider"),
			Prompt:   v.GetString("summary.prompt"),
			HTTP: HTTPProviderConfig{
				BaseURL:  v.GetString("summary.http.base_url"),
				APIToken: v.GetString("summary.http.api_token"),
			},
		},
		Search: SearchConfig{
			LexicalThreshold: v.GetFloat64("search.lexical_threshold"),
			VectorThreshold:  v.GetFloat64("search.vector_threshold"),
		},
		Events: EventsConfig{
			Provider: v.GetString("events.provider"),
			Brokers:  v.GetStringSlice("events.brokers"),
			Topic:    v.GetString("events.topic"),
		},
	}
}
