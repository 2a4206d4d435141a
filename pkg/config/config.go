// Package config defines the service configuration, loaded from an optional
// TOML file and SEARCHD_ environment variables.
package config

// Config is the full configuration tree for the search service.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Chunking  ChunkingConfig  `mapstructure:"chunking"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Summary   SummaryConfig   `mapstructure:"summary"`
	Search    SearchConfig    `mapstructure:"search"`
	Events    EventsConfig    `mapstructure:"events"`
}

type APIConfig struct {
	Listen string `mapstructure:"listen"`
}

type StorageConfig struct {
	Driver      string `mapstructure:"driver"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

type ChunkingConfig struct {
	MaxChars int `mapstructure:"max_chars"`
}

type HTTPProviderConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIToken string `mapstructure:"api_token"`
}

type EmbeddingConfig struct {
	Provider  string             `mapstructure:"provider"`
	Dimension int                `mapstructure:"dimension"`
	HTTP      HTTPProviderConfig `mapstructure:"http"`
}

type SummaryConfig struct {
	Provider string             `mapstructure:"provider"`
	Prompt   string             `mapstructure:"prompt"`
	HTTP     HTTPProviderConfig `mapstructure:"http"`
}

type SearchConfig struct {
	LexicalThreshold float64 `mapstructure:"lexical_threshold"`
	VectorThreshold  float64 `mapstructure:"vector_threshold"`
}

type EventsConfig struct {
	Provider string   `mapstructure:"provider"`
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() Config {
	return Config{
		API: APIConfig{
			Listen: ":8080",
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Chunking: ChunkingConfig{
			MaxChars: 1200,
		},
		Embedding: EmbeddingConfig{
			Provider:  "mock",
			Dimension: 768,
			HTTP: HTTPProviderConfig{
				BaseURL: "http://localhost:8000",
			},
		},
		Summary: SummaryConfig{
			Provider: "mock",
			HTTP: HTTPProviderConfig{
				BaseURL: "http://localhost:8000",
			},
		},
		Search: SearchConfig{
			LexicalThreshold: 0.1,
			VectorThreshold:  0.35,
		},
		Events: EventsConfig{
			Provider: "nop",
			Topic:    "search-service.documents",
		},
	}
}
