// Package servecmder provides the searchd serve cobra command.
package servecmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neviswealth/search-service/api"
	"github.com/neviswealth/search-service/pkg/chunking"
	"github.com/neviswealth/search-service/pkg/clients"
	"github.com/neviswealth/search-service/pkg/config"
	"github.com/neviswealth/search-service/pkg/docstore"
	"github.com/neviswealth/search-service/pkg/docstore/inmemory"
	"github.com/neviswealth/search-service/pkg/docstore/postgres"
	"github.com/neviswealth/search-service/pkg/documents"
	"github.com/neviswealth/search-service/pkg/embeddings"
	embeddingshttp "github.com/neviswealth/search-service/pkg/embeddings/httpapi"
	embeddingsmock "github.com/neviswealth/search-service/pkg/embeddings/mock"
	"github.com/neviswealth/search-service/pkg/eventstream"
	eventskafka "github.com/neviswealth/search-service/pkg/eventstream/kafka"
	eventsnop "github.com/neviswealth/search-service/pkg/eventstream/nop"
	"github.com/neviswealth/search-service/pkg/logger"
	"github.com/neviswealth/search-service/pkg/search"
	"github.com/neviswealth/search-service/pkg/summary"
	summaryhttp "github.com/neviswealth/search-service/pkg/summary/httpapi"
	summarymock "github.com/neviswealth/search-service/pkg/summary/mock"
)

type serveCommander struct {
	configDir string
	listen    string
	debug     bool
	logger    *zap.Logger
}

const serveLongDesc string = `Run the searchd API server.

Configuration is read from config.toml in the config directory, overridden
by SEARCHD_ environment variables.`

const serveShortDesc string = "Run the searchd API server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}

			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.configDir, "config-dir", "c", "", "Directory containing config.toml")
	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", "", "Address for the API server to listen on (overrides config)")

	return cmd
}

func (c *serveCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	v, err := config.InitViper(c.configDir)
	if err != nil {
		return err
	}
	cfg := config.FromViper(v)
	if c.listen != "" {
		cfg.API.Listen = c.listen
	}

	store, err := c.newStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	embedder, err := c.newEmbedder(cfg)
	if err != nil {
		return err
	}
	defer embedder.Close()

	summarizer, err := c.newSummarizer(cfg)
	if err != nil {
		return err
	}
	defer summarizer.Close()

	publisher, err := c.newPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	chunker := chunking.NewChunker(cfg.Chunking.MaxChars)
	clientsSvc := clients.NewService(store, c.logger)
	documentsSvc := documents.NewService(store, chunker, embedder, summarizer, publisher, c.logger)
	engine := search.NewEngine(search.Config{
		LexicalThreshold: cfg.Search.LexicalThreshold,
		VectorThreshold:  cfg.Search.VectorThreshold,
	}, store, embedder, c.logger)

	server := api.NewServer(api.Config{ListenAddr: cfg.API.Listen}, clientsSvc, documentsSvc, engine, c.logger)

	return server.Run()
}

func (c *serveCommander) newStore(cfg config.Config) (docstore.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		store, err := postgres.NewStore(context.Background(), cfg.Storage.PostgresDSN, cfg.Embedding.Dimension)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres store: %w", err)
		}
		c.logger.Info("using postgres storage")
		return store, nil
	case "memory", "":
		c.logger.Info("using in-memory storage")
		return inmemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}

func (c *serveCommander) newEmbedder(cfg config.Config) (embeddings.Embedder, error) {
	switch cfg.Embedding.Provider {
	case "http":
		c.logger.Info("using http embedding provider",
			zap.String("base_url", cfg.Embedding.HTTP.BaseURL))
		return embeddingshttp.NewEmbedder(embeddingshttp.Config{
			BaseURL:   cfg.Embedding.HTTP.BaseURL,
			APIToken:  cfg.Embedding.HTTP.APIToken,
			Dimension: cfg.Embedding.Dimension,
		}), nil
	case "mock", "":
		c.logger.Info("using mock embedding provider")
		return embeddingsmock.NewEmbedder(cfg.Embedding.Dimension), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Embedding.Provider)
	}
}

func (c *serveCommander) newSummarizer(cfg config.Config) (summary.Summarizer, error) {
	switch cfg.Summary.Provider {
	case "http":
		c.logger.Info("using http summary provider",
			zap.String("base_url", cfg.Summary.HTTP.BaseURL))
		return summaryhttp.NewSummarizer(summaryhttp.Config{
			BaseURL:  cfg.Summary.HTTP.BaseURL,
			APIToken: cfg.Summary.HTTP.APIToken,
			Prompt:   cfg.Summary.Prompt,
		}), nil
	case "mock", "":
		c.logger.Info("using mock summary provider")
		return summarymock.NewSummarizer(), nil
	default:
		return nil, fmt.Errorf("unknown summary provider: %q", cfg.Summary.Provider)
	}
}

func (c *serveCommander) newPublisher(cfg config.Config) (eventstream.Publisher, error) {
	switch cfg.Events.Provider {
	case "kafka":
		if len(cfg.Events.Brokers) == 0 {
			return nil, fmt.Errorf("events.brokers is required for the kafka provider")
		}
		c.logger.Info("publishing events to kafka",
			zap.Strings("brokers", cfg.Events.Brokers),
			zap.String("topic", cfg.Events.Topic))
		return eventskafka.NewPublisher(eventskafka.Config{
			Brokers: cfg.Events.Brokers,
			Topic:   cfg.Events.Topic,
		}, c.logger), nil
	case "nop", "":
		return eventsnop.NewPublisher(), nil
	default:
		return nil, fmt.Errorf("unknown events provider: %q", cfg.Events.Provider)
	}
}
