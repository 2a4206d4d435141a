// Package searchdcmder
package searchdcmder

import (
	"github.com/spf13/cobra"

	servecmder "github.com/neviswealth/search-service/cmd/searchd/serve"
)

const searchdLongDesc string = `searchd is the document search service for the client back office.

It ingests client documents, chunks and embeds them, and serves hybrid
lexical and semantic search over clients and documents.

Run the server using:
  searchd serve        Run the API server`

const searchdShortDesc string = "searchd - client document search"

func NewSearchdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "searchd",
		Short: searchdShortDesc,
		Long:  searchdLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())

	return cmd
}
