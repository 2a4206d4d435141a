package main

import (
	"os"

	searchdcmder "github.com/neviswealth/search-service/cmd/searchd"
)

func main() {
	cmd := searchdcmder.NewSearchdCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
