// Command markertiler-demo exercises the marker tiler and clusterer
// against a plain-text file of geo URLs, without any real map backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:   "markertiler-demo",
		Short: "Exercise the marker pyramid and clusterer against a file of coordinates",
		Version: fmt.Sprintf("%s (commit %s)", version, commit),
	}

	root.AddCommand(newLoadCommand())
	root.AddCommand(newClusterCommand())
	root.AddCommand(newIterateCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
