package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geomarker/markertiler/internal/engine"
	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/modeltest"
)

func newLoadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <geo-url-file>",
		Short: "Load a file of geo URLs into the pyramid and print tile counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, lines, err := loadGeoURLFile(args[0])
			if err != nil {
				return err
			}

			sel := modeltest.NewMockSelectionModel()
			eng := engine.New(engine.Config{})
			eng.SetModelHelper(m, sel)

			root := geoindex.TileIndex{}
			fmt.Printf("loaded %d lines (%d parsed items)\n", len(lines), m.RowCount())
			fmt.Printf("root tile: %d items, %d selected\n",
				eng.Tiler.GetTileItemCount(root), eng.Tiler.GetTileSelectedCount(root))
			return nil
		},
	}
	return cmd
}
