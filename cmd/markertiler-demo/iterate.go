package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geomarker/markertiler/internal/engine"
	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/modeltest"
)

func newIterateCommand() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "iterate <geo-url-file>",
		Short: "List every non-empty tile at a level across the whole globe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadGeoURLFile(args[0])
			if err != nil {
				return err
			}

			sel := modeltest.NewMockSelectionModel()
			eng := engine.New(engine.Config{})
			eng.SetModelHelper(m, sel)

			bounds := geoindex.NormalizeBounds(geoindex.NewCoordinate(-90, -180), geoindex.NewCoordinate(90, 180))

			tiles := eng.Tiler.NonEmptyTiles(level, bounds)
			for _, idx := range tiles {
				coord := idx.ToCoordinates()
				fmt.Printf("level=%d count=%d selected=%d sw=(%.4f,%.4f)\n",
					level, eng.Tiler.GetTileItemCount(idx), eng.Tiler.GetTileSelectedCount(idx),
					coord.Lat, coord.Lon)
			}
			fmt.Printf("%d non-empty tiles at level %d\n", len(tiles), level)
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 2, "Pyramid level to enumerate (0-8)")
	return cmd
}
