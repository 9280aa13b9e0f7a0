package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geomarker/markertiler/internal/cluster"
	"github.com/geomarker/markertiler/internal/engine"
	"github.com/geomarker/markertiler/internal/geoindex"
	"github.com/geomarker/markertiler/internal/modeltest"
)

func newClusterCommand() *cobra.Command {
	var level, width, height int

	cmd := &cobra.Command{
		Use:   "cluster <geo-url-file>",
		Short: "Run one clustering pass over a file of geo URLs and print the resulting clusters",
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
			eng.SetViewport(level, bounds)

			backend := newFlatBackend(width, height)
			clusters := eng.Recluster(backend)

			for i, c := range clusters {
				fmt.Printf("cluster %d: count=%d label=%s color=%v pixel=(%d,%d) selected=%s\n",
					i, c.ItemCount, cluster.Label(c.ItemCount), cluster.ColorFor(c.ItemCount),
					c.PixelPos.X, c.PixelPos.Y, c.GroupState)
			}
			fmt.Printf("%d clusters\n", len(clusters))
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 2, "Pyramid level to cluster at (0-8)")
	cmd.Flags().IntVar(&width, "width", 1024, "Demo canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "Demo canvas height in pixels")
	return cmd
}
