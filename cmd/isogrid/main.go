package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"isogrid/internal/geom"
	"isogrid/internal/tui"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "isogrid [document.json]",
		Short: "Interactive isothetic polygon workbench",
		Long: `isogrid draws axis-aligned polygons on an infinite terminal grid,
intersects them through grid decomposition, and clips them against a
convex boundary. Polygons are exchanged as JSON documents of {x, y}
vertex rings.

With no arguments an empty session starts; pass a document to preload
its polygons.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var m tui.Model
			if len(args) == 1 {
				m = tui.NewWithPath(args[0])
			} else {
				m = tui.New()
			}
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			return err
		},
	}
	root.AddCommand(intersectCmd(), clipCmd())
	return root
}

func intersectCmd() *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "intersect",
		Short: "Intersect all polygons of a document",
		Long: `intersect folds every polygon of the input document through the grid
decomposition and writes the input polygons together with the surviving
cells to the output document. An empty intersection writes a document
without an intersection layer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := geom.LoadDocument(inPath)
			if err != nil {
				return err
			}
			cells, err := geom.IntersectAll(doc.Rings())
			if err != nil {
				return err
			}
			rings := make([]geom.Ring, 0, len(cells))
			area := 0.0
			for _, c := range cells {
				rings = append(rings, c.Ring())
				area += c.Area()
			}
			if err := geom.NewDocument(doc.Rings(), rings).Save(outPath); err != nil {
				return err
			}
			if len(cells) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no common intersection found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cells, area %g\n", len(cells), area)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "input polygon document")
	cmd.Flags().StringVarP(&outPath, "out", "o", tui.ExportFile, "output document")
	cmd.MarkFlagRequired("in")
	return cmd
}

func clipCmd() *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Clip the first polygon of a document by the second",
		Long: `clip runs the boundary-walking clip of the document's first polygon
against its second, which must be convex, and writes the resulting ring
as the output document's intersection layer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := geom.LoadDocument(inPath)
			if err != nil {
				return err
			}
			rings := doc.Rings()
			if len(rings) < 2 {
				return geom.ErrNeedTwoPolygons
			}
			out := geom.Clip(rings[0], rings[1])
			var result []geom.Ring
			if len(out) > 0 {
				result = []geom.Ring{out}
			}
			if err := geom.NewDocument(rings, result).Save(outPath); err != nil {
				return err
			}
			if len(out) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no common intersection found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d vertices, area %g\n", len(out), out.Area())
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "input polygon document")
	cmd.Flags().StringVarP(&outPath, "out", "o", tui.ExportFile, "output document")
	cmd.MarkFlagRequired("in")
	return cmd
}
