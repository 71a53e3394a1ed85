package cli

import (
	"bytes"
	"fmt"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanmaze/maze"
	"github.com/katalvlaran/spanmaze/prim_kruskal"
)

var carveFormats = []string{"text", "dot", "svg"}

func newCarveCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "carve"
	cmd.Short = "Carve a random perfect maze"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runCarve(cmd, v, fs) }

	cmd.Flags().Int("width", 16, "Maze width in rooms")
	cmd.Flags().Int("height", 8, "Maze height in rooms")
	cmd.Flags().Uint64("seed", 0, "Random seed; 0 picks one from the clock")
	cmd.Flags().String("algorithm", prim_kruskal.MethodKruskal, "Spanning tree `algorithm` {kruskal|prim}")
	cmd.Flags().String("format", "text", "The output format {text|dot|svg}")
	cmd.Flags().Bool("solve", false, "Mark the route from the top-left to the bottom-right room")
	cmd.Flags().Bool("longest", false, "Mark a longest route in the maze instead")
	cmd.Flags().Bool("color", false, "Colour text output")
	cmd.Flags().StringP("out", "o", "", "Write to `file` instead of stdout")

	return cmd
}

func runCarve(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	logger := loggerFromContext(cmd.Context())
	width, height := v.GetInt("width"), v.GetInt("height")
	format := v.GetString("format")
	algorithm := v.GetString("algorithm")
	if !slices.Contains(carveFormats, format) {
		return errors.Newf("unknown format: %s", format)
	}

	seed := v.GetUint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("carving maze", "width", width, "height", height, "seed", seed)

	finder, err := prim_kruskal.New[maze.Room, maze.Passage](algorithm)
	if err != nil {
		return errors.Wrapf(err, "algorithm %q", algorithm)
	}
	m, err := maze.NewGridMaze(width, height)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	if err := maze.Carve(m, maze.NewKruskalCarver(maze.NewRand(seed), maze.WithFinder(finder))); err != nil {
		return errors.Wrap(err, "carve")
	}
	p.done(fmt.Sprintf("Carved %dx%d maze", width, height))
	logger.Debug("carved", "passages", m.Removed().Cardinality(), "connected", maze.Connected(m))

	var route []maze.Room
	switch {
	case v.GetBool("longest"):
		route, err = maze.LongestRoute(cmd.Context(), m)
		if err != nil {
			return errors.Wrap(err, "longest route")
		}
		logger.Debug("longest route", "from", route[0], "to", route[len(route)-1], "rooms", len(route))
	case v.GetBool("solve"):
		route, err = maze.Solve(m, maze.Room{}, maze.Room{X: width - 1, Y: height - 1})
		if err != nil {
			return errors.Wrap(err, "solve")
		}
		logger.Debug("solved maze", "rooms", len(route))
	}

	var buf bytes.Buffer
	switch format {
	case "text":
		opts := maze.TextOptions{Path: route, Styled: v.GetBool("color")}
		if err := maze.RenderText(&buf, m, opts); err != nil {
			return err
		}
	case "dot":
		buf.WriteString(maze.ToDOT(m, route))
	case "svg":
		svg, err := maze.RenderSVG(cmd.Context(), maze.ToDOT(m, route))
		if err != nil {
			return errors.Wrap(err, "render svg")
		}
		buf.Write(svg)
	}

	if out := v.GetString("out"); out != "" {
		if err := afero.WriteFile(fs, out, buf.Bytes(), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", out)
		}
		logger.Info("wrote maze", "file", out, "format", format)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
