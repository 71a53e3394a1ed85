package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/dijkstra"
)

func newPathCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "path GRAPH"
	cmd.Short = "Print the shortest path between two vertices of a graph file"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runPath(cmd, v, fs, args[0]) }

	cmd.Flags().String("from", "", "Start `vertex`")
	cmd.Flags().String("to", "", "End `vertex`")
	cmd.Flags().String("format", "table", "The output format {table|md|csv}")

	return cmd
}

func runPath(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, path string) error {
	logger := loggerFromContext(cmd.Context())
	from, to := v.GetString("from"), v.GetString("to")
	format := v.GetString("format")
	if from == "" || to == "" {
		return errors.New("both --from and --to are required")
	}
	if err := checkTableFormat(format); err != nil {
		return err
	}

	g, err := loadGraph(fs, path)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "file", path, "directed", g.Directed(), "vertices", g.VertexCount())

	p := newProgress(logger)
	sp, err := dijkstra.Dijkstra[string, core.Edge[string]]().FindShortestPath(g, from, to)
	if err != nil {
		return errors.Wrapf(err, "shortest path from %q", from)
	}
	if !sp.Exists() {
		return errors.Newf("no path from %q to %q", from, to)
	}
	p.done("Found shortest path")
	logger.Debug("path", "vertices", sp.Vertices(), "weight", sp.TotalWeight())

	printEdges(cmd.OutOrStdout(), format, sp.Edges())
	return nil
}
