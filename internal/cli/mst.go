package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/disjointset"
	"github.com/katalvlaran/spanmaze/prim_kruskal"
)

func newMSTCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "mst GRAPH"
	cmd.Short = "Print the minimum spanning tree of an undirected graph file"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runMST(cmd, v, fs, args[0]) }

	cmd.Flags().String("algorithm", prim_kruskal.MethodKruskal, "Spanning tree `algorithm` {kruskal|prim}")
	cmd.Flags().String("union-find", "size", "Disjoint sets used by kruskal {size|quickfind}")
	cmd.Flags().String("format", "table", "The output format {table|md|csv}")

	return cmd
}

func runMST(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, path string) error {
	logger := loggerFromContext(cmd.Context())
	algorithm := v.GetString("algorithm")
	format := v.GetString("format")
	if err := checkTableFormat(format); err != nil {
		return err
	}

	var opts []prim_kruskal.Option[string]
	switch uf := v.GetString("union-find"); uf {
	case "size":
	case "quickfind":
		opts = append(opts, prim_kruskal.WithDisjointSets(disjointset.QuickFindFactory[string]()))
	default:
		return errors.Newf("unknown union-find: %s", uf)
	}
	finder, err := prim_kruskal.New[string, core.Edge[string]](algorithm, opts...)
	if err != nil {
		return errors.Wrapf(err, "algorithm %q", algorithm)
	}

	g, err := loadGraph(fs, path)
	if err != nil {
		return err
	}
	if g.Directed() {
		return errors.Newf("%s: spanning trees need an undirected graph", path)
	}
	logger.Debug("loaded graph", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	p := newProgress(logger)
	mst, err := finder.FindMinimumSpanningTree(g)
	if err != nil {
		return errors.Wrap(err, "spanning tree")
	}
	if !mst.Exists() {
		return errors.Newf("%s: graph is disconnected, no spanning tree exists", path)
	}
	p.done("Found spanning tree with " + algorithm)

	printEdges(cmd.OutOrStdout(), format, mst.Edges())
	return nil
}
