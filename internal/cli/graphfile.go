package cli

import (
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/katalvlaran/spanmaze/core"
)

// graphFile is the TOML layout of a graph:
//
//	directed = false
//	vertices = ["E"]   # optional, for isolated vertices
//
//	[[edge]]
//	from = "A"
//	to = "B"
//	weight = 1.5
type graphFile struct {
	Directed bool       `toml:"directed"`
	Vertices []string   `toml:"vertices"`
	Edges    []edgeSpec `toml:"edge"`
}

type edgeSpec struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

type graph = core.AdjacencyGraph[string, core.Edge[string]]

// loadGraph reads and validates a graph file. Listed vertices come first,
// then edge endpoints in file order.
func loadGraph(fs afero.Fs, path string) (*graph, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read graph %s", path)
	}

	var gf graphFile
	md, err := toml.Decode(string(data), &gf)
	if err != nil {
		return nil, errors.Wrapf(err, "parse graph %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Newf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	g := core.NewAdjacencyGraph[string, core.Edge[string]](core.WithDirected(gf.Directed))
	for _, name := range gf.Vertices {
		if name == "" {
			return nil, errors.Newf("%s: empty vertex name", path)
		}
		g.AddVertex(name)
	}
	for i, e := range gf.Edges {
		if e.From == "" || e.To == "" {
			return nil, errors.Newf("%s: edge #%d: from and to are required", path, i+1)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, errors.Newf("%s: edge #%d: weight must be finite", path, i+1)
		}
		if err := g.AddEdge(core.NewEdge(e.From, e.To, e.Weight)); err != nil {
			return nil, errors.Wrapf(err, "%s: edge #%d", path, i+1)
		}
	}

	return g, nil
}
