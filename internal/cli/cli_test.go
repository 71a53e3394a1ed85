package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmaze/internal/cli"
	"github.com/katalvlaran/spanmaze/prim_kruskal"
)

const squareGraph = `
[[edge]]
from = "A"
to = "B"
weight = 1

[[edge]]
from = "B"
to = "C"
weight = 2

[[edge]]
from = "C"
to = "D"
weight = 1

[[edge]]
from = "A"
to = "D"
weight = 5
`

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

// run executes the command tree on fs and returns stdout and stderr.
func run(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	v := viper.New()
	v.SetFs(fs)
	cmd := cli.NewRootCmd(v, fs)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd(viper.New(), afero.NewMemMapFs())

	assert.Equal(t, "mazegen", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestMST(t *testing.T) {
	fs := newFs(t, map[string]string{"/square.toml": squareGraph})

	for _, args := range [][]string{
		{"mst", "/square.toml", "--format", "csv"},
		{"mst", "/square.toml", "--format", "csv", "--union-find", "quickfind"},
	} {
		out, _, err := run(t, fs, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "1,A,B,1\n")
		assert.Contains(t, out, "2,C,D,1\n")
		assert.Contains(t, out, "3,B,C,2\n")
		assert.Contains(t, out, "Total,4")
		assert.NotContains(t, out, ",A,D,")
	}
}

func TestMSTPrim(t *testing.T) {
	fs := newFs(t, map[string]string{"/square.toml": squareGraph})

	out, _, err := run(t, fs, "mst", "/square.toml", "--algorithm", "prim", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "1,A,B,1\n")
	assert.Contains(t, out, "2,B,C,2\n")
	assert.Contains(t, out, "3,C,D,1\n")
}

func TestMSTErrors(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/square.toml":   squareGraph,
		"/split.toml":    "vertices = [\"Z\"]\n" + squareGraph,
		"/directed.toml": "directed = true\n" + squareGraph,
		"/typo.toml":     "[[edge]]\nfrom = \"A\"\nto = \"B\"\nweigth = 1\n",
	})

	_, _, err := run(t, fs, "mst", "/split.toml")
	assert.ErrorContains(t, err, "disconnected")

	_, _, err = run(t, fs, "mst", "/directed.toml")
	assert.ErrorContains(t, err, "undirected")

	_, _, err = run(t, fs, "mst", "/typo.toml")
	assert.ErrorContains(t, err, "unknown keys: edge.weigth")

	_, _, err = run(t, fs, "mst", "/missing.toml")
	assert.ErrorContains(t, err, "read graph /missing.toml")

	_, _, err = run(t, fs, "mst", "/square.toml", "--algorithm", "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, _, err = run(t, fs, "mst", "/square.toml", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format: xml")
}

func TestPath(t *testing.T) {
	fs := newFs(t, map[string]string{"/square.toml": squareGraph})

	out, _, err := run(t, fs, "path", "/square.toml", "--from", "A", "--to", "D", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "1,A,B,1\n")
	assert.Contains(t, out, "2,B,C,2\n")
	assert.Contains(t, out, "3,C,D,1\n")
	assert.Contains(t, out, "Total,4")
}

func TestPathErrors(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/square.toml":   squareGraph,
		"/directed.toml": "directed = true\n" + squareGraph,
	})

	_, _, err := run(t, fs, "path", "/square.toml", "--from", "A")
	assert.ErrorContains(t, err, "--from and --to")

	_, _, err = run(t, fs, "path", "/square.toml", "--from", "Q", "--to", "A")
	assert.ErrorContains(t, err, "start vertex not found")

	_, _, err = run(t, fs, "path", "/directed.toml", "--from", "D", "--to", "A")
	assert.ErrorContains(t, err, `no path from "D" to "A"`)
}

func TestEnvAndConfig(t *testing.T) {
	fs := newFs(t, map[string]string{
		"/square.toml":  squareGraph,
		"/mazegen.toml": "algorithm = \"prim\"\nformat = \"csv\"\n",
	})

	out, _, err := run(t, fs, "mst", "/square.toml", "--config", "/mazegen.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "2,B,C,2\n", "config selects prim")

	t.Setenv("MAZEGEN_FORMAT", "md")
	out, _, err = run(t, fs, "mst", "/square.toml", "--config", "/mazegen.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "| B | C |", "environment overrides config")

	out, _, err = run(t, fs, "mst", "/square.toml", "--config", "/mazegen.toml", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2,B,C,2\n", "flag overrides environment")
}

func TestCarve(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, stderr, err := run(t, fs, "carve", "--width", "4", "--height", "3", "--seed", "9", "--out", "/maze.txt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "carving maze")

	data, err := afero.ReadFile(fs, "/maze.txt")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2*3+1)
	for _, l := range lines {
		assert.Len(t, l, 4*4+1)
	}

	again, _, err := run(t, fs, "carve", "--width", "4", "--height", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, string(data), again, "same seed, same maze")
}

func TestCarveFormats(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := run(t, fs, "carve", "--width", "5", "--height", "5", "--seed", "3", "--solve")
	require.NoError(t, err)
	assert.Contains(t, out, " * ")

	out, stderr, err := run(t, fs, "carve", "--width", "6", "--height", "4", "--seed", "3", "--longest", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, " * ")
	assert.Contains(t, stderr, "longest route")

	out, _, err = run(t, fs, "carve", "--width", "3", "--height", "2", "--seed", "3", "--format", "dot", "--algorithm", "prim")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph maze {"))
	assert.Equal(t, 3*2-1, strings.Count(out, " -- "))

	_, _, err = run(t, fs, "carve", "--format", "png")
	assert.ErrorContains(t, err, "unknown format: png")

	_, _, err = run(t, fs, "carve", "--width", "0")
	assert.ErrorContains(t, err, "width and height must be positive")
}
