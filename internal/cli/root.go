package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every flag name to form its environment variable.
const envPrefix = "MAZEGEN"

// NewRootCmd builds the mazegen command tree. Flag values are read through
// v; files are read from and written to fs.
func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "mazegen"
	cmd.Short = "mazegen carves mazes and explores weighted graphs"
	cmd.Long = `mazegen carves perfect mazes with a randomized Kruskal spanning tree and
runs minimum spanning tree and shortest path searches over TOML graph files.`
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return setup(cmd, v)
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "Read defaults from config `file` (toml, yaml or json)")

	cmd.AddCommand(newCarveCmd(v, fs))
	cmd.AddCommand(newMSTCmd(v, fs))
	cmd.AddCommand(newPathCmd(v, fs))

	return cmd
}

// setup binds the executing command's flags, loads the optional config
// file and attaches a logger to the command context.
func setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfg)
		}
	}

	level := log.InfoLevel
	if v.GetBool("verbose") {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	if cfg := v.ConfigFileUsed(); cfg != "" {
		logger.Debug("loaded config", "file", cfg)
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}
