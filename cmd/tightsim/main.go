// Command tightsim matches query graphs against data graphs with tight
// simulation and generates inputs for experiments.
//
//	tightsim gen --n 1000 --p 0.003 --labels 5 --seed 1 -o data.yaml
//	tightsim mutate query.yaml --per-size 3 --per-inc 4 --out-dir variants
//	tightsim match data.yaml query.yaml --workers 8
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var (
	flagConfig   string
	flagLogLevel string
	log          = logrus.New()
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("tightsim version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("tightsim version %s-dev", version)
}

// configFile holds defaults read from --config. Flags set on the command
// line win over the file.
type configFile struct {
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
	Seed     *int64 `yaml:"seed"`
}

var cfg configFile

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "tightsim",
		Short:   "Tight-simulation graph pattern matching",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file with defaults (log_level, workers, seed)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newMutateCmd())
	root.AddCommand(newGenCmd())

	return root
}

// setup loads the config file and configures the logger.
func setup(cmd *cobra.Command) error {
	cfg = configFile{}
	if flagConfig != "" {
		data, err := os.ReadFile(flagConfig)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", flagConfig, err)
		}
	}

	levelName := flagLogLevel
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		levelName = cfg.LogLevel
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)

	return nil
}

// seedFrom resolves the --seed flag against the config file.
func seedFrom(cmd *cobra.Command, flagValue int64) int64 {
	if !cmd.Flags().Changed("seed") && cfg.Seed != nil {
		return *cfg.Seed
	}
	return flagValue
}
