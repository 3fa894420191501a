package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
)

var (
	cfg    *config.Config
	logger = log.NewModuleLogger("cmd")
)

// rootCmd represents the base command when called without any sub commands
var rootCmd = &cobra.Command{
	Use:               "jsonapi",
	Short:             "A tool for the jsonapi documents.",
	Long:              `It formats and validates the jsonapi documents and resolves the HTTP Accept headers.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().String("log-level", "", "logging level. Possible values: debug3, debug2, debug, info, warning, error, critical")
	rootCmd.PersistentFlags().Bool("no-color", false, "disables the colored output")

	rootCmd.AddCommand(fmtCmd, validateCmd, acceptCmd)
}

// Execute runs the root command. Invalid configuration exits with the code 2.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.IsMajor(err, class.MjrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path != "" {
		if cfg, err = config.ReadConfigFile(path); err != nil {
			return err
		}
	} else if cfg, err = config.ReadConfig(); err != nil {
		if !errors.IsClass(err, class.ConfigReadNotFound) {
			return err
		}
		cfg = config.ReadDefaultConfig()
	}

	level := cfg.LogLevel
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return err
		}
		log.New(cmd.ErrOrStderr(), "jsonapi ", 0)
		if err = log.SetLevel(parsed); err != nil {
			return err
		}
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}
	logger.Debugf("Loaded config: '%s'", path)
	return nil
}

// input opens the file at 'path' or returns the standard input for an empty or '-' path.
func input(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return ioutil.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
