// Package cmd provides the root command and CLI setup for elgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// logFileFlag and verboseFlag configure the global logger before any command runs.
var logFileFlag string
var verboseFlag bool

// configFileFlag points viper at a configuration file other than ./elgen.yaml.
var configFileFlag string

const rootLongDescription = `Elgen scaffolds custom elements in a web-components project.

It creates the element file from a template, optionally with a docs page and
a demo, wires an import of the element into the elements aggregator and
registers a test suite in the test harness.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "elgen",
		Short:         "Custom element scaffolding tool",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := loadConfig(configFileFlag); err != nil {
				return err
			}

			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from config, "+defaultLogFilename+")")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&configFileFlag, configFlagName, "", "config file (default ./"+configFileName+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
