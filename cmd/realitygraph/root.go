package realitygraph

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thom899g/autonomous-cross-d/pkg/logger"
)

var (
	cfgFile string
	log     *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "realitygraph",
		Short: "Realitygraph: cross-domain data model tool",
		Long: `Realitygraph inspects the data model of the autonomous cross-domain
reality-graph: the closed node type and capability type tag sets and the
records built on them.

Complete documentation is available at https://github.com/thom899g/autonomous-cross-d`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			return initLogger()
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.realitygraph.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	// Bind flags to viper
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".realitygraph" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".realitygraph")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogger() error {
	level, err := logger.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return err
	}
	log = logger.NewLogger(logger.Options{
		Level:  level,
		Format: viper.GetString("log.format"),
	})
	return nil
}
