package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lockmeow",
	Short: "Inspect the lockmeow item catalog",
	Long: `lockmeow loads an item manifest into an in-memory catalog (action history,
sorted index, dependency graph and metadata cache) and reports on it.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .lockmeow.yaml)")
	flags.StringP("manifest", "m", "", "item manifest (default items.toml)")
	flags.String("event-log", "", "append catalog events to this JSONL file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("no-color", false, "disable colored output")

	_ = viper.BindPFlag("manifest", flags.Lookup("manifest"))
	_ = viper.BindPFlag("event_log", flags.Lookup("event-log"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lockmeow")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LOCKMEOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
