package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/barsleague/rosterize/internal/model"
)

var (
	cfgFile string
	verbose bool
	catalog string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rosterize",
	Short: "Rosterize - turn the leadership roster export into a typed hierarchy",
	Long: `Rosterize ingests the league's hand-maintained leadership roster export
and resolves it into a strongly-shaped organizational hierarchy.

It locates the header row, tracks section markers, matches free-text
position titles against the versioned hierarchy catalog, keeps vacant
seats apart from filled ones, and serializes a stable nested structure
that downstream tools can diff, query, and enrich with member-directory
account ids.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Rosterize.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rosterize v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.rosterize/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&catalog, "catalog", "", "hierarchy catalog path (default: configs/hierarchy.yaml)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("catalog.path", rootCmd.PersistentFlags().Lookup("catalog"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.rosterize")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ROSTERIZE_*
	viper.SetEnvPrefix("ROSTERIZE")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the effective configuration from defaults, the
// config file / environment, and flags.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("catalog.path"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := viper.GetString("directory.base_url"); v != "" {
		cfg.Directory.BaseURL = v
	}
	if v := viper.GetDuration("directory.timeout"); v > 0 {
		cfg.Directory.Timeout = v
	}
	if v := viper.GetInt("directory.max_retries"); v > 0 {
		cfg.Directory.MaxRetries = v
	}
	if v := viper.GetInt("concurrency.lookup_workers"); v > 0 {
		cfg.Concurrency.LookupWorkers = v
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	cfg.Output.Verbose = verbose

	return cfg
}
