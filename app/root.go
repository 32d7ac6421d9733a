// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GoFrontPage/GoFrontPage/internal/config"
	"github.com/GoFrontPage/GoFrontPage/internal/logger"
)

const (
	// EnvConfigPath names the environment variable holding the config directory.
	EnvConfigPath = "GOFRONTPAGE_CONFIG_PATH"

	defaultConfigPath = "./etc/"
)

var (
	cfg     config.Config //nolint:gochecknoglobals
	devMode bool          //nolint:gochecknoglobals

	rootCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "gofrontpage",
		Short: "GoFrontPage serves a small content site with a selectable front page",
		Long: `GoFrontPage serves a small content site whose front page can show any
published item of any public content type instead of the latest posts.`,
		Args:              cobra.OnlyValidArgs,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Directory containing main.toml")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindEnv("config", EnvConfigPath)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute() //nolint:wrapcheck
}

// configPath returns the config directory from flag or environment with a trailing slash.
func configPath() string {
	p := viper.GetString("config")
	if p == "" {
		p = defaultConfigPath
	}

	if !strings.HasSuffix(p, "/") {
		p += "/"
	}

	return p
}

func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath()); err != nil {
		return err //nolint:wrapcheck
	}

	if devMode {
		cfg.DevMode = true
	}

	return logger.Init(cfg.Log) //nolint:wrapcheck
}
