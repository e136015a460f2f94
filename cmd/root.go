package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/szymonw/studylog/internal/config"
	"github.com/szymonw/studylog/internal/i18n"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "studylog",
	Short: "Terminal study session logger",
	Long:  "Studylog tracks timed study sessions task by task and submits them to a shared study sheet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/studylog/config.yaml)")
	rootCmd.PersistentFlags().String("db", "",
		"path to the SQLite ledger file")
	rootCmd.PersistentFlags().String("locale", "",
		"interface language (en, pl)")

	_ = viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("locale", defaults.Locale)
	viper.SetDefault("locations", defaults.Locations)

	viper.SetEnvPrefix("STUDYLOG")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path, err := config.DefaultConfigPath(); err == nil {
		viper.AddConfigPath(filepath.Dir(path))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run. Write a commented template so the sheet endpoint
			// has an obvious place to go.
			if path, perr := config.DefaultConfigPath(); perr == nil {
				if werr := config.WriteDefaultConfig(path); werr == nil {
					viper.SetConfigFile(path)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	setupLogging()
	if err := i18n.Init(cfg.Locale); err != nil {
		fmt.Fprintln(os.Stderr, "load translations:", err)
		os.Exit(1)
	}
}

// setupLogging sends slog to a file next to the config. The TUI owns
// the terminal, so nothing may write to stderr while it runs.
func setupLogging() {
	path, err := config.DefaultConfigPath()
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		return
	}
	logPath := filepath.Join(filepath.Dir(path), "studylog.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
}
