package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"jobmarket/internal/config"
	"jobmarket/internal/logger"
)

const app = "jobmarket"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobmarket serves job-posting analytics and salary predictions",
		Long: "Jobmarket ingests postings from the Adzuna search API, cleans them\n" +
			"into a local store and serves analytics and ML inference over HTTP.",
		// Default to `serve` so running the binary directly starts the API.
		RunE: runServe,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is jobmarket.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}
	if err := viper.BindEnv("adzuna.app-id", "ADZUNA_APP_ID"); err != nil {
		log.Fatalf("binding ADZUNA_APP_ID environment variable: %v", err)
	}
	if err := viper.BindEnv("adzuna.app-key", "ADZUNA_API_KEY"); err != nil {
		log.Fatalf("binding ADZUNA_API_KEY environment variable: %v", err)
	}
}

func initConfig() {
	// a .env file is optional, same as the original deployment
	_ = godotenv.Load()

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}
