package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jobmarket/internal/adzuna"
	"jobmarket/internal/etl"
	"jobmarket/internal/ingest"
	"jobmarket/internal/secrets"
	"jobmarket/internal/store"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch, clean and store postings once, then exit",
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)

	refreshCmd.Flags().StringP("keyword", "k", "data", "search keyword")
	refreshCmd.Flags().StringP("country", "c", "", "upstream country code (default from config)")
	refreshCmd.Flags().IntP("results", "n", 50, "number of postings to fetch")
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	appKey, err := secrets.AdzunaAppKey(cfg.Adzuna.KeyringAccount, cfg.Adzuna.AppKey)
	if err != nil {
		return err
	}
	if cfg.Adzuna.AppID == "" {
		return errors.New("adzuna.app-id is not configured")
	}

	st, err := store.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	client := adzuna.New(cfg.Adzuna.AppID, appKey, logger)
	if cfg.Adzuna.BaseURL != "" {
		client.BaseURL = cfg.Adzuna.BaseURL
	}

	svc := &ingest.Service{
		Client:      client,
		Store:       st,
		Transformer: etl.NewTransformer(logger),
		Logger:      logger,
	}

	keyword, _ := cmd.Flags().GetString("keyword")
	country, _ := cmd.Flags().GetString("country")
	results, _ := cmd.Flags().GetInt("results")
	if country == "" {
		country = cfg.Adzuna.Country
	}

	res := svc.Refresh(cmd.Context(), keyword, country, results)
	out, _ := json.Marshal(res)
	fmt.Println(string(out))
	return nil
}
