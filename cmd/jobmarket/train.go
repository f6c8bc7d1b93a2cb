package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobmarket/internal/store"
	"jobmarket/internal/train"
)

var trainSalaryCmd = &cobra.Command{
	Use:   "train-salary",
	Short: "Train the salary model from stored postings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.Database.Path, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		model, err := train.SalaryModel(cmd.Context(), st, cfg.Models.Dir, logger)
		if err != nil {
			return err
		}
		logger.Info("salary model written",
			zap.String("dir", cfg.Models.Dir),
			zap.Int("trained_on", model.TrainedOn),
		)
		return nil
	},
}

var trainClassifierCmd = &cobra.Command{
	Use:   "train-classifier",
	Short: "Train the category classifier from stored postings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.Database.Path, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		model, err := train.CategoryModel(cmd.Context(), st, cfg.Models.Dir, cfg.Models.RulesFile, logger)
		if err != nil {
			return err
		}
		logger.Info("classifier model written",
			zap.String("dir", cfg.Models.Dir),
			zap.Int("trained_on", model.TrainedOn),
			zap.Strings("classes", model.Classifier.Classes),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainSalaryCmd)
	rootCmd.AddCommand(trainClassifierCmd)
}
