package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"jobmarket/internal/secrets"
)

var credsCmd = &cobra.Command{
	Use:   "creds",
	Short: "Store or remove the Adzuna API key in the OS keychain",
	RunE:  runCreds,
}

func init() {
	rootCmd.AddCommand(credsCmd)

	credsCmd.Flags().StringP("account", "a", "", "keychain account name (default from adzuna.keyring-account)")
	credsCmd.Flags().Bool("delete", false, "remove the stored API key instead of setting one")
}

func runCreds(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	account, _ := cmd.Flags().GetString("account")
	if account == "" {
		account = cfg.Adzuna.KeyringAccount
	}
	if strings.TrimSpace(account) == "" {
		return errors.New("no keychain account: pass --account or set adzuna.keyring-account")
	}

	if del, _ := cmd.Flags().GetBool("delete"); del {
		if err := secrets.DeleteAdzunaAppKey(account); err != nil {
			return err
		}
		fmt.Printf("API key removed for account %q\n", account)
		return nil
	}

	prompt := promptui.Prompt{
		Label: "Adzuna API key",
		Mask:  '*',
	}
	key, err := prompt.Run()
	if err != nil {
		return err
	}

	if err := secrets.SetAdzunaAppKey(account, key); err != nil {
		return err
	}
	fmt.Printf("API key stored for account %q\n", account)
	return nil
}
