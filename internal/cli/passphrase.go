package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errPassphraseMismatch = errors.New("passphrases do not match")

func newSetPassphraseCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set-passphrase",
		Short: "Set the owner passphrase that protects the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := rt.readSecret("New passphrase: ")
			if err != nil {
				return err
			}
			confirmation, err := rt.readSecret("Repeat passphrase: ")
			if err != nil {
				return err
			}
			if string(passphrase) != string(confirmation) {
				return errPassphraseMismatch
			}

			store, err := rt.openStore()
			if err != nil {
				return err
			}
			if err := store.ownerAuth.SetPassphrase(string(passphrase)); err != nil {
				return fmt.Errorf("set passphrase: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Owner passphrase saved. The API now requires login.")
			return nil
		},
	}
}
