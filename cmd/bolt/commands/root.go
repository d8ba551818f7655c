package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bolt/internal/app"
	"bolt/internal/services/identity"
	"bolt/internal/store"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
)

// Execute builds the root command and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:   "bolt",
		Short: "Peer-to-peer encrypted file transfer pairing tools",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".bolt")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			fs := store.NewFileStore(home)
			appCtx = app.New(identity.New(fs, fs))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.bolt)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(initCmd(), fingerprintCmd(), codeCmd(), sasCmd(), hashCmd(), verifyCmd())
	return root.Execute()
}
