package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bolt/internal/crypto"
	"bolt/internal/sas"
)

func sasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sas <identityA> <identityB> <ephemeralA> <ephemeralB>",
		Short: "Compute the short authentication string for a key exchange",
		Long: "Compute the 6-character SAS from both peers' hex-encoded identity and " +
			"ephemeral public keys. Both sides obtain the same string regardless of " +
			"argument order within each pair.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([][]byte, 4)
			for i, arg := range args {
				b, err := crypto.FromHex(arg)
				if err != nil {
					return fmt.Errorf("key %d: %w", i+1, err)
				}
				keys[i] = b
			}
			s, err := sas.Compute(keys[0], keys[1], keys[2], keys[3])
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
}
