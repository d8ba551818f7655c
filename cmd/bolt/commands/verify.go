package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bolt/internal/crypto"
	"bolt/internal/peercode"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <peer-code> <pubkey-hex>",
		Short: "Pin or verify a peer's identity key",
		Long: "Record the identity key presented for a peer code on first sight, " +
			"and reject any later key that differs from the pin.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !peercode.IsValid(args[0]) {
				return fmt.Errorf("invalid pairing code: %q", args[0])
			}
			key, err := crypto.PublicKeyFromHex(args[1])
			if err != nil {
				return err
			}
			if err := appCtx.IDs.VerifyPeer(peercode.Normalize(args[0]), key); err != nil {
				return err
			}
			fmt.Println("Peer key OK.")
			return nil
		},
	}
}
