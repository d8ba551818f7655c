package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bolt/internal/integrity"
)

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the SHA-256 digest of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := integrity.HashFile(args[0])
			if err != nil {
				return err
			}
			fmt.Println(digest)
			return nil
		},
	}
}
