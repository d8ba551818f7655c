package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bolt/internal/peercode"
)

func codeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Generate and check pairing codes",
	}
	cmd.AddCommand(codeNewCmd(), codeCheckCmd())
	return cmd
}

func codeNewCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a pairing code",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := peercode.Generate
			if long {
				gen = peercode.GenerateLong
			}
			code, err := gen()
			if err != nil {
				return err
			}
			fmt.Println(code)
			return nil
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "generate an 8-symbol XXXX-XXXX code")
	return cmd
}

func codeCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <code>",
		Short: "Check whether a pairing code is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !peercode.IsValid(args[0]) {
				return fmt.Errorf("invalid pairing code: %q", args[0])
			}
			fmt.Println(peercode.Normalize(args[0]))
			return nil
		},
	}
}
