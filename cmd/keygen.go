package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"starchain/signing"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Mint a throwaway identity for signing challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		signer, err := signing.GenerateSigner()
		if err != nil {
			return err
		}
		fmt.Printf("identity: %s\n", signer.Identity())
		fmt.Printf("seed:     %s\n", hex.EncodeToString(signer.Seed()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
