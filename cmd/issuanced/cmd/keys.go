package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/issuance-control/cosmos/x/issuance/signing"
)

// KeysCmd groups the authority signing key commands.
func KeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the authority signing key",
	}

	cmd.AddCommand(keysGenerateCmd(), keysShowCmd())
	return cmd
}

type keyOutput struct {
	Address string `json:"address"`
	KeyFile string `json:"key_file"`
}

func keysGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [key-file]",
		Short: "Generate a secp256k1 signing key and save it hex encoded to key-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("key file %s already exists", path)
			}

			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}

			if err := crypto.SaveECDSA(path, key); err != nil {
				return fmt.Errorf("failed to save key: %w", err)
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			logger.Info("generated signing key", "address", signing.Address(key), "file", path)

			return printJSON(cmd, keyOutput{Address: signing.Address(key), KeyFile: path})
		},
	}
}

func keysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [key-file]",
		Short: "Print the authority signer address of a key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.LoadECDSA(args[0])
			if err != nil {
				return fmt.Errorf("failed to load key: %w", err)
			}

			return printJSON(cmd, keyOutput{Address: signing.Address(key), KeyFile: args[0]})
		},
	}
}
