package cmd

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command of issuanced. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "issuanced",
		Short: "Issuance controller tooling",
		Long: `issuanced manages the off-chain side of the issuance module: the
authority signing key, mint authorizations and the module genesis.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		KeysCmd(),
		AuthorizeCmd(),
		VerifyCmd(),
		GenesisCmd(),
	)

	return rootCmd
}

// newLogger builds a logger on the command's stderr at the level given by the
// log level flag. Commands run outside the server executor log at info.
func newLogger(cmd *cobra.Command) (log.Logger, error) {
	level := zerolog.InfoLevel

	if raw, err := cmd.Flags().GetString(flags.FlagLogLevel); err == nil && raw != "" {
		parsed, err := zerolog.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
		}
		level = parsed
	}

	return log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level)), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
