package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/issuance-control/cosmos/app"
)

const (
	flagConfig = "config"
	flagOutput = "output"
)

// GenesisCmd renders the app genesis state from an issuance config file and
// ISSUANCE_* environment overrides.
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Render the genesis app state for the configured issuance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString(flagConfig)
			cfg, err := app.LoadConfig(viper.New(), configPath)
			if err != nil {
				return err
			}

			params, err := cfg.Params()
			if err != nil {
				return err
			}

			genesis, err := app.DefaultGenesis(app.MakeEncodingConfig().Codec, params)
			if err != nil {
				return err
			}

			bz, err := json.MarshalIndent(genesis, "", "  ")
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString(flagOutput)
			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
				return err
			}

			if err := os.WriteFile(output, bz, 0o644); err != nil {
				return fmt.Errorf("failed to write genesis: %w", err)
			}
			logger.Info("wrote genesis", "file", output, "symbol", params.Symbol, "ceiling", params.SupplyCeiling)

			return nil
		},
	}

	cmd.Flags().String(flagConfig, "", "Issuance config file (yaml, toml or json)")
	cmd.Flags().String(flagOutput, "", "Write the genesis to this file instead of stdout")

	return cmd
}
