package cmd

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/issuance-control/cosmos/x/issuance/signing"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

const (
	flagKeyFile = "key-file"
	flagSigner  = "signer"
)

// AuthorizeCmd signs a mint authorization with the authority key.
func AuthorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authorize [recipient] [amount] [nonce]",
		Short: "Sign an authorization allowing recipient to mint amount units once",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipient, amount, nonce, err := parseGrant(args)
			if err != nil {
				return err
			}

			keyFile, _ := cmd.Flags().GetString(flagKeyFile)
			key, err := crypto.LoadECDSA(keyFile)
			if err != nil {
				return fmt.Errorf("failed to load key: %w", err)
			}

			auth, err := signing.Authorize(key, recipient, amount, nonce)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			logger.Info("authorization signed",
				"recipient", auth.Recipient,
				"amount", auth.Amount,
				"fingerprint", auth.Fingerprint.String(),
			)

			return printJSON(cmd, auth)
		},
	}

	cmd.Flags().String(flagKeyFile, "", "File holding the hex encoded authority key")
	_ = cmd.MarkFlagRequired(flagKeyFile)

	return cmd
}

type verifyOutput struct {
	Fingerprint hexutil.Bytes `json:"fingerprint"`
	Signer      string        `json:"signer"`
}

// VerifyCmd checks an authorization signature against the expected signer.
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [recipient] [amount] [nonce] [signature]",
		Short: "Check that signature authorizes recipient to mint amount units",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipient, amount, nonce, err := parseGrant(args[:3])
			if err != nil {
				return err
			}

			sig, err := hexutil.Decode(args[3])
			if err != nil {
				return fmt.Errorf("invalid signature hex: %w", err)
			}

			fingerprint := signing.Fingerprint(recipient, amount, nonce)
			recovered, err := signing.RecoverAddress(fingerprint, sig)
			if err != nil {
				return errorsmod.Wrap(issuancetypes.ErrInvalidAuthorization, err.Error())
			}

			signer, _ := cmd.Flags().GetString(flagSigner)
			if !strings.EqualFold(recovered.Hex(), signer) {
				return errorsmod.Wrapf(issuancetypes.ErrInvalidAuthorization, "signed by %s", recovered.Hex())
			}

			return printJSON(cmd, verifyOutput{Fingerprint: fingerprint, Signer: recovered.Hex()})
		},
	}

	cmd.Flags().String(flagSigner, "", "Hex address of the expected authority signer")
	_ = cmd.MarkFlagRequired(flagSigner)

	return cmd
}

func parseGrant(args []string) (sdk.AccAddress, uint64, math.Uint, error) {
	recipient, err := sdk.AccAddressFromBech32(args[0])
	if err != nil {
		return nil, 0, math.Uint{}, fmt.Errorf("invalid recipient: %w", err)
	}

	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil || amount == 0 {
		return nil, 0, math.Uint{}, errorsmod.Wrapf(issuancetypes.ErrInvalidAmount, "amount %q", args[1])
	}

	nonce, err := math.ParseUint(args[2])
	if err != nil {
		return nil, 0, math.Uint{}, fmt.Errorf("invalid nonce: %w", err)
	}

	return recipient, amount, nonce, nil
}
