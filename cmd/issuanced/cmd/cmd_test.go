package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/issuance-control/cosmos/cmd/issuanced/cmd"
	"github.com/issuance-control/cosmos/x/issuance"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

var recipient = sdk.AccAddress([]byte("cli_recipient_______"))

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func generateKey(t *testing.T) (string, string) {
	t.Helper()

	keyFile := filepath.Join(t.TempDir(), "authority.key")
	out, err := run(t, "keys", "generate", keyFile)
	require.NoError(t, err)

	var generated struct {
		Address string `json:"address"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &generated))
	require.NotEmpty(t, generated.Address)

	return keyFile, generated.Address
}

func TestKeysGenerateAndShow(t *testing.T) {
	keyFile, address := generateKey(t)

	out, err := run(t, "keys", "show", keyFile)
	require.NoError(t, err)
	require.Contains(t, out, address)

	_, err = run(t, "keys", "generate", keyFile)
	require.ErrorContains(t, err, "already exists")
}

func TestAuthorizeThenVerify(t *testing.T) {
	keyFile, address := generateKey(t)

	out, err := run(t, "authorize", recipient.String(), "3", "42", "--key-file", keyFile)
	require.NoError(t, err)

	var auth struct {
		Recipient   string `json:"recipient"`
		Amount      uint64 `json:"amount"`
		Nonce       string `json:"nonce"`
		Fingerprint string `json:"fingerprint"`
		Signature   string `json:"signature"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &auth))
	require.Equal(t, recipient.String(), auth.Recipient)
	require.Equal(t, uint64(3), auth.Amount)
	require.Equal(t, "42", auth.Nonce)

	out, err = run(t, "verify", recipient.String(), "3", "42", auth.Signature, "--signer", address)
	require.NoError(t, err)
	require.Contains(t, out, auth.Fingerprint)

	t.Run("different amount", func(t *testing.T) {
		_, err := run(t, "verify", recipient.String(), "4", "42", auth.Signature, "--signer", address)
		require.ErrorIs(t, err, issuancetypes.ErrInvalidAuthorization)
	})

	t.Run("different signer", func(t *testing.T) {
		_, other := generateKey(t)
		_, err := run(t, "verify", recipient.String(), "3", "42", auth.Signature, "--signer", other)
		require.ErrorIs(t, err, issuancetypes.ErrInvalidAuthorization)
	})

	t.Run("malformed signature", func(t *testing.T) {
		_, err := run(t, "verify", recipient.String(), "3", "42", "0x1234", "--signer", address)
		require.ErrorIs(t, err, issuancetypes.ErrInvalidAuthorization)
	})
}

func TestAuthorizeRejectsBadInput(t *testing.T) {
	keyFile, _ := generateKey(t)

	_, err := run(t, "authorize", "not-an-address", "1", "1", "--key-file", keyFile)
	require.ErrorContains(t, err, "invalid recipient")

	_, err = run(t, "authorize", recipient.String(), "0", "1", "--key-file", keyFile)
	require.ErrorIs(t, err, issuancetypes.ErrInvalidAmount)

	_, err = run(t, "authorize", recipient.String(), "1", "abc", "--key-file", keyFile)
	require.ErrorContains(t, err, "invalid nonce")

	_, err = run(t, "authorize", recipient.String(), "1", "1")
	require.Error(t, err)
}

func TestGenesis(t *testing.T) {
	_, address := generateKey(t)
	authority := sdk.AccAddress([]byte("cli_authority_______"))

	dir := t.TempDir()
	configPath := filepath.Join(dir, "issuance.yaml")
	content := "symbol: NFT\n" +
		"supply_ceiling: 1000\n" +
		"authority_signer: " + address + "\n" +
		"authority: " + authority.String() + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	out, err := run(t, "genesis", "--config", configPath)
	require.NoError(t, err)

	var appState map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &appState))

	gs, err := issuance.ParseGenesis(appState[issuancetypes.ModuleName])
	require.NoError(t, err)
	require.Equal(t, "NFT", gs.Params.Symbol)
	require.Equal(t, address, gs.Params.AuthoritySigner)
	require.Equal(t, issuancetypes.FirstUnitID, gs.NextID)

	output := filepath.Join(dir, "genesis.json")
	_, err = run(t, "genesis", "--config", configPath, "--output", output)
	require.NoError(t, err)
	require.FileExists(t, output)

	_, err = run(t, "genesis")
	require.ErrorIs(t, err, issuancetypes.ErrInvalidParams)
}
