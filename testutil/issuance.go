package testutil

import (
	"crypto/ecdsa"
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdktestutil "github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/issuance-control/cosmos/x/issuance/keeper"
	"github.com/issuance-control/cosmos/x/issuance/signing"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// IssuanceFixture is an issuance keeper over an in-memory store with a
// generated authority signer and an in-memory bank.
type IssuanceFixture struct {
	Ctx       sdk.Context
	Keeper    *keeper.Keeper
	Bank      *MockBankKeeper
	Accounts  MockAccountKeeper
	SignerKey *ecdsa.PrivateKey
	Authority sdk.AccAddress
	Params    issuancetypes.Params
}

// TestParams returns the parameters used throughout the issuance tests: unit
// price 100, bundle of 6 for 500, ceiling 1000.
func TestParams(signer string, authority sdk.AccAddress) issuancetypes.Params {
	params := issuancetypes.DefaultParams()
	params.AuthoritySigner = signer
	params.Authority = authority.String()
	return params
}

// NewIssuanceFixture creates an initialized issuance keeper. Optional modifiers
// adjust the parameters before they are stored.
func NewIssuanceFixture(t *testing.T, modifiers ...func(*issuancetypes.Params)) *IssuanceFixture {
	t.Helper()

	key := storetypes.NewKVStoreKey(issuancetypes.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	testCtx := sdktestutil.DefaultContextWithDB(t, key, tkey)

	bank := NewMockBankKeeper()
	accounts := NewMockAccountKeeper(issuancetypes.ModuleName)

	k := keeper.NewKeeper(runtime.NewKVStoreService(key), bank, accounts, signing.NewVerifier())

	signerKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	authority := sdk.AccAddress([]byte("issuance_authority__"))
	params := TestParams(signing.Address(signerKey), authority)
	for _, modify := range modifiers {
		modify(&params)
	}

	require.NoError(t, k.SetParams(testCtx.Ctx, params))
	require.NoError(t, k.SetNextID(testCtx.Ctx, issuancetypes.FirstUnitID))

	return &IssuanceFixture{
		Ctx:       testCtx.Ctx,
		Keeper:    k,
		Bank:      bank,
		Accounts:  accounts,
		SignerKey: signerKey,
		Authority: authority,
		Params:    params,
	}
}

// Authorize signs (recipient, amount, nonce) with the fixture's authority
// signer.
func (f *IssuanceFixture) Authorize(t *testing.T, recipient sdk.AccAddress, amount, nonce uint64) []byte {
	t.Helper()

	auth, err := signing.Authorize(f.SignerKey, recipient, amount, math.NewUint(nonce))
	require.NoError(t, err)
	return auth.Signature
}

// Coin returns amount of the configured payment denom.
func (f *IssuanceFixture) Coin(amount int64) sdk.Coin {
	return sdk.NewInt64Coin(f.Params.Denom, amount)
}

// EventsOfType returns the attributes of every emitted event of eventType.
func (f *IssuanceFixture) EventsOfType(eventType string) []map[string]string {
	var out []map[string]string
	for _, event := range f.Ctx.EventManager().Events() {
		if event.Type != eventType {
			continue
		}
		attrs := make(map[string]string, len(event.Attributes))
		for _, attr := range event.Attributes {
			attrs[attr.Key] = attr.Value
		}
		out = append(out, attrs)
	}
	return out
}
