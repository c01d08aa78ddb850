package ledger_test

import (
	"testing"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/issuance-control/cosmos/types"
	"github.com/issuance-control/cosmos/x/issuance/ledger"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

func setupLedger(t *testing.T) (sdk.Context, *ledger.StoreLedger) {
	key := storetypes.NewKVStoreKey(issuancetypes.StoreKey)
	testCtx := testutil.DefaultContextWithDB(t, key, storetypes.NewTransientStoreKey("transient_test"))

	sb := collections.NewSchemaBuilder(runtime.NewKVStoreService(key))
	l := ledger.NewStoreLedger(sb)
	_, err := sb.Build()
	require.NoError(t, err)

	return testCtx.Ctx, l
}

func TestIssueUnit(t *testing.T) {
	ctx, l := setupLedger(t)
	alice := sdk.AccAddress([]byte("alice_______________"))
	bob := sdk.AccAddress([]byte("bob_________________"))

	require.NoError(t, l.IssueUnit(ctx, 1, alice))
	require.NoError(t, l.IssueUnit(ctx, 2, alice))
	require.NoError(t, l.IssueUnit(ctx, 3, bob))

	err := l.IssueUnit(ctx, 2, bob)
	require.ErrorIs(t, err, issuancetypes.ErrUnitAlreadyIssued)

	err = l.IssueUnit(ctx, 4, sdk.AccAddress{})
	require.ErrorIs(t, err, issuancetypes.ErrInvalidRecipient)

	owner, err := l.OwnerOf(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, alice, owner)

	_, err = l.OwnerOf(ctx, 4)
	require.ErrorIs(t, err, issuancetypes.ErrUnitNotFound)

	balance, err := l.BalanceOf(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(2), balance)

	balance, err = l.BalanceOf(ctx, sdk.AccAddress([]byte("nobody______________")))
	require.NoError(t, err)
	require.Zero(t, balance)

	units, err := l.Units(ctx)
	require.NoError(t, err)
	require.Equal(t, []types.Unit{
		{ID: 1, Owner: alice.String()},
		{ID: 2, Owner: alice.String()},
		{ID: 3, Owner: bob.String()},
	}, units)
}
