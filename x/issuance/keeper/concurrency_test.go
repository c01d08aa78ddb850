package keeper_test

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/issuance-control/cosmos/testutil"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

func TestConcurrentMintsAllocateDisjointIDs(t *testing.T) {
	f := testutil.NewIssuanceFixture(t, func(p *issuancetypes.Params) {
		p.SupplyCeiling = 40
	})

	const buyers = 8

	addrs := make([]sdk.AccAddress, buyers)
	sigs := make([][]byte, buyers)
	for i := range addrs {
		addrs[i] = sdk.AccAddress([]byte(fmt.Sprintf("concurrent_buyer_%03d", i)))
		f.Bank.Fund(addrs[i], f.Coin(1000))
		sigs[i] = f.Authorize(t, addrs[i], 1, uint64(i))
	}

	var (
		mu  sync.Mutex
		ids []uint64
	)
	record := func(got []uint64) {
		mu.Lock()
		defer mu.Unlock()
		ids = append(ids, got...)
	}

	var g errgroup.Group
	for i := 0; i < buyers; i++ {
		i := i
		g.Go(func() error {
			got, err := f.Keeper.Mint(f.Ctx, addrs[i], 2, f.Coin(200))
			if err != nil {
				return err
			}
			record(got)

			got, err = f.Keeper.SignedMint(f.Ctx, addrs[i], 1, math.NewUint(uint64(i)), sigs[i])
			if err != nil {
				return err
			}
			record(got)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// ceiling 40, 24 allocated: only 16 remain for the bundle race
	var bundles errgroup.Group
	var bundleFailures int
	for i := 0; i < buyers; i++ {
		i := i
		bundles.Go(func() error {
			got, err := f.Keeper.MintBundle(f.Ctx, addrs[i], f.Coin(500))
			if err != nil {
				if !errors.Is(err, issuancetypes.ErrSupplyExceeded) {
					return err
				}
				mu.Lock()
				bundleFailures++
				mu.Unlock()
				return nil
			}
			record(got)
			return nil
		})
	}
	require.NoError(t, bundles.Wait())
	require.Equal(t, buyers-2, bundleFailures)

	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	require.Len(t, ids, 36)
	for i, id := range ids {
		require.Equal(t, uint64(i+1), id)
	}

	next, err := f.Keeper.GetNextID(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(37), next)
	require.Equal(t, fmt.Sprintf("%dstake", buyers*200+2*500), f.Keeper.CollectedFunds(f.Ctx).String())
}
