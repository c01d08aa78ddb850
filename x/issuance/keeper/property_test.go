package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/issuance-control/cosmos/testutil"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// Supply monotonicity: successful allocations move the counter strictly
// forward and never past ceiling+1; failed ones leave it alone.
func TestProperty_SupplyMonotonicity(t *testing.T) {
	properties := testutil.NewPropertyTester(t)

	properties.Property("next id only increases and stays within ceiling+1", prop.ForAll(
		func(counts []uint64, ceiling uint64) bool {
			f := testutil.NewIssuanceFixture(t, func(p *issuancetypes.Params) {
				p.SupplyCeiling = ceiling
				p.BundleSize = 1
			})

			expected := uint64(1)
			for _, count := range counts {
				before, err := f.Keeper.GetNextID(f.Ctx)
				if err != nil || before != expected {
					return false
				}

				ids, err := f.Keeper.AllocateIDs(f.Ctx, count)
				after, _ := f.Keeper.GetNextID(f.Ctx)

				if err != nil {
					if !errors.Is(err, issuancetypes.ErrSupplyExceeded) || before+count-1 <= ceiling {
						return false
					}
					if after != before {
						return false
					}
					continue
				}

				if uint64(len(ids)) != count || ids[0] != before || after != before+count {
					return false
				}
				if after > ceiling+1 {
					return false
				}
				expected = after
			}
			return true
		},
		testutil.GenCounts(8),
		gen.UInt64Range(1, 40),
	))

	properties.TestingRun(t)
}

// Replay protection: the same authorization succeeds exactly once.
func TestProperty_ReplayProtection(t *testing.T) {
	properties := testutil.NewPropertyTester(t)

	properties.Property("an authorization is redeemed exactly once", prop.ForAll(
		func(recipient sdk.AccAddress, amount uint64, nonce uint64, attempts int) bool {
			f := testutil.NewIssuanceFixture(t)
			sig := f.Authorize(t, recipient, amount, nonce)

			successes := 0
			for i := 0; i < attempts; i++ {
				_, err := f.Keeper.SignedMint(f.Ctx, recipient, amount, math.NewUint(nonce), sig)
				switch {
				case err == nil:
					successes++
				case !errors.Is(err, issuancetypes.ErrAuthorizationReused):
					return false
				}
			}

			balance, err := f.Keeper.Ledger().BalanceOf(f.Ctx, recipient)
			return err == nil && successes == 1 && balance == amount
		},
		testutil.GenAddress(),
		testutil.GenCount(10),
		gen.UInt64(),
		gen.IntRange(2, 5),
	))

	properties.TestingRun(t)
}

// Authorization binding: a signature only redeems the triple it was made for.
func TestProperty_AuthorizationBinding(t *testing.T) {
	properties := testutil.NewPropertyTester(t)

	properties.Property("altering recipient, amount or nonce invalidates the signature", prop.ForAll(
		func(addrs []sdk.AccAddress, amount uint64, nonce uint64, field int) bool {
			f := testutil.NewIssuanceFixture(t)
			sig := f.Authorize(t, addrs[0], amount, nonce)

			recipient, claimedAmount, claimedNonce := addrs[0], amount, nonce
			switch field {
			case 0:
				recipient = addrs[1]
			case 1:
				claimedAmount = amount + 1
			default:
				claimedNonce = nonce + 1
			}

			_, err := f.Keeper.SignedMint(f.Ctx, recipient, claimedAmount, math.NewUint(claimedNonce), sig)
			if !errors.Is(err, issuancetypes.ErrInvalidAuthorization) {
				return false
			}

			next, err := f.Keeper.GetNextID(f.Ctx)
			return err == nil && next == issuancetypes.FirstUnitID
		},
		testutil.GenDistinctAddresses(2),
		testutil.GenCount(10),
		gen.UInt64Range(0, 1<<62),
		gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}

// Bundle one-shot: every later bundle purchase fails regardless of payment.
func TestProperty_BundleOneShot(t *testing.T) {
	properties := testutil.NewPropertyTester(t)

	properties.Property("an address buys at most one bundle", prop.ForAll(
		func(buyer sdk.AccAddress, payments []int64) bool {
			f := testutil.NewIssuanceFixture(t)
			f.Bank.Fund(buyer, f.Coin(1_000_000))

			if _, err := f.Keeper.MintBundle(f.Ctx, buyer, f.Coin(500)); err != nil {
				return false
			}

			for _, payment := range payments {
				_, err := f.Keeper.MintBundle(f.Ctx, buyer, f.Coin(payment))
				if !errors.Is(err, issuancetypes.ErrBundleAlreadyRedeemed) {
					return false
				}
			}

			balance, err := f.Keeper.Ledger().BalanceOf(f.Ctx, buyer)
			return err == nil && balance == issuancetypes.DefaultBundleSize
		},
		testutil.GenAddress(),
		gen.SliceOfN(3, gen.Int64Range(0, 5000)),
	))

	properties.TestingRun(t)
}

// Payment exactness: public mint accepts count*price and nothing else.
func TestProperty_PaymentExactness(t *testing.T) {
	properties := testutil.NewPropertyTester(t)

	properties.Property("public mint requires exact payment", prop.ForAll(
		func(count uint64, payment int64) bool {
			f := testutil.NewIssuanceFixture(t)
			buyer := sdk.AccAddress([]byte("buyer_______________"))
			f.Bank.Fund(buyer, f.Coin(1_000_000))

			_, err := f.Keeper.Mint(f.Ctx, buyer, count, f.Coin(payment))
			if payment == int64(count)*100 {
				return err == nil && f.Keeper.CollectedFunds(f.Ctx).AmountOf(f.Params.Denom).Equal(math.NewInt(payment))
			}
			return errors.Is(err, issuancetypes.ErrPaymentMismatch) && f.Keeper.CollectedFunds(f.Ctx).IsZero()
		},
		testutil.GenCount(20),
		gen.OneGenOf(gen.Int64Range(0, 2500), gen.Int64Range(1, 20).Map(func(n int64) int64 { return n * 100 })),
	))

	properties.TestingRun(t)
}

// Custody isolation: nobody but the authority can move collected funds.
func TestProperty_CustodyIsolation(t *testing.T) {
	properties := testutil.NewPropertyTester(t)

	properties.Property("withdraw by a non-authority fails and moves nothing", prop.ForAll(
		func(caller sdk.AccAddress, count uint64) bool {
			f := testutil.NewIssuanceFixture(t)
			if caller.Equals(f.Authority) {
				return true
			}

			buyer := sdk.AccAddress([]byte("buyer_______________"))
			f.Bank.Fund(buyer, f.Coin(1_000_000))
			if _, err := f.Keeper.Mint(f.Ctx, buyer, count, f.Coin(int64(count)*100)); err != nil {
				return false
			}
			before := f.Keeper.CollectedFunds(f.Ctx)

			_, err := f.Keeper.Withdraw(f.Ctx, caller)
			return errors.Is(err, issuancetypes.ErrUnauthorized) && f.Keeper.CollectedFunds(f.Ctx).Equal(before)
		},
		testutil.GenAddress(),
		testutil.GenCount(10),
	))

	properties.TestingRun(t)
}
