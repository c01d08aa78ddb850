package keeper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/issuance-control/cosmos/types"
	"github.com/issuance-control/cosmos/x/issuance/ledger"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// Keeper of the issuance store
type Keeper struct {
	storeService store.KVStoreService

	// serializes every state-changing entry point
	mu *sync.Mutex

	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	verifier      types.AuthorizationVerifier
	ledger        *ledger.StoreLedger

	Schema                 collections.Schema
	params                 collections.Item[issuancetypes.Params]
	nextID                 collections.Item[uint64]
	consumedAuthorizations collections.KeySet[[]byte]
	bundleRedeemers        collections.KeySet[sdk.AccAddress]
}

// NewKeeper creates a new issuance Keeper instance
func NewKeeper(
	storeService store.KVStoreService,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	verifier types.AuthorizationVerifier,
) *Keeper {
	if addr := accountKeeper.GetModuleAddress(issuancetypes.ModuleName); addr == nil {
		panic(fmt.Sprintf("the %s module account has not been set", issuancetypes.ModuleName))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := &Keeper{
		storeService:  storeService,
		mu:            &sync.Mutex{},
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		verifier:      verifier,
		ledger:        ledger.NewStoreLedger(sb),

		params:                 collections.NewItem(sb, issuancetypes.ParamsKey, "params", issuancetypes.ParamsValue),
		nextID:                 collections.NewItem(sb, issuancetypes.NextIDKey, "next_id", collections.Uint64Value),
		consumedAuthorizations: collections.NewKeySet(sb, issuancetypes.ConsumedAuthorizationKeyPrefix, "consumed_authorizations", collections.BytesKey),
		bundleRedeemers:        collections.NewKeySet(sb, issuancetypes.BundleRedeemerKeyPrefix, "bundle_redeemers", sdk.AccAddressKey),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", issuancetypes.ModuleName))
}

// Ledger returns the unit ownership registry.
func (k Keeper) Ledger() types.UnitLedger {
	return k.ledger
}

// GetParams returns the issuance parameters
func (k Keeper) GetParams(ctx context.Context) (issuancetypes.Params, error) {
	params, err := k.params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return issuancetypes.Params{}, errorsmod.Wrap(issuancetypes.ErrInvalidParams, "params not initialized")
	}
	return params, err
}

// SetParams stores validated issuance parameters. Only genesis calls this.
func (k Keeper) SetParams(ctx context.Context, params issuancetypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, params)
}

// GetNextID returns the ID the next allocation starts at
func (k Keeper) GetNextID(ctx context.Context) (uint64, error) {
	next, err := k.nextID.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return issuancetypes.FirstUnitID, nil
	}
	return next, err
}

// SetNextID positions the counter without any invariant check. Used by
// genesis and OverrideCounter only.
func (k Keeper) SetNextID(ctx context.Context, next uint64) error {
	return k.nextID.Set(ctx, next)
}

// Remaining returns how many units can still be allocated.
func (k Keeper) Remaining(ctx context.Context) (uint64, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	next, err := k.GetNextID(ctx)
	if err != nil {
		return 0, err
	}

	return remaining(next, params.SupplyCeiling), nil
}

func remaining(next, ceiling uint64) uint64 {
	if next > ceiling {
		return 0
	}
	return ceiling - next + 1
}

// AllocateIDs hands out count consecutive IDs starting at the current next ID
// and advances the counter. Nothing is written when the ceiling would be
// exceeded.
func (k Keeper) AllocateIDs(ctx context.Context, count uint64) ([]uint64, error) {
	if count == 0 {
		return nil, errorsmod.Wrap(issuancetypes.ErrInvalidAmount, "cannot allocate zero units")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	next, err := k.GetNextID(ctx)
	if err != nil {
		return nil, err
	}

	if left := remaining(next, params.SupplyCeiling); count > left {
		return nil, errorsmod.Wrapf(issuancetypes.ErrSupplyExceeded, "requested %d units, %d remaining", count, left)
	}

	ids := make([]uint64, count)
	for i := range ids {
		ids[i] = next + uint64(i)
	}

	if err := k.nextID.Set(ctx, next+count); err != nil {
		return nil, err
	}

	return ids, nil
}

// OverrideCounter positions the supply counter as if lastID were the most
// recently issued unit, so the next allocation starts at lastID+1. It is an
// operator escape hatch guarded only by the authority identity and bypasses
// the monotonic allocation path. Returns the next ID before and after.
func (k Keeper) OverrideCounter(ctx sdk.Context, caller sdk.AccAddress, lastID uint64) (uint64, uint64, error) {
	var previous, next uint64

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		if err := requireAuthority(params, caller); err != nil {
			return err
		}

		if lastID > issuancetypes.MaxLastID {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "last id must be at most %d", issuancetypes.MaxLastID)
		}

		previous, err = k.GetNextID(ctx)
		if err != nil {
			return err
		}

		next = lastID + 1
		if err := k.SetNextID(ctx, next); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				issuancetypes.EventTypeCounterOverridden,
				sdk.NewAttribute(issuancetypes.AttributeKeyPreviousNextID, strconv.FormatUint(previous, 10)),
				sdk.NewAttribute(issuancetypes.AttributeKeyNextID, strconv.FormatUint(next, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	k.Logger(ctx).Info("supply counter overridden", "previous_next_id", previous, "next_id", next, "authority", caller.String())
	return previous, next, nil
}

// IsAuthorizationConsumed reports whether fingerprint was already redeemed.
func (k Keeper) IsAuthorizationConsumed(ctx context.Context, fingerprint []byte) (bool, error) {
	return k.consumedAuthorizations.Has(ctx, fingerprint)
}

// ConsumeAuthorization records fingerprint as redeemed.
func (k Keeper) ConsumeAuthorization(ctx context.Context, fingerprint []byte) error {
	return k.consumedAuthorizations.Set(ctx, fingerprint)
}

// ConsumedAuthorizations returns every redeemed fingerprint.
func (k Keeper) ConsumedAuthorizations(ctx context.Context) ([][]byte, error) {
	iter, err := k.consumedAuthorizations.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	return iter.Keys()
}

// HasRedeemedBundle reports whether addr already bought its bundle.
func (k Keeper) HasRedeemedBundle(ctx context.Context, addr sdk.AccAddress) (bool, error) {
	return k.bundleRedeemers.Has(ctx, addr)
}

// RecordBundleRedeemer marks addr as having bought its bundle.
func (k Keeper) RecordBundleRedeemer(ctx context.Context, addr sdk.AccAddress) error {
	return k.bundleRedeemers.Set(ctx, addr)
}

// BundleRedeemers returns every address that bought a bundle.
func (k Keeper) BundleRedeemers(ctx context.Context) ([]sdk.AccAddress, error) {
	iter, err := k.bundleRedeemers.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	return iter.Keys()
}

// atomically runs fn under the keeper lock against a cached store. State and
// events reach ctx only when fn succeeds.
func (k Keeper) atomically(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	cms := ctx.MultiStore().CacheMultiStore()
	cacheCtx := ctx.WithMultiStore(cms).WithEventManager(sdk.NewEventManager())

	if err := fn(cacheCtx); err != nil {
		return err
	}

	cms.Write()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())
	return nil
}

func requireAuthority(params issuancetypes.Params, caller sdk.AccAddress) error {
	authority, err := sdk.AccAddressFromBech32(params.Authority)
	if err != nil {
		return errorsmod.Wrapf(issuancetypes.ErrInvalidParams, "authority: %s", err)
	}

	if !authority.Equals(caller) {
		return errorsmod.Wrapf(issuancetypes.ErrUnauthorized, "expected %s, got %s", params.Authority, caller)
	}

	return nil
}
