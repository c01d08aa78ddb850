// Package ledger is the on-chain ownership registry for issued units.
package ledger

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/issuance-control/cosmos/types"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

var _ types.UnitLedger = (*StoreLedger)(nil)

// StoreLedger keeps the owner of every unit and a per-owner unit count.
type StoreLedger struct {
	Owners   collections.Map[uint64, sdk.AccAddress]
	Balances collections.Map[sdk.AccAddress, uint64]
}

// NewStoreLedger registers the ledger collections on sb.
func NewStoreLedger(sb *collections.SchemaBuilder) *StoreLedger {
	return &StoreLedger{
		Owners: collections.NewMap(
			sb,
			issuancetypes.UnitOwnerKeyPrefix,
			"unit_owners",
			collections.Uint64Key,
			collcodec.KeyToValueCodec(sdk.AccAddressKey),
		),
		Balances: collections.NewMap(
			sb,
			issuancetypes.UnitBalanceKeyPrefix,
			"unit_balances",
			sdk.AccAddressKey,
			collections.Uint64Value,
		),
	}
}

// IssueUnit records recipient as the owner of id.
func (l *StoreLedger) IssueUnit(ctx context.Context, id uint64, recipient sdk.AccAddress) error {
	if recipient.Empty() {
		return errorsmod.Wrapf(issuancetypes.ErrInvalidRecipient, "unit %d", id)
	}

	exists, err := l.Owners.Has(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return errorsmod.Wrapf(issuancetypes.ErrUnitAlreadyIssued, "unit %d", id)
	}

	if err := l.Owners.Set(ctx, id, recipient); err != nil {
		return err
	}

	balance, err := l.BalanceOf(ctx, recipient)
	if err != nil {
		return err
	}

	return l.Balances.Set(ctx, recipient, balance+1)
}

// OwnerOf returns the owner of id.
func (l *StoreLedger) OwnerOf(ctx context.Context, id uint64) (sdk.AccAddress, error) {
	owner, err := l.Owners.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, errorsmod.Wrapf(issuancetypes.ErrUnitNotFound, "unit %d", id)
	}
	return owner, err
}

// BalanceOf returns how many units owner holds.
func (l *StoreLedger) BalanceOf(ctx context.Context, owner sdk.AccAddress) (uint64, error) {
	balance, err := l.Balances.Get(ctx, owner)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	return balance, err
}

// Units returns every issued unit in ID order.
func (l *StoreLedger) Units(ctx context.Context) ([]types.Unit, error) {
	iter, err := l.Owners.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	kvs, err := iter.KeyValues()
	if err != nil {
		return nil, err
	}

	units := make([]types.Unit, 0, len(kvs))
	for _, kv := range kvs {
		units = append(units, types.Unit{ID: kv.Key, Owner: kv.Value.String()})
	}
	return units, nil
}
