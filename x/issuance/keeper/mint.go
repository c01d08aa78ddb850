package keeper

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// SignedMint redeems a backend authorization for amount units to recipient.
// Checks run in a fixed order: replay, amount bound, signer, supply. The
// fingerprint is consumed only once allocation has succeeded. An amount of
// zero fails with ErrInvalidAmount, which is not one of the mint rejection
// reasons and only guards direct keeper callers.
func (k Keeper) SignedMint(
	ctx sdk.Context,
	recipient sdk.AccAddress,
	amount uint64,
	nonce math.Uint,
	signature []byte,
) ([]uint64, error) {
	if nonce.IsNil() {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "nonce cannot be empty")
	}

	var ids []uint64

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		fingerprint := k.verifier.Fingerprint(recipient, amount, nonce)

		consumed, err := k.IsAuthorizationConsumed(ctx, fingerprint)
		if err != nil {
			return err
		}
		if consumed {
			return errorsmod.Wrapf(issuancetypes.ErrAuthorizationReused, "fingerprint %X", fingerprint)
		}

		if err := checkAmount(params, amount); err != nil {
			return err
		}

		signer, err := k.verifier.RecoverSigner(fingerprint, signature)
		if err != nil {
			return errorsmod.Wrap(issuancetypes.ErrInvalidAuthorization, err.Error())
		}
		if !strings.EqualFold(signer, params.AuthoritySigner) {
			return errorsmod.Wrapf(issuancetypes.ErrInvalidAuthorization, "recovered signer %s", signer)
		}

		ids, err = k.AllocateIDs(ctx, amount)
		if err != nil {
			return err
		}

		if err := k.ConsumeAuthorization(ctx, fingerprint); err != nil {
			return err
		}

		return k.issueUnits(ctx, ids, recipient)
	})
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Debug("signed mint", "recipient", recipient.String(), "ids", formatIDs(ids))
	return ids, nil
}

// Mint sells count units to buyer. payment must equal count times the unit
// price exactly. A count of zero fails with ErrInvalidAmount before payment is
// checked; message validation already keeps it from arriving through a tx.
func (k Keeper) Mint(ctx sdk.Context, buyer sdk.AccAddress, count uint64, payment sdk.Coin) ([]uint64, error) {
	var ids []uint64

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		if err := checkAmount(params, count); err != nil {
			return err
		}

		price := params.MintPrice(count)
		if !paymentEquals(payment, price) {
			return errorsmod.Wrapf(issuancetypes.ErrPaymentMismatch, "expected %s, got %s", price, payment)
		}

		ids, err = k.AllocateIDs(ctx, count)
		if err != nil {
			return err
		}

		if err := k.issueUnits(ctx, ids, buyer); err != nil {
			return err
		}

		return k.collectPayment(ctx, buyer, payment)
	})
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Debug("public mint", "buyer", buyer.String(), "ids", formatIDs(ids), "payment", payment.String())
	return ids, nil
}

// MintBundle sells the one-time discounted bundle to buyer. Any payment at or
// above the bundle price is accepted and kept in full.
func (k Keeper) MintBundle(ctx sdk.Context, buyer sdk.AccAddress, payment sdk.Coin) ([]uint64, error) {
	var ids []uint64

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		redeemed, err := k.HasRedeemedBundle(ctx, buyer)
		if err != nil {
			return err
		}
		if redeemed {
			return errorsmod.Wrapf(issuancetypes.ErrBundleAlreadyRedeemed, "address %s", buyer)
		}

		price := sdk.NewCoin(params.Denom, params.BundlePrice)
		if !paymentCovers(payment, price) {
			return errorsmod.Wrapf(issuancetypes.ErrPaymentMismatch, "expected at least %s, got %s", price, payment)
		}

		ids, err = k.AllocateIDs(ctx, params.BundleSize)
		if err != nil {
			return err
		}

		if err := k.RecordBundleRedeemer(ctx, buyer); err != nil {
			return err
		}

		if err := k.assignUnits(ctx, ids, buyer); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				issuancetypes.EventTypeSetMinted,
				sdk.NewAttribute(issuancetypes.AttributeKeyIDs, formatIDs(ids)),
				sdk.NewAttribute(issuancetypes.AttributeKeyRecipient, buyer.String()),
			),
		)

		return k.collectPayment(ctx, buyer, payment)
	})
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Debug("bundle mint", "buyer", buyer.String(), "ids", formatIDs(ids), "payment", payment.String())
	return ids, nil
}

// issueUnits hands ids to recipient and emits one minted event per unit in
// ascending order.
func (k Keeper) issueUnits(ctx sdk.Context, ids []uint64, recipient sdk.AccAddress) error {
	if err := k.assignUnits(ctx, ids, recipient); err != nil {
		return err
	}

	for _, id := range ids {
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				issuancetypes.EventTypeMinted,
				sdk.NewAttribute(issuancetypes.AttributeKeyID, strconv.FormatUint(id, 10)),
				sdk.NewAttribute(issuancetypes.AttributeKeyRecipient, recipient.String()),
			),
		)
	}
	return nil
}

// assignUnits records recipient as the owner of every id. It emits no events.
func (k Keeper) assignUnits(ctx sdk.Context, ids []uint64, recipient sdk.AccAddress) error {
	for _, id := range ids {
		if err := k.ledger.IssueUnit(ctx, id, recipient); err != nil {
			return err
		}
	}
	return nil
}

// collectPayment moves payment into module custody. It is the last step of
// every paid mint.
func (k Keeper) collectPayment(ctx sdk.Context, buyer sdk.AccAddress, payment sdk.Coin) error {
	if payment.IsZero() {
		return nil
	}
	return k.bankKeeper.SendCoinsFromAccountToModule(ctx, buyer, issuancetypes.ModuleName, sdk.NewCoins(payment))
}

func checkAmount(params issuancetypes.Params, count uint64) error {
	if count == 0 {
		return errorsmod.Wrap(issuancetypes.ErrInvalidAmount, "count must be positive")
	}
	if params.MaxPerMint > 0 && count > params.MaxPerMint {
		return errorsmod.Wrapf(issuancetypes.ErrInvalidAmount, "at most %d units per mint, got %d", params.MaxPerMint, count)
	}
	return nil
}

func paymentEquals(payment, price sdk.Coin) bool {
	if payment.Amount.IsNil() || payment.Amount.IsNegative() {
		return false
	}
	if payment.IsZero() && price.IsZero() {
		return true
	}
	return payment.Denom == price.Denom && payment.Amount.Equal(price.Amount)
}

func paymentCovers(payment, price sdk.Coin) bool {
	if payment.Amount.IsNil() || payment.Amount.IsNegative() {
		return false
	}
	if payment.IsZero() && price.IsZero() {
		return true
	}
	return payment.Denom == price.Denom && payment.Amount.GTE(price.Amount)
}

func formatIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}
