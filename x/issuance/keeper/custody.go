package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// ModuleAddress is the account holding collected payments.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(issuancetypes.ModuleName)
}

// CollectedFunds returns everything paid into the module and not yet withdrawn.
func (k Keeper) CollectedFunds(ctx context.Context) sdk.Coins {
	return k.bankKeeper.GetAllBalances(ctx, k.ModuleAddress())
}

// Withdraw sends all collected funds to the authority. Withdrawing an empty
// balance succeeds and moves nothing.
func (k Keeper) Withdraw(ctx sdk.Context, caller sdk.AccAddress) (sdk.Coins, error) {
	var funds sdk.Coins

	err := k.atomically(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		if err := requireAuthority(params, caller); err != nil {
			return err
		}

		funds = k.CollectedFunds(ctx)
		if funds.IsZero() {
			return nil
		}

		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, issuancetypes.ModuleName, caller, funds); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				issuancetypes.EventTypeFundsWithdrawn,
				sdk.NewAttribute(issuancetypes.AttributeKeyRecipient, caller.String()),
				sdk.NewAttribute(issuancetypes.AttributeKeyAmount, funds.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if funds.IsZero() {
		return sdk.NewCoins(), nil
	}

	k.Logger(ctx).Info("funds withdrawn", "recipient", caller.String(), "amount", funds.String())
	return funds, nil
}
