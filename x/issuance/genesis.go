package issuance

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/issuance-control/cosmos/x/issuance/keeper"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// InitGenesis initializes the issuance module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k *keeper.Keeper, genState *issuancetypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	if err := k.SetNextID(ctx, genState.NextID); err != nil {
		return err
	}

	for _, unit := range genState.Units {
		owner, err := sdk.AccAddressFromBech32(unit.Owner)
		if err != nil {
			return err
		}
		if err := k.Ledger().IssueUnit(ctx, unit.ID, owner); err != nil {
			return err
		}
	}

	for _, fp := range genState.ConsumedAuthorizations {
		if err := k.ConsumeAuthorization(ctx, fp); err != nil {
			return err
		}
	}

	for _, redeemer := range genState.BundleRedeemers {
		if err := k.RecordBundleRedeemer(ctx, sdk.MustAccAddressFromBech32(redeemer)); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("issuance genesis initialized",
		"next_id", genState.NextID,
		"units", len(genState.Units),
		"consumed_authorizations", len(genState.ConsumedAuthorizations),
	)
	return nil
}

// ExportGenesis returns the issuance module's exported genesis.
func ExportGenesis(ctx sdk.Context, k *keeper.Keeper) (*issuancetypes.GenesisState, error) {
	genesis := issuancetypes.DefaultGenesisState()

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Params = params

	if genesis.NextID, err = k.GetNextID(ctx); err != nil {
		return nil, err
	}

	units, err := k.Ledger().Units(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Units = append(genesis.Units, units...)

	fingerprints, err := k.ConsumedAuthorizations(ctx)
	if err != nil {
		return nil, err
	}
	for _, fp := range fingerprints {
		genesis.ConsumedAuthorizations = append(genesis.ConsumedAuthorizations, hexutil.Bytes(fp))
	}

	redeemers, err := k.BundleRedeemers(ctx)
	if err != nil {
		return nil, err
	}
	for _, redeemer := range redeemers {
		genesis.BundleRedeemers = append(genesis.BundleRedeemers, redeemer.String())
	}

	return genesis, nil
}
