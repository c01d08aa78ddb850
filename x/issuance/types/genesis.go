package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/issuance-control/cosmos/types"
)

// FingerprintLength is the size of an authorization fingerprint.
const FingerprintLength = 32

// GenesisState defines the issuance module's genesis state.
type GenesisState struct {
	Params                 Params          `json:"params"`
	NextID                 uint64          `json:"next_id"`
	Units                  []types.Unit    `json:"units"`
	ConsumedAuthorizations []hexutil.Bytes `json:"consumed_authorizations"`
	BundleRedeemers        []string        `json:"bundle_redeemers"`
}

// DefaultGenesisState returns the default genesis state. Its params carry no
// signer or authority and do not validate until the deployment fills them in.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:                 DefaultParams(),
		NextID:                 FirstUnitID,
		Units:                  []types.Unit{},
		ConsumedAuthorizations: []hexutil.Bytes{},
		BundleRedeemers:        []string{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextID < FirstUnitID {
		return errorsmod.Wrapf(ErrInvalidGenesis, "next id must be at least %d", FirstUnitID)
	}

	var lastIssued uint64
	seenUnits := make(map[uint64]bool, len(gs.Units))
	for i, unit := range gs.Units {
		if unit.ID < FirstUnitID {
			return errorsmod.Wrapf(ErrInvalidGenesis, "unit %d: id must be at least %d", i, FirstUnitID)
		}
		if seenUnits[unit.ID] {
			return errorsmod.Wrapf(ErrInvalidGenesis, "unit %d: duplicate id %d", i, unit.ID)
		}
		seenUnits[unit.ID] = true

		if _, err := sdk.AccAddressFromBech32(unit.Owner); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "unit %d: owner: %s", i, err)
		}

		if unit.ID > lastIssued {
			lastIssued = unit.ID
		}
	}

	if len(gs.Units) > 0 && gs.NextID <= lastIssued {
		return errorsmod.Wrapf(ErrInvalidGenesis, "next id %d must be above the highest issued unit %d", gs.NextID, lastIssued)
	}

	seenFingerprints := make(map[string]bool, len(gs.ConsumedAuthorizations))
	for i, fp := range gs.ConsumedAuthorizations {
		if len(fp) != FingerprintLength {
			return errorsmod.Wrapf(ErrInvalidGenesis, "consumed authorization %d: expected %d bytes, got %d", i, FingerprintLength, len(fp))
		}
		if seenFingerprints[fp.String()] {
			return errorsmod.Wrapf(ErrInvalidGenesis, "consumed authorization %d: duplicate %s", i, fp)
		}
		seenFingerprints[fp.String()] = true
	}

	seenRedeemers := make(map[string]bool, len(gs.BundleRedeemers))
	for i, redeemer := range gs.BundleRedeemers {
		addr, err := sdk.AccAddressFromBech32(redeemer)
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "bundle redeemer %d: %s", i, err)
		}
		if seenRedeemers[addr.String()] {
			return errorsmod.Wrapf(ErrInvalidGenesis, "bundle redeemer %d: duplicate %s", i, redeemer)
		}
		seenRedeemers[addr.String()] = true
	}

	return nil
}
