package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// Querier is used as Keeper will have duplicate methods if used directly
type Querier struct {
	*Keeper
}

var _ issuancetypes.QueryServer = Querier{}

// NewQuerier returns the issuance query server
func NewQuerier(keeper *Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (q Querier) Params(ctx context.Context, _ *issuancetypes.QueryParamsRequest) (*issuancetypes.QueryParamsResponse, error) {
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.QueryParamsResponse{Params: params}, nil
}

func (q Querier) Supply(ctx context.Context, _ *issuancetypes.QuerySupplyRequest) (*issuancetypes.QuerySupplyResponse, error) {
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	next, err := q.GetNextID(ctx)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.QuerySupplyResponse{
		NextID:    next,
		Ceiling:   params.SupplyCeiling,
		Remaining: remaining(next, params.SupplyCeiling),
	}, nil
}

func (q Querier) Owner(ctx context.Context, req *issuancetypes.QueryOwnerRequest) (*issuancetypes.QueryOwnerResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	owner, err := q.ledger.OwnerOf(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.QueryOwnerResponse{Owner: owner.String()}, nil
}

func (q Querier) Balance(ctx context.Context, req *issuancetypes.QueryBalanceRequest) (*issuancetypes.QueryBalanceResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	balance, err := q.ledger.BalanceOf(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.QueryBalanceResponse{Balance: balance}, nil
}

// Authorization reports the fingerprint of a (recipient, amount, nonce) triple
// and whether it has been redeemed.
func (q Querier) Authorization(ctx context.Context, req *issuancetypes.QueryAuthorizationRequest) (*issuancetypes.QueryAuthorizationResponse, error) {
	if req == nil || req.Nonce.IsNil() {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "nonce cannot be empty")
	}

	recipient, err := sdk.AccAddressFromBech32(req.Recipient)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	fingerprint := q.verifier.Fingerprint(recipient, req.Amount, req.Nonce)

	consumed, err := q.IsAuthorizationConsumed(ctx, fingerprint)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.QueryAuthorizationResponse{Fingerprint: fingerprint, Consumed: consumed}, nil
}

func (q Querier) BundleRedeemed(ctx context.Context, req *issuancetypes.QueryBundleRedeemedRequest) (*issuancetypes.QueryBundleRedeemedResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	redeemed, err := q.HasRedeemedBundle(ctx, addr)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.QueryBundleRedeemedResponse{Redeemed: redeemed}, nil
}

func (q Querier) CollectedFunds(ctx context.Context, _ *issuancetypes.QueryCollectedFundsRequest) (*issuancetypes.QueryCollectedFundsResponse, error) {
	return &issuancetypes.QueryCollectedFundsResponse{Funds: q.Keeper.CollectedFunds(ctx)}, nil
}
