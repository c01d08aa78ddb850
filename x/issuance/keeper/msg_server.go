package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper *Keeper) issuancetypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ issuancetypes.MsgServer = msgServer{}

// SignedMint handles MsgSignedMint messages. The sender is the recipient.
func (k msgServer) SignedMint(goCtx context.Context, msg *issuancetypes.MsgSignedMint) (*issuancetypes.MsgSignedMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	recipient := sdk.MustAccAddressFromBech32(msg.Sender)

	ids, err := k.Keeper.SignedMint(ctx, recipient, msg.Amount, msg.Nonce, msg.Signature)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.MsgSignedMintResponse{IDs: ids}, nil
}

// Mint handles MsgMint messages
func (k msgServer) Mint(goCtx context.Context, msg *issuancetypes.MsgMint) (*issuancetypes.MsgMintResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	buyer := sdk.MustAccAddressFromBech32(msg.Sender)

	ids, err := k.Keeper.Mint(ctx, buyer, msg.Count, msg.Payment)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.MsgMintResponse{IDs: ids}, nil
}

// MintBundle handles MsgMintBundle messages
func (k msgServer) MintBundle(goCtx context.Context, msg *issuancetypes.MsgMintBundle) (*issuancetypes.MsgMintBundleResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	buyer := sdk.MustAccAddressFromBech32(msg.Sender)

	ids, err := k.Keeper.MintBundle(ctx, buyer, msg.Payment)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.MsgMintBundleResponse{IDs: ids}, nil
}

// Withdraw handles MsgWithdraw messages
func (k msgServer) Withdraw(goCtx context.Context, msg *issuancetypes.MsgWithdraw) (*issuancetypes.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	caller := sdk.MustAccAddressFromBech32(msg.Authority)

	funds, err := k.Keeper.Withdraw(ctx, caller)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.MsgWithdrawResponse{Amount: funds}, nil
}

// OverrideCounter handles MsgOverrideCounter messages
func (k msgServer) OverrideCounter(goCtx context.Context, msg *issuancetypes.MsgOverrideCounter) (*issuancetypes.MsgOverrideCounterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	caller := sdk.MustAccAddressFromBech32(msg.Authority)

	previous, next, err := k.Keeper.OverrideCounter(ctx, caller, msg.LastID)
	if err != nil {
		return nil, err
	}

	return &issuancetypes.MsgOverrideCounterResponse{PreviousNextID: previous, NextID: next}, nil
}
