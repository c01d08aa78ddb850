package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSignedMintResponse defines the response for MsgSignedMint
type MsgSignedMintResponse struct {
	IDs []uint64 `json:"ids"`
}

// MsgMintResponse defines the response for MsgMint
type MsgMintResponse struct {
	IDs []uint64 `json:"ids"`
}

// MsgMintBundleResponse defines the response for MsgMintBundle
type MsgMintBundleResponse struct {
	IDs []uint64 `json:"ids"`
}

// MsgWithdrawResponse defines the response for MsgWithdraw
type MsgWithdrawResponse struct {
	Amount sdk.Coins `json:"amount"`
}

// MsgOverrideCounterResponse defines the response for MsgOverrideCounter
type MsgOverrideCounterResponse struct {
	PreviousNextID uint64 `json:"previous_next_id"`
	NextID         uint64 `json:"next_id"`
}

// MsgServer defines the msg service for the issuance module
type MsgServer interface {
	SignedMint(ctx context.Context, msg *MsgSignedMint) (*MsgSignedMintResponse, error)
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
	MintBundle(ctx context.Context, msg *MsgMintBundle) (*MsgMintBundleResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	OverrideCounter(ctx context.Context, msg *MsgOverrideCounter) (*MsgOverrideCounterResponse, error)
}
