package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QuerySupplyRequest struct{}

// QuerySupplyResponse reports the counter position and how many units remain.
type QuerySupplyResponse struct {
	NextID    uint64 `json:"next_id"`
	Ceiling   uint64 `json:"ceiling"`
	Remaining uint64 `json:"remaining"`
}

type QueryOwnerRequest struct {
	ID uint64 `json:"id"`
}

type QueryOwnerResponse struct {
	Owner string `json:"owner"`
}

type QueryBalanceRequest struct {
	Owner string `json:"owner"`
}

type QueryBalanceResponse struct {
	Balance uint64 `json:"balance"`
}

type QueryAuthorizationRequest struct {
	Recipient string    `json:"recipient"`
	Amount    uint64    `json:"amount"`
	Nonce     math.Uint `json:"nonce"`
}

type QueryAuthorizationResponse struct {
	Fingerprint []byte `json:"fingerprint"`
	Consumed    bool   `json:"consumed"`
}

type QueryBundleRedeemedRequest struct {
	Address string `json:"address"`
}

type QueryBundleRedeemedResponse struct {
	Redeemed bool `json:"redeemed"`
}

type QueryCollectedFundsRequest struct{}

type QueryCollectedFundsResponse struct {
	Funds sdk.Coins `json:"funds"`
}

// QueryServer defines the query service for the issuance module
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Supply(ctx context.Context, req *QuerySupplyRequest) (*QuerySupplyResponse, error)
	Owner(ctx context.Context, req *QueryOwnerRequest) (*QueryOwnerResponse, error)
	Balance(ctx context.Context, req *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Authorization(ctx context.Context, req *QueryAuthorizationRequest) (*QueryAuthorizationResponse, error)
	BundleRedeemed(ctx context.Context, req *QueryBundleRedeemedRequest) (*QueryBundleRedeemedResponse, error)
	CollectedFunds(ctx context.Context, req *QueryCollectedFundsRequest) (*QueryCollectedFundsResponse, error)
}
