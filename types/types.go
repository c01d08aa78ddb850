package types

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Unit represents a single issued collectible and its current owner
type Unit struct {
	ID    uint64 `json:"id"`
	Owner string `json:"owner"`
}

func (u Unit) String() string { return fmt.Sprintf("Unit{ID: %d, Owner: %s}", u.ID, u.Owner) }

// Authorization is a backend-issued permission allowing Recipient to mint Amount
// units once. Fingerprint is derived from (Recipient, Amount, Nonce) in that order.
type Authorization struct {
	Recipient   string        `json:"recipient"`
	Amount      uint64        `json:"amount"`
	Nonce       math.Uint     `json:"nonce"`
	Fingerprint hexutil.Bytes `json:"fingerprint"`
	Signature   hexutil.Bytes `json:"signature"`
}

func (a Authorization) String() string {
	return fmt.Sprintf("Authorization{Recipient: %s, Amount: %d, Nonce: %s}", a.Recipient, a.Amount, a.Nonce)
}
