package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// Default parameter values
const (
	DefaultName          = "Collectible"
	DefaultSymbol        = "CLT"
	DefaultBundleSize    = uint64(6)
	DefaultSupplyCeiling = uint64(1000)
	DefaultMaxPerMint    = uint64(0) // unbounded
)

const maxPriceBits = 128

var (
	DefaultUnitPrice   = math.NewInt(100)
	DefaultBundlePrice = math.NewInt(500)
)

// Params defines the issuance configuration. It is fixed at genesis.
type Params struct {
	Name            string   `json:"name"`
	Symbol          string   `json:"symbol"`
	Denom           string   `json:"denom"`
	UnitPrice       math.Int `json:"unit_price"`
	BundlePrice     math.Int `json:"bundle_price"`
	BundleSize      uint64   `json:"bundle_size"`
	SupplyCeiling   uint64   `json:"supply_ceiling"`
	MaxPerMint      uint64   `json:"max_per_mint"`
	AuthoritySigner string   `json:"authority_signer"` // hex address of the backend signing key
	Authority       string   `json:"authority"`        // account allowed to withdraw and override the counter
}

// DefaultParams returns default issuance parameters. The signer and authority
// identities have no sensible default and must be supplied by the deployment.
func DefaultParams() Params {
	return Params{
		Name:          DefaultName,
		Symbol:        DefaultSymbol,
		Denom:         sdk.DefaultBondDenom,
		UnitPrice:     DefaultUnitPrice,
		BundlePrice:   DefaultBundlePrice,
		BundleSize:    DefaultBundleSize,
		SupplyCeiling: DefaultSupplyCeiling,
		MaxPerMint:    DefaultMaxPerMint,
	}
}

// String implements fmt.Stringer
func (p Params) String() string {
	return fmt.Sprintf("Params{Symbol: %s, UnitPrice: %s, BundlePrice: %s, SupplyCeiling: %d}",
		p.Symbol, p.UnitPrice, p.BundlePrice, p.SupplyCeiling)
}

// Validate performs basic validation of issuance parameters
func (p Params) Validate() error {
	if p.Name == "" {
		return errorsmod.Wrap(ErrInvalidParams, "name cannot be empty")
	}

	if p.Symbol == "" {
		return errorsmod.Wrap(ErrInvalidParams, "symbol cannot be empty")
	}

	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "denom: %s", err)
	}

	if p.UnitPrice.IsNil() || p.UnitPrice.IsNegative() {
		return errorsmod.Wrap(ErrInvalidParams, "unit price must be non-negative")
	}

	if p.BundlePrice.IsNil() || p.BundlePrice.IsNegative() {
		return errorsmod.Wrap(ErrInvalidParams, "bundle price must be non-negative")
	}

	// keeps count * price well inside math.Int's 256 bits
	if p.UnitPrice.BigInt().BitLen() > maxPriceBits || p.BundlePrice.BigInt().BitLen() > maxPriceBits {
		return errorsmod.Wrapf(ErrInvalidParams, "prices must fit in %d bits", maxPriceBits)
	}

	if p.SupplyCeiling == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "supply ceiling must be positive")
	}

	if p.BundleSize == 0 || p.BundleSize > p.SupplyCeiling {
		return errorsmod.Wrapf(ErrInvalidParams, "bundle size must be in [1, %d]: %d", p.SupplyCeiling, p.BundleSize)
	}

	if !common.IsHexAddress(p.AuthoritySigner) {
		return errorsmod.Wrapf(ErrInvalidParams, "authority signer is not a hex address: %q", p.AuthoritySigner)
	}

	if _, err := sdk.AccAddressFromBech32(p.Authority); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "authority: %s", err)
	}

	return nil
}

// MintPrice returns the exact payment required for count units.
func (p Params) MintPrice(count uint64) sdk.Coin {
	return sdk.NewCoin(p.Denom, p.UnitPrice.Mul(math.NewIntFromUint64(count)))
}

// ParamsValue stores Params as JSON inside collections.
var ParamsValue collcodec.ValueCodec[Params] = paramsValueCodec{}

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(value Params) ([]byte, error) { return json.Marshal(value) }

func (paramsValueCodec) Decode(b []byte) (Params, error) {
	var p Params
	err := json.Unmarshal(b, &p)
	return p, err
}

func (c paramsValueCodec) EncodeJSON(value Params) ([]byte, error) { return c.Encode(value) }

func (c paramsValueCodec) DecodeJSON(b []byte) (Params, error) { return c.Decode(b) }

func (paramsValueCodec) Stringify(value Params) string { return value.String() }

func (paramsValueCodec) ValueType() string { return "issuance/Params" }
