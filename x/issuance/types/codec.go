package types

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

// RegisterLegacyAminoCodec registers the x/issuance messages on the provided
// LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSignedMint{}, "issuance/MsgSignedMint", nil)
	cdc.RegisterConcrete(&MsgMint{}, "issuance/MsgMint", nil)
	cdc.RegisterConcrete(&MsgMintBundle{}, "issuance/MsgMintBundle", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "issuance/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgOverrideCounter{}, "issuance/MsgOverrideCounter", nil)
}

// customTypeURLRegistry is implemented by the SDK's concrete interface
// registry. The messages carry no generated proto names, so their type URLs
// are assigned explicitly.
type customTypeURLRegistry interface {
	RegisterCustomTypeURL(iface interface{}, typeURL string, impl proto.Message)
}

// MsgTypeURLs maps every x/issuance message to its registered type URL.
var MsgTypeURLs = map[string]sdk.Msg{
	"/issuance.MsgSignedMint":      &MsgSignedMint{},
	"/issuance.MsgMint":            &MsgMint{},
	"/issuance.MsgMintBundle":      &MsgMintBundle{},
	"/issuance.MsgWithdraw":        &MsgWithdraw{},
	"/issuance.MsgOverrideCounter": &MsgOverrideCounter{},
}

// RegisterInterfaces registers the x/issuance messages with the interface
// registry under their custom type URLs.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	custom, ok := registry.(customTypeURLRegistry)
	if !ok {
		panic(fmt.Sprintf("interface registry %T cannot register custom type URLs", registry))
	}

	for typeURL, msg := range MsgTypeURLs {
		custom.RegisterCustomTypeURL((*sdk.Msg)(nil), typeURL, msg)
	}
}

var Amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(Amino)
	Amino.Seal()
}
