package types_test

import (
	"testing"

	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

func TestRegisterInterfacesResolvesMessages(t *testing.T) {
	registry := cdctypes.NewInterfaceRegistry()
	registry.RegisterInterface("cosmos.base.v1beta1.Msg", (*sdk.Msg)(nil))
	issuancetypes.RegisterInterfaces(registry)

	require.Len(t, issuancetypes.MsgTypeURLs, 5)
	for typeURL, want := range issuancetypes.MsgTypeURLs {
		msg, err := registry.Resolve(typeURL)
		require.NoError(t, err, typeURL)
		require.IsType(t, want, msg)
	}
}
