package issuance

import (
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"cosmossdk.io/core/appmodule"

	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/issuance-control/cosmos/x/issuance/keeper"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

var (
	_ module.AppModuleBasic      = AppModuleBasic{}
	_ module.HasGenesisBasics    = AppModuleBasic{}
	_ module.HasABCIGenesis      = AppModule{}
	_ module.HasConsensusVersion = AppModule{}
	_ appmodule.AppModule        = AppModule{}
)

// AppModuleBasic defines the basic application module used by the issuance module.
type AppModuleBasic struct{}

// Name returns the issuance module's name.
func (AppModuleBasic) Name() string {
	return issuancetypes.ModuleName
}

// RegisterLegacyAminoCodec registers the issuance module's types on the given LegacyAmino codec.
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	issuancetypes.RegisterLegacyAminoCodec(cdc)
}

// RegisterInterfaces registers the module's interface types
func (AppModuleBasic) RegisterInterfaces(reg cdctypes.InterfaceRegistry) {
	issuancetypes.RegisterInterfaces(reg)
}

// DefaultGenesis returns default genesis state as raw bytes for the issuance
// module. The genesis types are plain JSON documents.
func (AppModuleBasic) DefaultGenesis(_ codec.JSONCodec) json.RawMessage {
	bz, err := json.Marshal(issuancetypes.DefaultGenesisState())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis performs genesis state validation for the issuance module.
func (AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	genState, err := ParseGenesis(bz)
	if err != nil {
		return err
	}
	return genState.Validate()
}

// RegisterGRPCGatewayRoutes registers the gRPC Gateway routes for the module.
// The issuance queries are served by keeper.Querier, so no routes are mounted.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(_ client.Context, _ *runtime.ServeMux) {}

// ParseGenesis decodes an issuance genesis document.
func ParseGenesis(bz json.RawMessage) (*issuancetypes.GenesisState, error) {
	var genState issuancetypes.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", issuancetypes.ModuleName, err)
	}
	return &genState, nil
}

// AppModule implements the AppModule interface for the issuance module.
type AppModule struct {
	AppModuleBasic

	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(keeper *keeper.Keeper) AppModule {
	return AppModule{keeper: keeper}
}

// IsAppModule implements the appmodule.AppModule interface.
func (am AppModule) IsAppModule() {}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (am AppModule) IsOnePerModuleType() {}

// Name returns the issuance module's name.
func (am AppModule) Name() string {
	return am.AppModuleBasic.Name()
}

// MsgServer returns the handler for issuance messages.
func (am AppModule) MsgServer() issuancetypes.MsgServer {
	return keeper.NewMsgServerImpl(am.keeper)
}

// QueryServer returns the handler for issuance queries.
func (am AppModule) QueryServer() issuancetypes.QueryServer {
	return keeper.NewQuerier(am.keeper)
}

// InitGenesis performs the issuance module's genesis initialization. It returns
// no validator updates.
func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, gs json.RawMessage) []abci.ValidatorUpdate {
	genState, err := ParseGenesis(gs)
	if err != nil {
		panic(err)
	}

	if err := InitGenesis(ctx, am.keeper, genState); err != nil {
		panic(fmt.Errorf("failed to initialize %s genesis state: %w", issuancetypes.ModuleName, err))
	}

	return []abci.ValidatorUpdate{}
}

// ExportGenesis returns the issuance module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	genState, err := ExportGenesis(ctx, am.keeper)
	if err != nil {
		panic(err)
	}

	bz, err := json.Marshal(genState)
	if err != nil {
		panic(err)
	}
	return bz
}

// ConsensusVersion implements ConsensusVersion.
func (AppModule) ConsensusVersion() uint64 { return 1 }
