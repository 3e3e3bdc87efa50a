package types

import (
	"cosmossdk.io/collections"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the bridge module name
	ModuleName = "bridge"

	// StoreKey is the store key string for the bridge module
	StoreKey = ModuleName

	// RouterKey is the message route for the bridge module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the bridge module
	QuerierRoute = ModuleName
)

const (
	// MaxActionIDLength is the maximum length in bytes of an external action identifier
	MaxActionIDLength = 128

	// MaxDestinationLength is the maximum length of a foreign destination address (value chosen arbitrarily)
	MaxDestinationLength = 256

	// MaxCallDataLength is the maximum length of raw contract call data (value chosen arbitrarily)
	MaxCallDataLength = 32768
)

var (
	// ValidatorsKey is the prefix of the validator set
	ValidatorsKey = collections.NewPrefix(0)
	// ValidatorCountKey is the key of the validator count scalar
	ValidatorCountKey = collections.NewPrefix(1)
	// LastActionIDKey is the key of the outbound action sequence
	LastActionIDKey = collections.NewPrefix(2)
	// ActionsKey is the prefix of the pending action ledger
	ActionsKey = collections.NewPrefix(3)
	// ParamsKey is the key of the module parameters
	ParamsKey = collections.NewPrefix(4)
)

// ModuleAddress returns the address of the bridge module account, which escrows
// native coins and locked assets for outbound actions.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
