package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrInvalidValue          = errorsmod.Register(ModuleName, 2, "invalid value")
	ErrOutOfFunds            = errorsmod.Register(ModuleName, 3, "not enough funds")
	ErrInvalidDestination    = errorsmod.Register(ModuleName, 4, "invalid destination address")
	ErrUnauthorized          = errorsmod.Register(ModuleName, 5, "validator is not registered")
	ErrDuplicateConfirmation = errorsmod.Register(ModuleName, 6, "validator already confirmed action")
	ErrInvalidActionID       = errorsmod.Register(ModuleName, 7, "invalid action identifier")
	ErrInvalidPayload        = errorsmod.Register(ModuleName, 8, "invalid action payload")
	ErrAssetBridgingDisabled = errorsmod.Register(ModuleName, 9, "asset bridging is disabled")
	ErrInvalidAuthority      = errorsmod.Register(ModuleName, 10, "invalid authority")
	ErrInvalidGenesis        = errorsmod.Register(ModuleName, 11, "invalid genesis state")
	ErrInvalidParams         = errorsmod.Register(ModuleName, 12, "invalid params")
)
