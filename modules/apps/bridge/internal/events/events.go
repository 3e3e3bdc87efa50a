package events

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// EmitTransferEvent emits an event for an outbound native currency transfer.
func EmitTransferEvent(ctx sdk.Context, actionID uint64, sender sdk.AccAddress, destination string, coin sdk.Coin) {
	emitOutbound(ctx, types.EventTypeTransfer, actionID, sender, destination,
		sdk.NewAttribute(types.AttributeKeyDenom, coin.Denom),
		sdk.NewAttribute(types.AttributeKeyAmount, coin.Amount.String()),
	)
}

// EmitContractCallEvent emits an event for an outbound foreign contract call.
// Arguments are base64 encoded and comma separated.
func EmitContractCallEvent(ctx sdk.Context, actionID uint64, sender sdk.AccAddress, destination, endpoint string, args [][]byte) {
	encoded := make([]string, len(args))
	for i, arg := range args {
		encoded[i] = base64.StdEncoding.EncodeToString(arg)
	}

	emitOutbound(ctx, types.EventTypeContractCall, actionID, sender, destination,
		sdk.NewAttribute(types.AttributeKeyEndpoint, endpoint),
		sdk.NewAttribute(types.AttributeKeyArgs, strings.Join(encoded, ",")),
	)
}

// EmitUnfreezeWrappedEvent emits an event for a wrapped currency withdrawal.
func EmitUnfreezeWrappedEvent(ctx sdk.Context, actionID uint64, sender sdk.AccAddress, destination string, coin sdk.Coin) {
	emitOutbound(ctx, types.EventTypeUnfreezeWrapped, actionID, sender, destination,
		sdk.NewAttribute(types.AttributeKeyDenom, coin.Denom),
		sdk.NewAttribute(types.AttributeKeyAmount, coin.Amount.String()),
	)
}

// EmitLockAssetEvent emits an event for a unique asset locked for a foreign chain.
func EmitLockAssetEvent(ctx sdk.Context, actionID uint64, sender sdk.AccAddress, destination, classID, nftID string) {
	emitOutbound(ctx, types.EventTypeLockAsset, actionID, sender, destination,
		sdk.NewAttribute(types.AttributeKeyClassID, classID),
		sdk.NewAttribute(types.AttributeKeyNFTID, nftID),
	)
}

// EmitConfirmationEvent emits an event for every accepted confirmation. These
// events remain observable after the action record has been pruned.
func EmitConfirmationEvent(ctx sdk.Context, actionID []byte, validator sdk.AccAddress, payload types.ActionPayload, result types.ConfirmResult) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeConfirmation,
			sdk.NewAttribute(types.AttributeKeyActionID, hex.EncodeToString(actionID)),
			sdk.NewAttribute(types.AttributeKeyValidator, validator.String()),
			sdk.NewAttribute(types.AttributeKeyPayloadType, payload.Type()),
			sdk.NewAttribute(types.AttributeKeyOutcome, result.Outcome.String()),
			sdk.NewAttribute(types.AttributeKeyConfirmations, strconv.FormatUint(result.Confirmations, 10)),
			sdk.NewAttribute(types.AttributeKeyThreshold, strconv.FormatUint(result.Threshold, 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitPayloadMismatchEvent emits an event when a validator confirms an action
// with a payload that differs from the stored one.
func EmitPayloadMismatchEvent(ctx sdk.Context, actionID []byte, validator sdk.AccAddress, stored, submitted types.ActionPayload) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePayloadMismatch,
			sdk.NewAttribute(types.AttributeKeyActionID, hex.EncodeToString(actionID)),
			sdk.NewAttribute(types.AttributeKeyValidator, validator.String()),
			sdk.NewAttribute(types.AttributeKeyStoredPayload, types.PayloadString(stored)),
			sdk.NewAttribute(types.AttributeKeyPayload, types.PayloadString(submitted)),
		),
	)
}

// EmitActionPrunedEvent emits an event when a fully confirmed record is removed.
func EmitActionPrunedEvent(ctx sdk.Context, actionID []byte, validatorCount uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeActionPruned,
			sdk.NewAttribute(types.AttributeKeyActionID, hex.EncodeToString(actionID)),
			sdk.NewAttribute(types.AttributeKeyValidatorCount, strconv.FormatUint(validatorCount, 10)),
		),
	)
}

// EmitActionExecutedEvent emits an event once the payload of an action has been executed.
func EmitActionExecutedEvent(ctx sdk.Context, actionID []byte, payload types.ActionPayload) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeActionExecuted,
			sdk.NewAttribute(types.AttributeKeyActionID, hex.EncodeToString(actionID)),
			sdk.NewAttribute(types.AttributeKeyPayloadType, payload.Type()),
			sdk.NewAttribute(types.AttributeKeyPayload, types.PayloadString(payload)),
		),
	)
}

// EmitParamsUpdatedEvent emits an event when the authority updates the module params.
func EmitParamsUpdatedEvent(ctx sdk.Context, authority string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, authority),
		),
	)
}

func emitOutbound(ctx sdk.Context, eventType string, actionID uint64, sender sdk.AccAddress, destination string, attributes ...sdk.Attribute) {
	attributes = append([]sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyActionID, strconv.FormatUint(actionID, 10)),
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyDestination, destination),
	}, attributes...)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(eventType, attributes...),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}
