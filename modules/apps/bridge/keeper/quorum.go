package keeper

import (
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/internal/events"
	"github.com/actionbridge/bridge/modules/apps/bridge/internal/telemetry"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// Confirm records that validator attests to the external action identified by
// actionID. The first accepted confirmation of an unknown action seeds its
// record with payload; later confirmations never replace the stored payload.
//
// The result is Ready only on the call whose confirmation makes the set size
// equal to the quorum threshold. Every other accepted call is Pending. Once
// the set contains every registered validator the record is removed, which
// may happen on the same call that returns Ready.
//
// Unauthorized, invalid and duplicate confirmations are rejected without
// touching the ledger.
func (k Keeper) Confirm(ctx sdk.Context, validator sdk.AccAddress, actionID []byte, payload types.ActionPayload) (types.ConfirmResult, error) {
	if !k.HasValidator(ctx, validator) {
		return types.ConfirmResult{}, errorsmod.Wrapf(types.ErrUnauthorized, "%s", validator)
	}
	if payload == nil {
		return types.ConfirmResult{}, errorsmod.Wrap(types.ErrInvalidPayload, "payload cannot be nil")
	}
	if err := payload.ValidateBasic(); err != nil {
		return types.ConfirmResult{}, errorsmod.Wrapf(types.ErrInvalidPayload, "%s payload: %v", payload.Type(), err)
	}

	record, found := k.GetAction(ctx, actionID)
	if !found {
		record = types.NewActionRecord(payload)
	}

	if record.HasConfirmed(validator) {
		return types.ConfirmResult{}, errorsmod.Wrapf(types.ErrDuplicateConfirmation, "validator %s, action %X", validator, actionID)
	}

	if found && !record.Payload.Equal(payload) {
		k.Logger(ctx).Warn(
			"confirmation payload differs from stored payload",
			"action-id", hex.EncodeToString(actionID),
			"validator", validator.String(),
			"stored", types.PayloadString(record.Payload),
			"submitted", types.PayloadString(payload),
		)
		events.EmitPayloadMismatchEvent(ctx, actionID, validator, record.Payload, payload)
		telemetry.ReportPayloadMismatch(record.Payload.Type(), payload.Type())
	}

	record.AddConfirmation(validator)

	validatorCount := k.GetValidatorCount(ctx)
	result := types.ConfirmResult{
		Outcome:       types.Pending,
		Confirmations: record.ConfirmationCount(),
		Threshold:     types.QuorumThreshold(validatorCount),
		Payload:       record.Payload,
	}

	if result.Confirmations == result.Threshold {
		result.Outcome = types.Ready
	}

	if result.Confirmations == validatorCount {
		if found {
			if err := k.RemoveAction(ctx, actionID); err != nil {
				return types.ConfirmResult{}, err
			}
		}
		result.Pruned = true
	} else if err := k.SetAction(ctx, actionID, record); err != nil {
		return types.ConfirmResult{}, err
	}

	events.EmitConfirmationEvent(ctx, actionID, validator, record.Payload, result)
	if result.Pruned {
		events.EmitActionPrunedEvent(ctx, actionID, validatorCount)
	}
	telemetry.ReportConfirmation(record.Payload.Type(), result)

	if result.IsReady() {
		k.Logger(ctx).Info(
			"bridge action reached quorum",
			"action-id", hex.EncodeToString(actionID),
			"payload", record.Payload.Type(),
			"confirmations", result.Confirmations,
			"threshold", result.Threshold,
		)
	}

	return result, nil
}

// GetQuorumThreshold returns the number of confirmations required to execute
// an action against the registered validator set.
func (k Keeper) GetQuorumThreshold(ctx sdk.Context) uint64 {
	return types.QuorumThreshold(k.GetValidatorCount(ctx))
}
