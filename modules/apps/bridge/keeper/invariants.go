package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// RegisterInvariants registers all bridge invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "validator-count",
		ValidatorCountInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pending-actions",
		PendingActionsInvariant(k))
}

// AllInvariants runs all invariants of the bridge module.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if res, stop := ValidatorCountInvariant(k)(ctx); stop {
			return res, stop
		}
		return PendingActionsInvariant(k)(ctx)
	}
}

// ValidatorCountInvariant checks that the stored validator count equals the
// size of the validator set.
func ValidatorCountInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if !k.IsRegistryInitialized(ctx) {
			return "", false
		}

		count := k.GetValidatorCount(ctx)
		actual := uint64(len(k.GetValidators(ctx)))
		if count != actual {
			return sdk.FormatInvariant(
				types.ModuleName,
				"validator count",
				fmt.Sprintf("stored validator count %d does not match validator set size %d", count, actual)), true
		}

		return "", false
	}
}

// PendingActionsInvariant checks that every pending record is valid, was
// confirmed only by registered validators and has not reached the full
// validator set, in which case it must have been pruned.
func PendingActionsInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)

		if !k.IsRegistryInitialized(ctx) {
			return "", false
		}
		count := k.GetValidatorCount(ctx)

		k.IterateActions(ctx, func(actionID []byte, record types.ActionRecord) bool {
			switch {
			case record.Validate() != nil:
				msg = fmt.Sprintf("action %X is invalid: %v", actionID, record.Validate())
			case record.ConfirmationCount() == 0:
				msg = fmt.Sprintf("action %X has no confirmations", actionID)
			case record.ConfirmationCount() >= count:
				msg = fmt.Sprintf("action %X has %d confirmations and should have been pruned", actionID, record.ConfirmationCount())
			default:
				for _, validator := range record.Confirmations {
					if !k.HasValidator(ctx, validator) {
						msg = fmt.Sprintf("action %X was confirmed by unregistered validator %s", actionID, validator)
						break
					}
				}
			}

			broken = msg != ""
			return broken
		})

		if broken {
			return sdk.FormatInvariant(types.ModuleName, "pending actions", msg), true
		}

		return "", false
	}
}
