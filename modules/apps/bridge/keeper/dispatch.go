package keeper

import (
	"encoding/hex"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
	"github.com/actionbridge/bridge/modules/apps/bridge/internal/events"
	"github.com/actionbridge/bridge/modules/apps/bridge/internal/telemetry"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// Dispatch executes the local effect of an action that reached quorum. It must
// be called exactly once per Ready result, with the stored payload.
func (k Keeper) Dispatch(ctx sdk.Context, actionID []byte, payload types.ActionPayload) error {
	params := k.GetParams(ctx)

	var err error
	switch p := payload.(type) {
	case types.Unfreeze:
		err = k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, p.To, sdk.NewCoins(sdk.NewCoin(params.NativeDenom, p.Amount)))
	case types.ContractCall:
		err = k.executeContractCall(ctx, p)
	case types.TransferWrapped:
		err = k.mintWrapped(ctx, params.WrappedDenom, p)
	case types.UnfreezeAsset:
		err = k.unlockAsset(ctx, params, p)
	default:
		panic(fmt.Errorf("unexpected action payload type %T", payload))
	}
	if err != nil {
		return errorsmod.Wrapf(err, "failed to execute %s action %X", payload.Type(), actionID)
	}

	events.EmitActionExecutedEvent(ctx, actionID, payload)
	telemetry.ReportExecution(payload.Type())

	k.Logger(ctx).Info("bridge action executed", "action-id", hex.EncodeToString(actionID), "payload", payload.Type())

	return nil
}

func (k Keeper) executeContractCall(ctx sdk.Context, call types.ContractCall) error {
	if k.contractKeeper == nil {
		return errorsmod.Wrap(bridgeerrors.ErrLogic, "contract keeper is not configured")
	}

	_, err := k.contractKeeper.Execute(ctx, call.Contract, types.ModuleAddress(), call.CallData, sdk.NewCoins())
	return err
}

func (k Keeper) mintWrapped(ctx sdk.Context, denom string, transfer types.TransferWrapped) error {
	coins := sdk.NewCoins(sdk.NewCoin(denom, transfer.Amount))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}

	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, transfer.To, coins)
}

func (k Keeper) unlockAsset(ctx sdk.Context, params types.Params, unfreeze types.UnfreezeAsset) error {
	if !params.AssetBridgingEnabled {
		return types.ErrAssetBridgingDisabled
	}
	if k.nftKeeper == nil {
		return errorsmod.Wrap(bridgeerrors.ErrLogic, "nft keeper is not configured")
	}

	if owner := k.nftKeeper.GetOwner(ctx, unfreeze.ClassID, unfreeze.NFTID); !owner.Equals(types.ModuleAddress()) {
		return errorsmod.Wrapf(bridgeerrors.ErrNotFound, "nft %s/%s is not locked by the bridge", unfreeze.ClassID, unfreeze.NFTID)
	}

	return k.nftKeeper.Transfer(ctx, unfreeze.ClassID, unfreeze.NFTID, unfreeze.To)
}
