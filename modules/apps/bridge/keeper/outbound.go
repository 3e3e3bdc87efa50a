package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
	"github.com/actionbridge/bridge/modules/apps/bridge/internal/events"
	"github.com/actionbridge/bridge/modules/apps/bridge/internal/telemetry"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// Send escrows amount of the native denom from sender in the module account and
// allocates an outbound action id for the foreign transfer.
func (k Keeper) Send(ctx sdk.Context, sender sdk.AccAddress, destination string, amount sdkmath.Int) (uint64, error) {
	params := k.GetParams(ctx)

	coin, err := k.withdrawableCoin(ctx, params, sender, params.NativeDenom, destination, amount)
	if err != nil {
		return 0, err
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return 0, err
	}

	actionID, err := k.NextActionID(ctx)
	if err != nil {
		return 0, err
	}

	events.EmitTransferEvent(ctx, actionID, sender, destination, coin)
	telemetry.ReportOutbound(telemetry.KindTransfer, coin.Denom, coin.Amount)

	k.Logger(ctx).Info("bridge transfer", "action-id", actionID, "sender", sender.String(), "destination", destination, "amount", coin.String())

	return actionID, nil
}

// SendContractCall allocates an outbound action id for a call to endpoint on
// the foreign contract at destination. No funds move.
func (k Keeper) SendContractCall(ctx sdk.Context, sender sdk.AccAddress, destination, endpoint string, args [][]byte) (uint64, error) {
	if err := k.GetParams(ctx).ValidateDestination(destination); err != nil {
		return 0, err
	}

	actionID, err := k.NextActionID(ctx)
	if err != nil {
		return 0, err
	}

	events.EmitContractCallEvent(ctx, actionID, sender, destination, endpoint, args)
	telemetry.ReportOutbound(telemetry.KindContractCall, "", sdkmath.Int{})

	k.Logger(ctx).Info("bridge contract call", "action-id", actionID, "sender", sender.String(), "destination", destination, "endpoint", endpoint)

	return actionID, nil
}

// WithdrawWrapped burns amount of the wrapped denom held by sender and
// allocates an outbound action id releasing the original on the foreign chain.
func (k Keeper) WithdrawWrapped(ctx sdk.Context, sender sdk.AccAddress, destination string, amount sdkmath.Int) (uint64, error) {
	params := k.GetParams(ctx)

	coin, err := k.withdrawableCoin(ctx, params, sender, params.WrappedDenom, destination, amount)
	if err != nil {
		return 0, err
	}

	coins := sdk.NewCoins(coin)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return 0, err
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return 0, err
	}

	actionID, err := k.NextActionID(ctx)
	if err != nil {
		return 0, err
	}

	events.EmitUnfreezeWrappedEvent(ctx, actionID, sender, destination, coin)
	telemetry.ReportOutbound(telemetry.KindWithdrawWrapped, coin.Denom, coin.Amount)

	k.Logger(ctx).Info("bridge wrapped withdrawal", "action-id", actionID, "sender", sender.String(), "destination", destination, "amount", coin.String())

	return actionID, nil
}

// LockAsset moves the nft owned by sender into the module account and
// allocates an outbound action id for the foreign chain.
func (k Keeper) LockAsset(ctx sdk.Context, sender sdk.AccAddress, destination, classID, nftID string) (uint64, error) {
	params := k.GetParams(ctx)
	if !params.AssetBridgingEnabled {
		return 0, types.ErrAssetBridgingDisabled
	}
	if k.nftKeeper == nil {
		return 0, errorsmod.Wrap(bridgeerrors.ErrLogic, "nft keeper is not configured")
	}
	if err := params.ValidateDestination(destination); err != nil {
		return 0, err
	}

	if owner := k.nftKeeper.GetOwner(ctx, classID, nftID); !owner.Equals(sender) {
		return 0, errorsmod.Wrapf(bridgeerrors.ErrUnauthorized, "%s is not the owner of nft %s/%s", sender, classID, nftID)
	}

	if err := k.nftKeeper.Transfer(ctx, classID, nftID, types.ModuleAddress()); err != nil {
		return 0, err
	}

	actionID, err := k.NextActionID(ctx)
	if err != nil {
		return 0, err
	}

	events.EmitLockAssetEvent(ctx, actionID, sender, destination, classID, nftID)
	telemetry.ReportOutbound(telemetry.KindLockAsset, "", sdkmath.Int{})

	k.Logger(ctx).Info("bridge asset lock", "action-id", actionID, "sender", sender.String(), "destination", destination, "class-id", classID, "nft-id", nftID)

	return actionID, nil
}

// withdrawableCoin checks an outbound amount against the spendable balance of
// sender and validates the destination.
func (k Keeper) withdrawableCoin(ctx sdk.Context, params types.Params, sender sdk.AccAddress, denom, destination string, amount sdkmath.Int) (sdk.Coin, error) {
	if err := types.ValidateAmount(amount); err != nil {
		return sdk.Coin{}, err
	}

	spendable := k.bankKeeper.SpendableCoin(ctx, sender, denom)
	if spendable.Amount.LT(amount) {
		return sdk.Coin{}, errorsmod.Wrapf(types.ErrOutOfFunds, "spendable balance %s is smaller than %s%s", spendable, amount, denom)
	}

	if err := params.ValidateDestination(destination); err != nil {
		return sdk.Coin{}, err
	}

	return sdk.NewCoin(denom, amount), nil
}
