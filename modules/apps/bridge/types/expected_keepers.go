package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected bank keeper
type BankKeeper interface {
	SpendableCoin(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

// NFTKeeper defines the subset of the x/nft keeper used to lock and release unique assets
type NFTKeeper interface {
	GetOwner(ctx context.Context, classID, nftID string) sdk.AccAddress
	Transfer(ctx context.Context, classID, nftID string, receiver sdk.AccAddress) error
}

// ContractKeeper executes local contracts. The wasmd permissioned keeper
// satisfies this interface.
type ContractKeeper interface {
	// Execute calls contractAddress with msg on behalf of caller. The call is
	// expected to return an error rather than panic on contract failure.
	Execute(ctx sdk.Context, contractAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error)
}
