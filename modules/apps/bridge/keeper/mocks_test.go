package keeper_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

var (
	_ types.BankKeeper     = (*MockBankKeeper)(nil)
	_ types.NFTKeeper      = (*MockNFTKeeper)(nil)
	_ types.ContractKeeper = (*MockContractKeeper)(nil)
)

// MockBankKeeper
type MockBankKeeper struct {
	mock.Mock
}

func (m *MockBankKeeper) SpendableCoin(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	args := m.Called(ctx, addr, denom)
	return args.Get(0).(sdk.Coin)
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	args := m.Called(ctx, senderAddr, recipientModule, amt)
	return args.Error(0)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	args := m.Called(ctx, senderModule, recipientAddr, amt)
	return args.Error(0)
}

func (m *MockBankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	args := m.Called(ctx, moduleName, amt)
	return args.Error(0)
}

func (m *MockBankKeeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	args := m.Called(ctx, moduleName, amt)
	return args.Error(0)
}

// MockNFTKeeper
type MockNFTKeeper struct {
	mock.Mock
}

func (m *MockNFTKeeper) GetOwner(ctx context.Context, classID, nftID string) sdk.AccAddress {
	args := m.Called(ctx, classID, nftID)
	return args.Get(0).(sdk.AccAddress)
}

func (m *MockNFTKeeper) Transfer(ctx context.Context, classID, nftID string, receiver sdk.AccAddress) error {
	args := m.Called(ctx, classID, nftID, receiver)
	return args.Error(0)
}

// MockContractKeeper
type MockContractKeeper struct {
	mock.Mock
}

func (m *MockContractKeeper) Execute(ctx sdk.Context, contractAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error) {
	args := m.Called(ctx, contractAddress, caller, msg, coins)
	return args.Get(0).([]byte), args.Error(1)
}
