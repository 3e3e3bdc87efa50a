package keeper_test

import (
	"errors"

	"github.com/stretchr/testify/mock"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
	"github.com/actionbridge/bridge/modules/apps/bridge/keeper"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

func (s *KeeperTestSuite) TestDispatch() {
	var (
		payload types.ActionPayload
		params  types.Params
	)

	amount := sdkmath.NewInt(100)
	callData := []byte(`{"release":{}}`)
	errBank := errors.New("bank failure")

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: unfreeze releases escrowed native coins",
			func() {
				payload = types.NewUnfreeze(receiver, amount)
				s.bankKeeper.On("SendCoinsFromModuleToAccount", mock.Anything, types.ModuleName, receiver, sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amount))).Return(nil).Once()
			},
			nil,
		},
		{
			"success: contract call executes as the module account",
			func() {
				payload = types.NewContractCall(contract, callData)
				s.contractKeeper.On("Execute", mock.Anything, contract, types.ModuleAddress(), callData, sdk.NewCoins()).Return([]byte(nil), nil).Once()
			},
			nil,
		},
		{
			"success: transfer wrapped mints and sends",
			func() {
				payload = types.NewTransferWrapped(receiver, amount)
				coins := sdk.NewCoins(sdk.NewCoin(params.WrappedDenom, amount))
				s.bankKeeper.On("MintCoins", mock.Anything, types.ModuleName, coins).Return(nil).Once()
				s.bankKeeper.On("SendCoinsFromModuleToAccount", mock.Anything, types.ModuleName, receiver, coins).Return(nil).Once()
			},
			nil,
		},
		{
			"success: unfreeze asset returns the locked nft",
			func() {
				params.AssetBridgingEnabled = true
				payload = types.NewUnfreezeAsset(receiver, "kitties", "kitty-1")
				s.nftKeeper.On("GetOwner", mock.Anything, "kitties", "kitty-1").Return(types.ModuleAddress()).Once()
				s.nftKeeper.On("Transfer", mock.Anything, "kitties", "kitty-1", receiver).Return(nil).Once()
			},
			nil,
		},
		{
			"failure: unfreeze asset while asset bridging is disabled",
			func() {
				payload = types.NewUnfreezeAsset(receiver, "kitties", "kitty-1")
			},
			types.ErrAssetBridgingDisabled,
		},
		{
			"failure: nft is not held by the bridge",
			func() {
				params.AssetBridgingEnabled = true
				payload = types.NewUnfreezeAsset(receiver, "kitties", "kitty-1")
				s.nftKeeper.On("GetOwner", mock.Anything, "kitties", "kitty-1").Return(receiver).Once()
			},
			bridgeerrors.ErrNotFound,
		},
		{
			"failure: bank keeper error is returned",
			func() {
				payload = types.NewUnfreeze(receiver, amount)
				s.bankKeeper.On("SendCoinsFromModuleToAccount", mock.Anything, types.ModuleName, receiver, mock.Anything).Return(errBank).Once()
			},
			errBank,
		},
		{
			"failure: mint error stops the transfer",
			func() {
				payload = types.NewTransferWrapped(receiver, amount)
				s.bankKeeper.On("MintCoins", mock.Anything, types.ModuleName, mock.Anything).Return(errBank).Once()
			},
			errBank,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			params = types.DefaultParams()

			tc.malleate()

			s.keeper.SetParams(s.ctx, params)
			s.resetEvents()

			err := s.keeper.Dispatch(s.ctx, actionID, payload)

			if tc.expErr == nil {
				s.Require().NoError(err)

				executed := s.eventsOfType(types.EventTypeActionExecuted)
				s.Require().Len(executed, 1)
				s.Require().Equal(payload.Type(), s.attribute(executed[0], types.AttributeKeyPayloadType))
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Empty(s.eventsOfType(types.EventTypeActionExecuted))
			}

			s.assertMockExpectations()
		})
	}
}

func (s *KeeperTestSuite) TestDispatchWithoutOptionalKeepers() {
	k := keeper.NewKeeper(runtime.NewKVStoreService(s.storeKey), s.bankKeeper, nil, nil, s.authority)
	k.SetParams(s.ctx, types.NewParams("stake", "wstake", types.DestinationFormatAny, "", true))

	err := k.Dispatch(s.ctx, actionID, types.NewContractCall(contract, []byte{0x01}))
	s.Require().ErrorIs(err, bridgeerrors.ErrLogic)

	err = k.Dispatch(s.ctx, actionID, types.NewUnfreezeAsset(receiver, "kitties", "kitty-1"))
	s.Require().ErrorIs(err, bridgeerrors.ErrLogic)
}

func (s *KeeperTestSuite) TestTypedNilOptionalKeepers() {
	var (
		nftKeeper      *MockNFTKeeper
		contractKeeper *MockContractKeeper
	)

	k := keeper.NewKeeper(runtime.NewKVStoreService(s.storeKey), s.bankKeeper, nftKeeper, contractKeeper, s.authority)
	k.SetParams(s.ctx, types.NewParams("stake", "wstake", types.DestinationFormatAny, "", true))

	s.Require().NotPanics(func() {
		err := k.Dispatch(s.ctx, actionID, types.NewContractCall(contract, []byte{0x01}))
		s.Require().ErrorIs(err, bridgeerrors.ErrLogic)

		err = k.Dispatch(s.ctx, actionID, types.NewUnfreezeAsset(receiver, "kitties", "kitty-1"))
		s.Require().ErrorIs(err, bridgeerrors.ErrLogic)

		_, err = k.LockAsset(s.ctx, accAddr(42), hexDestination, classID, nftID)
		s.Require().ErrorIs(err, bridgeerrors.ErrLogic)
	})
}

func (s *KeeperTestSuite) TestDispatchNilPayload() {
	s.Require().Panics(func() {
		_ = s.keeper.Dispatch(s.ctx, actionID, nil)
	})
}
