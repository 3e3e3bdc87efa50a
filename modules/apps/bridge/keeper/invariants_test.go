package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/actionbridge/bridge/modules/apps/bridge/keeper"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

func (s *KeeperTestSuite) TestInvariants() {
	testCases := []struct {
		name      string
		malleate  func()
		expBroken bool
	}{
		{
			"success: uninitialised registry",
			func() {},
			false,
		},
		{
			"success: pending actions",
			func() {
				s.initRegistry(types.DefaultParams(), s.validators...)
				for _, validator := range s.validators[:3] {
					_, err := s.keeper.Confirm(s.ctx, validator, actionID, types.NewUnfreeze(receiver, sdkmath.NewInt(1)))
					s.Require().NoError(err)
				}
			},
			false,
		},
		{
			"failure: record confirmed by every validator",
			func() {
				s.initRegistry(types.DefaultParams(), s.validators...)
				s.Require().NoError(s.keeper.SetAction(s.ctx, actionID, confirmedRecord(s.validators...)))
			},
			true,
		},
		{
			"failure: record confirmed by an unregistered validator",
			func() {
				s.initRegistry(types.DefaultParams(), s.validators...)
				s.Require().NoError(s.keeper.SetAction(s.ctx, actionID, confirmedRecord(accAddr(99))))
			},
			true,
		},
		{
			"failure: record without confirmations",
			func() {
				s.initRegistry(types.DefaultParams(), s.validators...)
				s.Require().NoError(s.keeper.SetAction(s.ctx, actionID, confirmedRecord()))
			},
			true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			tc.malleate()

			msg, broken := keeper.AllInvariants(&s.keeper)(s.ctx)
			s.Require().Equal(tc.expBroken, broken, msg)
		})
	}
}
