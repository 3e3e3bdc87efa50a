package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

func (s *KeeperTestSuite) TestInitValidators() {
	testCases := []struct {
		name       string
		validators []sdk.AccAddress
		expCount   uint64
		expErr     error
	}{
		{
			"success: four validators",
			s.validators,
			4,
			nil,
		},
		{
			"success: duplicates collapse",
			[]sdk.AccAddress{s.validators[0], s.validators[1], s.validators[0]},
			2,
			nil,
		},
		{
			"success: empty validator set",
			nil,
			0,
			nil,
		},
		{
			"failure: empty address",
			[]sdk.AccAddress{s.validators[0], {}},
			0,
			bridgeerrors.ErrInvalidAddress,
		},
		{
			"failure: invalid address after valid ones",
			[]sdk.AccAddress{s.validators[0], s.validators[1], make(sdk.AccAddress, 256)},
			0,
			bridgeerrors.ErrInvalidAddress,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()

			err := s.keeper.InitValidators(s.ctx, tc.validators)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().True(s.keeper.IsRegistryInitialized(s.ctx))
				s.Require().Equal(tc.expCount, s.keeper.GetValidatorCount(s.ctx))
				s.Require().Len(s.keeper.GetValidators(s.ctx), int(tc.expCount))
				for _, validator := range tc.validators {
					s.Require().True(s.keeper.HasValidator(s.ctx, validator))
				}
			} else {
				s.Require().ErrorIs(err, tc.expErr)

				// a rejected validator list leaves no partial registry behind
				s.Require().False(s.keeper.IsRegistryInitialized(s.ctx))
				for _, validator := range tc.validators {
					s.Require().False(s.keeper.HasValidator(s.ctx, validator))
				}
				s.Require().Empty(s.keeper.GetValidators(s.ctx))
			}
		})
	}
}

func (s *KeeperTestSuite) TestInitValidatorsOnlyOnce() {
	s.Require().NoError(s.keeper.InitValidators(s.ctx, s.validators[:2]))

	err := s.keeper.InitValidators(s.ctx, s.validators)
	s.Require().ErrorIs(err, bridgeerrors.ErrLogic)

	// the registry is unchanged
	s.Require().Equal(uint64(2), s.keeper.GetValidatorCount(s.ctx))
	s.Require().False(s.keeper.HasValidator(s.ctx, s.validators[2]))
}

func (s *KeeperTestSuite) TestGetValidatorCountBeforeInit() {
	s.Require().False(s.keeper.IsRegistryInitialized(s.ctx))
	s.Require().Panics(func() {
		s.keeper.GetValidatorCount(s.ctx)
	})
	s.Require().Panics(func() {
		s.keeper.GetQuorumThreshold(s.ctx)
	})
}

func (s *KeeperTestSuite) TestHasValidator() {
	s.Require().NoError(s.keeper.InitValidators(s.ctx, s.validators))

	s.Require().True(s.keeper.HasValidator(s.ctx, s.validators[3]))
	s.Require().False(s.keeper.HasValidator(s.ctx, accAddr(99)))
}

func (s *KeeperTestSuite) TestGetValidatorsOrdered() {
	reversed := []sdk.AccAddress{s.validators[3], s.validators[2], s.validators[1], s.validators[0]}
	s.Require().NoError(s.keeper.InitValidators(s.ctx, reversed))

	s.Require().Equal(s.validators, s.keeper.GetValidators(s.ctx))
}

func (s *KeeperTestSuite) TestInitValidatorsFailureKeepsRegistryUsable() {
	err := s.keeper.InitValidators(s.ctx, []sdk.AccAddress{s.validators[0], {}})
	s.Require().ErrorIs(err, bridgeerrors.ErrInvalidAddress)

	// the validator from the rejected list cannot confirm
	_, err = s.keeper.Confirm(s.ctx, s.validators[0], actionID, types.NewUnfreeze(receiver, sdkmath.NewInt(1)))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	// a corrected list can still initialise the registry
	s.Require().NoError(s.keeper.InitValidators(s.ctx, s.validators))
	s.Require().Equal(uint64(4), s.keeper.GetValidatorCount(s.ctx))
}
