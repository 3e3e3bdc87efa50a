package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

func (s *KeeperTestSuite) TestQueryParams() {
	params := types.NewParams("stake", "wstake", types.DestinationFormatHex, "", true)
	s.keeper.SetParams(s.ctx, params)

	res, err := s.keeper.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(params, *res.Params)
}

func (s *KeeperTestSuite) TestQueryValidators() {
	_, err := s.keeper.Validators(s.ctx, nil)
	s.Require().Equal(codes.InvalidArgument, status.Code(err))

	s.initRegistry(types.DefaultParams(), s.validators...)

	res, err := s.keeper.Validators(s.ctx, &types.QueryValidatorsRequest{})
	s.Require().NoError(err)
	s.Require().Len(res.Validators, len(s.validators))
	for i, validator := range s.validators {
		s.Require().Equal(validator.String(), res.Validators[i])
	}
}

func (s *KeeperTestSuite) TestQueryValidatorCount() {
	_, err := s.keeper.ValidatorCount(s.ctx, &types.QueryValidatorCountRequest{})
	s.Require().Equal(codes.FailedPrecondition, status.Code(err))

	_, err = s.keeper.QuorumThreshold(s.ctx, &types.QueryQuorumThresholdRequest{})
	s.Require().Equal(codes.FailedPrecondition, status.Code(err))

	s.initRegistry(types.DefaultParams(), s.validators...)

	countRes, err := s.keeper.ValidatorCount(s.ctx, &types.QueryValidatorCountRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(4), countRes.Count)

	thresholdRes, err := s.keeper.QuorumThreshold(s.ctx, &types.QueryQuorumThresholdRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(4), thresholdRes.ValidatorCount)
	s.Require().Equal(uint64(3), thresholdRes.Threshold)
}

func (s *KeeperTestSuite) TestQueryIsValidator() {
	var req *types.QueryIsValidatorRequest

	testCases := []struct {
		name     string
		malleate func()
		expValue bool
		expCode  codes.Code
	}{
		{
			"success: registered validator",
			func() {
				req = &types.QueryIsValidatorRequest{Address: s.validators[0].String()}
			},
			true,
			codes.OK,
		},
		{
			"success: unknown address",
			func() {
				req = &types.QueryIsValidatorRequest{Address: accAddr(99).String()}
			},
			false,
			codes.OK,
		},
		{
			"failure: invalid address",
			func() {
				req = &types.QueryIsValidatorRequest{Address: "invalid"}
			},
			false,
			codes.InvalidArgument,
		},
		{
			"failure: nil request",
			func() {
				req = nil
			},
			false,
			codes.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initRegistry(types.DefaultParams(), s.validators...)

			tc.malleate()

			res, err := s.keeper.IsValidator(s.ctx, req)

			s.Require().Equal(tc.expCode, status.Code(err))
			if tc.expCode == codes.OK {
				s.Require().Equal(tc.expValue, res.IsValidator)
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryAction() {
	var req *types.QueryActionRequest

	payload := types.NewUnfreeze(receiver, sdkmath.NewInt(100))

	testCases := []struct {
		name     string
		malleate func()
		expCode  codes.Code
	}{
		{
			"success",
			func() {},
			codes.OK,
		},
		{
			"failure: unknown action",
			func() {
				req.ActionID = []byte("evt-2")
			},
			codes.NotFound,
		},
		{
			"failure: empty action id",
			func() {
				req.ActionID = nil
			},
			codes.InvalidArgument,
		},
		{
			"failure: action id too long",
			func() {
				req.ActionID = make([]byte, types.MaxActionIDLength+1)
			},
			codes.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.initRegistry(types.DefaultParams(), s.validators...)

			_, err := s.keeper.Confirm(s.ctx, s.validators[0], actionID, payload)
			s.Require().NoError(err)

			req = &types.QueryActionRequest{ActionID: actionID}

			tc.malleate()

			res, err := s.keeper.Action(s.ctx, req)

			s.Require().Equal(tc.expCode, status.Code(err))
			if tc.expCode == codes.OK {
				s.Require().True(payload.Equal(res.Record.Payload))
				s.Require().True(res.Record.HasConfirmed(s.validators[0]))
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryActions() {
	s.initRegistry(types.DefaultParams(), s.validators...)
	payload := types.NewUnfreeze(receiver, sdkmath.NewInt(100))

	for _, id := range []string{"evt-1", "evt-2", "evt-3"} {
		_, err := s.keeper.Confirm(s.ctx, s.validators[0], []byte(id), payload)
		s.Require().NoError(err)
	}

	res, err := s.keeper.Actions(s.ctx, &types.QueryActionsRequest{Pagination: &query.PageRequest{Limit: 2, CountTotal: true}})
	s.Require().NoError(err)
	s.Require().Len(res.Actions, 2)
	s.Require().Equal(uint64(3), res.Pagination.Total)
	s.Require().Equal([]byte("evt-1"), res.Actions[0].ActionID)

	res, err = s.keeper.Actions(s.ctx, &types.QueryActionsRequest{Pagination: &query.PageRequest{Key: res.Pagination.NextKey}})
	s.Require().NoError(err)
	s.Require().Len(res.Actions, 1)
	s.Require().Equal([]byte("evt-3"), res.Actions[0].ActionID)

	_, err = s.keeper.Actions(s.ctx, nil)
	s.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *KeeperTestSuite) TestQueryLastActionID() {
	s.initRegistry(types.DefaultParams())

	_, err := s.keeper.NextActionID(s.ctx)
	s.Require().NoError(err)

	res, err := s.keeper.LastActionID(s.ctx, &types.QueryLastActionIDRequest{})
	s.Require().NoError(err)
	s.Require().Equal(uint64(1), res.LastActionID)
}
