package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

func (s *KeeperTestSuite) TestActionLedger() {
	record := types.NewActionRecord(types.NewUnfreeze(receiver, sdkmath.NewInt(100)))
	record.AddConfirmation(s.validators[0])

	_, found := s.keeper.GetAction(s.ctx, actionID)
	s.Require().False(found)
	s.Require().False(s.keeper.HasAction(s.ctx, actionID))

	s.Require().NoError(s.keeper.SetAction(s.ctx, actionID, record))

	stored, found := s.keeper.GetAction(s.ctx, actionID)
	s.Require().True(found)
	s.Require().True(s.keeper.HasAction(s.ctx, actionID))
	s.Require().True(stored.Payload.Equal(record.Payload))
	s.Require().Equal(record.Confirmations, stored.Confirmations)

	// records of distinct ids are independent
	other := []byte("evt-2")
	s.Require().NoError(s.keeper.SetAction(s.ctx, other, record))
	s.Require().Len(s.keeper.GetAllActions(s.ctx), 2)

	s.Require().NoError(s.keeper.RemoveAction(s.ctx, actionID))
	s.Require().False(s.keeper.HasAction(s.ctx, actionID))
	s.Require().True(s.keeper.HasAction(s.ctx, other))

	actions := s.keeper.GetAllActions(s.ctx)
	s.Require().Len(actions, 1)
	s.Require().Equal(other, actions[0].ActionID)
}

func (s *KeeperTestSuite) TestIterateActionsStops() {
	record := types.NewActionRecord(types.NewContractCall(contract, []byte{0x01}))
	record.AddConfirmation(s.validators[0])

	for _, id := range []string{"a", "b", "c"} {
		s.Require().NoError(s.keeper.SetAction(s.ctx, []byte(id), record))
	}

	var visited [][]byte
	s.keeper.IterateActions(s.ctx, func(actionID []byte, _ types.ActionRecord) bool {
		visited = append(visited, actionID)
		return len(visited) == 2
	})

	s.Require().Equal([][]byte{[]byte("a"), []byte("b")}, visited)
}
