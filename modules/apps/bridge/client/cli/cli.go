package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// GetQueryCmd returns the query commands for the bridge module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Bridge query subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		getCmdAction(),
		getCmdLastActionID(),
		getCmdValidatorCount(),
	)

	return queryCmd
}
