package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cosmossdk.io/collections"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

const flagHex = "hex"

// getCmdAction defines the command to query a pending inbound action
func getCmdAction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action [action-id]",
		Short: "Query a pending inbound action",
		Long:  "Query the payload and confirmations of a pending inbound action by its external identifier",
		Example: fmt.Sprintf(
			"%s query %s action evt-1\n%s query %s action 6576742d31 --%s", version.AppName, types.ModuleName, version.AppName, types.ModuleName, flagHex,
		),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			actionID, err := parseActionID(cmd, args[0])
			if err != nil {
				return err
			}

			key, err := collections.EncodeKeyWithPrefix(types.ActionsKey.Bytes(), collections.BytesKey, actionID)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("action %X not found", actionID)
			}

			codec := types.ActionRecordValueCodec{}
			record, err := codec.Decode(bz)
			if err != nil {
				return err
			}

			out, err := codec.EncodeJSON(record)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(out)
		},
	}

	cmd.Flags().Bool(flagHex, false, "Decode the action id from hex")
	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// getCmdLastActionID defines the command to query the next outbound action id
func getCmdLastActionID() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "last-action-id",
		Short:   "Query the id the next outbound action will receive",
		Example: fmt.Sprintf("%s query %s last-action-id", version.AppName, types.ModuleName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.LastActionIDKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}

			// an unset sequence starts at its default value
			id := collections.DefaultSequenceStart
			if len(bz) != 0 {
				if id, err = collections.Uint64Value.Decode(bz); err != nil {
					return err
				}
			}

			return clientCtx.PrintString(strconv.FormatUint(id, 10) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// getCmdValidatorCount defines the command to query the validator set size
func getCmdValidatorCount() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validator-count",
		Short:   "Query the number of registered bridge validators",
		Example: fmt.Sprintf("%s query %s validator-count", version.AppName, types.ModuleName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ValidatorCountKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("%s validator registry is not initialised", types.ModuleName)
			}

			count, err := collections.Uint64Value.Decode(bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(fmt.Sprintf("count: %d\nthreshold: %d\n", count, types.QuorumThreshold(count)))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func parseActionID(cmd *cobra.Command, arg string) ([]byte, error) {
	isHex, err := cmd.Flags().GetBool(flagHex)
	if err != nil {
		return nil, err
	}

	actionID := []byte(arg)
	if isHex {
		if actionID, err = hex.DecodeString(arg); err != nil {
			return nil, fmt.Errorf("invalid hex action id: %w", err)
		}
	}

	if err := types.ValidateActionID(actionID); err != nil {
		return nil, err
	}

	return actionID, nil
}
