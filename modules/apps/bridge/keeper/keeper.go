package keeper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// Keeper maintains the validator registry, the pending action ledger and the
// outbound action sequence of the bridge module.
type Keeper struct {
	bankKeeper     types.BankKeeper
	nftKeeper      types.NFTKeeper
	contractKeeper types.ContractKeeper

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string

	// state management
	Schema collections.Schema
	// validators is the set of registered validator accounts
	validators collections.KeySet[sdk.AccAddress]
	// validatorCount is the size of validators, written once at genesis
	validatorCount collections.Item[uint64]
	// lastActionID is the next outbound action id
	lastActionID collections.Sequence
	// actions maps an external action id to its pending confirmation record
	actions collections.Map[[]byte, types.ActionRecord]
	params  collections.Item[types.Params]
}

// NewKeeper creates a new bridge Keeper instance. The nft and contract keepers
// may be nil, including a nil pointer of a concrete keeper type, in which case
// the corresponding actions fail with ErrLogic.
func NewKeeper(
	storeService corestore.KVStoreService,
	bankKeeper types.BankKeeper,
	nftKeeper types.NFTKeeper,
	contractKeeper types.ContractKeeper,
	authority string,
) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}

	if isNil(nftKeeper) {
		nftKeeper = nil
	}
	if isNil(contractKeeper) {
		contractKeeper = nil
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		bankKeeper:     bankKeeper,
		nftKeeper:      nftKeeper,
		contractKeeper: contractKeeper,
		authority:      authority,
		validators:     collections.NewKeySet(sb, types.ValidatorsKey, "validators", sdk.AccAddressKey),
		validatorCount: collections.NewItem(sb, types.ValidatorCountKey, "validator_count", collections.Uint64Value),
		lastActionID:   collections.NewSequence(sb, types.LastActionIDKey, "last_action_id"),
		actions:        collections.NewMap(sb, types.ActionsKey, "actions", collections.BytesKey, types.ActionRecordValueCodec{}),
		params:         collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValueCodec{}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetParams returns the current bridge module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	params, err := k.params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams()
		}
		panic(err)
	}
	return params
}

// SetParams sets the bridge module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	if err := k.params.Set(ctx, params); err != nil {
		panic(err)
	}
}

// isNil reports whether keeper is nil or an interface holding a nil pointer.
func isNil(keeper any) bool {
	if keeper == nil {
		return true
	}
	v := reflect.ValueOf(keeper)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
