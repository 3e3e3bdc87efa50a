/*
Package bridge implements a validator quorum bridge. A fixed set of validators,
registered at genesis, confirms actions observed on a foreign chain, and the
module executes the local effect of an action exactly once when strictly more
than two thirds of the validators confirmed it. The module also numbers
outbound actions (transfers, contract calls, wrapped withdrawals and asset
locks) for relaying to the foreign chain.

The Msg and Query types are plain Go structs rather than generated protobuf
messages, so the module does not implement RegisterServices and cannot be
routed by the baseapp msg service router as is. Applications dispatch
transactions to MsgServer() and serve queries from QueryServer() through their
own routing, and the module ships no tx CLI or REST gateway.
*/
package bridge
