package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/zenith-market/goapi/base/ctx"
)

type TradeKind string

const (
	TradeKindCreate TradeKind = "create"
	TradeKindBuy    TradeKind = "buy"
	TradeKindRelist TradeKind = "relist"
)

// TradeState is the lifecycle of one in-flight write operation. A trade in
// StateSubmitting or StateAwaitingConfirmation blocks duplicate submission of
// the same operation.
type TradeState string

const (
	TradeStateIdle                 TradeState = "idle"
	TradeStateAwaitingSigner       TradeState = "awaiting_signer"
	TradeStateSubmitting           TradeState = "submitting"
	TradeStateAwaitingConfirmation TradeState = "awaiting_confirmation"
	TradeStateSucceeded            TradeState = "succeeded"
	TradeStateFailed               TradeState = "failed"
)

// InFlight reports whether the state forbids another submission of the same
// operation.
func (s TradeState) InFlight() bool {
	switch s {
	case TradeStateAwaitingSigner, TradeStateSubmitting, TradeStateAwaitingConfirmation:
		return true
	}
	return false
}

type TradeFailure string

const (
	TradeFailureNone              TradeFailure = ""
	TradeFailureNoSigner          TradeFailure = "NoSigner"
	TradeFailureUserRejected      TradeFailure = "UserRejected"
	TradeFailureContractRejected  TradeFailure = "ContractRejected"
	TradeFailureGateway           TradeFailure = "GatewayUnavailable"
	TradeFailureInvalidPrice      TradeFailure = "InvalidPrice"
	TradeFailurePartialCompletion TradeFailure = "PartialCompletion"
)

// PendingTrade tracks one write operation from trigger to terminal state.
// Ephemeral, in-memory only.
type PendingTrade struct {
	Id      string       `json:"id"`
	Kind    TradeKind    `json:"kind"`
	Account Address      `json:"account"`
	ItemId  ItemId       `json:"itemId,omitempty"`
	State   TradeState   `json:"state"`
	TxHash  TxHash       `json:"txHash,omitempty"`
	Failure TradeFailure `json:"failure,omitempty"`
	Reason  string       `json:"reason,omitempty"`
	// MintedTokenId is set once the mint step of a create flow confirmed, so
	// a listing failure after it can surface the orphaned token explicitly.
	MintedTokenId *TokenId `json:"mintedTokenId,omitempty"`
}

type CreateItemRequest struct {
	MetadataUri  string
	DisplayPrice string
}

type RelistItemRequest struct {
	ItemId       ItemId
	DisplayPrice string
}

type TradeUseCase interface {
	// Buy submits a purchase of the listing, paying its on-chain price.
	Buy(ctx.Ctx, Address, ItemId) (*PendingTrade, error)
	// Create mints a token for the metadata URI and then lists it, paying the
	// listing fee. Two sequential transactions.
	Create(ctx.Ctx, Address, CreateItemRequest) (*PendingTrade, error)
	// Relist re-offers a previously sold item at a new price.
	Relist(ctx.Ctx, Address, RelistItemRequest) (*PendingTrade, error)
	Get(ctx.Ctx, string) (*PendingTrade, error)
}

// Wallet hands out transact opts for accounts whose keys the service holds.
type Wallet interface {
	// Signer returns transact opts bound to the address, or ErrNoSigner.
	Signer(ctx.Ctx, Address) (*bind.TransactOpts, error)
}

// ListingFeeReader reads the marketplace's current listing fee in wei.
type ListingFeeReader interface {
	GetListingPrice(ctx.Ctx) (*big.Int, error)
}
