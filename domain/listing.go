package domain

import (
	"math/big"

	"github.com/zenith-market/goapi/base/ctx"
)

// ListingRecord mirrors the marketplace contract's on-chain MarketItem
// storage. It is read-only from this service's perspective; mutation happens
// only through confirmed transactions.
type ListingRecord struct {
	ItemId      ItemId
	TokenId     TokenId
	NftContract Address
	Creator     Address
	Seller      Address
	// Owner is the zero address while listed and unsold, the buyer once sold.
	Owner Address
	// Price in wei. Only the display layer may scale it.
	Price    *big.Int
	Sold     bool
	Relisted bool
}

// ViewItem is a ListingRecord denormalized with resolved metadata and a
// display price. Built fresh on every reconciliation pass, never mutated.
type ViewItem struct {
	ItemId      ItemId  `json:"itemId"`
	TokenId     TokenId `json:"tokenId"`
	NftContract Address `json:"nftContract"`
	Creator     Address `json:"creator"`
	Seller      Address `json:"seller"`
	Owner       Address `json:"owner"`
	// Price in wei, decimal string.
	Price string `json:"price"`
	// DisplayPrice in whole currency units, exact decimal scaling of Price.
	DisplayPrice string `json:"displayPrice"`
	Sold         bool   `json:"sold"`
	Relisted     bool   `json:"relisted"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	// Degraded is set when the item's metadata could not be resolved and the
	// display fields are left blank.
	Degraded bool   `json:"degraded,omitempty"`
	TokenUri string `json:"tokenUri,omitempty"`
}

type ListingRepo interface {
	// FetchAll returns every active (unsold) listing in contract enumeration
	// order. Servable without a signer.
	FetchAll(ctx.Ctx) ([]ListingRecord, error)
	FetchCreatedBy(ctx.Ctx, Address) ([]ListingRecord, error)
	FetchOwnedBy(ctx.Ctx, Address) ([]ListingRecord, error)
	FetchOne(ctx.Ctx, ItemId) (*ListingRecord, error)
}

type ListingUseCase interface {
	GetMarketItems(ctx.Ctx) ([]ViewItem, error)
	GetCreatedItems(ctx.Ctx, Address) ([]ViewItem, error)
	GetOwnedItems(ctx.Ctx, Address) ([]ViewItem, error)
	GetItem(ctx.Ctx, ItemId) (*ViewItem, error)
}
