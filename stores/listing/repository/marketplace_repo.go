package repository

import (
	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/chain/contract"
)

// marketplaceRepo reads listings straight off the marketplace contract. No
// local copy is kept; the chain is the single source of truth.
type marketplaceRepo struct {
	marketplace contract.MarketplaceContract
}

func NewMarketplaceRepo(marketplace contract.MarketplaceContract) domain.ListingRepo {
	return &marketplaceRepo{marketplace: marketplace}
}

func (r *marketplaceRepo) FetchAll(c bCtx.Ctx) ([]domain.ListingRecord, error) {
	return r.marketplace.FetchMarketItems(c)
}

func (r *marketplaceRepo) FetchCreatedBy(c bCtx.Ctx, account domain.Address) ([]domain.ListingRecord, error) {
	return r.marketplace.FetchItemsCreated(c, account)
}

func (r *marketplaceRepo) FetchOwnedBy(c bCtx.Ctx, account domain.Address) ([]domain.ListingRecord, error) {
	return r.marketplace.FetchMyNFTs(c, account)
}

func (r *marketplaceRepo) FetchOne(c bCtx.Ctx, itemId domain.ItemId) (*domain.ListingRecord, error) {
	return r.marketplace.FetchNFT(c, itemId)
}
