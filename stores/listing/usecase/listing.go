package usecase

import (
	"github.com/viney-shih/goroutines"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/log"
	"github.com/zenith-market/goapi/base/wei"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/chain/contract"
)

type ListingUseCaseCfg struct {
	Repo     domain.ListingRepo
	Nft      contract.NftContract
	Metadata domain.MetadataUseCase
	// Decimals is the currency exponent used for display prices.
	Decimals int32
	// MetadataConcurrency caps parallel metadata lookups per request.
	MetadataConcurrency int
}

type listingUseCase struct {
	repo                domain.ListingRepo
	nft                 contract.NftContract
	metadata            domain.MetadataUseCase
	decimals            int32
	metadataConcurrency int
}

func NewListingUseCase(cfg *ListingUseCaseCfg) domain.ListingUseCase {
	concurrency := cfg.MetadataConcurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	return &listingUseCase{
		repo:                cfg.Repo,
		nft:                 cfg.Nft,
		metadata:            cfg.Metadata,
		decimals:            cfg.Decimals,
		metadataConcurrency: concurrency,
	}
}

func (u *listingUseCase) GetMarketItems(c bCtx.Ctx) ([]domain.ViewItem, error) {
	records, err := u.repo.FetchAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FetchAll failed")
		return nil, err
	}
	return u.resolveItems(c, records), nil
}

func (u *listingUseCase) GetCreatedItems(c bCtx.Ctx, account domain.Address) ([]domain.ViewItem, error) {
	records, err := u.repo.FetchCreatedBy(c, account)
	if err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("repo.FetchCreatedBy failed")
		return nil, err
	}
	return u.resolveItems(c, records), nil
}

func (u *listingUseCase) GetOwnedItems(c bCtx.Ctx, account domain.Address) ([]domain.ViewItem, error) {
	records, err := u.repo.FetchOwnedBy(c, account)
	if err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("repo.FetchOwnedBy failed")
		return nil, err
	}
	return u.resolveItems(c, records), nil
}

func (u *listingUseCase) GetItem(c bCtx.Ctx, itemId domain.ItemId) (*domain.ViewItem, error) {
	record, err := u.repo.FetchOne(c, itemId)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"itemId": itemId,
				"err":    err,
			}).Error("repo.FetchOne failed")
		}
		return nil, err
	}
	item := u.resolveItem(c, *record)
	return &item, nil
}

type indexedItem struct {
	idx  int
	item domain.ViewItem
}

// resolveItems turns records into view items, fetching metadata concurrently.
// The result keeps the contract's enumeration order regardless of which fetch
// finishes first, and a record whose metadata cannot be resolved degrades to
// a bare item instead of being dropped.
func (u *listingUseCase) resolveItems(c bCtx.Ctx, records []domain.ListingRecord) []domain.ViewItem {
	items := make([]domain.ViewItem, len(records))
	if len(records) == 0 {
		return items
	}

	b := goroutines.NewBatch(u.metadataConcurrency, goroutines.WithBatchSize(len(records)))
	defer b.Close()
	for i := 0; i < len(records); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return indexedItem{idx: idx, item: u.resolveItem(c, records[idx])}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		resolved := ret.Value().(indexedItem)
		items[resolved.idx] = resolved.item
	}
	return items
}

func (u *listingUseCase) resolveItem(c bCtx.Ctx, record domain.ListingRecord) domain.ViewItem {
	item := domain.ViewItem{
		ItemId:       record.ItemId,
		TokenId:      record.TokenId,
		NftContract:  record.NftContract,
		Creator:      record.Creator,
		Seller:       record.Seller,
		Owner:        record.Owner,
		Price:        record.Price.String(),
		DisplayPrice: wei.ToDisplay(record.Price, u.decimals).String(),
		Sold:         record.Sold,
		Relisted:     record.Relisted,
	}

	uri, err := u.nft.TokenURI(c, record.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": record.TokenId,
			"err":     err,
		}).Warn("nft.TokenURI failed")
		item.Degraded = true
		return item
	}
	item.TokenUri = uri

	metadata, err := u.metadata.GetFromUrl(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId":  record.TokenId,
			"tokenUri": uri,
			"err":      err,
		}).Warn("metadata.GetFromUrl failed")
		item.Degraded = true
		return item
	}

	item.Name = metadata.Name
	item.Description = metadata.Description
	item.Image = metadata.Image
	return item
}
