package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/zenith-market/goapi/base/abi"
	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/chain"
)

// MarketplaceContract is the typed surface of the marketplace contract this
// service consumes.
type MarketplaceContract interface {
	FetchMarketItems(ctx bCtx.Ctx) ([]domain.ListingRecord, error)
	FetchItemsCreated(ctx bCtx.Ctx, account domain.Address) ([]domain.ListingRecord, error)
	FetchMyNFTs(ctx bCtx.Ctx, account domain.Address) ([]domain.ListingRecord, error)
	FetchNFT(ctx bCtx.Ctx, itemId domain.ItemId) (*domain.ListingRecord, error)
	GetListingPrice(ctx bCtx.Ctx) (*big.Int, error)
	CreateMarketItem(ctx bCtx.Ctx, opts *bind.TransactOpts, nftContract domain.Address, tokenId domain.TokenId, price, listingFee *big.Int) (*types.Transaction, error)
	CreateMarketSale(ctx bCtx.Ctx, opts *bind.TransactOpts, nftContract domain.Address, itemId domain.ItemId, value *big.Int) (*types.Transaction, error)
	RelistToken(ctx bCtx.Ctx, opts *bind.TransactOpts, nftContract domain.Address, itemId domain.ItemId, price, listingFee *big.Int) (*types.Transaction, error)
}

type Marketplace struct {
	chainService chain.Client
	address      common.Address
	abi          ethabi.ABI
}

func NewMarketplace(chainService chain.Client, address domain.Address) *Marketplace {
	return &Marketplace{
		chainService: chainService,
		address:      common.HexToAddress(string(address)),
		abi:          baseabi.MarketplaceABI,
	}
}

func (m *Marketplace) FetchMarketItems(ctx bCtx.Ctx) ([]domain.ListingRecord, error) {
	var items []baseabi.MarketItem
	if err := m.chainService.Call(ctx, m.address, m.abi, "fetchMarketItems", &items); err != nil {
		return nil, err
	}
	return toListingRecords(items), nil
}

// FetchItemsCreated is scoped on msg.sender in the contract, so the read
// carries the account as caller.
func (m *Marketplace) FetchItemsCreated(ctx bCtx.Ctx, account domain.Address) ([]domain.ListingRecord, error) {
	var items []baseabi.MarketItem
	from := common.HexToAddress(string(account))
	if err := m.chainService.CallFrom(ctx, from, m.address, m.abi, "fetchItemsCreated", &items); err != nil {
		return nil, err
	}
	return toListingRecords(items), nil
}

func (m *Marketplace) FetchMyNFTs(ctx bCtx.Ctx, account domain.Address) ([]domain.ListingRecord, error) {
	var items []baseabi.MarketItem
	from := common.HexToAddress(string(account))
	if err := m.chainService.CallFrom(ctx, from, m.address, m.abi, "fetchMyNFTs", &items); err != nil {
		return nil, err
	}
	return toListingRecords(items), nil
}

func (m *Marketplace) FetchNFT(ctx bCtx.Ctx, itemId domain.ItemId) (*domain.ListingRecord, error) {
	var item baseabi.MarketItem
	if err := m.chainService.Call(ctx, m.address, m.abi, "fetchNFT", &item, itemId.Big()); err != nil {
		return nil, err
	}
	if item.ItemId == nil || item.ItemId.Sign() == 0 {
		return nil, domain.ErrNotFound
	}
	record := toListingRecord(item)
	return &record, nil
}

func (m *Marketplace) GetListingPrice(ctx bCtx.Ctx) (*big.Int, error) {
	out := new(big.Int)
	if err := m.chainService.Call(ctx, m.address, m.abi, "getListingPrice", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Marketplace) CreateMarketItem(ctx bCtx.Ctx, opts *bind.TransactOpts, nftContract domain.Address, tokenId domain.TokenId, price, listingFee *big.Int) (*types.Transaction, error) {
	return m.chainService.Transact(ctx, opts, m.address, m.abi, "createMarketItem", listingFee,
		common.HexToAddress(string(nftContract)), tokenId.Big(), price)
}

func (m *Marketplace) CreateMarketSale(ctx bCtx.Ctx, opts *bind.TransactOpts, nftContract domain.Address, itemId domain.ItemId, value *big.Int) (*types.Transaction, error) {
	return m.chainService.Transact(ctx, opts, m.address, m.abi, "createMarketSale", value,
		common.HexToAddress(string(nftContract)), itemId.Big())
}

func (m *Marketplace) RelistToken(ctx bCtx.Ctx, opts *bind.TransactOpts, nftContract domain.Address, itemId domain.ItemId, price, listingFee *big.Int) (*types.Transaction, error) {
	return m.chainService.Transact(ctx, opts, m.address, m.abi, "relistToken", listingFee,
		common.HexToAddress(string(nftContract)), itemId.Big(), price)
}

func toListingRecord(item baseabi.MarketItem) domain.ListingRecord {
	return domain.ListingRecord{
		ItemId:      domain.ItemId(item.ItemId.Uint64()),
		TokenId:     domain.TokenId(item.TokenId.Uint64()),
		NftContract: domain.Address(item.NftContract.Hex()).ToLower(),
		Creator:     domain.Address(item.Creator.Hex()).ToLower(),
		Seller:      domain.Address(item.Seller.Hex()).ToLower(),
		Owner:       domain.Address(item.Owner.Hex()).ToLower(),
		Price:       item.Price,
		Sold:        item.Sold,
		Relisted:    item.Relisted,
	}
}

func toListingRecords(items []baseabi.MarketItem) []domain.ListingRecord {
	records := make([]domain.ListingRecord, 0, len(items))
	for _, item := range items {
		records = append(records, toListingRecord(item))
	}
	return records
}
