package contract

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/zenith-market/goapi/base/abi"
	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/chain/mocks"
)

type marketplaceTestSuite struct {
	suite.Suite

	chainService *mocks.Client
	marketplace  *Marketplace
}

func TestMarketplace(t *testing.T) {
	suite.Run(t, new(marketplaceTestSuite))
}

func (s *marketplaceTestSuite) SetupTest() {
	s.chainService = &mocks.Client{}
	s.marketplace = NewMarketplace(s.chainService, "0x5FbDB2315678afecb367f032d93F642f64180aa3")
}

func (s *marketplaceTestSuite) TestFetchMarketItems() {
	s.chainService.
		On("Call", mock.Anything, s.marketplace.address, mock.Anything, "fetchMarketItems", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*[]baseabi.MarketItem)
			*out = []baseabi.MarketItem{
				{
					ItemId:      big.NewInt(1),
					TokenId:     big.NewInt(7),
					NftContract: s.marketplace.address,
					Seller:      s.marketplace.address,
					Price:       big.NewInt(2000),
					Sold:        false,
				},
			}
		}).
		Return(nil)

	records, err := s.marketplace.FetchMarketItems(bCtx.Background())
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(domain.ItemId(1), records[0].ItemId)
	s.Equal(domain.TokenId(7), records[0].TokenId)
	s.Equal(big.NewInt(2000), records[0].Price)
	s.False(records[0].Sold)
}

func (s *marketplaceTestSuite) TestFetchMyNFTsCarriesCaller() {
	account := domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	s.chainService.
		On("CallFrom", mock.Anything, mock.Anything, s.marketplace.address, mock.Anything, "fetchMyNFTs", mock.Anything).
		Return(nil)

	_, err := s.marketplace.FetchMyNFTs(bCtx.Background(), account)
	s.NoError(err)
	s.chainService.AssertCalled(s.T(), "CallFrom", mock.Anything, mock.Anything, s.marketplace.address, mock.Anything, "fetchMyNFTs", mock.Anything)
}

func (s *marketplaceTestSuite) TestFetchNFTNotFound() {
	s.chainService.
		On("Call", mock.Anything, s.marketplace.address, mock.Anything, "fetchNFT", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*baseabi.MarketItem)
			*out = baseabi.MarketItem{ItemId: big.NewInt(0)}
		}).
		Return(nil)

	_, err := s.marketplace.FetchNFT(bCtx.Background(), 42)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *marketplaceTestSuite) TestGetListingPrice() {
	s.chainService.
		On("Call", mock.Anything, s.marketplace.address, mock.Anything, "getListingPrice", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(**big.Int)
			*out = big.NewInt(25000000000000000)
		}).
		Return(nil)

	fee, err := s.marketplace.GetListingPrice(bCtx.Background())
	s.Require().NoError(err)
	s.Equal("25000000000000000", fee.String())
}
