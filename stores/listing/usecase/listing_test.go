package usecase

import (
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/domain/mocks"
	contractMocks "github.com/zenith-market/goapi/service/chain/contract/mocks"
)

type listingTestSuite struct {
	suite.Suite

	repo     *mocks.ListingRepo
	nft      *contractMocks.NftContract
	metadata *mocks.MetadataUseCase
	usecase  domain.ListingUseCase
}

func TestListing(t *testing.T) {
	suite.Run(t, new(listingTestSuite))
}

func (s *listingTestSuite) SetupTest() {
	s.repo = &mocks.ListingRepo{}
	s.nft = &contractMocks.NftContract{}
	s.metadata = &mocks.MetadataUseCase{}
	s.usecase = NewListingUseCase(&ListingUseCaseCfg{
		Repo:                s.repo,
		Nft:                 s.nft,
		Metadata:            s.metadata,
		Decimals:            18,
		MetadataConcurrency: 4,
	})
}

func record(itemId, tokenId uint64, priceWei int64) domain.ListingRecord {
	return domain.ListingRecord{
		ItemId:  domain.ItemId(itemId),
		TokenId: domain.TokenId(tokenId),
		Seller:  domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a"),
		Price:   big.NewInt(priceWei),
	}
}

func (s *listingTestSuite) TestGetMarketItemsKeepsEnumerationOrder() {
	count := 20
	records := make([]domain.ListingRecord, 0, count)
	for i := 1; i <= count; i++ {
		records = append(records, record(uint64(i), uint64(i), int64(i)*1000))
	}
	s.repo.On("FetchAll", mock.Anything).Return(records, nil)

	for i := 1; i <= count; i++ {
		tokenId := domain.TokenId(i)
		uri := fmt.Sprintf("ipfs://Qm%d", i)
		// stagger the early lookups so completion order differs from
		// enumeration order
		delay := time.Duration(count-i) * time.Millisecond
		s.nft.On("TokenURI", mock.Anything, tokenId).
			Run(func(mock.Arguments) { time.Sleep(delay) }).
			Return(uri, nil)
		s.metadata.On("GetFromUrl", mock.Anything, uri).
			Return(&domain.TokenMetadata{Name: fmt.Sprintf("Zenith #%d", i)}, nil)
	}

	items, err := s.usecase.GetMarketItems(bCtx.Background())
	s.Require().NoError(err)
	s.Require().Len(items, count)
	for i := 0; i < count; i++ {
		s.Equal(domain.ItemId(i+1), items[i].ItemId)
		s.Equal(fmt.Sprintf("Zenith #%d", i+1), items[i].Name)
	}
}

func (s *listingTestSuite) TestGetMarketItemsDegradesFailedMetadata() {
	s.repo.On("FetchAll", mock.Anything).
		Return([]domain.ListingRecord{record(1, 1, 1000), record(2, 2, 2000)}, nil)

	s.nft.On("TokenURI", mock.Anything, domain.TokenId(1)).Return("ipfs://Qm1", nil)
	s.metadata.On("GetFromUrl", mock.Anything, "ipfs://Qm1").
		Return(&domain.TokenMetadata{Name: "Zenith #1", Image: "ipfs://QmImg1"}, nil)

	s.nft.On("TokenURI", mock.Anything, domain.TokenId(2)).Return("ipfs://Qm2", nil)
	s.metadata.On("GetFromUrl", mock.Anything, "ipfs://Qm2").
		Return(nil, xerrors.New("gateway timeout"))

	items, err := s.usecase.GetMarketItems(bCtx.Background())
	s.Require().NoError(err)
	s.Require().Len(items, 2)

	s.False(items[0].Degraded)
	s.Equal("Zenith #1", items[0].Name)

	// the failed item is kept, stripped to its on-chain fields
	s.True(items[1].Degraded)
	s.Empty(items[1].Name)
	s.Equal("2000", items[1].Price)
}

func (s *listingTestSuite) TestGetMarketItemsEmptyIsNotAnError() {
	s.repo.On("FetchAll", mock.Anything).Return([]domain.ListingRecord{}, nil)

	items, err := s.usecase.GetMarketItems(bCtx.Background())
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *listingTestSuite) TestGetMarketItemsContractReadFailureIsFatal() {
	s.repo.On("FetchAll", mock.Anything).Return(nil, domain.ErrGatewayUnavailable)

	_, err := s.usecase.GetMarketItems(bCtx.Background())
	s.ErrorIs(err, domain.ErrGatewayUnavailable)
}

func (s *listingTestSuite) TestGetItemScalesDisplayPrice() {
	r := record(7, 7, 0)
	r.Price, _ = big.NewInt(0).SetString("1500000000000000000", 10)
	s.repo.On("FetchOne", mock.Anything, domain.ItemId(7)).Return(&r, nil)
	s.nft.On("TokenURI", mock.Anything, domain.TokenId(7)).Return("ipfs://Qm7", nil)
	s.metadata.On("GetFromUrl", mock.Anything, "ipfs://Qm7").
		Return(&domain.TokenMetadata{Name: "Zenith #7"}, nil)

	item, err := s.usecase.GetItem(bCtx.Background(), 7)
	s.Require().NoError(err)
	s.Equal("1500000000000000000", item.Price)
	s.Equal("1.5", item.DisplayPrice)
}

func (s *listingTestSuite) TestGetItemNotFound() {
	s.repo.On("FetchOne", mock.Anything, domain.ItemId(404)).Return(nil, domain.ErrNotFound)

	_, err := s.usecase.GetItem(bCtx.Background(), 404)
	s.ErrorIs(err, domain.ErrNotFound)
}
