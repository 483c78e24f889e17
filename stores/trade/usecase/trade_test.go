package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/domain/mocks"
	contractMocks "github.com/zenith-market/goapi/service/chain/contract/mocks"
	chainMocks "github.com/zenith-market/goapi/service/chain/mocks"
)

const buyer = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")

type tradeTestSuite struct {
	suite.Suite

	wallet      *mocks.Wallet
	marketplace *contractMocks.MarketplaceContract
	nft         *contractMocks.NftContract
	chain       *chainMocks.Client
	usecase     *tradeUseCase
}

func TestTrade(t *testing.T) {
	suite.Run(t, new(tradeTestSuite))
}

func (s *tradeTestSuite) SetupTest() {
	s.wallet = &mocks.Wallet{}
	s.marketplace = &contractMocks.MarketplaceContract{}
	s.nft = &contractMocks.NftContract{}
	s.chain = &chainMocks.Client{}
	s.usecase = NewTradeUseCase(&TradeUseCaseCfg{
		Wallet:             s.wallet,
		Marketplace:        s.marketplace,
		Nft:                s.nft,
		Chain:              s.chain,
		NftContractAddress: domain.Address("0xe7f1725e7734ce288f8367e1bb143e90bb3f0512"),
		Decimals:           18,
	}).(*tradeUseCase)
}

func makeTx(nonce uint64) *types.Transaction {
	return types.NewTransaction(nonce, common.HexToAddress("0x1"), big.NewInt(0), 21000, big.NewInt(1), nil)
}

func listingRecord(itemId uint64) *domain.ListingRecord {
	return &domain.ListingRecord{
		ItemId:      domain.ItemId(itemId),
		TokenId:     domain.TokenId(itemId),
		NftContract: domain.Address("0xe7f1725e7734ce288f8367e1bb143e90bb3f0512"),
		Price:       big.NewInt(5000),
	}
}

func (s *tradeTestSuite) TestBuySucceeds() {
	tx := makeTx(1)
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(7)).Return(listingRecord(7), nil)
	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.marketplace.
		On("CreateMarketSale", mock.Anything, mock.Anything, mock.Anything, domain.ItemId(7), big.NewInt(5000)).
		Return(tx, nil)
	s.chain.On("WaitMined", mock.Anything, tx).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	trade, err := s.usecase.Buy(bCtx.Background(), buyer, 7)
	s.Require().NoError(err)
	s.Equal(domain.TradeKindBuy, trade.Kind)
	s.Equal(domain.TxHash(tx.Hash().Hex()), trade.TxHash)

	s.usecase.Wait()
	settled, err := s.usecase.Get(bCtx.Background(), trade.Id)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateSucceeded, settled.State)
	s.Equal(domain.TradeFailureNone, settled.Failure)
}

func (s *tradeTestSuite) TestBuyRejectsDuplicateInFlight() {
	tx := makeTx(1)
	release := make(chan struct{})
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(7)).Return(listingRecord(7), nil)
	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.marketplace.
		On("CreateMarketSale", mock.Anything, mock.Anything, mock.Anything, domain.ItemId(7), mock.Anything).
		Return(tx, nil)
	s.chain.On("WaitMined", mock.Anything, tx).
		Run(func(mock.Arguments) { <-release }).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	_, err := s.usecase.Buy(bCtx.Background(), buyer, 7)
	s.Require().NoError(err)

	_, err = s.usecase.Buy(bCtx.Background(), buyer, 7)
	s.ErrorIs(err, domain.ErrTradeInFlight)

	// a different item is a different operation
	tx2 := makeTx(2)
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(8)).Return(listingRecord(8), nil)
	s.marketplace.
		On("CreateMarketSale", mock.Anything, mock.Anything, mock.Anything, domain.ItemId(8), mock.Anything).
		Return(tx2, nil)
	s.chain.On("WaitMined", mock.Anything, tx2).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
	_, err = s.usecase.Buy(bCtx.Background(), buyer, 8)
	s.NoError(err)

	close(release)
	s.usecase.Wait()
}

func (s *tradeTestSuite) TestBuyAllowsRetryAfterFailure() {
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(7)).Return(listingRecord(7), nil)
	s.wallet.On("Signer", mock.Anything, buyer).Return(nil, domain.ErrNoSigner).Once()

	trade, err := s.usecase.Buy(bCtx.Background(), buyer, 7)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateFailed, trade.State)
	s.Equal(domain.TradeFailureNoSigner, trade.Failure)

	// terminal state releases the operation key
	tx := makeTx(1)
	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.marketplace.
		On("CreateMarketSale", mock.Anything, mock.Anything, mock.Anything, domain.ItemId(7), mock.Anything).
		Return(tx, nil)
	s.chain.On("WaitMined", mock.Anything, tx).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	trade, err = s.usecase.Buy(bCtx.Background(), buyer, 7)
	s.Require().NoError(err)
	s.usecase.Wait()
}

func (s *tradeTestSuite) TestBuyContractRejection() {
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(7)).Return(listingRecord(7), nil)
	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.marketplace.
		On("CreateMarketSale", mock.Anything, mock.Anything, mock.Anything, domain.ItemId(7), mock.Anything).
		Return(nil, xerrors.Errorf("execution reverted: Please submit the asking price: %w", domain.ErrContractRejected))

	trade, err := s.usecase.Buy(bCtx.Background(), buyer, 7)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateFailed, trade.State)
	s.Equal(domain.TradeFailureContractRejected, trade.Failure)
	s.Contains(trade.Reason, "Please submit the asking price")
}

func (s *tradeTestSuite) TestBuyMissingItem() {
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(404)).Return(nil, domain.ErrNotFound)

	trade, err := s.usecase.Buy(bCtx.Background(), buyer, 404)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateFailed, trade.State)
	s.Equal(domain.TradeFailureContractRejected, trade.Failure)
}

func (s *tradeTestSuite) TestCreateRejectsInvalidPrice() {
	for _, displayPrice := range []string{"", "abc", "-1", "0.0000000000000000001"} {
		_, err := s.usecase.Create(bCtx.Background(), buyer, domain.CreateItemRequest{
			MetadataUri:  "ipfs://QmMeta",
			DisplayPrice: displayPrice,
		})
		s.ErrorIs(err, domain.ErrInvalidPrice, displayPrice)
	}
}

func (s *tradeTestSuite) TestCreateSucceeds() {
	mintTx := makeTx(1)
	listTx := makeTx(2)
	mintReceipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.nft.On("CreateToken", mock.Anything, mock.Anything, "ipfs://QmMeta").Return(mintTx, nil)
	s.chain.On("WaitMined", mock.Anything, mintTx).Return(mintReceipt, nil)
	s.nft.On("TokenIdFromReceipt", mintReceipt).Return(domain.TokenId(8), nil)
	s.marketplace.On("GetListingPrice", mock.Anything).Return(big.NewInt(100), nil)
	s.marketplace.
		On("CreateMarketItem", mock.Anything, mock.Anything, mock.Anything, domain.TokenId(8), big.NewInt(1500000000000000000), big.NewInt(100)).
		Return(listTx, nil)
	s.chain.On("WaitMined", mock.Anything, listTx).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	trade, err := s.usecase.Create(bCtx.Background(), buyer, domain.CreateItemRequest{
		MetadataUri:  "ipfs://QmMeta",
		DisplayPrice: "1.5",
	})
	s.Require().NoError(err)

	s.usecase.Wait()
	settled, err := s.usecase.Get(bCtx.Background(), trade.Id)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateSucceeded, settled.State)
	s.Require().NotNil(settled.MintedTokenId)
	s.Equal(domain.TokenId(8), *settled.MintedTokenId)
	s.Equal(domain.TxHash(listTx.Hash().Hex()), settled.TxHash)
}

func (s *tradeTestSuite) TestCreatePartialCompletionWhenListingFails() {
	mintTx := makeTx(1)
	mintReceipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.nft.On("CreateToken", mock.Anything, mock.Anything, "ipfs://QmMeta").Return(mintTx, nil)
	s.chain.On("WaitMined", mock.Anything, mintTx).Return(mintReceipt, nil)
	s.nft.On("TokenIdFromReceipt", mintReceipt).Return(domain.TokenId(8), nil)
	s.marketplace.On("GetListingPrice", mock.Anything).Return(big.NewInt(100), nil)
	s.marketplace.
		On("CreateMarketItem", mock.Anything, mock.Anything, mock.Anything, domain.TokenId(8), mock.Anything, mock.Anything).
		Return(nil, xerrors.Errorf("execution reverted: %w", domain.ErrContractRejected))

	trade, err := s.usecase.Create(bCtx.Background(), buyer, domain.CreateItemRequest{
		MetadataUri:  "ipfs://QmMeta",
		DisplayPrice: "1.5",
	})
	s.Require().NoError(err)

	s.usecase.Wait()
	settled, err := s.usecase.Get(bCtx.Background(), trade.Id)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateFailed, settled.State)
	s.Equal(domain.TradeFailurePartialCompletion, settled.Failure)
	s.Require().NotNil(settled.MintedTokenId)
	s.Equal(domain.TokenId(8), *settled.MintedTokenId)
}

func (s *tradeTestSuite) TestRelistSucceeds() {
	tx := makeTx(1)
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(7)).Return(listingRecord(7), nil)
	s.marketplace.On("GetListingPrice", mock.Anything).Return(big.NewInt(100), nil)
	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.marketplace.
		On("RelistToken", mock.Anything, mock.Anything, mock.Anything, domain.ItemId(7), big.NewInt(2000000000000000000), big.NewInt(100)).
		Return(tx, nil)
	s.chain.On("WaitMined", mock.Anything, tx).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	trade, err := s.usecase.Relist(bCtx.Background(), buyer, domain.RelistItemRequest{
		ItemId:       7,
		DisplayPrice: "2",
	})
	s.Require().NoError(err)

	s.usecase.Wait()
	settled, err := s.usecase.Get(bCtx.Background(), trade.Id)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateSucceeded, settled.State)
}

func (s *tradeTestSuite) TestGetUnknownTrade() {
	_, err := s.usecase.Get(bCtx.Background(), "nope")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *tradeTestSuite) TestRevertedConfirmationFailsTrade() {
	tx := makeTx(1)
	s.marketplace.On("FetchNFT", mock.Anything, domain.ItemId(7)).Return(listingRecord(7), nil)
	s.wallet.On("Signer", mock.Anything, buyer).Return(&bind.TransactOpts{}, nil)
	s.marketplace.
		On("CreateMarketSale", mock.Anything, mock.Anything, mock.Anything, domain.ItemId(7), mock.Anything).
		Return(tx, nil)
	s.chain.On("WaitMined", mock.Anything, tx).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

	trade, err := s.usecase.Buy(bCtx.Background(), buyer, 7)
	s.Require().NoError(err)

	s.usecase.Wait()
	settled, err := s.usecase.Get(bCtx.Background(), trade.Id)
	s.Require().NoError(err)
	s.Equal(domain.TradeStateFailed, settled.State)
	s.Equal(domain.TradeFailureContractRejected, settled.Failure)
}
