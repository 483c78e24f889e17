package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/zenith-market/goapi/base/abi"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/chain/mocks"
)

type nftTestSuite struct {
	suite.Suite

	chainService *mocks.Client
	nft          *Nft
}

func TestNft(t *testing.T) {
	suite.Run(t, new(nftTestSuite))
}

func (s *nftTestSuite) SetupTest() {
	s.chainService = &mocks.Client{}
	s.nft = NewNft(s.chainService, "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
}

func mintLog(contractAddr, to common.Address, tokenId int64) *types.Log {
	return &types.Log{
		Address: contractAddr,
		Topics: []common.Hash{
			baseabi.NftTokenABI.Events["Transfer"].ID,
			common.BytesToHash(common.Address{}.Bytes()),
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(tokenId)),
		},
	}
}

func (s *nftTestSuite) TestTokenIdFromReceipt() {
	to := common.HexToAddress("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	receipt := &types.Receipt{
		Logs: []*types.Log{
			// a log from another contract must be skipped
			mintLog(common.HexToAddress("0x1"), to, 99),
			mintLog(s.nft.address, to, 8),
		},
	}
	tokenId, err := s.nft.TokenIdFromReceipt(receipt)
	s.Require().NoError(err)
	s.Equal(domain.TokenId(8), tokenId)
}

func (s *nftTestSuite) TestTokenIdFromReceiptWithoutMintLog() {
	receipt := &types.Receipt{Logs: []*types.Log{}}
	_, err := s.nft.TokenIdFromReceipt(receipt)
	s.ErrorIs(err, domain.ErrNotFound)
}
