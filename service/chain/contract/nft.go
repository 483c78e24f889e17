package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/zenith-market/goapi/base/abi"
	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/chain"
)

// NftContract is the typed surface of the token contract.
type NftContract interface {
	TokenURI(ctx bCtx.Ctx, tokenId domain.TokenId) (string, error)
	CreateToken(ctx bCtx.Ctx, opts *bind.TransactOpts, metadataUri string) (*types.Transaction, error)
	TransferFrom(ctx bCtx.Ctx, opts *bind.TransactOpts, from, to domain.Address, tokenId domain.TokenId) (*types.Transaction, error)
	TokenIdFromReceipt(receipt *types.Receipt) (domain.TokenId, error)
}

type Nft struct {
	chainService chain.Client
	address      common.Address
	abi          ethabi.ABI
}

func NewNft(chainService chain.Client, address domain.Address) *Nft {
	return &Nft{
		chainService: chainService,
		address:      common.HexToAddress(string(address)),
		abi:          baseabi.NftTokenABI,
	}
}

func (n *Nft) TokenURI(ctx bCtx.Ctx, tokenId domain.TokenId) (string, error) {
	var uri string
	if err := n.chainService.Call(ctx, n.address, n.abi, "tokenURI", &uri, tokenId.Big()); err != nil {
		return "", err
	}
	return uri, nil
}

func (n *Nft) CreateToken(ctx bCtx.Ctx, opts *bind.TransactOpts, metadataUri string) (*types.Transaction, error) {
	return n.chainService.Transact(ctx, opts, n.address, n.abi, "createToken", nil, metadataUri)
}

func (n *Nft) TransferFrom(ctx bCtx.Ctx, opts *bind.TransactOpts, from, to domain.Address, tokenId domain.TokenId) (*types.Transaction, error) {
	return n.chainService.Transact(ctx, opts, n.address, n.abi, "transferFrom", nil,
		common.HexToAddress(string(from)), common.HexToAddress(string(to)), tokenId.Big())
}

// TokenIdFromReceipt extracts the freshly minted token id out of the mint
// transaction's Transfer-from-zero log.
func (n *Nft) TokenIdFromReceipt(receipt *types.Receipt) (domain.TokenId, error) {
	for _, l := range receipt.Logs {
		if l.Address != n.address {
			continue
		}
		transfer, err := baseabi.ToNftTransferLog(l)
		if err != nil {
			continue
		}
		if transfer.From == (common.Address{}) {
			return domain.TokenId(transfer.TokenId.Uint64()), nil
		}
	}
	return 0, domain.ErrNotFound
}
