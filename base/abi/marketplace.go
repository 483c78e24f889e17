package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var MarketplaceABI abi.ABI

var marketplaceABI = `[
{"type":"function","name":"getListingPrice","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"fetchMarketItems","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"tuple[]","components":[{"type":"uint256","name":"itemId"},{"type":"uint256","name":"tokenId"},{"type":"address","name":"nftContract"},{"type":"address","name":"creator"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"uint256","name":"price"},{"type":"bool","name":"sold"},{"type":"bool","name":"relisted"}]}]},
{"type":"function","name":"fetchItemsCreated","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"tuple[]","components":[{"type":"uint256","name":"itemId"},{"type":"uint256","name":"tokenId"},{"type":"address","name":"nftContract"},{"type":"address","name":"creator"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"uint256","name":"price"},{"type":"bool","name":"sold"},{"type":"bool","name":"relisted"}]}]},
{"type":"function","name":"fetchMyNFTs","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"tuple[]","components":[{"type":"uint256","name":"itemId"},{"type":"uint256","name":"tokenId"},{"type":"address","name":"nftContract"},{"type":"address","name":"creator"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"uint256","name":"price"},{"type":"bool","name":"sold"},{"type":"bool","name":"relisted"}]}]},
{"type":"function","name":"fetchNFT","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"itemId"}],"outputs":[{"type":"tuple","components":[{"type":"uint256","name":"itemId"},{"type":"uint256","name":"tokenId"},{"type":"address","name":"nftContract"},{"type":"address","name":"creator"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"uint256","name":"price"},{"type":"bool","name":"sold"},{"type":"bool","name":"relisted"}]}]},
{"type":"function","name":"createMarketItem","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"address","name":"nftContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[]},
{"type":"function","name":"createMarketSale","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"address","name":"nftContract"},{"type":"uint256","name":"itemId"}],"outputs":[]},
{"type":"function","name":"relistToken","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"address","name":"nftContract"},{"type":"uint256","name":"itemId"},{"type":"uint256","name":"price"}],"outputs":[]},
{"type":"event","anonymous":false,"name":"MarketItemCreated","inputs":[{"type":"uint256","name":"itemId","indexed":true},{"type":"address","name":"nftContract","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"address","name":"creator"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"uint256","name":"price"},{"type":"bool","name":"sold"}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// MarketItem mirrors the marketplace contract's MarketItem tuple.
type MarketItem struct {
	ItemId      *big.Int
	TokenId     *big.Int
	NftContract common.Address
	Creator     common.Address
	Seller      common.Address
	Owner       common.Address
	Price       *big.Int
	Sold        bool
	Relisted    bool
}
