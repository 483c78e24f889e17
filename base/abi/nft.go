package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var NftTokenABI abi.ABI

var nftTokenABI = `[
{"type":"function","name":"createToken","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"string","name":"tokenURI"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"tokenURI","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},
{"type":"function","name":"transferFrom","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"address","name":"from"},{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(nftTokenABI))
	if err != nil {
		panic("Failed to parse nft token abi")
	}
	NftTokenABI = _abi
}

type NftTransferLog struct {
	From    common.Address // indexed
	To      common.Address // indexed
	TokenId *big.Int       // indexed
}

func ToNftTransferLog(log *types.Log) (*NftTransferLog, error) {
	if len(log.Topics) != 4 {
		return nil, xerrors.Errorf("unexpected topic count %d", len(log.Topics))
	}
	if log.Topics[0] != NftTokenABI.Events["Transfer"].ID {
		return nil, xerrors.Errorf("not a Transfer log")
	}
	return &NftTransferLog{
		From:    common.BytesToAddress(log.Topics[1].Bytes()),
		To:      common.BytesToAddress(log.Topics[2].Bytes()),
		TokenId: new(big.Int).SetBytes(log.Topics[3].Bytes()),
	}, nil
}
