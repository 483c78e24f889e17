package chain

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/zenith-market/goapi/base/backoff"
	bCtx "github.com/zenith-market/goapi/base/ctx"
	bEthereum "github.com/zenith-market/goapi/base/ethereum"
	"github.com/zenith-market/goapi/base/log"
	"github.com/zenith-market/goapi/domain"
)

const defaultReceiptPollInterval = time.Second

type ClientCfg struct {
	RpcUrl string
	// MaxConcurrentRequests throttles outbound JSON-RPC calls. 0 means 8.
	MaxConcurrentRequests int
	ReceiptPollInterval   time.Duration
}

// Client is the remote ledger gateway. Reads go through Call/CallFrom,
// writes through Transact + WaitMined.
type Client interface {
	ChainId() *big.Int
	Call(c bCtx.Ctx, to common.Address, _abi abi.ABI, method string, out interface{}, params ...interface{}) error
	// CallFrom performs a read with an explicit caller, for view methods
	// scoped on msg.sender.
	CallFrom(c bCtx.Ctx, from, to common.Address, _abi abi.ABI, method string, out interface{}, params ...interface{}) error
	Transact(c bCtx.Ctx, opts *bind.TransactOpts, to common.Address, _abi abi.ABI, method string, value *big.Int, params ...interface{}) (*types.Transaction, error)
	// WaitMined blocks until the transaction is included. The wait is
	// unbounded; cancellation comes only from the context, and cancelling
	// never aborts the on-chain transaction itself.
	WaitMined(c bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error)
	Ping(c bCtx.Ctx) error
}

type clientImpl struct {
	client       *bEthereum.ThrottledClient
	chainId      *big.Int
	pollInterval time.Duration
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, xerrors.Errorf("dial rpc: %w", domain.ErrGatewayUnavailable)
	}
	maxConcurrent := cfg.MaxConcurrentRequests
	if maxConcurrent == 0 {
		maxConcurrent = 8
	}
	throttled := bEthereum.NewThrottledClient(client, maxConcurrent)
	chainId, err := throttled.ChainID(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to read chain id")
		return nil, xerrors.Errorf("read chain id: %w", domain.ErrGatewayUnavailable)
	}
	pollInterval := cfg.ReceiptPollInterval
	if pollInterval == 0 {
		pollInterval = defaultReceiptPollInterval
	}
	return &clientImpl{
		client:       throttled,
		chainId:      chainId,
		pollInterval: pollInterval,
	}, nil
}

func (c *clientImpl) ChainId() *big.Int {
	return new(big.Int).Set(c.chainId)
}

func (c *clientImpl) Call(ctx bCtx.Ctx, to common.Address, _abi abi.ABI, method string, out interface{}, params ...interface{}) error {
	return c.CallFrom(ctx, common.Address{}, to, _abi, method, out, params...)
}

func (c *clientImpl) CallFrom(ctx bCtx.Ctx, from, to common.Address, _abi abi.ABI, method string, out interface{}, params ...interface{}) error {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return err
	}
	msg := ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.CallContract failed")
		return Classify(err)
	}
	if out == nil {
		return nil
	}
	if err := _abi.UnpackIntoInterface(out, method, res); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.UnpackIntoInterface failed")
		return xerrors.Errorf("unpack %s: %w", method, domain.ErrGatewayUnavailable)
	}
	return nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, opts *bind.TransactOpts, to common.Address, _abi abi.ABI, method string, value *big.Int, params ...interface{}) (*types.Transaction, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	if value == nil {
		value = big.NewInt(0)
	}

	nonce, err := c.client.PendingNonceAt(ctx, opts.From)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, Classify(err)
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, Classify(err)
	}
	// gas estimation runs the call; a revert surfaces here before anything
	// is submitted
	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     opts.From,
		To:       &to,
		Value:    value,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return nil, Classify(err)
	}

	tx := types.NewTransaction(nonce, to, value, gas, gasPrice, data)
	signedTx, err := opts.Signer(opts.From, tx)
	if err != nil {
		ctx.WithField("err", err).Error("signer rejected transaction")
		return nil, xerrors.Errorf("sign: %w", domain.ErrNoSigner)
	}
	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"txHash": signedTx.Hash().Hex(),
			"err":    err,
		}).Error("client.SendTransaction failed")
		return nil, Classify(err)
	}
	return signedTx, nil
}

func (c *clientImpl) WaitMined(ctx bCtx.Ctx, tx *types.Transaction) (*types.Receipt, error) {
	// poll interval backs off to ten times the base so a long confirmation
	// wait does not hammer the node
	bo := backoff.NewExponential(c.pollInterval, 10*c.pollInterval)
	for {
		receipt, err := c.client.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			return receipt, nil
		}
		if err != ethereum.NotFound {
			ctx.WithFields(log.Fields{
				"txHash": tx.Hash().Hex(),
				"err":    err,
			}).Warn("client.TransactionReceipt failed, retrying")
		}
		if err := bo.Backoff(ctx); err != nil {
			return nil, err
		}
	}
}

func (c *clientImpl) Ping(ctx bCtx.Ctx) error {
	if _, err := c.client.BlockNumber(ctx); err != nil {
		return xerrors.Errorf("ping rpc: %w", domain.ErrGatewayUnavailable)
	}
	return nil
}

// Classify maps a raw gateway error onto the domain taxonomy, keeping the
// node's reason text verbatim.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "execution reverted") || strings.Contains(msg, "revert") {
		return xerrors.Errorf("%s: %w", msg, domain.ErrContractRejected)
	}
	return xerrors.Errorf("%s: %w", msg, domain.ErrGatewayUnavailable)
}
