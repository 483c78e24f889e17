package usecase

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/goroutine"
	"github.com/zenith-market/goapi/base/log"
	"github.com/zenith-market/goapi/base/wei"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/chain"
	"github.com/zenith-market/goapi/service/chain/contract"
)

type TradeUseCaseCfg struct {
	Wallet      domain.Wallet
	Marketplace contract.MarketplaceContract
	Nft         contract.NftContract
	Chain       chain.Client
	// NftContractAddress is the token contract the marketplace trades.
	NftContractAddress domain.Address
	Decimals           int32
}

type tradeUseCase struct {
	wallet             domain.Wallet
	marketplace        contract.MarketplaceContract
	nft                contract.NftContract
	chain              chain.Client
	nftContractAddress domain.Address
	decimals           int32

	mu       sync.Mutex
	trades   map[string]*domain.PendingTrade
	inFlight map[string]string
	watchers sync.WaitGroup
}

func NewTradeUseCase(cfg *TradeUseCaseCfg) domain.TradeUseCase {
	return &tradeUseCase{
		wallet:             cfg.Wallet,
		marketplace:        cfg.Marketplace,
		nft:                cfg.Nft,
		chain:              cfg.Chain,
		nftContractAddress: cfg.NftContractAddress,
		decimals:           cfg.Decimals,
		trades:             make(map[string]*domain.PendingTrade),
		inFlight:           make(map[string]string),
	}
}

func (u *tradeUseCase) Buy(c bCtx.Ctx, account domain.Address, itemId domain.ItemId) (*domain.PendingTrade, error) {
	trade, err := u.begin(domain.TradeKindBuy, account, itemId)
	if err != nil {
		return nil, err
	}

	record, err := u.marketplace.FetchNFT(c, itemId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return u.settle(trade.Id, domain.TradeFailureContractRejected, "item does not exist"), nil
		}
		return u.fail(c, trade.Id, err), nil
	}

	opts, err := u.wallet.Signer(c, account)
	if err != nil {
		return u.fail(c, trade.Id, err), nil
	}
	u.update(trade.Id, func(t *domain.PendingTrade) { t.State = domain.TradeStateSubmitting })

	tx, err := u.marketplace.CreateMarketSale(c, opts, record.NftContract, itemId, record.Price)
	if err != nil {
		return u.fail(c, trade.Id, err), nil
	}
	u.markSubmitted(trade.Id, tx)

	u.watchConfirmation(trade.Id, tx)
	return u.Get(c, trade.Id)
}

func (u *tradeUseCase) Create(c bCtx.Ctx, account domain.Address, req domain.CreateItemRequest) (*domain.PendingTrade, error) {
	price, err := wei.FromDisplayString(req.DisplayPrice, u.decimals)
	if err != nil {
		return nil, err
	}

	trade, err := u.begin(domain.TradeKindCreate, account, 0)
	if err != nil {
		return nil, err
	}

	opts, err := u.wallet.Signer(c, account)
	if err != nil {
		return u.fail(c, trade.Id, err), nil
	}
	u.update(trade.Id, func(t *domain.PendingTrade) { t.State = domain.TradeStateSubmitting })

	mintTx, err := u.nft.CreateToken(c, opts, req.MetadataUri)
	if err != nil {
		return u.fail(c, trade.Id, err), nil
	}
	u.markSubmitted(trade.Id, mintTx)

	tradeId := trade.Id
	u.watchers.Add(1)
	goroutine.RecoverableGo(func() {
		defer u.watchers.Done()
		u.runListingAfterMint(bCtx.Background(), tradeId, opts, mintTx, price)
	})
	return u.Get(c, trade.Id)
}

func (u *tradeUseCase) Relist(c bCtx.Ctx, account domain.Address, req domain.RelistItemRequest) (*domain.PendingTrade, error) {
	price, err := wei.FromDisplayString(req.DisplayPrice, u.decimals)
	if err != nil {
		return nil, err
	}

	trade, err := u.begin(domain.TradeKindRelist, account, req.ItemId)
	if err != nil {
		return nil, err
	}

	record, err := u.marketplace.FetchNFT(c, req.ItemId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return u.settle(trade.Id, domain.TradeFailureContractRejected, "item does not exist"), nil
		}
		return u.fail(c, trade.Id, err), nil
	}

	listingFee, err := u.marketplace.GetListingPrice(c)
	if err != nil {
		return u.fail(c, trade.Id, err), nil
	}

	opts, err := u.wallet.Signer(c, account)
	if err != nil {
		return u.fail(c, trade.Id, err), nil
	}
	u.update(trade.Id, func(t *domain.PendingTrade) { t.State = domain.TradeStateSubmitting })

	tx, err := u.marketplace.RelistToken(c, opts, record.NftContract, req.ItemId, price, listingFee)
	if err != nil {
		return u.fail(c, trade.Id, err), nil
	}
	u.markSubmitted(trade.Id, tx)

	u.watchConfirmation(trade.Id, tx)
	return u.Get(c, trade.Id)
}

func (u *tradeUseCase) Get(_ bCtx.Ctx, id string) (*domain.PendingTrade, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	trade, ok := u.trades[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	snapshot := *trade
	return &snapshot, nil
}

// Wait blocks until every confirmation watcher has drained. Used on shutdown
// and by tests.
func (u *tradeUseCase) Wait() {
	u.watchers.Wait()
}

func inFlightKey(kind domain.TradeKind, account domain.Address, itemId domain.ItemId) string {
	return fmt.Sprintf("%s:%s:%d", kind, account.ToLowerStr(), itemId)
}

// begin registers a new trade, enforcing at most one in-flight trade per
// operation key.
func (u *tradeUseCase) begin(kind domain.TradeKind, account domain.Address, itemId domain.ItemId) (*domain.PendingTrade, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	key := inFlightKey(kind, account, itemId)
	if existingId, ok := u.inFlight[key]; ok {
		if existing, ok := u.trades[existingId]; ok && existing.State.InFlight() {
			return nil, domain.ErrTradeInFlight
		}
	}

	trade := &domain.PendingTrade{
		Id:      uuid.New().String(),
		Kind:    kind,
		Account: account.ToLower(),
		ItemId:  itemId,
		State:   domain.TradeStateAwaitingSigner,
	}
	u.trades[trade.Id] = trade
	u.inFlight[key] = trade.Id
	return trade, nil
}

func (u *tradeUseCase) update(id string, mutate func(*domain.PendingTrade)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if trade, ok := u.trades[id]; ok {
		mutate(trade)
	}
}

func (u *tradeUseCase) markSubmitted(id string, tx *types.Transaction) {
	u.update(id, func(t *domain.PendingTrade) {
		t.State = domain.TradeStateAwaitingConfirmation
		t.TxHash = domain.TxHash(tx.Hash().Hex())
	})
}

// settle moves the trade into a terminal failed state and returns a snapshot.
func (u *tradeUseCase) settle(id string, failure domain.TradeFailure, reason string) *domain.PendingTrade {
	u.mu.Lock()
	defer u.mu.Unlock()
	trade, ok := u.trades[id]
	if !ok {
		return nil
	}
	trade.State = domain.TradeStateFailed
	trade.Failure = failure
	trade.Reason = reason
	snapshot := *trade
	return &snapshot
}

func (u *tradeUseCase) succeed(id string) {
	u.update(id, func(t *domain.PendingTrade) {
		t.State = domain.TradeStateSucceeded
		t.Failure = domain.TradeFailureNone
		t.Reason = ""
	})
}

func (u *tradeUseCase) fail(c bCtx.Ctx, id string, err error) *domain.PendingTrade {
	failure := classifyFailure(err)
	c.WithFields(log.Fields{
		"tradeId": id,
		"failure": failure,
		"err":     err,
	}).Warn("trade failed")
	return u.settle(id, failure, err.Error())
}

func classifyFailure(err error) domain.TradeFailure {
	switch {
	case errors.Is(err, domain.ErrNoSigner):
		return domain.TradeFailureNoSigner
	case errors.Is(err, domain.ErrUserRejected):
		return domain.TradeFailureUserRejected
	case errors.Is(err, domain.ErrContractRejected):
		return domain.TradeFailureContractRejected
	case errors.Is(err, domain.ErrInvalidPrice):
		return domain.TradeFailureInvalidPrice
	default:
		return domain.TradeFailureGateway
	}
}

// watchConfirmation waits out the single transaction of a buy or relist flow
// on its own goroutine. The wait is unbounded; only a confirmed receipt
// settles the trade.
func (u *tradeUseCase) watchConfirmation(tradeId string, tx *types.Transaction) {
	u.watchers.Add(1)
	goroutine.RecoverableGo(func() {
		defer u.watchers.Done()
		c := bCtx.Background()
		receipt, err := u.chain.WaitMined(c, tx)
		if err != nil {
			u.fail(c, tradeId, err)
			return
		}
		if receipt.Status == types.ReceiptStatusFailed {
			u.settle(tradeId, domain.TradeFailureContractRejected, "transaction reverted")
			return
		}
		u.succeed(tradeId)
	})
}

// runListingAfterMint drives the second half of a create flow. Once the mint
// confirmed, the token exists on chain no matter what happens next, so any
// later failure must surface the minted token id instead of a plain failure.
func (u *tradeUseCase) runListingAfterMint(c bCtx.Ctx, tradeId string, opts *bind.TransactOpts, mintTx *types.Transaction, price *big.Int) {
	mintReceipt, err := u.chain.WaitMined(c, mintTx)
	if err != nil {
		u.fail(c, tradeId, err)
		return
	}
	if mintReceipt.Status == types.ReceiptStatusFailed {
		u.settle(tradeId, domain.TradeFailureContractRejected, "mint reverted")
		return
	}

	tokenId, err := u.nft.TokenIdFromReceipt(mintReceipt)
	if err != nil {
		c.WithFields(log.Fields{
			"tradeId": tradeId,
			"txHash":  mintTx.Hash().Hex(),
			"err":     err,
		}).Error("minted token id not found in receipt")
		u.settle(tradeId, domain.TradeFailurePartialCompletion, "mint confirmed but token id not found")
		return
	}
	u.update(tradeId, func(t *domain.PendingTrade) {
		minted := tokenId
		t.MintedTokenId = &minted
	})

	listingFee, err := u.marketplace.GetListingPrice(c)
	if err != nil {
		u.failPartial(c, tradeId, err)
		return
	}

	listTx, err := u.marketplace.CreateMarketItem(c, opts, u.nftContractAddress, tokenId, price, listingFee)
	if err != nil {
		u.failPartial(c, tradeId, err)
		return
	}
	u.update(tradeId, func(t *domain.PendingTrade) {
		t.State = domain.TradeStateAwaitingConfirmation
		t.TxHash = domain.TxHash(listTx.Hash().Hex())
	})

	listReceipt, err := u.chain.WaitMined(c, listTx)
	if err != nil {
		u.failPartial(c, tradeId, err)
		return
	}
	if listReceipt.Status == types.ReceiptStatusFailed {
		u.settle(tradeId, domain.TradeFailurePartialCompletion, "mint confirmed but listing reverted")
		return
	}
	u.succeed(tradeId)
}

// failPartial marks a create flow that minted but could not list. The minted
// token id stays on the trade so the caller can recover the orphaned token.
func (u *tradeUseCase) failPartial(c bCtx.Ctx, tradeId string, err error) {
	c.WithFields(log.Fields{
		"tradeId": tradeId,
		"err":     err,
	}).Warn("listing step failed after mint")
	u.settle(tradeId, domain.TradeFailurePartialCompletion, err.Error())
}
