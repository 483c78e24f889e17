package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/log"
	"github.com/zenith-market/goapi/domain"
)

type WalletCfg struct {
	KeystoreDir string
	Passphrase  string
	ChainId     *big.Int
}

// keystoreWallet hands out signers for accounts whose encrypted keys live in
// the configured keystore directory. An account the store does not hold, or
// cannot unlock, yields ErrNoSigner.
type keystoreWallet struct {
	ks         *keystore.KeyStore
	passphrase string
	chainId    *big.Int
}

func New(cfg *WalletCfg) domain.Wallet {
	ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	return &keystoreWallet{
		ks:         ks,
		passphrase: cfg.Passphrase,
		chainId:    cfg.ChainId,
	}
}

func (w *keystoreWallet) Signer(ctx bCtx.Ctx, address domain.Address) (*bind.TransactOpts, error) {
	account, err := w.ks.Find(accounts.Account{Address: common.HexToAddress(string(address))})
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Warn("no key for address")
		return nil, xerrors.Errorf("find account: %w", domain.ErrNoSigner)
	}
	if err := w.ks.Unlock(account, w.passphrase); err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("failed to unlock account")
		return nil, xerrors.Errorf("unlock account: %w", domain.ErrUserRejected)
	}
	opts, err := bind.NewKeyStoreTransactorWithChainID(w.ks, account, w.chainId)
	if err != nil {
		ctx.WithField("err", err).Error("NewKeyStoreTransactorWithChainID failed")
		return nil, xerrors.Errorf("build transactor: %w", domain.ErrNoSigner)
	}
	opts.Context = ctx
	return opts, nil
}
