package repository

import (
	"time"

	"github.com/zenith-market/goapi/base/ctx"
	hcdomain "github.com/zenith-market/goapi/domain/healthcheck"
	"github.com/zenith-market/goapi/service/chain"
)

type impl struct {
	chain chain.Client
}

// New builds a health repository over the ledger gateway, the one dependency
// this service cannot serve without.
func New(chainService chain.Client) hcdomain.Repository {
	return &impl{chain: chainService}
}

func (im *impl) Ping(context ctx.Ctx) error {
	c, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.chain.Ping(c); err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	return nil
}
