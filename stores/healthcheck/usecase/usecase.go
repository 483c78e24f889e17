package usecase

import (
	"github.com/zenith-market/goapi/base/ctx"
	hcdomain "github.com/zenith-market/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.Repository
}

func New(repo hcdomain.Repository) hcdomain.Usecase {
	return &impl{repo: repo}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.Ping(context)
}
