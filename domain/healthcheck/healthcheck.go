package healthcheck

import (
	"github.com/zenith-market/goapi/base/ctx"
)

// Repository pings a dependency this service cannot live without.
type Repository interface {
	Ping(ctx.Ctx) error
}

type Usecase interface {
	Check(ctx.Ctx) error
}
