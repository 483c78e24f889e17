package repository

import (
	"github.com/coocood/freecache"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
)

type cachedReaderRepo struct {
	backing    domain.WebResourceReaderRepository
	cache      *freecache.Cache
	expireSecs int
}

// NewCachedReaderRepo wraps a reader with an in-process cache. Token
// metadata behind a fixed uri never changes, so a hit can be served without
// touching the backing store. Failures are not cached.
func NewCachedReaderRepo(backing domain.WebResourceReaderRepository, cacheSizeBytes, expireSecs int) domain.WebResourceReaderRepository {
	return &cachedReaderRepo{
		backing:    backing,
		cache:      freecache.NewCache(cacheSizeBytes),
		expireSecs: expireSecs,
	}
}

func (r *cachedReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	key := []byte(uri)
	if cached, err := r.cache.Get(key); err == nil {
		return cached, nil
	}
	body, err := r.backing.Get(c, uri)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(key, body, r.expireSecs); err != nil {
		// oversized entries just skip the cache
		c.WithField("err", err).Warn("cache.Set failed")
	}
	return body, nil
}
