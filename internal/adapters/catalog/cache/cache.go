package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"dogs-catalog/internal/platform/logger"
	"dogs-catalog/internal/ports/catalog"
)

const DefaultKey = "dogs-catalog:breeds:v1"

// Store es el subconjunto de *redis.Client que usamos (tests inyectan un fake).
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Catalog es un read-through cache sobre otro catalog.Catalog.
// Si Redis falla, se degrada a llamar directo al upstream.
type Catalog struct {
	next  catalog.Catalog
	store Store
	ttl   time.Duration
	key   string
	log   logger.Logger
}

var _ catalog.Catalog = (*Catalog)(nil)

func New(next catalog.Catalog, store Store, ttl time.Duration, log logger.Logger) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	return &Catalog{
		next:  next,
		store: store,
		ttl:   ttl,
		key:   DefaultKey,
		log:   log.With(logger.Fields{"component": "catalog_cache"}),
	}
}

// NewRedisStore abre el cliente y verifica conectividad.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *Catalog) ListBreeds(ctx context.Context) ([]catalog.Breed, error) {
	if c.store == nil || c.ttl <= 0 {
		return c.next.ListBreeds(ctx)
	}

	if breeds, ok := c.lookup(ctx); ok {
		return breeds, nil
	}

	breeds, err := c.next.ListBreeds(ctx)
	if err != nil {
		return nil, err
	}

	c.save(ctx, breeds)
	return breeds, nil
}

func (c *Catalog) lookup(ctx context.Context) ([]catalog.Breed, bool) {
	raw, err := c.store.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", logger.Err(err))
		}
		return nil, false
	}

	var breeds []catalog.Breed
	if err := json.Unmarshal(raw, &breeds); err != nil {
		c.log.Warn("cache entry corrupt, ignoring", logger.Err(err))
		return nil, false
	}
	return breeds, true
}

func (c *Catalog) save(ctx context.Context, breeds []catalog.Breed) {
	raw, err := json.Marshal(breeds)
	if err != nil {
		c.log.Warn("cache encode failed", logger.Err(err))
		return
	}
	if err := c.store.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", logger.Err(err))
	}
}
