package catalog

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	"github.com/grochain/listing-finder/pkg/types"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("snapshot not cached")

// SnapshotCache shares published snapshots between finder replicas.
type SnapshotCache interface {
	Get(ctx context.Context, collection types.Collection, out any) error
	Set(ctx context.Context, collection types.Collection, value any) error
	Publish(ctx context.Context, collection types.Collection) error
	Subscribe(ctx context.Context, fn func(collection types.Collection)) error
	Close() error
}

const snapshotChannel = "snapshotChange"

type RedisCache struct {
	client     *redis.Client
	prefix     string
	expiration time.Duration
}

func NewRedisCache(addr, password string, db int, expiration time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: rdb, prefix: "finder_snapshot_", expiration: expiration}
}

func (c *RedisCache) key(collection types.Collection) string {
	return c.prefix + string(collection)
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Get(ctx context.Context, collection types.Collection, out any) error {
	data, err := c.client.Get(ctx, c.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return jsoncompat.Unmarshal(data, out)
}

func (c *RedisCache) Set(ctx context.Context, collection types.Collection, value any) error {
	data, err := jsoncompat.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(collection), data, c.expiration).Err()
}

func (c *RedisCache) Publish(ctx context.Context, collection types.Collection) error {
	return c.client.Publish(ctx, snapshotChannel, string(collection)).Err()
}

// Subscribe calls fn for every collection another replica published until
// ctx is done.
func (c *RedisCache) Subscribe(ctx context.Context, fn func(collection types.Collection)) error {
	sub := c.client.Subscribe(ctx, snapshotChannel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return err
	}
	go func(ch <-chan *redis.Message) {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				collection, err := types.ParseCollection(msg.Payload)
				if err != nil {
					log.Printf("Ignoring snapshot change for %q: %v", msg.Payload, err)
					continue
				}
				fn(collection)
			}
		}
	}(sub.Channel())
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
