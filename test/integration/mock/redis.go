package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client bound to the shared in-process Redis, starting
// it on first call. The record store under test and the cloud assertion
// steps talk to the same instance.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	})
	return redisConn
}

// ClearRedis removes every key, returning the record store to a blank
// state between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
