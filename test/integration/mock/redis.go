package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis
var redisClient *redis.Client

// NewRedis starts (once) an in-process redis server and returns a client
// connected to it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic("failed to start miniredis: " + err.Error())
		}
		redisServer = server
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// ClearRedis removes every key between scenarios.
func ClearRedis() {
	if redisServer != nil {
		redisServer.FlushAll()
	}
}
