// Package counterrepo provides a Redis-backed implementation of the
// sequence counter store. Increments run as a single server-side
// script, so the implementation needs no transaction or locking of
// its own.
package counterrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"swiftwash/internal/core/domain/model/counter"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces counter keys so the store can be shared with
// other application data.
const keyPrefix = "swiftwash:counter:"

// counterTTL bounds how long a daily counter stays in the store. Three
// days covers clock skew between allocators and late reads; keys expire
// on their own afterwards.
const counterTTL = 72 * time.Hour

// incrementScript advances the counter and stamps the expiry on the
// first increment in one server-side step. A separate EXPIRE call could
// fail after a successful INCR, leaving an already-consumed sequence
// value behind a returned error and a counter with no expiry; the
// script rules both out.
var incrementScript = redis.NewScript(`
local value = redis.call("INCR", KEYS[1])
if value == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return value
`)

// RedisCounterRepository implements CounterRepository using Redis INCR.
type RedisCounterRepository struct {
	client *redis.Client
}

// NewRedisCounterRepository creates a new Redis counter repository.
func NewRedisCounterRepository(client *redis.Client) *RedisCounterRepository {
	return &RedisCounterRepository{client: client}
}

// Increment atomically advances the counter for the given key and returns
// the new value. The first increment of a key also sets its expiry.
func (r *RedisCounterRepository) Increment(ctx context.Context, key counter.Key) (int, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}

	storeKey := keyPrefix + key.String()
	value, err := incrementScript.Run(ctx, r.client,
		[]string{storeKey}, int(counterTTL.Seconds())).Int()
	if err != nil {
		return 0, err
	}

	return value, nil
}

// Current returns the counter's present value without mutating it.
// Returns 0 for a key that has never been incremented or has expired.
func (r *RedisCounterRepository) Current(ctx context.Context, key counter.Key) (int, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}

	raw, err := r.client.Get(ctx, keyPrefix+key.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	return strconv.Atoi(raw)
}
