package httpapi

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ironsheep/raster-kernels-mcp/internal/config"
	"github.com/ironsheep/raster-kernels-mcp/internal/kernels"
)

// ResultCache stores successful kernel results by request key.
//
// Get returns (nil, nil) on a miss.
type ResultCache interface {
	Get(ctx context.Context, key string) (*kernels.Result, error)
	Set(ctx context.Context, key string, result *kernels.Result) error
}

// CacheKey hashes everything that determines a kernel's output. Params are
// hashed by their float32 bit patterns, so 1 and 1.0000001 are distinct keys
// even when the kernel would truncate both to the same integer.
func CacheKey(operation string, width, height uint32, params []float32, pixels []byte) string {
	h := md5.New()
	h.Write([]byte(operation))
	h.Write([]byte{0})

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], width)
	h.Write(buf[:])
	binary.LittleEndian.PutUint32(buf[:], height)
	h.Write(buf[:])
	binary.LittleEndian.PutUint32(buf[:], uint32(len(params)))
	h.Write(buf[:])
	for _, p := range params {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(p))
		h.Write(buf[:])
	}

	h.Write(pixels)
	return hex.EncodeToString(h.Sum(nil))
}

// RedisCache is a ResultCache backed by redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a client for cfg. It does not connect; call Ping to
// check the server is reachable.
func NewRedisCache(cfg *config.RedisConfig) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}
}

// Ping checks that the server is reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns the cached result for key, or nil on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*kernels.Result, error) {
	data, err := c.client.Get(ctx, "kernel:"+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var result kernels.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set stores result under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, result *kernels.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "kernel:"+key, data, c.ttl).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
