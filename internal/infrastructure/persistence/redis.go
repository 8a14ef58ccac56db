package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Aggregate documents live under a fixed key prefix, one JSON string
// per aggregate.
const redisKeyPrefix = "pronet:"

// RedisGateway stores the aggregate documents in Redis. Useful when
// several terminals on one host should share state.
type RedisGateway struct {
	client *redis.Client
}

// NewRedisGateway connects and pings before returning; a dead Redis is
// a startup failure, not a degraded session.
func NewRedisGateway(ctx context.Context, host, password string, db int) (*RedisGateway, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         host,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	log.Info().Str("host", host).Msg("connected to redis storage")

	return &RedisGateway{client: client}, nil
}

func redisKey(doc string) string {
	return redisKeyPrefix + doc
}

// LoadAll reads the three documents. All keys absent means first run.
func (g *RedisGateway) LoadAll(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{Connections: map[string][]string{}}
	found := false

	for doc, dest := range map[string]any{
		DocUsers:       &snapshot.Users,
		DocConnections: &snapshot.Connections,
		DocPosts:       &snapshot.Posts,
	} {
		data, err := g.client.Get(ctx, redisKey(doc)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s document: %w", doc, err)
		}
		if err := json.Unmarshal(data, dest); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", doc, err)
		}
		found = true
	}

	if !found {
		return nil, ErrNoData
	}
	return snapshot, nil
}

// SaveAll writes the three documents in one pipeline round trip.
func (g *RedisGateway) SaveAll(ctx context.Context, snapshot *Snapshot) error {
	docs := map[string]any{
		DocUsers:       snapshot.Users,
		DocConnections: snapshot.Connections,
		DocPosts:       snapshot.Posts,
	}

	_, err := g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for doc, src := range docs {
			data, err := json.Marshal(src)
			if err != nil {
				return fmt.Errorf("encode %s document: %w", doc, err)
			}
			pipe.Set(ctx, redisKey(doc), data, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("write documents: %w", err)
	}
	return nil
}

// Close releases the client pool.
func (g *RedisGateway) Close() error {
	return g.client.Close()
}
