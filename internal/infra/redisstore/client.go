package redisstore

import (
	"context"
	"fmt"
	"itemlist/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Client struct {
	Cfg config.Redis
	Rdb *redis.Client
}

func New(cfg config.Redis) *Client {
	log.Info().Msgf("connecting to redis at %s", cfg.Addr)
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Client{Cfg: cfg, Rdb: c}
}

// Connect checks the server answers before the API starts serving.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.Ping(ctx); err != nil {
		return err
	}
	log.Ctx(ctx).Info().
		Str("addr", c.Cfg.Addr).
		Str("prefix", c.Cfg.KeyPrefix).
		Msg("connected to redis")
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.Rdb.Close()
}

func (c *Client) seqKey() string  { return c.Cfg.KeyPrefix + ":seq" }
func (c *Client) listKey() string { return c.Cfg.KeyPrefix + ":list" }
