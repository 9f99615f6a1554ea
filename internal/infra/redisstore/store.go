package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"itemlist/internal/domain"
	"itemlist/internal/ports"
)

var _ ports.ItemStore = (*Client)(nil)

func (c *Client) List(ctx context.Context) ([]domain.Item, error) {
	raw, err := c.Rdb.LRange(ctx, c.listKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}

	items := make([]domain.Item, 0, len(raw))
	for _, r := range raw {
		var it domain.Item
		if err := json.Unmarshal([]byte(r), &it); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, it)
	}
	return items, nil
}

// Create takes the next id from the sequence and appends the item. The two steps are
// separate round trips: an id whose push fails is never reused, so ids may have gaps.
func (c *Client) Create(ctx context.Context, text string) (domain.Item, error) {
	id, err := c.Rdb.Incr(ctx, c.seqKey()).Result()
	if err != nil {
		return domain.Item{}, fmt.Errorf("redis incr: %w", err)
	}

	it := domain.Item{ID: id, Text: text}
	b, err := json.Marshal(it)
	if err != nil {
		return domain.Item{}, err
	}
	if err := c.Rdb.RPush(ctx, c.listKey(), b).Err(); err != nil {
		return domain.Item{}, fmt.Errorf("redis rpush: %w", err)
	}
	return it, nil
}
