package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ibeloyar/fueldispatch/internal/model"
	"github.com/redis/go-redis/v9"
)

const (
	// KeyOrder: pedido:{folio} -> документ заказа
	KeyOrder = "pedido:%s"

	// KeyOrdersIndex: множество всех folio в зеркале
	KeyOrdersIndex = "pedidos"

	pingTimeout = 2 * time.Second
)

// Repository - зеркало заказов в Redis; пишется после основного хранилища
type Repository struct {
	rdb *redis.Client
}

func New(addr string) (*Repository, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Repository{rdb: rdb}, nil
}

func OrderKey(folio string) string {
	return fmt.Sprintf(KeyOrder, folio)
}

func (r *Repository) SaveOrder(ctx context.Context, order model.Order) error {
	b, err := json.Marshal(toDocument(order))
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.Folio, err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, OrderKey(order.Folio), b, 0)
	pipe.SAdd(ctx, KeyOrdersIndex, order.Folio)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("mirror order %s: %w", order.Folio, err)
	}

	return nil
}

func (r *Repository) Shutdown() error {
	return r.rdb.Close()
}

// Nop - зеркало отключено
type Nop struct{}

func (Nop) SaveOrder(context.Context, model.Order) error { return nil }

func (Nop) Shutdown() error { return nil }
