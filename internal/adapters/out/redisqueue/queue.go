// Package redisqueue implements the shipment notification queue on Redis Streams.
// Messages are delivered at least once through a consumer group, so downstream
// consumers must tolerate duplicate shipping identifiers.
package redisqueue

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const shippingIDField = "shipping_id"

// RedisShipmentQueue publishes and consumes shipment notifications through a
// Redis stream. Poll reads via a consumer group and acknowledges messages
// immediately after reading them; a consumer that crashes mid-batch loses the
// batch to redelivery semantics of the due-date engine, which tolerates
// duplicates.
type RedisShipmentQueue struct {
	client    *redis.Client
	stream    string
	group     string
	consumer  string
	blockWait time.Duration

	mu         sync.Mutex
	groupReady bool
}

// NewRedisShipmentQueue creates a queue bound to the given stream and consumer group.
func NewRedisShipmentQueue(client *redis.Client, stream, group, consumer string) *RedisShipmentQueue {
	return &RedisShipmentQueue{
		client:    client,
		stream:    stream,
		group:     group,
		consumer:  consumer,
		blockWait: time.Second,
	}
}

// Publish appends a notification for the given shipping identifier to the
// stream and returns the stream entry identifier.
func (q *RedisShipmentQueue) Publish(ctx context.Context, shippingID kernel.UUID) (string, error) {
	if err := shippingID.Validate(); err != nil {
		return "", err
	}

	messageID, err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]any{shippingIDField: shippingID.String()},
	}).Result()
	if err != nil {
		return "", errs.NewDependencyUnavailableError("shipment queue", err)
	}

	return messageID, nil
}

// Poll reads up to maxBatch shipping identifiers from the stream, blocking for
// a bounded interval when no message is pending. An empty result is not an
// error. Read messages are acknowledged before being returned.
func (q *RedisShipmentQueue) Poll(ctx context.Context, maxBatch int) ([]string, error) {
	if err := q.ensureGroup(ctx); err != nil {
		return nil, err
	}

	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: q.consumer,
		Streams:  []string{q.stream, ">"},
		Count:    int64(maxBatch),
		Block:    q.blockWait,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.NewDependencyUnavailableError("shipment queue", err)
	}

	var shippingIDs []string
	for _, stream := range streams {
		for _, message := range stream.Messages {
			if err = q.client.XAck(ctx, q.stream, q.group, message.ID).Err(); err != nil {
				return shippingIDs, errs.NewDependencyUnavailableError("shipment queue", err)
			}

			shippingID, ok := message.Values[shippingIDField].(string)
			if !ok {
				continue
			}
			shippingIDs = append(shippingIDs, shippingID)
		}
	}

	return shippingIDs, nil
}

// ensureGroup creates the consumer group on first use. An already existing
// group is not an error. Poll calls can overlap when a tick blocks on an idle
// stream, so the first-use flag is guarded; a failed creation is retried on
// the next call.
func (q *RedisShipmentQueue) ensureGroup(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.groupReady {
		return nil
	}

	err := q.client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return errs.NewDependencyUnavailableError("shipment queue", err)
	}

	q.groupReady = true
	return nil
}
