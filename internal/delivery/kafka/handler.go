package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"

	"yolimar/internal/domain"
	"yolimar/pkg/prometheus"
)

// OrderStore is the part of the key-value store the archiver writes to.
type OrderStore interface {
	Set(ctx context.Context, key string, value []byte) error
}

// OrderHandler archives checkout order events: decode, validate, persist
// under the order key prefix. Undecodable or invalid payloads are committed
// and skipped so the consumer never loops on a poison message.
type OrderHandler struct {
	store      OrderStore
	keyPrefix  string
	retryCount int
	log        *logrus.Logger
}

func NewOrderHandler(store OrderStore, keyPrefix string, retryCount int, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		store:      store,
		keyPrefix:  keyPrefix,
		retryCount: retryCount,
		log:        log,
	}
}

func (h *OrderHandler) HandleMessage(message []byte, topic kafka.TopicPartition, cn int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topicName := ""
	if topic.Topic != nil {
		topicName = *topic.Topic
	}

	var order domain.Order
	if err := json.Unmarshal(message, &order); err != nil {
		h.log.Errorf("failed to parse order event: %v", err)
		prometheus.KafkaErrorsTotal.WithLabelValues(topicName, "parse").Inc()
		return nil
	}
	if err := order.Validate(); err != nil {
		h.log.Errorf("invalid order %s: %v", order.Reference, err)
		prometheus.KafkaErrorsTotal.WithLabelValues(topicName, "validate").Inc()
		return nil
	}

	if err := h.saveWithRetry(ctx, order, message); err != nil {
		prometheus.KafkaMessagesProcessed.WithLabelValues(topicName, "error").Inc()
		return fmt.Errorf("failed to archive order %s after %d retries: %w",
			order.Reference, h.retryCount, err)
	}

	prometheus.KafkaMessagesProcessed.WithLabelValues(topicName, "ok").Inc()
	h.log.Infof("archived order %s from partition %d (consumer %d)",
		order.Reference, topic.Partition, cn)
	return nil
}

func (h *OrderHandler) saveWithRetry(ctx context.Context, order domain.Order, payload []byte) error {
	var lastErr error

	for i := 0; i < h.retryCount; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			err := h.store.Set(ctx, h.keyPrefix+order.Reference, payload)
			if err == nil {
				return nil
			}

			lastErr = err
			h.log.Errorf("retry %d/%d for order %s failed: %v",
				i+1, h.retryCount, order.Reference, err)

			delay := time.Duration(1<<uint(i)) * time.Second
			time.Sleep(delay)
		}
	}

	return lastErr
}
