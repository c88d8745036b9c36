package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"yolimar/internal/domain"
	"yolimar/pkg/prometheus"
	"yolimar/pkg/whatsapp"
)

// CheckoutResult is the hand-off: the order snapshot and the deep link the
// customer opens to send it.
type CheckoutResult struct {
	Order domain.Order `json:"order"`
	URL   string       `json:"url"`
}

// CheckoutUsecase turns the current cart into an order, publishes it for the
// back office when a producer is wired, and builds the WhatsApp hand-off
// link. The cart is left untouched: it is the customer's conversation with
// the store that completes the sale.
type CheckoutUsecase struct {
	cart     *CartUsecase
	producer eventProducer
	topic    string
	phone    string
	log      *slog.Logger
}

func NewCheckoutUsecase(cart *CartUsecase, producer eventProducer, topic, phone string, log *slog.Logger) *CheckoutUsecase {
	return &CheckoutUsecase{
		cart:     cart,
		producer: producer,
		topic:    topic,
		phone:    phone,
		log:      log,
	}
}

func (uc *CheckoutUsecase) Checkout(ctx context.Context) (*CheckoutResult, error) {
	startTime := time.Now()

	items := uc.cart.Items()
	if len(items) == 0 {
		prometheus.CheckoutsTotal.WithLabelValues("empty").Inc()
		return nil, domain.ErrEmptyCart
	}

	order := domain.Order{
		Reference: uuid.NewString(),
		Lines:     items,
		Total:     uc.cart.Total(),
		CreatedAt: time.Now().UTC(),
	}

	uc.publish(ctx, order)

	message := whatsapp.OrderMessage(order.Lines, order.Total)
	result := &CheckoutResult{
		Order: order,
		URL:   whatsapp.Link(uc.phone, message),
	}

	uc.log.Info("checkout completed",
		"reference", order.Reference,
		"lines", len(order.Lines),
		"total", order.Total,
		"processing_time_ms", time.Since(startTime).Milliseconds(),
	)
	prometheus.CheckoutsTotal.WithLabelValues("ok").Inc()
	return result, nil
}

// publish sends the order event when a producer is configured. Failures
// degrade: the hand-off link is the primary channel and is still returned.
func (uc *CheckoutUsecase) publish(ctx context.Context, order domain.Order) {
	if uc.producer == nil {
		return
	}
	select {
	case <-ctx.Done():
		uc.log.Warn("skipping order event, context done", "reference", order.Reference)
		return
	default:
	}

	payload, err := json.Marshal(order)
	if err != nil {
		uc.log.Error("failed to encode order event", "reference", order.Reference, "error", err)
		return
	}
	if err := uc.producer.Produce(string(payload), uc.topic, order.Reference); err != nil {
		uc.log.Error("failed to publish order event", "reference", order.Reference, "error", err)
		prometheus.KafkaErrorsTotal.WithLabelValues(uc.topic, "produce").Inc()
		return
	}
	uc.log.Debug("order event published", "reference", order.Reference, "topic", uc.topic)
}
