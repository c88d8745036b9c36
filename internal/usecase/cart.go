package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"yolimar/internal/domain"
	"yolimar/pkg/prometheus"
)

// CartUsecase owns the authoritative line list of the active session. Every
// mutation updates memory first and then writes the whole list through to the
// store; a failed write is logged and counted but never fails the mutation,
// so the session keeps working when the storage medium does not.
type CartUsecase struct {
	mu    sync.Mutex
	store store
	key   string
	items []domain.CartItem
	log   *slog.Logger
}

func NewCartUsecase(store store, key string, log *slog.Logger) *CartUsecase {
	return &CartUsecase{store: store, key: key, log: log}
}

// Load seeds the cart from the store. A missing key or an undecodable payload
// yields an empty cart, never an error.
func (uc *CartUsecase) Load(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.items = nil
	data, err := uc.store.Get(ctx, uc.key)
	if err != nil {
		if err != domain.ErrRecordNotFound {
			uc.log.Warn("failed to load cart, starting empty", "error", err)
		}
		return
	}
	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		uc.log.Warn("corrupt cart payload, starting empty", "error", err)
		return
	}
	uc.items = items
	uc.log.Info("cart loaded", "lines", len(items))
	prometheus.CartLines.Set(float64(len(items)))
}

// Add merges the item into an existing line when the full composite key
// (id, color, size, isCustom, designId) matches, otherwise appends a new
// line. A zero quantity defaults to 1. Stock is validated by the caller; the
// cart itself never rejects an add.
func (uc *CartUsecase) Add(ctx context.Context, item domain.CartItem) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	merged := false
	for i := range uc.items {
		if uc.items[i].Key() == item.Key() {
			uc.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		uc.items = append(uc.items, item)
	}

	uc.log.Debug("cart add",
		"id", item.ID,
		"color", item.Color,
		"size", item.Size,
		"quantity", item.Quantity,
		"merged", merged,
	)
	prometheus.CartOperationsTotal.WithLabelValues("add", "ok").Inc()
	uc.persist(ctx)
}

// Remove drops every line matching (id, color, size). Custom lines sharing
// the selection but differing in design are dropped too, matching the
// storefront UI.
func (uc *CartUsecase) Remove(ctx context.Context, id int, color, size string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.removeLocked(ctx, id, color, size)
	prometheus.CartOperationsTotal.WithLabelValues("remove", "ok").Inc()
}

// UpdateQuantity sets the quantity of the matching line(s). A quantity of
// zero or below removes the line entirely; the cart never holds a
// non-positive quantity.
func (uc *CartUsecase) UpdateQuantity(ctx context.Context, id int, color, size string, quantity int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if quantity <= 0 {
		uc.removeLocked(ctx, id, color, size)
		prometheus.CartOperationsTotal.WithLabelValues("update", "ok").Inc()
		return
	}
	for i := range uc.items {
		if uc.items[i].MatchesSelection(id, color, size) {
			uc.items[i].Quantity = quantity
		}
	}
	prometheus.CartOperationsTotal.WithLabelValues("update", "ok").Inc()
	uc.persist(ctx)
}

func (uc *CartUsecase) Clear(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.items = nil
	prometheus.CartOperationsTotal.WithLabelValues("clear", "ok").Inc()
	uc.persist(ctx)
}

// Items returns a copy of the current lines in insertion order.
func (uc *CartUsecase) Items() []domain.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]domain.CartItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// Count is the sum of quantities across all lines, not the line count.
func (uc *CartUsecase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	count := 0
	for i := range uc.items {
		count += uc.items[i].Quantity
	}
	return count
}

// Total is always derived from the current lines, never stored.
func (uc *CartUsecase) Total() float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.totalLocked()
}

func (uc *CartUsecase) totalLocked() float64 {
	var total float64
	for i := range uc.items {
		total += uc.items[i].Subtotal()
	}
	return total
}

func (uc *CartUsecase) removeLocked(ctx context.Context, id int, color, size string) {
	kept := uc.items[:0]
	for i := range uc.items {
		if !uc.items[i].MatchesSelection(id, color, size) {
			kept = append(kept, uc.items[i])
		}
	}
	uc.items = kept
	uc.persist(ctx)
}

// persist writes the full line list through to the store. Callers hold the
// lock; the in-memory state is already the new truth when this runs.
func (uc *CartUsecase) persist(ctx context.Context) {
	prometheus.CartLines.Set(float64(len(uc.items)))

	items := uc.items
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		uc.log.Error("failed to encode cart", "error", err)
		prometheus.CartOperationsTotal.WithLabelValues("persist", "error").Inc()
		return
	}
	if err := uc.store.Set(ctx, uc.key, data); err != nil {
		uc.log.Error("failed to persist cart, in-memory state stays authoritative", "error", err)
		prometheus.CartOperationsTotal.WithLabelValues("persist", "error").Inc()
		return
	}
	prometheus.CartOperationsTotal.WithLabelValues("persist", "ok").Inc()
}
