package domain

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// OrderLog is the append-only history of submitted orders. Every append
// writes the whole sequence back through the store before returning, so an
// order is durable the moment Append returns. Concurrent processes sharing
// one store are not coordinated, the later write wins; Append detects and
// logs that case but does not resolve it.
type OrderLog struct {
	store  Store
	orders []Order
	mu     sync.Mutex
}

func NewOrderLog(store Store) *OrderLog {
	ol := &OrderLog{store: store}
	ol.orders = ol.load()
	return ol
}

func (ol *OrderLog) load() []Order {
	data, err := ol.store.Read()
	if err != nil {
		log.Warn().Err(err).Msg("Error reading order log, starting empty")
		return nil
	}

	if len(data) == 0 {
		return nil
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Warn().Err(err).Msg("Order log is corrupted, starting empty")
		return nil
	}

	return orders
}

func (ol *OrderLog) Append(order Order) error {
	ol.mu.Lock()
	defer ol.mu.Unlock()

	if stored := ol.load(); len(stored) != len(ol.orders) {
		log.Warn().Int("stored", len(stored)).Int("known", len(ol.orders)).
			Msg("Order log changed outside this process, last write wins")
	}

	orders := append(ol.orders, order)
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshalling order log: %w", err)
	}

	if err := ol.store.Write(data); err != nil {
		return fmt.Errorf("writing order log: %w", err)
	}

	ol.orders = orders
	log.Info().Str("order_id", order.Id).Str("table_number", order.TableNumber).Msg("Order appended to log")
	return nil
}

func (ol *OrderLog) Orders() []Order {
	ol.mu.Lock()
	defer ol.mu.Unlock()

	orders := make([]Order, len(ol.orders))
	copy(orders, ol.orders)
	return orders
}

// Pending filters to orders still waiting for payment, in insertion order.
func (ol *OrderLog) Pending() []Order {
	ol.mu.Lock()
	defer ol.mu.Unlock()

	var pending []Order
	for _, order := range ol.orders {
		if order.Status == Pending {
			pending = append(pending, order)
		}
	}

	return pending
}
