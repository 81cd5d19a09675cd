package memory

import (
	"sync"

	"superapp/pkg/logger"
	"superapp/pkg/models"
	"superapp/storage"
)

const defaultDeliveryAddress = models.DefaultDeliveryAddress

type orderRepo struct {
	mu     sync.RWMutex
	orders []*models.Order

	newID          func() string
	defaultAddress string

	events broadcaster
	log    logger.ILogger
}

func NewOrderRepo(newID func() string, defaultAddress string, log logger.ILogger) storage.IOrderStorage {
	return &orderRepo{
		newID:          newID,
		defaultAddress: defaultAddress,
		log:            log.With(logger.String("store", string(storage.StoreOrders))),
	}
}

func (r *orderRepo) CreateOrder(in models.OrderInput) models.Order {
	id := in.ID
	if id == "" {
		id = r.newID()
	}

	address := r.defaultAddress
	if in.DeliveryAddress != nil && *in.DeliveryAddress != "" {
		address = *in.DeliveryAddress
	}

	order := models.Order{
		ID:                id,
		Restaurant:        in.Restaurant,
		Items:             in.Items,
		Total:             in.Total,
		DeliveryTime:      in.DeliveryTime,
		Status:            in.Status,
		EstimatedDelivery: in.EstimatedDelivery,
		DeliveryAddress:   &address,
	}
	stored := order.Clone()

	r.mu.Lock()
	r.orders = append(r.orders, &stored)
	r.mu.Unlock()

	r.log.Info("order created",
		logger.String("id", id),
		logger.String("restaurant", order.Restaurant),
		logger.String("status", string(order.Status)),
		logger.Float64("total", order.Total),
	)
	r.events.notify(storage.Event{Store: storage.StoreOrders, Kind: storage.EventCreated, ID: id})

	return order.Clone()
}

func (r *orderRepo) UpdateOrderStatus(id string, status models.OrderStatus) bool {
	r.mu.Lock()
	order := r.find(id)
	if order != nil {
		order.Status = status
	}
	r.mu.Unlock()

	if order == nil {
		r.log.Debug("status update ignored, order not found", logger.String("id", id))
		return false
	}

	r.log.Info("order status updated", logger.String("id", id), logger.String("status", string(status)))
	r.events.notify(storage.Event{Store: storage.StoreOrders, Kind: storage.EventStatusChanged, ID: id})
	return true
}

func (r *orderRepo) GetOrderByID(id string) (models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if order := r.find(id); order != nil {
		return order.Clone(), true
	}
	return models.Order{}, false
}

// CurrentOrder returns the first order, in creation order, that is not delivered or cancelled.
func (r *orderRepo) CurrentOrder() (models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if !o.Status.IsTerminal() {
			return o.Clone(), true
		}
	}
	return models.Order{}, false
}

func (r *orderRepo) OrderHistory() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Order{}
	for _, o := range r.orders {
		if o.Status.IsTerminal() {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (r *orderRepo) Orders() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out
}

func (r *orderRepo) Subscribe(fn storage.Listener) func() {
	return r.events.subscribe(fn)
}

// find must be called with r.mu held.
func (r *orderRepo) find(id string) *models.Order {
	for _, o := range r.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}
