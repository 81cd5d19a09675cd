package service

import (
	"superapp/pkg/logger"
	"superapp/pkg/models"
	"superapp/storage"
)

type OrderService interface {
	CreateOrder(in models.OrderInput) models.Order
	UpdateOrderStatus(id string, status models.OrderStatus) bool
	GetOrderByID(id string) (models.Order, bool)
	CurrentOrder() (models.Order, bool)
	OrderHistory() []models.Order
	Orders() []models.Order
}

type orderService struct {
	stg storage.IOrderStorage
	log logger.ILogger
}

func NewOrderService(stg storage.IStorage, log logger.ILogger) OrderService {
	return &orderService{
		stg: stg.Order(),
		log: log,
	}
}

// CreateOrder does not enforce a single active order; CurrentOrder picks the
// first active one by creation order.
func (s *orderService) CreateOrder(in models.OrderInput) models.Order {
	if _, busy := s.stg.CurrentOrder(); busy && !in.Status.IsTerminal() {
		s.log.Debug("creating order while another one is active", logger.String("restaurant", in.Restaurant))
	}
	return s.stg.CreateOrder(in)
}

func (s *orderService) UpdateOrderStatus(id string, status models.OrderStatus) bool {
	return s.stg.UpdateOrderStatus(id, status)
}

func (s *orderService) GetOrderByID(id string) (models.Order, bool) {
	return s.stg.GetOrderByID(id)
}

func (s *orderService) CurrentOrder() (models.Order, bool) {
	return s.stg.CurrentOrder()
}

func (s *orderService) OrderHistory() []models.Order {
	return s.stg.OrderHistory()
}

func (s *orderService) Orders() []models.Order {
	return s.stg.Orders()
}
