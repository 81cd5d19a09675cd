package service

import (
	"superapp/pkg/logger"
	"superapp/storage"
)

type IServiceManager interface {
	Conversation() ConversationService
	Order() OrderService
	Trip() TripService
}

type service struct {
	conversationService ConversationService
	orderService        OrderService
	tripService         TripService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	return &service{
		conversationService: NewConversationService(stg, log),
		orderService:        NewOrderService(stg, log),
		tripService:         NewTripService(stg, log),
	}
}

func (s *service) Conversation() ConversationService {
	return s.conversationService
}

func (s *service) Order() OrderService {
	return s.orderService
}

func (s *service) Trip() TripService {
	return s.tripService
}
