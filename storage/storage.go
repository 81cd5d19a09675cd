package storage

import (
	"superapp/pkg/models"
)

type IStorage interface {
	Conversation() IConversationStorage
	Order() IOrderStorage
	Trip() ITripStorage
}

// Store operations are total: lookups report absence with a bool and
// mutations of unknown entities are silent no-ops.

type IConversationStorage interface {
	AddMessage(msg models.Message)
	ClearMessages()
	Messages() []models.Message
	IsLoading() bool
	SetLoading(loading bool)
	Subscribe(fn Listener) (unsubscribe func())
}

type IOrderStorage interface {
	CreateOrder(in models.OrderInput) models.Order
	UpdateOrderStatus(id string, status models.OrderStatus) bool
	GetOrderByID(id string) (models.Order, bool)
	CurrentOrder() (models.Order, bool)
	OrderHistory() []models.Order
	Orders() []models.Order
	Subscribe(fn Listener) (unsubscribe func())
}

type ITripStorage interface {
	CreateTrip(in models.TripInput) models.Trip
	UpdateTripStatus(id string, status models.TripStatus) bool
	GetTripByID(id string) (models.Trip, bool)
	CurrentTrip() (models.Trip, bool)
	TripHistory() []models.Trip
	Trips() []models.Trip
	Subscribe(fn Listener) (unsubscribe func())
}
