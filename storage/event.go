package storage

type StoreName string

const (
	StoreConversation StoreName = "conversation"
	StoreOrders       StoreName = "orders"
	StoreTrips        StoreName = "trips"
)

type EventKind string

const (
	EventCreated       EventKind = "created"
	EventStatusChanged EventKind = "status_changed"
	EventAppended      EventKind = "appended"
	EventCleared       EventKind = "cleared"
	EventLoading       EventKind = "loading"
)

// Event describes a mutation that already happened. ID is empty for
// collection-wide events.
type Event struct {
	Store StoreName `json:"store"`
	Kind  EventKind `json:"kind"`
	ID    string    `json:"id,omitempty"`
}

// Listener is called synchronously after the store has released its lock.
type Listener func(Event)
