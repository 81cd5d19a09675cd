package memory

import (
	"superapp/pkg/logger"
	"superapp/storage"

	"github.com/google/uuid"
)

type Options struct {
	DefaultDeliveryAddress string
	// NewID generates identifiers for entities created without one.
	// Defaults to random UUIDs.
	NewID func() string
}

// Store owns one instance of each in-memory store. Every store has its own lock.
type Store struct {
	conversation storage.IConversationStorage
	order        storage.IOrderStorage
	trip         storage.ITripStorage
}

func New(opts Options, log logger.ILogger) *Store {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.DefaultDeliveryAddress == "" {
		opts.DefaultDeliveryAddress = defaultDeliveryAddress
	}

	log.Info("in-memory stores ready")

	return &Store{
		conversation: NewConversationRepo(log),
		order:        NewOrderRepo(opts.NewID, opts.DefaultDeliveryAddress, log),
		trip:         NewTripRepo(opts.NewID, log),
	}
}

func (s *Store) Conversation() storage.IConversationStorage { return s.conversation }
func (s *Store) Order() storage.IOrderStorage               { return s.order }
func (s *Store) Trip() storage.ITripStorage                 { return s.trip }
