package memory

import (
	"sync"

	"superapp/pkg/logger"
	"superapp/pkg/models"
	"superapp/storage"
)

type conversationRepo struct {
	mu        sync.RWMutex
	messages  []models.Message
	isLoading bool

	events broadcaster
	log    logger.ILogger
}

func NewConversationRepo(log logger.ILogger) storage.IConversationStorage {
	return &conversationRepo{
		messages: []models.Message{},
		log:      log.With(logger.String("store", string(storage.StoreConversation))),
	}
}

func (r *conversationRepo) AddMessage(msg models.Message) {
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	r.mu.Unlock()

	r.log.Debug("message appended", logger.String("id", msg.ID), logger.String("sender", string(msg.Sender)))
	r.events.notify(storage.Event{Store: storage.StoreConversation, Kind: storage.EventAppended, ID: msg.ID})
}

func (r *conversationRepo) ClearMessages() {
	r.mu.Lock()
	n := len(r.messages)
	r.messages = []models.Message{}
	r.mu.Unlock()

	r.log.Debug("messages cleared", logger.Int("count", n))
	r.events.notify(storage.Event{Store: storage.StoreConversation, Kind: storage.EventCleared})
}

func (r *conversationRepo) Messages() []models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Message, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *conversationRepo) IsLoading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isLoading
}

func (r *conversationRepo) SetLoading(loading bool) {
	r.mu.Lock()
	changed := r.isLoading != loading
	r.isLoading = loading
	r.mu.Unlock()

	if changed {
		r.events.notify(storage.Event{Store: storage.StoreConversation, Kind: storage.EventLoading})
	}
}

func (r *conversationRepo) Subscribe(fn storage.Listener) func() {
	return r.events.subscribe(fn)
}
