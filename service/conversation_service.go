package service

import (
	"sync"

	"superapp/pkg/logger"
	"superapp/pkg/models"
	"superapp/storage"
)

type ConversationService interface {
	AddMessage(msg models.Message)
	ClearMessages()
	Messages() []models.Message
	IsLoading() bool
	SetLoading(loading bool)
	// InitializeApp runs startup side effects once. It never touches store state.
	InitializeApp()
}

type conversationService struct {
	stg  storage.IConversationStorage
	log  logger.ILogger
	init sync.Once
}

func NewConversationService(stg storage.IStorage, log logger.ILogger) ConversationService {
	return &conversationService{
		stg: stg.Conversation(),
		log: log,
	}
}

func (s *conversationService) AddMessage(msg models.Message) {
	s.stg.AddMessage(msg)
}

func (s *conversationService) ClearMessages() {
	s.stg.ClearMessages()
	s.log.Info("conversation cleared")
}

func (s *conversationService) Messages() []models.Message {
	return s.stg.Messages()
}

func (s *conversationService) IsLoading() bool {
	return s.stg.IsLoading()
}

func (s *conversationService) SetLoading(loading bool) {
	s.stg.SetLoading(loading)
}

func (s *conversationService) InitializeApp() {
	s.init.Do(func() {
		s.log.Info("app initialized")
	})
}
