package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"superapp/pkg/models"
	"superapp/storage"
)

func message(id, text string) models.Message {
	return models.Message{
		ID:        id,
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Type:      models.MessageTypeText,
	}
}

func TestAddMessagePreservesOrder(t *testing.T) {
	conv := newStore(t).Conversation()

	conv.AddMessage(message("1", "hi"))
	conv.AddMessage(message("2", "find me jollof"))
	conv.AddMessage(message("3", "thanks"))

	msgs := conv.Messages()
	assert.Len(t, msgs, 3)
	assert.Equal(t, "1", msgs[0].ID)
	assert.Equal(t, "2", msgs[1].ID)
	assert.Equal(t, "3", msgs[2].ID)
}

func TestClearThenAdd(t *testing.T) {
	conv := newStore(t).Conversation()
	conv.AddMessage(message("1", "old"))
	conv.AddMessage(message("2", "older"))

	conv.ClearMessages()
	m := message("3", "fresh")
	conv.AddMessage(m)

	assert.Equal(t, []models.Message{m}, conv.Messages())
}

func TestMessagesSnapshot(t *testing.T) {
	conv := newStore(t).Conversation()
	conv.AddMessage(message("1", "hi"))

	snap := conv.Messages()
	snap[0].Text = "changed"

	assert.Equal(t, "hi", conv.Messages()[0].Text)
	assert.NotNil(t, newStore(t).Conversation().Messages())
}

func TestLoadingFlag(t *testing.T) {
	conv := newStore(t).Conversation()

	var events int
	conv.Subscribe(func(ev storage.Event) {
		if ev.Kind == storage.EventLoading {
			events++
		}
	})

	assert.False(t, conv.IsLoading())
	conv.SetLoading(true)
	assert.True(t, conv.IsLoading())
	conv.SetLoading(true)
	conv.SetLoading(false)
	assert.False(t, conv.IsLoading())

	assert.Equal(t, 2, events)
}

func TestConversationEvents(t *testing.T) {
	conv := newStore(t).Conversation()

	var got []storage.Event
	conv.Subscribe(func(ev storage.Event) { got = append(got, ev) })
	conv.Subscribe(nil)

	conv.AddMessage(message("1", "hi"))
	conv.ClearMessages()

	assert.Equal(t, []storage.Event{
		{Store: storage.StoreConversation, Kind: storage.EventAppended, ID: "1"},
		{Store: storage.StoreConversation, Kind: storage.EventCleared},
	}, got)
}
