package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/model"
	"github.com/stretchr/testify/assert"
)

// mockMessageProvider 用于测试的 messageProvider mock
type mockMessageProvider struct {
	messages []*ent.Message
	err      error
}

func (m *mockMessageProvider) GetByConversation(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

func (m *mockMessageProvider) GetByConversationAndDateRange(ctx context.Context, conversationID string, startTime, endTime time.Time) ([]*ent.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

// mockSummaryWriter 用于测试的 summaryWriter mock
type mockSummaryWriter struct {
	saved *model.SummaryData
	err   error
}

func (m *mockSummaryWriter) CreateOrUpdate(ctx context.Context, data *model.SummaryData) (*ent.Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.saved = data
	return &ent.Summary{}, nil
}

func mustEntMessage(senderID, text string, sentAt time.Time) *ent.Message {
	return &ent.Message{
		ConversationID: "conv_1",
		SenderID:       senderID,
		Text:           text,
		SentAt:         sentAt,
	}
}

func TestSummarize_EmptyConversation(t *testing.T) {
	s := &Summarizer{
		messageModel: &mockMessageProvider{messages: nil},
	}

	result, err := s.Summarize(context.Background(), "conv_1")
	assert.ErrorIs(t, err, ErrNoContent)
	assert.Nil(t, result)
}

func TestSummarize_MessageFetchError(t *testing.T) {
	s := &Summarizer{
		messageModel: &mockMessageProvider{err: errors.New("db error")},
	}

	result, err := s.Summarize(context.Background(), "conv_1")
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "获取消息失败")
}

func TestSummarize_Success(t *testing.T) {
	now := time.Now()
	writer := &mockSummaryWriter{}
	s := &Summarizer{
		messageModel: &mockMessageProvider{
			messages: []*ent.Message{
				mustEntMessage("alice", "hi bob", now),
				mustEntMessage("bob", "hello alice", now),
			},
		},
		summaryModel: writer,
	}

	result, err := s.Summarize(context.Background(), "conv_1")
	assert.NoError(t, err)
	if !assert.NotNil(t, result) {
		return
	}
	assert.Equal(t, "Bob and Alice exchanged greetings.", result.Summary)
	assert.Equal(t, []string{"alice", "bob"}, result.Facts.Participants)

	// 摘要已落库
	if assert.NotNil(t, writer.saved) {
		assert.Equal(t, "conv_1", writer.saved.ConversationID)
		assert.Equal(t, model.EngineRules, writer.saved.Engine)
		assert.Equal(t, result.Summary, writer.saved.Content)
	}
}

func TestSummarize_SaveErrorDoesNotFail(t *testing.T) {
	now := time.Now()
	s := &Summarizer{
		messageModel: &mockMessageProvider{
			messages: []*ent.Message{mustEntMessage("a", "zzz", now)},
		},
		summaryModel: &mockSummaryWriter{err: errors.New("db error")},
	}

	result, err := s.Summarize(context.Background(), "conv_1")
	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestSummarizeRange_SummaryDateIsLastCoveredDay(t *testing.T) {
	now := time.Now()
	writer := &mockSummaryWriter{}
	s := &Summarizer{
		messageModel: &mockMessageProvider{
			messages: []*ent.Message{mustEntMessage("a", "zzz", now)},
		},
		summaryModel: writer,
	}

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)
	result, err := s.SummarizeRange(context.Background(), "conv_1", start, end)
	assert.NoError(t, err)
	assert.NotNil(t, result)

	if assert.NotNil(t, writer.saved) {
		assert.Equal(t, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC), writer.saved.SummaryDate)
	}
}

func TestSummarizeMessages_Deterministic(t *testing.T) {
	messages := []ChatMessage{
		mustChatMessage("alice", "hi bob, let's meet at Central Cafe at 5pm"),
		mustChatMessage("bob", "hello alice, i am coming"),
	}
	first, err := SummarizeMessages(messages)
	assert.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := SummarizeMessages(messages)
		assert.NoError(t, err)
		assert.Equal(t, first.Summary, again.Summary)
	}
}
