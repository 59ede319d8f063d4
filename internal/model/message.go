package model

import (
	"context"
	"sort"
	"time"

	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/ent/message"
)

type MessageModel struct {
	client *ent.MessageClient
}

func NewMessageModel(client *ent.MessageClient) *MessageModel {
	return &MessageModel{client: client}
}

type MessageData struct {
	ConversationID string
	SenderID       string
	Text           string
	SentAt         time.Time
}

// Create 创建消息
func (m *MessageModel) Create(ctx context.Context, data *MessageData) (*ent.Message, error) {
	return m.client.Create().
		SetConversationID(data.ConversationID).
		SetSenderID(data.SenderID).
		SetText(data.Text).
		SetSentAt(data.SentAt).
		Save(ctx)
}

// GetByConversation 按存储顺序查询会话内全部消息
func (m *MessageModel) GetByConversation(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	return m.client.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(message.BySentAt(), message.ByID()).
		All(ctx)
}

// GetBySender 查询指定用户发送的全部消息
func (m *MessageModel) GetBySender(ctx context.Context, senderID string) ([]*ent.Message, error) {
	return m.client.Query().
		Where(message.SenderIDEQ(senderID)).
		Order(message.BySentAt(), message.ByID()).
		All(ctx)
}

// GetByConversationAndDateRange 查询会话在时间区间内的消息
func (m *MessageModel) GetByConversationAndDateRange(ctx context.Context, conversationID string, startTime, endTime time.Time) ([]*ent.Message, error) {
	return m.client.Query().
		Where(
			message.ConversationIDEQ(conversationID),
			message.SentAtGTE(startTime),
			message.SentAtLT(endTime),
		).
		Order(message.BySentAt(), message.ByID()).
		All(ctx)
}

// GetConversationIDsByDateRange 查询时间区间内有消息的所有会话ID
func (m *MessageModel) GetConversationIDsByDateRange(ctx context.Context, startTime, endTime time.Time) ([]string, error) {
	messages, err := m.client.Query().
		Where(
			message.SentAtGTE(startTime),
			message.SentAtLT(endTime),
		).
		Select(message.FieldConversationID).
		All(ctx)
	if err != nil {
		return nil, err
	}

	// 使用 map 去重，排序保证速览输出稳定
	idMap := make(map[string]bool)
	for _, msg := range messages {
		idMap[msg.ConversationID] = true
	}

	ids := make([]string, 0, len(idMap))
	for id := range idMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// DeleteByConversation 删除会话及其全部消息，返回删除数量
func (m *MessageModel) DeleteByConversation(ctx context.Context, conversationID string) (int, error) {
	return m.client.Delete().
		Where(message.ConversationIDEQ(conversationID)).
		Exec(ctx)
}

// DeleteBefore 删除指定日期之前的消息
func (m *MessageModel) DeleteBefore(ctx context.Context, cutoffDate time.Time) (int, error) {
	return m.client.Delete().
		Where(message.SentAtLT(cutoffDate)).
		Exec(ctx)
}
