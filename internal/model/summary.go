package model

import (
	"context"
	"time"

	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/ent/summary"
)

// 摘要引擎标识
const (
	EngineRules = "rules"
	EngineLLM   = "llm"
)

type SummaryModel struct {
	client *ent.SummaryClient
}

func NewSummaryModel(client *ent.SummaryClient) *SummaryModel {
	return &SummaryModel{client: client}
}

type SummaryData struct {
	ConversationID string
	Engine         string
	SummaryDate    time.Time
	Content        string
}

// Create 创建摘要
func (m *SummaryModel) Create(ctx context.Context, data *SummaryData) (*ent.Summary, error) {
	return m.client.Create().
		SetConversationID(data.ConversationID).
		SetEngine(data.Engine).
		SetSummaryDate(data.SummaryDate).
		SetContent(data.Content).
		Save(ctx)
}

// getByConversationEngineAndDate 按会话、引擎、摘要日期（同一天）查询一条摘要
func (m *SummaryModel) getByConversationEngineAndDate(ctx context.Context, conversationID, engine string, summaryDate time.Time) (*ent.Summary, error) {
	startOfDay := time.Date(summaryDate.Year(), summaryDate.Month(), summaryDate.Day(), 0, 0, 0, 0, summaryDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)
	return m.client.Query().
		Where(
			summary.ConversationIDEQ(conversationID),
			summary.EngineEQ(engine),
			summary.SummaryDateGTE(startOfDay),
			summary.SummaryDateLT(endOfDay),
		).
		First(ctx)
}

// CreateOrUpdate 创建或更新摘要，同一会话、同一引擎、同一日期不重复插入，已存在则更新内容
func (m *SummaryModel) CreateOrUpdate(ctx context.Context, data *SummaryData) (*ent.Summary, error) {
	existing, err := m.getByConversationEngineAndDate(ctx, data.ConversationID, data.Engine, data.SummaryDate)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return m.client.UpdateOneID(existing.ID).
			SetContent(data.Content).
			Save(ctx)
	}
	return m.Create(ctx, data)
}

// GetByConversation 查询会话的全部摘要，按摘要日期排序
func (m *SummaryModel) GetByConversation(ctx context.Context, conversationID string) ([]*ent.Summary, error) {
	return m.client.Query().
		Where(summary.ConversationIDEQ(conversationID)).
		Order(summary.BySummaryDate()).
		All(ctx)
}
