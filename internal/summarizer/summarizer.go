package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/logger"
	"github.com/fachebot/chat-recap/internal/model"
)

// messageProvider 获取会话消息（便于测试注入 mock）
type messageProvider interface {
	GetByConversation(ctx context.Context, conversationID string) ([]*ent.Message, error)
	GetByConversationAndDateRange(ctx context.Context, conversationID string, startTime, endTime time.Time) ([]*ent.Message, error)
}

// summaryWriter 摘要落库（便于测试注入 mock）
type summaryWriter interface {
	CreateOrUpdate(ctx context.Context, data *model.SummaryData) (*ent.Summary, error)
}

type Summarizer struct {
	messageModel messageProvider
	summaryModel summaryWriter
}

func NewSummarizer(messageModel *model.MessageModel, summaryModel *model.SummaryModel) *Summarizer {
	return &Summarizer{
		messageModel: messageModel,
		summaryModel: summaryModel,
	}
}

// Result 一次总结的产出：叙述性总结与结构化事实
type Result struct {
	Summary string
	Facts   *ExtractedFacts
}

// SummarizeMessages 纯计算入口：消息序列 → 总结
// 不做任何 I/O，相同输入必产生逐字节相同的输出
func SummarizeMessages(messages []ChatMessage) (*Result, error) {
	facts, err := ExtractFacts(messages)
	if err != nil {
		return nil, err
	}
	return &Result{
		Summary: ComposeNarrative(facts),
		Facts:   facts,
	}, nil
}

// Summarize 对会话全量消息生成总结并落库
// 会话不存在或无消息时返回 ErrNoContent
func (s *Summarizer) Summarize(ctx context.Context, conversationID string) (*Result, error) {
	messages, err := s.messageModel.GetByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("获取消息失败: %w", err)
	}

	result, err := SummarizeMessages(chatMessagesFromEnt(messages))
	if err != nil {
		return nil, err
	}

	logger.Infof("[Summarizer] 会话 %s 总结完成，共 %d 条消息", conversationID, len(messages))
	s.saveSummary(ctx, conversationID, time.Now().UTC(), result.Summary)
	return result, nil
}

// SummarizeRange 对会话在时间区间内的消息生成总结并落库，摘要日期取区间最后一天
func (s *Summarizer) SummarizeRange(ctx context.Context, conversationID string, startTime, endTime time.Time) (*Result, error) {
	messages, err := s.messageModel.GetByConversationAndDateRange(ctx, conversationID, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("获取消息失败: %w", err)
	}

	result, err := SummarizeMessages(chatMessagesFromEnt(messages))
	if err != nil {
		return nil, err
	}

	logger.Infof("[Summarizer] 会话 %s 区间 %s ~ %s 总结完成",
		conversationID, startTime.Format("2006-01-02"), endTime.Format("2006-01-02"))
	s.saveSummary(ctx, conversationID, endTime.AddDate(0, 0, -1), result.Summary)
	return result, nil
}

// saveSummary 摘要落库，失败仅记录日志，不影响总结结果返回
func (s *Summarizer) saveSummary(ctx context.Context, conversationID string, summaryDate time.Time, content string) {
	if s.summaryModel == nil {
		return
	}
	_, err := s.summaryModel.CreateOrUpdate(ctx, &model.SummaryData{
		ConversationID: conversationID,
		Engine:         model.EngineRules,
		SummaryDate:    summaryDate,
		Content:        content,
	})
	if err != nil {
		logger.Errorf("[Summarizer] 保存摘要失败: %v", err)
	}
}

// chatMessagesFromEnt 将存储层消息转换为引擎输入
func chatMessagesFromEnt(messages []*ent.Message) []ChatMessage {
	chatMsgs := make([]ChatMessage, len(messages))
	for i, msg := range messages {
		chatMsgs[i] = ChatMessage{
			SenderID: msg.SenderID,
			Text:     msg.Text,
			SentAt:   msg.SentAt,
		}
	}
	return chatMsgs
}
