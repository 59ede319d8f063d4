package api

import "github.com/fachebot/chat-recap/internal/summarizer"

// ChatMessageRequest 创建消息请求
type ChatMessageRequest struct {
	UserID         string `json:"user_id"`
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatMessageResponse 消息响应
type ChatMessageResponse struct {
	ID             int    `json:"id"`
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
}

// SummaryRequest 总结请求，engine 缺省为 rules
type SummaryRequest struct {
	ConversationID string `json:"conversation_id"`
	Engine         string `json:"engine,omitempty"`
}

// SummaryRecordResponse 历史摘要记录
type SummaryRecordResponse struct {
	ConversationID string `json:"conversation_id"`
	Engine         string `json:"engine"`
	Summary        string `json:"summary"`
	SummaryDate    string `json:"summary_date"`
}

// SummaryResponse 总结响应，facts 仅规则引擎返回
type SummaryResponse struct {
	ConversationID string                     `json:"conversation_id"`
	Engine         string                     `json:"engine"`
	Summary        string                     `json:"summary"`
	Facts          *summarizer.ExtractedFacts `json:"facts,omitempty"`
	Timestamp      string                     `json:"timestamp"`
}
