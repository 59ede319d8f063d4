package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/llm"
	"github.com/fachebot/chat-recap/internal/logger"
	"github.com/fachebot/chat-recap/internal/model"
	"github.com/fachebot/chat-recap/internal/summarizer"
)

// messageStore 消息存取（便于测试注入 mock）
type messageStore interface {
	Create(ctx context.Context, data *model.MessageData) (*ent.Message, error)
	GetByConversation(ctx context.Context, conversationID string) ([]*ent.Message, error)
	GetBySender(ctx context.Context, senderID string) ([]*ent.Message, error)
	DeleteByConversation(ctx context.Context, conversationID string) (int, error)
}

// summaryStore 摘要存取（便于测试注入 mock）
type summaryStore interface {
	CreateOrUpdate(ctx context.Context, data *model.SummaryData) (*ent.Summary, error)
	GetByConversation(ctx context.Context, conversationID string) ([]*ent.Summary, error)
}

// ruleSummarizer 规则引擎总结（便于测试注入 mock）
type ruleSummarizer interface {
	Summarize(ctx context.Context, conversationID string) (*summarizer.Result, error)
}

// llmSummarizer LLM 总结（便于测试注入 mock）
type llmSummarizer interface {
	SummarizeConversation(ctx context.Context, messages []llm.ChatMessage) (string, error)
}

type Handler struct {
	messageModel messageStore
	summaryModel summaryStore
	rules        ruleSummarizer
	llmClient    llmSummarizer
}

// NewHandler 创建路由处理器，llmClient 为 nil 表示未启用 LLM 引擎
func NewHandler(messageModel *model.MessageModel, summaryModel *model.SummaryModel, rules *summarizer.Summarizer, llmClient *llm.Client) *Handler {
	h := &Handler{
		messageModel: messageModel,
		summaryModel: summaryModel,
		rules:        rules,
	}
	if llmClient != nil {
		h.llmClient = llmClient
	}
	return h
}

// Chats 创建消息
// POST /chats
func (h *Handler) Chats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message cannot be empty")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "user id cannot be empty")
		return
	}

	// 未指定会话ID时自动生成
	if req.ConversationID == "" {
		req.ConversationID = fmt.Sprintf("conv_%d", time.Now().UnixNano())
	}

	msg, err := h.messageModel.Create(r.Context(), &model.MessageData{
		ConversationID: req.ConversationID,
		SenderID:       req.UserID,
		Text:           req.Message,
		SentAt:         time.Now().UTC(),
	})
	if err != nil {
		logger.Errorf("[API] 创建消息失败: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create message")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse(msg))
}

// Conversation 查询或删除会话
// GET /chats/{conversation_id}
// DELETE /chats/{conversation_id}
// GET /chats/{conversation_id}/summaries
func (h *Handler) Conversation(w http.ResponseWriter, r *http.Request) {
	conversationID := strings.TrimPrefix(r.URL.Path, "/chats/")
	if rest, ok := strings.CutSuffix(conversationID, "/summaries"); ok {
		h.conversationSummaries(w, r, rest)
		return
	}
	if conversationID == "" || strings.Contains(conversationID, "/") {
		writeError(w, http.StatusBadRequest, "conversation id cannot be empty")
		return
	}

	switch r.Method {
	case http.MethodGet:
		messages, err := h.messageModel.GetByConversation(r.Context(), conversationID)
		if err != nil {
			logger.Errorf("[API] 查询会话失败: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to get conversation")
			return
		}
		if len(messages) == 0 {
			writeError(w, http.StatusNotFound, "conversation not found")
			return
		}
		writeJSON(w, http.StatusOK, messageResponses(messages))

	case http.MethodDelete:
		deleted, err := h.messageModel.DeleteByConversation(r.Context(), conversationID)
		if err != nil {
			logger.Errorf("[API] 删除会话失败: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to delete conversation")
			return
		}
		if deleted == 0 {
			writeError(w, http.StatusNotFound, "conversation not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "conversation deleted successfully"})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// conversationSummaries 查询会话的历史摘要，按摘要日期排序
func (h *Handler) conversationSummaries(w http.ResponseWriter, r *http.Request, conversationID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if conversationID == "" || strings.Contains(conversationID, "/") {
		writeError(w, http.StatusBadRequest, "conversation id cannot be empty")
		return
	}

	summaries, err := h.summaryModel.GetByConversation(r.Context(), conversationID)
	if err != nil {
		logger.Errorf("[API] 查询历史摘要失败: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get summaries")
		return
	}
	if len(summaries) == 0 {
		writeError(w, http.StatusNotFound, "no summaries found")
		return
	}

	responses := make([]SummaryRecordResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = SummaryRecordResponse{
			ConversationID: s.ConversationID,
			Engine:         s.Engine,
			Summary:        s.Content,
			SummaryDate:    s.SummaryDate.UTC().Format("2006-01-02"),
		}
	}
	writeJSON(w, http.StatusOK, responses)
}

// UserChats 查询用户的全部消息
// GET /users/{user_id}/chats
func (h *Handler) UserChats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/users/")
	userID, ok := strings.CutSuffix(rest, "/chats")
	if !ok || userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	messages, err := h.messageModel.GetBySender(r.Context(), userID)
	if err != nil {
		logger.Errorf("[API] 查询用户消息失败: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get user messages")
		return
	}
	writeJSON(w, http.StatusOK, messageResponses(messages))
}

// Summarize 生成会话总结
// POST /summarize
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ConversationID) == "" {
		writeError(w, http.StatusBadRequest, "conversation id cannot be empty")
		return
	}
	if req.Engine == "" {
		req.Engine = model.EngineRules
	}

	resp := SummaryResponse{
		ConversationID: req.ConversationID,
		Engine:         req.Engine,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	switch req.Engine {
	case model.EngineRules:
		result, err := h.rules.Summarize(r.Context(), req.ConversationID)
		if err != nil {
			if errors.Is(err, summarizer.ErrNoContent) {
				writeError(w, http.StatusBadRequest, summarizer.ErrNoContent.Error())
				return
			}
			logger.Errorf("[API] 规则引擎总结失败: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create summary")
			return
		}
		resp.Summary = result.Summary
		resp.Facts = result.Facts

	case model.EngineLLM:
		if h.llmClient == nil {
			writeError(w, http.StatusBadRequest, "llm engine is not enabled")
			return
		}
		summary, err := h.summarizeWithLLM(r, req.ConversationID)
		if err != nil {
			if errors.Is(err, summarizer.ErrNoContent) {
				writeError(w, http.StatusBadRequest, summarizer.ErrNoContent.Error())
				return
			}
			logger.Errorf("[API] LLM 总结失败: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create summary")
			return
		}
		resp.Summary = summary

	default:
		writeError(w, http.StatusBadRequest, "unknown engine: "+req.Engine)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// summarizeWithLLM 取全量消息转交 LLM 引擎并落库
func (h *Handler) summarizeWithLLM(r *http.Request, conversationID string) (string, error) {
	messages, err := h.messageModel.GetByConversation(r.Context(), conversationID)
	if err != nil {
		return "", fmt.Errorf("获取消息失败: %w", err)
	}
	if len(messages) == 0 {
		return "", summarizer.ErrNoContent
	}

	chatMsgs := make([]llm.ChatMessage, len(messages))
	for i, msg := range messages {
		chatMsgs[i] = llm.ChatMessage{SenderID: msg.SenderID, Text: msg.Text}
	}

	summary, err := h.llmClient.SummarizeConversation(r.Context(), chatMsgs)
	if err != nil {
		return "", err
	}

	if h.summaryModel != nil {
		_, err = h.summaryModel.CreateOrUpdate(r.Context(), &model.SummaryData{
			ConversationID: conversationID,
			Engine:         model.EngineLLM,
			SummaryDate:    time.Now().UTC(),
			Content:        summary,
		})
		if err != nil {
			logger.Errorf("[API] 保存 LLM 摘要失败: %v", err)
		}
	}
	return summary, nil
}

// Health 健康检查
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func messageResponse(msg *ent.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		UserID:         msg.SenderID,
		Message:        msg.Text,
		Timestamp:      msg.SentAt.UTC().Format(time.RFC3339),
	}
}

func messageResponses(messages []*ent.Message) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = messageResponse(msg)
	}
	return responses
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
