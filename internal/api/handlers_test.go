package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/llm"
	"github.com/fachebot/chat-recap/internal/model"
	"github.com/fachebot/chat-recap/internal/summarizer"
	"github.com/stretchr/testify/assert"
)

// mockMessageStore 用于测试的 messageStore mock
type mockMessageStore struct {
	messages []*ent.Message
	created  *model.MessageData
	deleted  int
	err      error
}

func (m *mockMessageStore) Create(ctx context.Context, data *model.MessageData) (*ent.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = data
	return &ent.Message{
		ID:             1,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Text:           data.Text,
		SentAt:         data.SentAt,
	}, nil
}

func (m *mockMessageStore) GetByConversation(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

func (m *mockMessageStore) GetBySender(ctx context.Context, senderID string) ([]*ent.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

func (m *mockMessageStore) DeleteByConversation(ctx context.Context, conversationID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.deleted, nil
}

// mockSummaryStore 用于测试的 summaryStore mock
type mockSummaryStore struct {
	saved     *model.SummaryData
	summaries []*ent.Summary
}

func (m *mockSummaryStore) CreateOrUpdate(ctx context.Context, data *model.SummaryData) (*ent.Summary, error) {
	m.saved = data
	return &ent.Summary{}, nil
}

func (m *mockSummaryStore) GetByConversation(ctx context.Context, conversationID string) ([]*ent.Summary, error) {
	return m.summaries, nil
}

// mockRuleSummarizer 用于测试的 ruleSummarizer mock
type mockRuleSummarizer struct {
	result *summarizer.Result
	err    error
}

func (m *mockRuleSummarizer) Summarize(ctx context.Context, conversationID string) (*summarizer.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockLLMSummarizer 用于测试的 llmSummarizer mock
type mockLLMSummarizer struct {
	summary string
	err     error
}

func (m *mockLLMSummarizer) SummarizeConversation(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.summary, nil
}

func doRequest(h http.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := &Handler{}
	rec := doRequest(h.Health, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestChats_CreateMessage(t *testing.T) {
	store := &mockMessageStore{}
	h := &Handler{messageModel: store}

	rec := doRequest(h.Chats, http.MethodPost, "/chats",
		`{"user_id":"alice","message":"hi bob","conversation_id":"conv_1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ChatMessageResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "conv_1", resp.ConversationID)
	assert.Equal(t, "alice", resp.UserID)
	assert.Equal(t, "hi bob", resp.Message)
}

func TestChats_GeneratesConversationID(t *testing.T) {
	store := &mockMessageStore{}
	h := &Handler{messageModel: store}

	rec := doRequest(h.Chats, http.MethodPost, "/chats",
		`{"user_id":"alice","message":"hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, store.created) {
		assert.True(t, strings.HasPrefix(store.created.ConversationID, "conv_"))
	}
}

func TestChats_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"空消息", `{"user_id":"alice","message":"  "}`},
		{"空用户ID", `{"user_id":"","message":"hi"}`},
		{"非法JSON", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{messageModel: &mockMessageStore{}}
			rec := doRequest(h.Chats, http.MethodPost, "/chats", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestChats_MethodNotAllowed(t *testing.T) {
	h := &Handler{messageModel: &mockMessageStore{}}
	rec := doRequest(h.Chats, http.MethodGet, "/chats", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConversation_Get(t *testing.T) {
	now := time.Now()
	store := &mockMessageStore{
		messages: []*ent.Message{
			{ID: 1, ConversationID: "conv_1", SenderID: "alice", Text: "hi bob", SentAt: now},
		},
	}
	h := &Handler{messageModel: store}

	rec := doRequest(h.Conversation, http.MethodGet, "/chats/conv_1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []ChatMessageResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.Len(t, resp, 1) {
		assert.Equal(t, "alice", resp[0].UserID)
	}
}

func TestConversation_GetNotFound(t *testing.T) {
	h := &Handler{messageModel: &mockMessageStore{}}
	rec := doRequest(h.Conversation, http.MethodGet, "/chats/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConversation_Delete(t *testing.T) {
	h := &Handler{messageModel: &mockMessageStore{deleted: 3}}
	rec := doRequest(h.Conversation, http.MethodDelete, "/chats/conv_1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConversation_DeleteNotFound(t *testing.T) {
	h := &Handler{messageModel: &mockMessageStore{deleted: 0}}
	rec := doRequest(h.Conversation, http.MethodDelete, "/chats/conv_1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConversation_Summaries(t *testing.T) {
	store := &mockSummaryStore{
		summaries: []*ent.Summary{
			{
				ConversationID: "conv_1",
				Engine:         model.EngineRules,
				Content:        "Bob and Alice exchanged greetings.",
				SummaryDate:    time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	h := &Handler{summaryModel: store}

	rec := doRequest(h.Conversation, http.MethodGet, "/chats/conv_1/summaries", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []SummaryRecordResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.Len(t, resp, 1) {
		assert.Equal(t, model.EngineRules, resp[0].Engine)
		assert.Equal(t, "2025-02-07", resp[0].SummaryDate)
		assert.Equal(t, "Bob and Alice exchanged greetings.", resp[0].Summary)
	}
}

func TestConversation_SummariesNotFound(t *testing.T) {
	h := &Handler{summaryModel: &mockSummaryStore{}}
	rec := doRequest(h.Conversation, http.MethodGet, "/chats/conv_1/summaries", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserChats(t *testing.T) {
	now := time.Now()
	store := &mockMessageStore{
		messages: []*ent.Message{
			{ID: 1, ConversationID: "conv_1", SenderID: "alice", Text: "hi", SentAt: now},
		},
	}
	h := &Handler{messageModel: store}

	rec := doRequest(h.UserChats, http.MethodGet, "/users/alice/chats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []ChatMessageResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestUserChats_BadPath(t *testing.T) {
	h := &Handler{messageModel: &mockMessageStore{}}
	rec := doRequest(h.UserChats, http.MethodGet, "/users/alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummarize_RulesEngine(t *testing.T) {
	facts := &summarizer.ExtractedFacts{Participants: []string{"alice", "bob"}}
	h := &Handler{
		rules: &mockRuleSummarizer{
			result: &summarizer.Result{Summary: "Bob and Alice exchanged greetings.", Facts: facts},
		},
	}

	rec := doRequest(h.Summarize, http.MethodPost, "/summarize", `{"conversation_id":"conv_1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp SummaryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.EngineRules, resp.Engine)
	assert.Equal(t, "Bob and Alice exchanged greetings.", resp.Summary)
	if assert.NotNil(t, resp.Facts) {
		assert.Equal(t, []string{"alice", "bob"}, resp.Facts.Participants)
	}
}

func TestSummarize_NoContent(t *testing.T) {
	h := &Handler{
		rules: &mockRuleSummarizer{err: summarizer.ErrNoContent},
	}

	rec := doRequest(h.Summarize, http.MethodPost, "/summarize", `{"conversation_id":"conv_1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no content to summarize")
}

func TestSummarize_MissingConversationID(t *testing.T) {
	h := &Handler{rules: &mockRuleSummarizer{}}
	rec := doRequest(h.Summarize, http.MethodPost, "/summarize", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarize_UnknownEngine(t *testing.T) {
	h := &Handler{rules: &mockRuleSummarizer{}}
	rec := doRequest(h.Summarize, http.MethodPost, "/summarize",
		`{"conversation_id":"conv_1","engine":"magic"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown engine")
}

func TestSummarize_LLMDisabled(t *testing.T) {
	h := &Handler{rules: &mockRuleSummarizer{}}
	rec := doRequest(h.Summarize, http.MethodPost, "/summarize",
		`{"conversation_id":"conv_1","engine":"llm"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not enabled")
}

func TestSummarize_LLMEngine(t *testing.T) {
	now := time.Now()
	store := &mockMessageStore{
		messages: []*ent.Message{
			{ID: 1, ConversationID: "conv_1", SenderID: "alice", Text: "hi bob", SentAt: now},
		},
	}
	summaryStore := &mockSummaryStore{}
	h := &Handler{
		messageModel: store,
		summaryModel: summaryStore,
		llmClient:    &mockLLMSummarizer{summary: "Alice greeted Bob."},
	}

	rec := doRequest(h.Summarize, http.MethodPost, "/summarize",
		`{"conversation_id":"conv_1","engine":"llm"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp SummaryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.EngineLLM, resp.Engine)
	assert.Equal(t, "Alice greeted Bob.", resp.Summary)
	assert.Nil(t, resp.Facts)

	// LLM 摘要同样落库
	if assert.NotNil(t, summaryStore.saved) {
		assert.Equal(t, model.EngineLLM, summaryStore.saved.Engine)
	}
}

func TestSummarize_LLMError(t *testing.T) {
	now := time.Now()
	store := &mockMessageStore{
		messages: []*ent.Message{
			{ID: 1, ConversationID: "conv_1", SenderID: "alice", Text: "hi", SentAt: now},
		},
	}
	h := &Handler{
		messageModel: store,
		llmClient:    &mockLLMSummarizer{err: errors.New("api error")},
	}

	rec := doRequest(h.Summarize, http.MethodPost, "/summarize",
		`{"conversation_id":"conv_1","engine":"llm"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
