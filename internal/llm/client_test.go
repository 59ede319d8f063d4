package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fachebot/chat-recap/internal/config"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockOpenAIClient 模拟 OpenAI 客户端
type mockOpenAIClient struct {
	mock.Mock
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// newTestClient 创建用于测试的客户端，注入 mock
func newTestClient(cfg *config.LLM, mockClient openAIClientInterface) *Client {
	maxInputTokens := cfg.MaxTokens - 1000
	if maxInputTokens <= 0 {
		maxInputTokens = 6000
	}
	return &Client{
		config:         cfg,
		openaiClient:   mockClient,
		maxInputTokens: maxInputTokens,
	}
}

func testConfig() *config.LLM {
	return &config.LLM{
		Enable:    true,
		BaseURL:   "https://example.com/v1",
		APIKey:    "test-key",
		Model:     "gpt-4o-mini",
		MaxTokens: 8000,
	}
}

func completionResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestTranscript(t *testing.T) {
	msgs := []ChatMessage{
		{SenderID: "alice", Text: "hi bob"},
		{SenderID: "bob", Text: "hello alice"},
	}
	assert.Equal(t, "alice: hi bob\nbob: hello alice", transcript(msgs))
}

func TestTruncateMessages(t *testing.T) {
	t.Run("预算内不截断", func(t *testing.T) {
		msgs := []ChatMessage{
			{SenderID: "a", Text: "one"},
			{SenderID: "b", Text: "two"},
		}
		assert.Equal(t, msgs, truncateMessages(msgs, 1000))
	})

	t.Run("超出预算保留最近消息", func(t *testing.T) {
		long := strings.Repeat("word ", 200)
		msgs := []ChatMessage{
			{SenderID: "a", Text: long},
			{SenderID: "b", Text: long},
			{SenderID: "c", Text: "short"},
		}
		kept := truncateMessages(msgs, 300)
		if assert.NotEmpty(t, kept) {
			assert.Equal(t, "c", kept[len(kept)-1].SenderID)
			assert.Less(t, len(kept), len(msgs))
		}
	})
}

func TestSummarizeConversation_EmptyMessages(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	c := newTestClient(testConfig(), mockClient)

	got, err := c.SummarizeConversation(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
	mockClient.AssertNotCalled(t, "CreateChatCompletion")
}

func TestSummarizeConversation_Success(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	mockClient.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		if len(req.Messages) != 2 {
			return false
		}
		return req.Messages[0].Role == openai.ChatMessageRoleSystem &&
			strings.Contains(req.Messages[1].Content, "alice: hi bob")
	})).Return(completionResponse("  Alice and Bob exchanged greetings.  "), nil)

	c := newTestClient(testConfig(), mockClient)
	got, err := c.SummarizeConversation(context.Background(), []ChatMessage{
		{SenderID: "alice", Text: "hi bob"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Alice and Bob exchanged greetings.", got)
	mockClient.AssertExpectations(t)
}

func TestSummarizeConversation_APIError(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("api error"))

	c := newTestClient(testConfig(), mockClient)
	got, err := c.SummarizeConversation(context.Background(), []ChatMessage{
		{SenderID: "alice", Text: "hi"},
	})
	assert.Error(t, err)
	assert.Equal(t, "", got)
	assert.Contains(t, err.Error(), "调用 LLM API 失败")
}

func TestSummarizeConversation_EmptyChoices(t *testing.T) {
	mockClient := &mockOpenAIClient{}
	mockClient.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, nil)

	c := newTestClient(testConfig(), mockClient)
	_, err := c.SummarizeConversation(context.Background(), []ChatMessage{
		{SenderID: "alice", Text: "hi"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "返回空结果")
}
