package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/chat-recap/internal/config"
	"github.com/fachebot/chat-recap/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// openAIClientInterface 定义 OpenAI 客户端接口，便于测试
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	config         *config.LLM
	openaiClient   openAIClientInterface
	maxInputTokens int
}

// NewClient 创建 LLM 客户端，transport 非空时走代理
func NewClient(cfg *config.LLM, transport *http.Transport) *Client {
	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL
	if transport != nil {
		openaiConfig.HTTPClient = &http.Client{Transport: transport}
	}

	return &Client{
		config:         cfg,
		openaiClient:   openai.NewClientWithConfig(openaiConfig),
		maxInputTokens: cfg.MaxTokens - 1000, // 预留 1000 tokens 给 system prompt 和输出
	}
}

// ChatMessage 会话单条消息
type ChatMessage struct {
	SenderID string
	Text     string
}

// estimateTokens 估算文本的 token 数量（词数*1.3，下限为字符数/4）
func estimateTokens(text string) int {
	tokens := int(float64(len(strings.Fields(text))) * 1.3)
	if tokens < len(text)/4 {
		tokens = len(text) / 4
	}
	return tokens
}

// transcript 将消息拼为会话文本，每行 "sender_id: 消息内容"
func transcript(msgs []ChatMessage) string {
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = fmt.Sprintf("%s: %s", m.SenderID, m.Text)
	}
	return strings.Join(lines, "\n")
}

// truncateMessages 超出 token 预算时从尾部保留最近的消息
func truncateMessages(msgs []ChatMessage, maxTokens int) []ChatMessage {
	total := 0
	for i := len(msgs) - 1; i >= 0; i-- {
		total += estimateTokens(fmt.Sprintf("%s: %s", msgs[i].SenderID, msgs[i].Text))
		if total > maxTokens {
			return msgs[i+1:]
		}
	}
	return msgs
}

// SummarizeConversation 调用 LLM 生成会话的自然语言总结
func (c *Client) SummarizeConversation(ctx context.Context, messages []ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", nil
	}

	kept := truncateMessages(messages, c.maxInputTokens)
	if len(kept) < len(messages) {
		logger.Infof("[LLM] 会话过长，截断为最近 %d/%d 条消息", len(kept), len(messages))
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful assistant that summarizes conversations.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Please summarize this conversation:\n" + transcript(kept),
			},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("调用 LLM API 失败: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM API 返回空结果")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
