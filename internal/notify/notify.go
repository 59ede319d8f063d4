package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fachebot/chat-recap/internal/config"
	"github.com/fachebot/chat-recap/internal/logger"
)

const (
	MaxContentLength = 10000 // 单次推送内容最大长度
)

type Notifier struct {
	webhook    string
	httpClient *http.Client
}

func NewNotifier(cfg *config.Digest) *Notifier {
	return &Notifier{
		webhook:    cfg.Webhook,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Notify 将速览内容以 JSON 推送到配置的 Webhook
// 未配置 Webhook 或内容为空时不推送
func (n *Notifier) Notify(ctx context.Context, content string) error {
	if content == "" {
		return nil
	}
	if n.webhook == "" {
		logger.Debugf("[Notify] 未配置 Webhook，跳过推送")
		return nil
	}

	if len(content) > MaxContentLength {
		cut := MaxContentLength
		// 回退到字符边界，避免截断多字节字符
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}

	payload, err := json.Marshal(map[string]string{"text": content})
	if err != nil {
		return fmt.Errorf("序列化推送内容失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhook, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("创建推送请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("推送 Webhook 失败: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("推送 Webhook 失败, 状态码 %d", resp.StatusCode)
	}

	logger.Infof("[Notify] 速览推送成功")
	return nil
}
