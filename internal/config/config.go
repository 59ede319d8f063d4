package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Server struct {
	Host string `yaml:"Host"`
	Port int    `yaml:"Port"`
}

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type LLM struct {
	Enable    bool   `yaml:"Enable"`  // 是否启用 LLM 总结引擎
	BaseURL   string `yaml:"BaseURL"` // 兼容 OpenAI API 的端点
	APIKey    string `yaml:"APIKey"`
	Model     string `yaml:"Model"`     // 如 gpt-4o, deepseek-chat, qwen-plus
	MaxTokens int    `yaml:"MaxTokens"` // 模型上下文窗口大小
}

type Digest struct {
	Enable        bool   `yaml:"Enable"`        // 是否启用每日速览任务
	Cron          string `yaml:"Cron"`          // cron 表达式，如 "0 23 * * *"
	RangeDays     int    `yaml:"RangeDays"`     // 速览天数，1=仅昨天，7=最近7天
	RetentionDays int    `yaml:"RetentionDays"` // 消息保留天数，0=不清理
	RetryTimes    int    `yaml:"RetryTimes"`    // 失败重试次数，默认 3
	RetryInterval int    `yaml:"RetryInterval"` // 重试间隔（秒），默认 60
	Webhook       string `yaml:"Webhook"`       // 速览推送的 Webhook 地址，为空则不推送
}

type Config struct {
	Server     Server     `yaml:"Server"`
	Sock5Proxy Sock5Proxy `yaml:"Sock5Proxy"`
	LLM        LLM        `yaml:"LLM"`
	Digest     Digest     `yaml:"Digest"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证 Server
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("Server.Port 必须在 1-65535 之间")
	}

	// 验证 LLM（仅在启用时要求完整）
	if c.LLM.Enable {
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM.APIKey 不能为空")
		}
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("LLM.BaseURL 不能为空")
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("LLM.Model 不能为空")
		}
		if c.LLM.MaxTokens <= 0 {
			return fmt.Errorf("LLM.MaxTokens 必须大于 0")
		}
	}

	// 验证 Digest（仅在启用时要求完整）
	if c.Digest.Enable {
		if c.Digest.Cron == "" {
			return fmt.Errorf("Digest.Cron 不能为空")
		}
		if c.Digest.RangeDays < 0 {
			return fmt.Errorf("Digest.RangeDays 必须 >= 0")
		}
		if c.Digest.RetentionDays < 0 {
			return fmt.Errorf("Digest.RetentionDays 必须 >= 0")
		}
		if c.Digest.RetryTimes < 0 {
			return fmt.Errorf("Digest.RetryTimes 必须 >= 0")
		}
		if c.Digest.RetryInterval < 0 {
			return fmt.Errorf("Digest.RetryInterval 必须 >= 0")
		}
	}

	return nil
}
