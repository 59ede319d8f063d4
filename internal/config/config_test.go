package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
Server:
  Host: 0.0.0.0
  Port: 8000
Sock5Proxy:
  Enable: false
LLM:
  Enable: true
  BaseURL: https://api.openai.com/v1
  APIKey: sk-test
  Model: gpt-4o
  MaxTokens: 128000
Digest:
  Enable: true
  Cron: "0 23 * * *"
  RangeDays: 1
  RetentionDays: 30
  RetryTimes: 3
  RetryInterval: 60
  Webhook: https://example.com/hook
`)

	c, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0", c.Server.Host)
	assert.Equal(t, 8000, c.Server.Port)
	assert.True(t, c.LLM.Enable)
	assert.Equal(t, "gpt-4o", c.LLM.Model)
	assert.Equal(t, "0 23 * * *", c.Digest.Cron)
	assert.Equal(t, 30, c.Digest.RetentionDays)
}

func TestLoadFromFile_NotExist(t *testing.T) {
	_, err := LoadFromFile("/not/exist/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidYaml(t *testing.T) {
	path := writeConfigFile(t, "Server: [")
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: Server{Host: "0.0.0.0", Port: 8000},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "合法配置",
			mutate: func(c *Config) {},
		},
		{
			name:    "端口为0",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "Server.Port",
		},
		{
			name:    "端口超限",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "Server.Port",
		},
		{
			name:    "启用LLM但缺少APIKey",
			mutate:  func(c *Config) { c.LLM.Enable = true },
			wantErr: "LLM.APIKey",
		},
		{
			name: "启用LLM但缺少Model",
			mutate: func(c *Config) {
				c.LLM = LLM{Enable: true, APIKey: "sk-test", BaseURL: "https://api.openai.com/v1"}
			},
			wantErr: "LLM.Model",
		},
		{
			name: "启用LLM但MaxTokens非法",
			mutate: func(c *Config) {
				c.LLM = LLM{Enable: true, APIKey: "sk-test", BaseURL: "https://api.openai.com/v1", Model: "gpt-4o"}
			},
			wantErr: "LLM.MaxTokens",
		},
		{
			name:    "启用速览但缺少Cron",
			mutate:  func(c *Config) { c.Digest.Enable = true },
			wantErr: "Digest.Cron",
		},
		{
			name: "启用速览但重试次数为负",
			mutate: func(c *Config) {
				c.Digest = Digest{Enable: true, Cron: "0 23 * * *", RetryTimes: -1}
			},
			wantErr: "Digest.RetryTimes",
		},
		{
			name:   "未启用时不校验LLM和速览",
			mutate: func(c *Config) { c.LLM = LLM{}; c.Digest = Digest{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
