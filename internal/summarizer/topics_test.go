package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNounTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "名词被保留",
			text:     "we must finish the budget report",
			expected: []string{"must", "finish", "budget", "report"},
		},
		{
			name:     "停用词被过滤",
			text:     "the and of to in",
			expected: nil,
		},
		{
			name:     "现在分词被过滤",
			text:     "the meeting is starting",
			expected: nil,
		},
		{
			name:     "过去式被过滤",
			text:     "the task was finished yesterday",
			expected: []string{"task", "yesterday"},
		},
		{
			name:     "副词被过滤",
			text:     "quickly review the plan",
			expected: []string{"review", "plan"},
		},
		{
			name:     "形容词后缀被过滤",
			text:     "a wonderful productive helpful reasonable plan",
			expected: []string{"plan"},
		},
		{
			name:     "含数字和撇号的词被过滤",
			text:     "room2 can't hold everyone",
			expected: []string{"hold", "everyone"},
		},
		{
			name:     "短词被过滤",
			text:     "a b c plan",
			expected: []string{"plan"},
		},
		{
			name:     "空文本",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nounTokens(tt.text))
		})
	}
}

func TestIsNoun(t *testing.T) {
	assert.True(t, isNoun("report"))
	assert.True(t, isNoun("cafe"))
	// "ing"/"ed" 后缀仅在词长超过阈值时过滤
	assert.True(t, isNoun("ring"))
	assert.True(t, isNoun("bed"))
	assert.True(t, isNoun("fly")) // "ly" 后缀要求词长大于3
	assert.False(t, isNoun("meeting"))
	assert.False(t, isNoun("finished"))
	assert.False(t, isNoun("quickly"))
	assert.False(t, isNoun("helpful"))
	assert.False(t, isNoun("x"))
	assert.False(t, isNoun("5pm"))
	assert.False(t, isNoun("can't"))
}
