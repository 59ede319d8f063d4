package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hi 后跟称呼", "hi bob", "Bob"},
		{"hello 后跟称呼", "hello ALICE", "Alice"},
		{"hey 后跟称呼", "hey charlie, long time", "Charlie"},
		{"问候后无称呼", "hi", ""},
		{"非问候文本", "see you tomorrow", ""},
		{"good morning 不捕获称呼", "good morning bob", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.text))
		})
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"小时加am/pm", "let's meet at 5pm", "5pm"},
		{"带分钟", "the meeting is at 10:30 AM", "10:30 AM"},
		{"裸数字", "see you at 7", "7"},
		{"取首个命中", "either 6pm or 8pm", "6pm"},
		{"无时间", "no clock here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTime(tt.text))
		})
	}
}

func TestExtractPlace(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"at 前置", "let's meet at Central Cafe", "Central Cafe"},
		{"named 前置", "the spot named Sunrise Cafe", "Sunrise Cafe"},
		{"at 后置", "Central Cafe at noon", "Central Cafe"},
		{"保留原始大小写", "dinner at Rose Restaurant tonight", "Rose Restaurant"},
		{"无地点", "see you tomorrow", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPlace(tt.text))
		})
	}
}

// 模板依优先级尝试，首个命中者生效
func TestExtractPlace_PatternPriority(t *testing.T) {
	// "at Rose Cafe" 被第一个模板命中，后置模板不再参与
	got := extractPlace("meet at Rose Cafe at 6")
	assert.Equal(t, "Rose Cafe", got)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Bob", capitalize("bob"))
	assert.Equal(t, "Bob", capitalize("BOB"))
	assert.Equal(t, "", capitalize(""))
}
