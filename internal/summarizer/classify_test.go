package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Classification
	}{
		{
			name: "约见消息",
			text: "let's meet at the cafe",
			want: Classification{Meeting: true},
		},
		{
			name: "行动消息",
			text: "i am coming to the party",
			want: Classification{Action: true},
		},
		{
			name: "状态消息",
			text: "the report is done",
			want: Classification{Action: true, Status: true}, // "do" 命中 "done"
		},
		{
			name: "疑问词消息",
			text: "when should we leave",
			want: Classification{Meeting: false, Question: true},
		},
		{
			name: "问号消息",
			text: "really?",
			want: Classification{Question: true},
		},
		{
			name: "问候消息",
			text: "good morning everyone",
			want: Classification{Status: true, Greeting: true}, // "good" 同时命中状态类别
		},
		{
			name: "多类别消息",
			text: "hi, are you coming to dinner?",
			want: Classification{Meeting: true, Action: true, Question: true, Greeting: true},
		},
		{
			name: "无命中消息",
			text: "zzz",
			want: Classification{},
		},
		{
			name: "子串匹配",
			text: "down the road",
			want: Classification{Action: true}, // "do" 命中 "down"
		},
		{
			name: "相邻字母不构成子串",
			text: "today was uneventful",
			want: Classification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_QuestionResponsePartition(t *testing.T) {
	texts := []string{
		"hi bob",
		"what time works for you?",
		"let's meet at the cafe",
		"i am doing good",
		"zzz",
	}
	for _, text := range texts {
		c := Classify(text)
		// 每条消息要么是问题要么是回应，二者必居其一
		assert.NotEqual(t, c.Question, c.Response(), "text: %s", text)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"i'm", "doing", "good", "today"}, tokenize("i'm doing good, today!"))
	assert.Empty(t, tokenize("..."))
}
