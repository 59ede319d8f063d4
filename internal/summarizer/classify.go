package summarizer

import (
	"regexp"
	"strings"
)

// Classification 单条消息的类别归属
// meeting/action/status/greeting 互不排斥；question 与 response 恰好二分
type Classification struct {
	Meeting  bool
	Action   bool
	Status   bool
	Question bool
	Greeting bool
}

// Response 非问题即回应
func (c Classification) Response() bool {
	return !c.Question
}

// Classify 对小写文本做类别归属判定
// 触发词以子串方式匹配，纯函数、无副作用
func Classify(text string) Classification {
	return Classification{
		Meeting:  containsAny(text, categoryKeywords[CategoryMeeting]),
		Action:   containsAny(text, categoryKeywords[CategoryAction]),
		Status:   containsAny(text, categoryKeywords[CategoryStatus]),
		Question: containsAny(text, categoryKeywords[CategoryQuestion]),
		Greeting: containsAny(text, categoryKeywords[CategoryGreeting]),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

var tokenPattern = regexp.MustCompile(`[a-z0-9']+`)

// tokenize 将小写文本切分为词序列
func tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}
