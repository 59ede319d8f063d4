package summarizer

import (
	"regexp"
	"strings"
)

// namePattern 问候语后紧跟的单个词视为称呼
var namePattern = regexp.MustCompile(`(?i)hi\s+(\w+)|hello\s+(\w+)|hey\s+(\w+)`)

// timePattern 钟点时间：H 或 HH，可选 :MM，可选 am/pm
var timePattern = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*(?:am|pm)?`)

// placePatterns 地点模板，依优先级排列，首个命中者生效
var placePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:at|in)\s+([a-zA-Z\s]+(?:cafe|restaurant|place|location))`),
	regexp.MustCompile(`(?i)(?:named|called)\s+([a-zA-Z\s]+(?:cafe|restaurant|place|location))`),
	regexp.MustCompile(`(?i)([a-zA-Z\s]+(?:cafe|restaurant|place|location))\s+(?:at|in)`),
}

// extractName 捕获问候语后的称呼并首字母大写，未命中返回空串
func extractName(text string) string {
	m := namePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	for _, group := range m[1:] {
		if group != "" {
			return capitalize(group)
		}
	}
	return ""
}

// extractTime 取首个钟点时间，未命中返回空串
func extractTime(text string) string {
	return strings.TrimSpace(timePattern.FindString(text))
}

// extractPlace 依优先级尝试地点模板，未命中返回空串
func extractPlace(text string) string {
	for _, pattern := range placePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// capitalize 首字母大写，其余小写
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
