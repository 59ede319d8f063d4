package summarizer

import "strings"

// stopWords 标准英文停用词表
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "you're", "you've", "you'll", "you'd", "your", "yours",
		"yourself", "yourselves", "he", "him", "his", "himself", "she",
		"she's", "her", "hers", "herself", "it", "it's", "its", "itself",
		"they", "them", "their", "theirs", "themselves", "what", "which",
		"who", "whom", "this", "that", "that'll", "these", "those", "am",
		"is", "are", "was", "were", "be", "been", "being", "have", "has",
		"had", "having", "do", "does", "did", "doing", "a", "an", "the",
		"and", "but", "if", "or", "because", "as", "until", "while", "of",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to",
		"from", "up", "down", "in", "out", "on", "off", "over", "under",
		"again", "further", "then", "once", "here", "there", "when",
		"where", "why", "how", "all", "any", "both", "each", "few",
		"more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very", "s", "t",
		"can", "will", "just", "don", "don't", "should", "should've",
		"now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren",
		"aren't", "couldn", "couldn't", "didn", "didn't", "doesn",
		"doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven",
		"haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
		"mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
		"shouldn't", "wasn", "wasn't", "weren", "weren't", "won",
		"won't", "wouldn", "wouldn't",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}

// nounTokens 返回文本中被标注为名词且不在停用词表中的词
func nounTokens(text string) []string {
	var nouns []string
	for _, token := range tokenize(text) {
		if _, ok := stopWords[token]; ok {
			continue
		}
		if isNoun(token) {
			nouns = append(nouns, token)
		}
	}
	return nouns
}

// isNoun 基于后缀规则的轻量词性判定，未被其他词性后缀命中的词默认视为名词
func isNoun(token string) bool {
	if len(token) < 2 {
		return false
	}
	if strings.ContainsAny(token, "0123456789'") {
		return false
	}
	switch {
	case strings.HasSuffix(token, "ing") && len(token) > 4:
		return false // 动词现在分词
	case strings.HasSuffix(token, "ed") && len(token) > 3:
		return false // 动词过去式
	case strings.HasSuffix(token, "ly") && len(token) > 3:
		return false // 副词
	case strings.HasSuffix(token, "ful"), strings.HasSuffix(token, "ous"),
		strings.HasSuffix(token, "ive"), strings.HasSuffix(token, "able"),
		strings.HasSuffix(token, "ible"):
		return false // 形容词
	}
	return true
}
