package summarizer

// Category 消息的语义类别
type Category string

const (
	CategoryMeeting  Category = "meeting"
	CategoryAction   Category = "action"
	CategoryStatus   Category = "status"
	CategoryQuestion Category = "question"
	CategoryGreeting Category = "greeting"
)

// categoryKeywords 各类别的触发词表，静态只读配置，进程内装载一次
var categoryKeywords = map[Category][]string{
	CategoryMeeting:  {"meet", "meeting", "dinner", "lunch", "coffee", "restaurant", "cafe", "time", "place", "location"},
	CategoryAction:   {"working", "finish", "complete", "send", "submit", "prepare", "do", "manage", "going", "coming", "joining"},
	CategoryStatus:   {"done", "finished", "completed", "ready", "not yet", "still", "worried", "better", "good", "fine", "nice"},
	CategoryQuestion: {"how", "what", "when", "where", "why", "who", "which", "?"},
	CategoryGreeting: {"hi", "hello", "hey", "good morning", "good afternoon", "good evening"},
}
