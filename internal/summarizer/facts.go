package summarizer

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrNoContent 会话内没有可总结的消息
var ErrNoContent = errors.New("no content to summarize")

// ChatMessage 会话内单条消息
type ChatMessage struct {
	SenderID string
	Text     string
	SentAt   time.Time
}

// Mention 某用户的一条分类命中记录，文本为小写形式
type Mention struct {
	SenderID string `json:"sender_id"`
	Text     string `json:"text"`
}

// MeetingCandidate 一条疑似约见消息及其提取出的时间地点，空串表示未提取到
type MeetingCandidate struct {
	SenderID string `json:"sender_id"`
	Time     string `json:"time,omitempty"`
	Place    string `json:"place,omitempty"`
	RawText  string `json:"raw_text"`
}

// ExtractedFacts 单次总结过程中跨消息聚合出的结构化事实
// 每次调用 ExtractFacts 新建一份，不跨会话共享
type ExtractedFacts struct {
	Participants []string           `json:"participants"`       // 按首次发言顺序
	Names        map[string]string  `json:"names,omitempty"`    // 发送者ID → 推断出的称呼
	Meetings     []MeetingCandidate `json:"meetings,omitempty"` // 按消息顺序追加，不重排
	Actions      []Mention          `json:"actions,omitempty"`
	Status       []Mention          `json:"status,omitempty"`
	Questions    []Mention          `json:"questions,omitempty"`
	Responses    []Mention          `json:"responses,omitempty"`
	Greetings    []Mention          `json:"greetings,omitempty"`
	Topics       []string           `json:"topics,omitempty"` // 排序后的话题词集合
}

// resolveName 将发送者ID解析为称呼，未推断出时退回 "User"
func (f *ExtractedFacts) resolveName(senderID string) string {
	if name, ok := f.Names[senderID]; ok {
		return name
	}
	return "User"
}

// ExtractFacts 按输入顺序单遍扫描消息序列，聚合结构化事实
// 消息序列为空时返回 ErrNoContent
func ExtractFacts(messages []ChatMessage) (*ExtractedFacts, error) {
	if len(messages) == 0 {
		return nil, ErrNoContent
	}

	facts := &ExtractedFacts{Names: make(map[string]string)}
	seenParticipants := make(map[string]bool)
	topicSet := make(map[string]struct{})

	for _, msg := range messages {
		lower := strings.ToLower(msg.Text)
		c := Classify(lower)

		if !seenParticipants[msg.SenderID] {
			seenParticipants[msg.SenderID] = true
			facts.Participants = append(facts.Participants, msg.SenderID)
		}

		if c.Greeting {
			// 称呼提取在原始文本上进行以保留大小写，首次捕获生效
			if name := extractName(msg.Text); name != "" {
				if _, ok := facts.Names[msg.SenderID]; !ok {
					facts.Names[msg.SenderID] = name
				}
			}
			facts.Greetings = append(facts.Greetings, Mention{SenderID: msg.SenderID, Text: lower})
		}

		if c.Meeting {
			// 时间地点各自独立可缺省，均未命中也记录候选
			facts.Meetings = append(facts.Meetings, MeetingCandidate{
				SenderID: msg.SenderID,
				Time:     extractTime(msg.Text),
				Place:    extractPlace(msg.Text),
				RawText:  msg.Text,
			})
		}

		if c.Action {
			facts.Actions = append(facts.Actions, Mention{SenderID: msg.SenderID, Text: lower})
		}
		if c.Status {
			facts.Status = append(facts.Status, Mention{SenderID: msg.SenderID, Text: lower})
		}

		// 问题/回应恰好二分每条消息
		if c.Question {
			facts.Questions = append(facts.Questions, Mention{SenderID: msg.SenderID, Text: lower})
		} else {
			facts.Responses = append(facts.Responses, Mention{SenderID: msg.SenderID, Text: lower})
		}

		for _, noun := range nounTokens(lower) {
			topicSet[noun] = struct{}{}
		}
	}

	facts.Topics = make([]string, 0, len(topicSet))
	for topic := range topicSet {
		facts.Topics = append(facts.Topics, topic)
	}
	sort.Strings(facts.Topics)

	return facts, nil
}
