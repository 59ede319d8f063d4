package summarizer

import (
	"fmt"
	"strings"
)

// ComposeNarrative 依固定规则顺序将聚合事实拼装为叙述性总结
// 规则产出的句子以空格连接并以句号结尾，输入相同则输出逐字节相同
func ComposeNarrative(facts *ExtractedFacts) string {
	var parts []string

	// 1. 问候语句：仅在恰好两名参与者时输出
	if len(facts.Greetings) > 0 && len(facts.Participants) == 2 {
		name1 := facts.resolveName(facts.Participants[0])
		name2 := facts.resolveName(facts.Participants[1])
		parts = append(parts, fmt.Sprintf("%s and %s exchanged greetings", name1, name2))
	}

	// 2. 约见语句：仅采用最后一条候选，子句顺序为地点、时间
	if len(facts.Meetings) > 0 {
		meeting := facts.Meetings[len(facts.Meetings)-1]
		var clauses []string
		if meeting.Place != "" {
			clauses = append(clauses, "at "+meeting.Place)
		}
		if meeting.Time != "" {
			clauses = append(clauses, "at "+meeting.Time)
		}
		if len(clauses) > 0 {
			parts = append(parts, "They plan to meet "+strings.Join(clauses, " "))
		}
	}

	// 3. 状态语句：每名发言者至多一句
	processedStatus := make(map[string]bool)
	for _, mention := range facts.Status {
		if processedStatus[mention.SenderID] {
			continue
		}
		if strings.Contains(mention.Text, "good") ||
			strings.Contains(mention.Text, "fine") ||
			strings.Contains(mention.Text, "nice") {
			parts = append(parts, facts.resolveName(mention.SenderID)+" is doing well")
			processedStatus[mention.SenderID] = true
		}
	}

	// 4. 行动确认语句：每名发言者至多一句
	processedActions := make(map[string]bool)
	for _, mention := range facts.Actions {
		if processedActions[mention.SenderID] {
			continue
		}
		if strings.Contains(mention.Text, "coming") ||
			strings.Contains(mention.Text, "going") ||
			strings.Contains(mention.Text, "joining") {
			parts = append(parts, facts.resolveName(mention.SenderID)+" confirmed they will attend")
			processedActions[mention.SenderID] = true
		}
	}

	// 5. 兜底语句：前四条规则均无产出时生效
	if len(parts) == 0 {
		if len(facts.Participants) == 2 {
			name1 := facts.resolveName(facts.Participants[0])
			name2 := facts.resolveName(facts.Participants[1])
			return fmt.Sprintf("%s and %s had a conversation.", name1, name2)
		}
		names := make([]string, 0, len(facts.Participants))
		for _, participant := range facts.Participants {
			names = append(names, facts.resolveName(participant))
		}
		return fmt.Sprintf("A conversation between %s.", strings.Join(names, ", "))
	}

	return strings.Join(parts, " ") + "."
}
