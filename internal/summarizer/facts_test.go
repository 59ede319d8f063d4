package summarizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustChatMessage(senderID, text string) ChatMessage {
	return ChatMessage{SenderID: senderID, Text: text, SentAt: time.Now()}
}

func TestExtractFacts_EmptyInput(t *testing.T) {
	facts, err := ExtractFacts(nil)
	assert.ErrorIs(t, err, ErrNoContent)
	assert.Nil(t, facts)
}

func TestExtractFacts_ParticipantsInsertionOrder(t *testing.T) {
	facts, err := ExtractFacts([]ChatMessage{
		mustChatMessage("bob", "zzz"),
		mustChatMessage("alice", "zzz"),
		mustChatMessage("bob", "zzz"),
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"bob", "alice"}, facts.Participants)
}

func TestExtractFacts_QuestionResponsePartition(t *testing.T) {
	messages := []ChatMessage{
		mustChatMessage("a", "hi bob"),
		mustChatMessage("b", "what time works?"),
		mustChatMessage("a", "let's meet at the cafe"),
		mustChatMessage("b", "zzz"),
	}
	facts, err := ExtractFacts(messages)
	assert.NoError(t, err)
	// 每条消息恰好进入问题或回应之一
	assert.Equal(t, len(messages), len(facts.Questions)+len(facts.Responses))
}

func TestExtractFacts_NameFirstCaptureWins(t *testing.T) {
	facts, err := ExtractFacts([]ChatMessage{
		mustChatMessage("alice", "hi bob"),
		mustChatMessage("alice", "hi charlie"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Bob", facts.Names["alice"])
}

func TestExtractFacts_MeetingCandidatesInOrder(t *testing.T) {
	facts, err := ExtractFacts([]ChatMessage{
		mustChatMessage("a", "let's meet at Rose Restaurant"),
		mustChatMessage("b", "or meet at Central Cafe at 7pm"),
	})
	assert.NoError(t, err)
	assert.Len(t, facts.Meetings, 2)
	assert.Equal(t, "Rose Restaurant", facts.Meetings[0].Place)
	assert.Equal(t, "", facts.Meetings[0].Time)
	assert.Equal(t, "Central Cafe", facts.Meetings[1].Place)
	assert.Equal(t, "7pm", facts.Meetings[1].Time)
}

func TestExtractFacts_MeetingWithoutTimeAndPlace(t *testing.T) {
	facts, err := ExtractFacts([]ChatMessage{
		mustChatMessage("a", "we should meet soon"),
	})
	assert.NoError(t, err)
	// 时间地点均未提取到时仍记录候选，保留原文
	assert.Len(t, facts.Meetings, 1)
	assert.Equal(t, "", facts.Meetings[0].Time)
	assert.Equal(t, "", facts.Meetings[0].Place)
	assert.Equal(t, "we should meet soon", facts.Meetings[0].RawText)
}

func TestExtractFacts_TopicsSortedSet(t *testing.T) {
	facts, err := ExtractFacts([]ChatMessage{
		mustChatMessage("a", "the budget report"),
		mustChatMessage("b", "yes the budget"),
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"budget", "report", "yes"}, facts.Topics)
}
