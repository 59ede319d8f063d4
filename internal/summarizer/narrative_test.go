package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func composeFromMessages(t *testing.T, messages []ChatMessage) string {
	t.Helper()
	facts, err := ExtractFacts(messages)
	assert.NoError(t, err)
	return ComposeNarrative(facts)
}

func TestComposeNarrative_GreetingNameMapping(t *testing.T) {
	// 称呼来自问候语中被叫到的名字，但挂在发言者自己的ID下（保留源行为）：
	// alice 说 "hi bob" 捕获的 "Bob" 归属 alice
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("alice", "hi bob"),
		mustChatMessage("bob", "hello alice"),
	})
	assert.Equal(t, "Bob and Alice exchanged greetings.", got)
}

func TestComposeNarrative_MeetingPlaceThenTime(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "let's meet at Central Cafe at 5pm"),
		mustChatMessage("b", "ok see you there"),
	})
	assert.Contains(t, got, "They plan to meet at Central Cafe at 5pm")
}

func TestComposeNarrative_LastMeetingWins(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "let's meet at Rose Restaurant at 6pm"),
		mustChatMessage("b", "better to meet at Central Cafe at 7pm"),
	})
	assert.Contains(t, got, "at Central Cafe at 7pm")
	assert.NotContains(t, got, "Rose Restaurant")
}

func TestComposeNarrative_MeetingTimeOnly(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "let's meet at 5pm"),
	})
	assert.Equal(t, "They plan to meet at 5pm.", got)
}

func TestComposeNarrative_StatusPerSpeaker(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "i'm feeling good"),
		mustChatMessage("b", "me too, all fine"),
	})
	assert.Equal(t, "User is doing well User is doing well.", got)
}

func TestComposeNarrative_StatusDedup(t *testing.T) {
	// 同一发言者的多条合格状态消息只产出一句
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "feeling good"),
		mustChatMessage("a", "really good"),
		mustChatMessage("a", "so good"),
	})
	assert.Equal(t, "User is doing well.", got)
}

func TestComposeNarrative_ActionConfirmation(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "i am joining the call"),
	})
	assert.Equal(t, "User confirmed they will attend.", got)
}

func TestComposeNarrative_GreetingGatedByParticipantCount(t *testing.T) {
	// 三名参与者时即使存在问候也不输出问候语句
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "hi"),
		mustChatMessage("b", "hi"),
		mustChatMessage("c", "hi"),
	})
	assert.NotContains(t, got, "exchanged greetings")
	assert.Equal(t, "A conversation between User, User, User.", got)
}

func TestComposeNarrative_GreetingFallbackName(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "hi"),
		mustChatMessage("b", "hi"),
	})
	assert.Equal(t, "User and User exchanged greetings.", got)
}

func TestComposeNarrative_FallbackTwoParticipants(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("a", "zzz"),
		mustChatMessage("b", "zzz"),
	})
	assert.Equal(t, "User and User had a conversation.", got)
}

func TestComposeNarrative_FallbackSingleParticipant(t *testing.T) {
	got := composeFromMessages(t, []ChatMessage{
		mustChatMessage("solo", "zzz"),
	})
	assert.Equal(t, "A conversation between User.", got)
}

func TestComposeNarrative_Deterministic(t *testing.T) {
	messages := []ChatMessage{
		mustChatMessage("alice", "hi bob"),
		mustChatMessage("bob", "hello alice, let's meet at Central Cafe at 5pm"),
		mustChatMessage("alice", "i am coming, feeling good"),
	}
	first := composeFromMessages(t, messages)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, composeFromMessages(t, messages))
	}
}
