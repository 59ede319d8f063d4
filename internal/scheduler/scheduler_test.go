package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/chat-recap/internal/config"
	"github.com/fachebot/chat-recap/internal/summarizer"
	"github.com/stretchr/testify/assert"
)

// mockDigestSummarizer 用于测试的 digestSummarizer mock
type mockDigestSummarizer struct {
	summaries map[string]string
	errs      map[string]error
	calls     int
}

func (m *mockDigestSummarizer) SummarizeRange(ctx context.Context, conversationID string, startTime, endTime time.Time) (*summarizer.Result, error) {
	m.calls++
	if err, ok := m.errs[conversationID]; ok {
		return nil, err
	}
	return &summarizer.Result{Summary: m.summaries[conversationID]}, nil
}

// mockDigestNotifier 用于测试的 digestNotifier mock
type mockDigestNotifier struct {
	contents []string
	err      error
}

func (m *mockDigestNotifier) Notify(ctx context.Context, content string) error {
	m.contents = append(m.contents, content)
	return m.err
}

// mockMessageJanitor 用于测试的 messageJanitor mock
type mockMessageJanitor struct {
	conversationIDs []string
	listErr         error
	deleted         int
	deleteCalled    bool
}

func (m *mockMessageJanitor) GetConversationIDsByDateRange(ctx context.Context, startTime, endTime time.Time) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.conversationIDs, nil
}

func (m *mockMessageJanitor) DeleteBefore(ctx context.Context, cutoffDate time.Time) (int, error) {
	m.deleteCalled = true
	return m.deleted, nil
}

func newTestScheduler(summ *mockDigestSummarizer, notifier *mockDigestNotifier, janitor *mockMessageJanitor, cfg *config.Digest) *Scheduler {
	s := NewScheduler(summ, notifier, janitor, nil, cfg)
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

func TestDateRange(t *testing.T) {
	now := time.Date(2025, 2, 8, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		rangeDays     int
		expectedStart time.Time
	}{
		{"默认1天", 0, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC)},
		{"仅昨天", 1, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC)},
		{"最近7天", 7, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScheduler(nil, nil, nil, &config.Digest{RangeDays: tt.rangeDays})
			start, end := s.dateRange(now)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC), end)
		})
	}
}

func TestExecuteDigestForRange(t *testing.T) {
	summ := &mockDigestSummarizer{summaries: map[string]string{
		"conv_1": "Bob and Alice exchanged greetings.",
		"conv_2": "They plan to meet at Central Cafe at 5pm.",
	}}
	notifier := &mockDigestNotifier{}
	janitor := &mockMessageJanitor{conversationIDs: []string{"conv_1", "conv_2"}}
	s := newTestScheduler(summ, notifier, janitor, &config.Digest{RangeDays: 1, RetryInterval: 1})

	start := time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)
	err := s.executeDigestForRange(s.ctx, start, end)

	assert.NoError(t, err)
	if assert.Len(t, notifier.contents, 1) {
		assert.Contains(t, notifier.contents[0], "Daily digest 2025-02-07 ~ 2025-02-07")
		assert.Contains(t, notifier.contents[0], "- conv_1: Bob and Alice exchanged greetings.")
		assert.Contains(t, notifier.contents[0], "- conv_2: They plan to meet at Central Cafe at 5pm.")
	}
}

func TestExecuteDigestForRange_NoConversations(t *testing.T) {
	notifier := &mockDigestNotifier{}
	janitor := &mockMessageJanitor{}
	s := newTestScheduler(&mockDigestSummarizer{}, notifier, janitor, &config.Digest{RangeDays: 1})

	err := s.executeDigestForRange(s.ctx, time.Now().AddDate(0, 0, -1), time.Now())

	assert.NoError(t, err)
	assert.Empty(t, notifier.contents)
}

func TestExecuteDigestForRange_SkipsEmptyConversations(t *testing.T) {
	summ := &mockDigestSummarizer{
		summaries: map[string]string{"conv_1": "A conversation between User."},
		errs:      map[string]error{"conv_2": summarizer.ErrNoContent},
	}
	notifier := &mockDigestNotifier{}
	janitor := &mockMessageJanitor{conversationIDs: []string{"conv_1", "conv_2"}}
	s := newTestScheduler(summ, notifier, janitor, &config.Digest{RangeDays: 1, RetryInterval: 1})

	err := s.executeDigestForRange(s.ctx, time.Now().AddDate(0, 0, -1), time.Now())

	assert.NoError(t, err)
	if assert.Len(t, notifier.contents, 1) {
		assert.Contains(t, notifier.contents[0], "conv_1")
		assert.NotContains(t, notifier.contents[0], "conv_2")
	}
	// ErrNoContent 不触发重试
	assert.Equal(t, 2, summ.calls)
}

func TestExecuteDigestForRange_ListError(t *testing.T) {
	janitor := &mockMessageJanitor{listErr: errors.New("db error")}
	s := newTestScheduler(&mockDigestSummarizer{}, &mockDigestNotifier{}, janitor,
		&config.Digest{RangeDays: 1, RetryTimes: 2, RetryInterval: 1})

	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()
	err := s.executeDigestForRange(ctx, time.Now().AddDate(0, 0, -1), time.Now())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "枚举会话失败")
}

func TestCleanupMessages(t *testing.T) {
	t.Run("启用保留策略", func(t *testing.T) {
		janitor := &mockMessageJanitor{deleted: 5}
		s := newTestScheduler(&mockDigestSummarizer{}, &mockDigestNotifier{}, janitor,
			&config.Digest{RetentionDays: 30})
		s.cleanupMessages(s.ctx)
		assert.True(t, janitor.deleteCalled)
	})

	t.Run("未启用保留策略", func(t *testing.T) {
		janitor := &mockMessageJanitor{}
		s := newTestScheduler(&mockDigestSummarizer{}, &mockDigestNotifier{}, janitor,
			&config.Digest{RetentionDays: 0})
		s.cleanupMessages(s.ctx)
		assert.False(t, janitor.deleteCalled)
	})
}
