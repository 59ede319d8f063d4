package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/chat-recap/internal/config"
	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/ent/digestrun"
	"github.com/fachebot/chat-recap/internal/logger"
	"github.com/fachebot/chat-recap/internal/summarizer"
	"github.com/robfig/cron/v3"
)

// digestSummarizer 区间总结（便于测试注入 mock）
type digestSummarizer interface {
	SummarizeRange(ctx context.Context, conversationID string, startTime, endTime time.Time) (*summarizer.Result, error)
}

// digestNotifier 速览推送（便于测试注入 mock）
type digestNotifier interface {
	Notify(ctx context.Context, content string) error
}

// messageJanitor 会话枚举与过期清理（便于测试注入 mock）
type messageJanitor interface {
	GetConversationIDsByDateRange(ctx context.Context, startTime, endTime time.Time) ([]string, error)
	DeleteBefore(ctx context.Context, cutoffDate time.Time) (int, error)
}

// digestRunStore 运行记录存取（便于测试注入 mock）
type digestRunStore interface {
	GetOrCreate(ctx context.Context, startTime, endTime time.Time, status digestrun.Status) (*ent.DigestRun, error)
	GetIncompleteRuns(ctx context.Context) ([]*ent.DigestRun, error)
	MarkCompleted(ctx context.Context, id int) error
	MarkFailed(ctx context.Context, id int, errorMsg string) error
}

type Scheduler struct {
	cron           *cron.Cron
	summarizer     digestSummarizer
	notifier       digestNotifier
	messageModel   messageJanitor
	digestRunModel digestRunStore
	config         *config.Digest
	ctx            context.Context
	cancel         context.CancelFunc
	mu             sync.Mutex
}

// locUTC 调度与日期区间均使用 UTC
var locUTC = time.UTC

func NewScheduler(
	summarizer digestSummarizer,
	notifier digestNotifier,
	messageModel messageJanitor,
	digestRunModel digestRunStore,
	cfg *config.Digest,
) *Scheduler {
	return &Scheduler{
		cron:           cron.New(cron.WithLocation(locUTC)),
		summarizer:     summarizer,
		notifier:       notifier,
		messageModel:   messageModel,
		digestRunModel: digestRunModel,
		config:         cfg,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	// 注册每日速览任务
	_, err := s.cron.AddFunc(s.config.Cron, s.runDailyDigest)
	if err != nil {
		return fmt.Errorf("注册每日速览任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，每日速览任务: %s", s.config.Cron)

	// 启动时恢复未完成的运行
	go s.recoverDigestRuns()

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// dateRange 计算速览覆盖的日期区间 [todayStart-RangeDays, todayStart)
func (s *Scheduler) dateRange(now time.Time) (time.Time, time.Time) {
	rangeDays := s.config.RangeDays
	if rangeDays <= 0 {
		rangeDays = 1
	}
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, locUTC)
	return todayStart.AddDate(0, 0, -rangeDays), todayStart
}

// recoverDigestRuns 恢复未完成的速览运行（速览内容可幂等重建）
func (s *Scheduler) recoverDigestRuns() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	runs, err := s.digestRunModel.GetIncompleteRuns(ctx)
	if err != nil {
		logger.Errorf("[Scheduler] 查询未完成运行失败: %v", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	logger.Infof("[Scheduler] 找到 %d 个未完成的运行，开始恢复", len(runs))
	for _, run := range runs {
		select {
		case <-ctx.Done():
			logger.Infof("[Scheduler] 恢复已取消")
			return
		default:
		}
		logger.Infof("[Scheduler] 恢复运行: %s ~ %s",
			run.StartTime.Format("2006-01-02"), run.EndTime.Format("2006-01-02"))
		if err := s.executeDigestForRange(ctx, run.StartTime, run.EndTime); err != nil {
			logger.Errorf("[Scheduler] 恢复运行失败: %v", err)
			_ = s.digestRunModel.MarkFailed(ctx, run.ID, err.Error())
			continue
		}
		_ = s.digestRunModel.MarkCompleted(ctx, run.ID)
	}
	logger.Infof("[Scheduler] 运行恢复完成")
}

// runDailyDigest 执行每日速览任务（cron 触发）
func (s *Scheduler) runDailyDigest() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	startTime, endTime := s.dateRange(time.Now().In(locUTC))
	logger.Infof("[Scheduler] 开始执行每日速览任务，区间: %s ~ %s",
		startTime.Format("2006-01-02"), endTime.AddDate(0, 0, -1).Format("2006-01-02"))

	// 在处理前创建运行记录，便于崩溃恢复
	run, err := s.digestRunModel.GetOrCreate(ctx, startTime, endTime, digestrun.StatusInProgress)
	if err != nil {
		logger.Errorf("[Scheduler] 获取或创建运行记录失败: %v", err)
		return
	}
	if run.Status == digestrun.StatusCompleted {
		logger.Infof("[Scheduler] 当日速览已完成，跳过")
		return
	}

	if err := s.executeDigestForRange(ctx, startTime, endTime); err != nil {
		logger.Errorf("[Scheduler] 每日速览执行失败: %v", err)
		_ = s.digestRunModel.MarkFailed(ctx, run.ID, err.Error())
		return
	}
	_ = s.digestRunModel.MarkCompleted(ctx, run.ID)
	logger.Infof("[Scheduler] 每日速览任务完成")
}

// executeDigestForRange 对日期区间执行完整速览流程（枚举会话、总结、推送、清理）
func (s *Scheduler) executeDigestForRange(ctx context.Context, startTime, endTime time.Time) error {
	retryTimes := s.config.RetryTimes
	if retryTimes <= 0 {
		retryTimes = 3
	}
	retryInterval := time.Duration(s.config.RetryInterval) * time.Second
	if retryInterval <= 0 {
		retryInterval = 60 * time.Second
	}

	// 1. 枚举区间内的活跃会话（带重试）
	var conversationIDs []string
	var err error
	for attempt := 1; attempt <= retryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("任务已取消")
		default:
		}
		conversationIDs, err = s.messageModel.GetConversationIDsByDateRange(ctx, startTime, endTime)
		if err == nil {
			break
		}
		logger.Warnf("[Scheduler] 枚举会话失败 (第 %d/%d 次): %v", attempt, retryTimes, err)
		if attempt < retryTimes {
			select {
			case <-ctx.Done():
				return fmt.Errorf("任务已取消")
			case <-time.After(retryInterval):
			}
		}
	}
	if err != nil {
		return fmt.Errorf("枚举会话失败，已重试 %d 次: %w", retryTimes, err)
	}

	if len(conversationIDs) == 0 {
		logger.Infof("[Scheduler] 区间内无消息，跳过速览")
		s.cleanupMessages(ctx)
		return nil
	}

	logger.Infof("[Scheduler] 找到 %d 个会话需要处理", len(conversationIDs))

	// 2. 逐会话总结并汇总速览
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Daily digest %s ~ %s\n",
		startTime.Format("2006-01-02"), endTime.AddDate(0, 0, -1).Format("2006-01-02")))

	successCount := 0
	failCount := 0
	for _, conversationID := range conversationIDs {
		select {
		case <-ctx.Done():
			return fmt.Errorf("任务已取消")
		default:
		}

		result, err := s.summarizeWithRetry(ctx, conversationID, startTime, endTime, retryTimes, retryInterval)
		if err != nil {
			if errors.Is(err, summarizer.ErrNoContent) {
				continue
			}
			logger.Errorf("[Scheduler] 会话 %s 总结失败: %v", conversationID, err)
			failCount++
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", conversationID, result.Summary))
		successCount++
	}

	logger.Infof("[Scheduler] 会话处理完成: 成功 %d 个，失败 %d 个", successCount, failCount)

	// 3. 推送速览（失败仅记录，不影响运行完成状态）
	if successCount > 0 {
		if err := s.notifier.Notify(ctx, sb.String()); err != nil {
			logger.Errorf("[Scheduler] 推送速览失败: %v", err)
		}
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("任务已取消")
	default:
	}
	s.cleanupMessages(ctx)
	return nil
}

// summarizeWithRetry 带重试的会话区间总结，ErrNoContent 不重试
func (s *Scheduler) summarizeWithRetry(ctx context.Context, conversationID string, startTime, endTime time.Time, retryTimes int, retryInterval time.Duration) (*summarizer.Result, error) {
	var result *summarizer.Result
	var err error
	for attempt := 1; attempt <= retryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("任务已取消")
		default:
		}

		result, err = s.summarizer.SummarizeRange(ctx, conversationID, startTime, endTime)
		if err == nil || errors.Is(err, summarizer.ErrNoContent) {
			return result, err
		}

		logger.Warnf("[Scheduler] 会话 %s: 总结失败 (第 %d/%d 次): %v", conversationID, attempt, retryTimes, err)
		if attempt < retryTimes {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("任务已取消")
			case <-time.After(retryInterval):
			}
		}
	}
	return nil, fmt.Errorf("总结失败，已重试 %d 次: %w", retryTimes, err)
}

// cleanupMessages 清理超过保留天数的消息
func (s *Scheduler) cleanupMessages(ctx context.Context) {
	if s.config.RetentionDays <= 0 {
		return
	}
	cutoff := time.Now().In(locUTC).AddDate(0, 0, -s.config.RetentionDays)
	deleted, err := s.messageModel.DeleteBefore(ctx, cutoff)
	if err != nil {
		logger.Errorf("[Scheduler] 清理过期消息失败: %v", err)
		return
	}
	if deleted > 0 {
		logger.Infof("[Scheduler] 已清理 %d 条过期消息", deleted)
	}
}
