package model

import (
	"context"
	"time"

	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/ent/digestrun"
)

type DigestRunModel struct {
	client *ent.DigestRunClient
}

func NewDigestRunModel(client *ent.DigestRunClient) *DigestRunModel {
	return &DigestRunModel{client: client}
}

// Create 创建 DigestRun 记录
func (m *DigestRunModel) Create(ctx context.Context, startTime, endTime time.Time, status digestrun.Status) (*ent.DigestRun, error) {
	return m.client.Create().
		SetStartTime(startTime).
		SetEndTime(endTime).
		SetStatus(status).
		Save(ctx)
}

// GetOrCreate 获取或创建 DigestRun
// 若已存在相同 start_time/end_time 的记录则返回现有记录
func (m *DigestRunModel) GetOrCreate(ctx context.Context, startTime, endTime time.Time, status digestrun.Status) (*ent.DigestRun, error) {
	existing, err := m.client.Query().
		Where(
			digestrun.StartTimeEQ(startTime),
			digestrun.EndTimeEQ(endTime),
		).
		First(ctx)

	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	return m.Create(ctx, startTime, endTime, status)
}

// GetIncompleteRuns 查询所有未完成的 DigestRun（pending 或 in_progress）
func (m *DigestRunModel) GetIncompleteRuns(ctx context.Context) ([]*ent.DigestRun, error) {
	return m.client.Query().
		Where(
			digestrun.Or(
				digestrun.StatusEQ(digestrun.StatusPending),
				digestrun.StatusEQ(digestrun.StatusInProgress),
			),
		).
		Order(digestrun.ByCreateTime()).
		All(ctx)
}

// MarkCompleted 标记 DigestRun 完成
func (m *DigestRunModel) MarkCompleted(ctx context.Context, id int) error {
	return m.client.UpdateOneID(id).SetStatus(digestrun.StatusCompleted).Exec(ctx)
}

// MarkFailed 标记 DigestRun 失败
func (m *DigestRunModel) MarkFailed(ctx context.Context, id int, errorMsg string) error {
	return m.client.UpdateOneID(id).
		SetStatus(digestrun.StatusFailed).
		SetErrorMessage(errorMsg).
		Exec(ctx)
}
