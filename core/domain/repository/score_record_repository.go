package repository

import (
	"context"

	"mahjongscore/core/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScoreRecordRepository 计分记录仓储接口
type ScoreRecordRepository interface {
	// SaveScoreRecord 保存计分记录
	SaveScoreRecord(ctx context.Context, record *entity.ScoreRecord) error

	// SaveScoreRecords 批量保存计分记录
	SaveScoreRecords(ctx context.Context, records []*entity.ScoreRecord) error

	// FindScoreRecord 根据ID查找计分记录
	FindScoreRecord(ctx context.Context, recordID primitive.ObjectID) (*entity.ScoreRecord, error)

	// FindScoreRecordsByHand 查找同一手牌的计分记录（按时间倒序，分页）
	FindScoreRecordsByHand(ctx context.Context, hand string, limit, offset int) ([]*entity.ScoreRecord, error)
}
