package persistence

import (
	"context"
	"errors"
	"fmt"

	"mahjongscore/common/database"
	"mahjongscore/common/log"
	"mahjongscore/core/domain/entity"
	"mahjongscore/core/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultCollection = "score_records"

type ScoreRecordRepository struct {
	collection *mongo.Collection
}

func NewScoreRecordRepository(manager *database.MongoManager, collection string) repository.ScoreRecordRepository {
	if collection == "" {
		collection = DefaultCollection
	}
	return &ScoreRecordRepository{collection: manager.Db.Collection(collection)}
}

// SaveScoreRecord 保存计分记录
func (r *ScoreRecordRepository) SaveScoreRecord(ctx context.Context, record *entity.ScoreRecord) error {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		log.Error("保存计分记录失败: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrMongodb, err)
	}
	return nil
}

// SaveScoreRecords 批量保存计分记录（使用 MongoDB InsertMany）
func (r *ScoreRecordRepository) SaveScoreRecords(ctx context.Context, records []*entity.ScoreRecord) error {
	docs := make([]any, 0, len(records))
	for _, record := range records {
		if record != nil {
			docs = append(docs, record)
		}
	}
	if len(docs) == 0 {
		return nil
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		log.Error("批量保存计分记录失败: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrMongodb, err)
	}
	log.Info("批量保存计分记录成功: count=%d", len(docs))
	return nil
}

// FindScoreRecord 根据ID查找计分记录
func (r *ScoreRecordRepository) FindScoreRecord(ctx context.Context, recordID primitive.ObjectID) (*entity.ScoreRecord, error) {
	var record entity.ScoreRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": recordID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrScoreRecordNotFound
		}
		log.Error("查询计分记录失败: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrMongodb, err)
	}
	return &record, nil
}

// FindScoreRecordsByHand 查找同一手牌的计分记录（按时间倒序，分页）
func (r *ScoreRecordRepository) FindScoreRecordsByHand(ctx context.Context, hand string, limit, offset int) ([]*entity.ScoreRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.collection.Find(ctx, bson.M{"hand": hand}, opts)
	if err != nil {
		log.Error("查询计分记录失败: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrMongodb, err)
	}
	defer cursor.Close(ctx)

	var records []*entity.ScoreRecord
	if err := cursor.All(ctx, &records); err != nil {
		log.Error("解析计分记录失败: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrMongodb, err)
	}
	return records, nil
}
