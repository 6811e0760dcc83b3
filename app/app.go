package app

import (
	"context"
	"fmt"
	"io"

	"mahjongscore/common/config"
	"mahjongscore/common/database"
	"mahjongscore/common/log"
	"mahjongscore/core/infrastructure/persistence"
)

// Setup 按配置构造 Scorer，配置了 mongo 时连接数据库
// 返回的 cleanup 关闭缓存与数据库连接
func Setup(ctx context.Context, cfg *config.Config) (*Scorer, func(), error) {
	scorer, err := NewScorer(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := scorer.Close

	mongoConf := cfg.DatabaseConf.MongoConf
	if mongoConf.Enabled() {
		mongo, err := database.NewMongo(ctx, mongoConf)
		if err != nil {
			scorer.Close()
			return nil, nil, err
		}
		scorer.SetRepository(persistence.NewScoreRecordRepository(mongo, mongoConf.Collection))
		cleanup = func() {
			scorer.Close()
			if err := mongo.Close(); err != nil {
				log.Warn("mongodb 断开失败: %v", err)
			}
		}
	}
	return scorer, cleanup, nil
}

// RunScore 计分单个请求并输出结果
func RunScore(ctx context.Context, cfg *config.Config, req *ScoreRequest, w io.Writer) error {
	scorer, cleanup, err := Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := scorer.Score(ctx, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, result)
	return err
}

// RunBatch 批量计分
func RunBatch(ctx context.Context, cfg *config.Config, r io.Reader, w io.Writer) error {
	scorer, cleanup, err := Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = scorer.RunBatch(ctx, r, w)
	return err
}
