package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mahjongscore/common/config"
	"mahjongscore/core/domain/entity"
	"mahjongscore/game/engines/mahjong"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrPersistenceDisabled = errors.New("score record persistence is not configured")

// HistoryQuery 查询条件，ID 非空时按 ID 查找，否则按手牌分页
type HistoryQuery struct {
	ID     string
	Hand   string
	Melds  []MeldRequest
	Limit  int
	Offset int
}

// handKey 与保存记录时相同的手牌写法
func handKey(hand string, melds []MeldRequest) (string, error) {
	tiles, err := mahjong.ParseTiles(hand)
	if err != nil {
		return "", err
	}
	blocks := make([]mahjong.MeldedBlock, 0, len(melds))
	for _, m := range melds {
		mt, err := mahjong.ParseMeldType(m.Type)
		if err != nil {
			return "", err
		}
		mtiles, err := mahjong.ParseTiles(m.Tiles)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, mahjong.MeldedBlock{Type: mt, Tiles: mtiles})
	}
	h, err := mahjong.NewHand(tiles, blocks...)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// History 查询已保存的计分记录
func (s *Scorer) History(ctx context.Context, q HistoryQuery) ([]*entity.ScoreRecord, error) {
	if s.repo == nil {
		return nil, ErrPersistenceDisabled
	}
	if q.ID != "" {
		id, err := primitive.ObjectIDFromHex(q.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: record id %q", mahjong.ErrInvalidArgument, q.ID)
		}
		record, err := s.repo.FindScoreRecord(ctx, id)
		if err != nil {
			return nil, err
		}
		return []*entity.ScoreRecord{record}, nil
	}
	if q.Limit < 0 || q.Offset < 0 {
		return nil, fmt.Errorf("%w: negative limit or offset", mahjong.ErrInvalidArgument)
	}
	key, err := handKey(q.Hand, q.Melds)
	if err != nil {
		return nil, err
	}
	return s.repo.FindScoreRecordsByHand(ctx, key, q.Limit, q.Offset)
}

// RunHistory 查询记录，每行输出一个 JSON
func RunHistory(ctx context.Context, cfg *config.Config, q HistoryQuery, w io.Writer) error {
	scorer, cleanup, err := Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := scorer.History(ctx, q)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write history: %w", err)
		}
	}
	return nil
}
