package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScoreRecord 一次计分的记录
type ScoreRecord struct {
	ID        primitive.ObjectID `bson:"_id"`
	Hand      string             `bson:"hand"`       // mpsz 记法，副露用 [] 包围
	WinTile   string             `bson:"win_tile"`   // 和了牌
	Flags     string             `bson:"flags"`      // 状况标志，| 分隔
	Situation SituationRecord    `bson:"situation"`  // 场况
	Yaku      []YakuRecord       `bson:"yaku"`       // 成立的役种
	Yakuman   int                `bson:"yakuman"`    // 役满倍数
	Han       int                `bson:"han"`        // 番数
	Fu        int                `bson:"fu"`         // 符数
	Title     string             `bson:"title"`      // 满贯等称号
	Payment   PaymentRecord      `bson:"payment"`    // 点数移动
	CreatedAt time.Time          `bson:"created_at"` // 创建时间
}

// SituationRecord 场况
type SituationRecord struct {
	RoundWind    string `bson:"round_wind"`
	SeatWind     string `bson:"seat_wind"`
	Honba        int    `bson:"honba"`
	RiichiSticks int    `bson:"riichi_sticks"`
	Dora         string `bson:"dora,omitempty"`     // 宝牌指示牌
	UraDora      string `bson:"ura_dora,omitempty"` // 里宝牌指示牌
}

// YakuRecord 役种及番数（役满时为倍数）
type YakuRecord struct {
	Name string `bson:"name"`
	Han  int    `bson:"han"`
}

// PaymentRecord 点数移动
type PaymentRecord struct {
	Total         int `bson:"total"`
	FromDealer    int `bson:"from_dealer"`
	FromNonDealer int `bson:"from_non_dealer"`
	FromDiscarder int `bson:"from_discarder"`
}

// NewScoreRecord 创建计分记录
func NewScoreRecord(hand, winTile, flags string) *ScoreRecord {
	return &ScoreRecord{
		ID:        primitive.NewObjectID(),
		Hand:      hand,
		WinTile:   winTile,
		Flags:     flags,
		CreatedAt: time.Now(),
	}
}

// Renew 复制一份新记录，使用新的 ID 与创建时间
func (r *ScoreRecord) Renew() *ScoreRecord {
	record := *r
	record.ID = primitive.NewObjectID()
	record.Yaku = append([]YakuRecord(nil), r.Yaku...)
	record.CreatedAt = time.Now()
	return &record
}
