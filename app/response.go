package app

import (
	"mahjongscore/core/domain/entity"
	"mahjongscore/game/engines/mahjong"
)

// ScoreResponse 计分结果的输出格式
type ScoreResponse struct {
	Index   int          `json:"index"`
	Hand    string       `json:"hand,omitempty"`
	Win     string       `json:"win,omitempty"`
	Yaku    []YakuEntry  `json:"yaku,omitempty"`
	Yakuman int          `json:"yakuman,omitempty"`
	Han     int          `json:"han,omitempty"`
	Fu      int          `json:"fu,omitempty"`
	FuItems []FuEntry    `json:"fuItems,omitempty"`
	Title   string       `json:"title,omitempty"`
	Blocks  []string     `json:"blocks,omitempty"`
	Wait    string       `json:"wait,omitempty"`
	Payment *PaymentJSON `json:"payment,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type YakuEntry struct {
	Name string `json:"name"`
	Han  int    `json:"han"`
}

type FuEntry struct {
	Reason string `json:"reason"`
	Fu     int    `json:"fu"`
}

type PaymentJSON struct {
	Total         int `json:"total"`
	FromDealer    int `json:"fromDealer,omitempty"`
	FromNonDealer int `json:"fromNonDealer,omitempty"`
	FromDiscarder int `json:"fromDiscarder,omitempty"`
}

// NewScoreResponse 转换计算结果
func NewScoreResponse(index int, r *mahjong.Result) *ScoreResponse {
	resp := &ScoreResponse{
		Index:   index,
		Hand:    r.Hand.String(),
		Win:     r.WinTile.String(),
		Yakuman: r.Yakuman,
		Han:     r.Han,
		Fu:      r.Fu,
		Title:   r.Title.String(),
		Payment: &PaymentJSON{
			Total:         r.Payment.Total,
			FromDealer:    r.Payment.FromDealer,
			FromNonDealer: r.Payment.FromNonDealer,
			FromDiscarder: r.Payment.FromDiscarder,
		},
	}
	for _, yh := range r.YakuHan {
		resp.Yaku = append(resp.Yaku, YakuEntry{Name: yh.Yaku.String(), Han: yh.Han})
	}
	for _, item := range r.FuItems {
		resp.FuItems = append(resp.FuItems, FuEntry{Reason: item.Reason, Fu: item.Fu})
	}
	for _, b := range r.Blocks {
		resp.Blocks = append(resp.Blocks, b.String())
	}
	if r.Wait != mahjong.WaitNone {
		resp.Wait = r.Wait.String()
	}
	return resp
}

// NewErrorResponse 计分失败
func NewErrorResponse(index int, err error) *ScoreResponse {
	return &ScoreResponse{Index: index, Error: err.Error()}
}

// NewScoreRecord 转换为持久化记录
func NewScoreRecord(r *mahjong.Result, flags mahjong.HandFlag, s mahjong.Situation) *entity.ScoreRecord {
	record := entity.NewScoreRecord(r.Hand.String(), r.WinTile.String(), flags.String())
	record.Situation = entity.SituationRecord{
		RoundWind:    s.RoundWind.String(),
		SeatWind:     s.SeatWind.String(),
		Honba:        s.Honba,
		RiichiSticks: s.RiichiSticks,
		Dora:         mahjong.FormatTiles(s.DoraIndicators),
		UraDora:      mahjong.FormatTiles(s.UraDoraIndicators),
	}
	for _, yh := range r.YakuHan {
		record.Yaku = append(record.Yaku, entity.YakuRecord{Name: yh.Yaku.String(), Han: yh.Han})
	}
	record.Yakuman = r.Yakuman
	record.Han = r.Han
	record.Fu = r.Fu
	record.Title = r.Title.String()
	record.Payment = entity.PaymentRecord{
		Total:         r.Payment.Total,
		FromDealer:    r.Payment.FromDealer,
		FromNonDealer: r.Payment.FromNonDealer,
		FromDiscarder: r.Payment.FromDiscarder,
	}
	return record
}
