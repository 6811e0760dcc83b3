package app

import (
	"fmt"
	"strings"

	"mahjongscore/common/config"
	"mahjongscore/game/engines/mahjong"
)

// ScoreRequest 一次计分请求，牌使用 mpsz 记法
type ScoreRequest struct {
	Hand      string            `json:"hand"`
	Melds     []MeldRequest     `json:"melds,omitempty"`
	Win       string            `json:"win"`
	Flags     []string          `json:"flags,omitempty"`
	Situation *SituationRequest `json:"situation,omitempty"` // 为空时使用配置中的场况
}

type MeldRequest struct {
	Type  string `json:"type"` // chi, pon, ankan, minkan, kakan
	Tiles string `json:"tiles"`
}

type SituationRequest struct {
	RoundWind         string `json:"roundWind"`
	SeatWind          string `json:"seatWind"`
	Honba             int    `json:"honba"`
	RiichiSticks      int    `json:"riichiSticks"`
	DoraIndicators    string `json:"doraIndicators,omitempty"`
	UraDoraIndicators string `json:"uraDoraIndicators,omitempty"`
}

// parsedRequest 解析后的请求
type parsedRequest struct {
	hand      *mahjong.Hand
	win       mahjong.TileType
	flags     mahjong.HandFlag
	situation mahjong.Situation
}

// Key 缓存键，同一请求在同一场况下结果相同
func (r *ScoreRequest) Key() string {
	var sb strings.Builder
	sb.WriteString(r.Hand)
	for _, m := range r.Melds {
		fmt.Fprintf(&sb, "|%s:%s", m.Type, m.Tiles)
	}
	fmt.Fprintf(&sb, "|win:%s|flags:%s", r.Win, strings.Join(r.Flags, ","))
	if s := r.Situation; s != nil {
		fmt.Fprintf(&sb, "|sit:%s,%s,%d,%d,%s,%s", s.RoundWind, s.SeatWind, s.Honba, s.RiichiSticks, s.DoraIndicators, s.UraDoraIndicators)
	}
	return sb.String()
}

func (r *ScoreRequest) parse(defaults mahjong.Situation) (*parsedRequest, error) {
	tiles, err := mahjong.ParseTiles(r.Hand)
	if err != nil {
		return nil, err
	}
	melds := make([]mahjong.MeldedBlock, 0, len(r.Melds))
	for _, m := range r.Melds {
		mt, err := mahjong.ParseMeldType(m.Type)
		if err != nil {
			return nil, err
		}
		mtiles, err := mahjong.ParseTiles(m.Tiles)
		if err != nil {
			return nil, err
		}
		melds = append(melds, mahjong.MeldedBlock{Type: mt, Tiles: mtiles})
	}
	hand, err := mahjong.NewHand(tiles, melds...)
	if err != nil {
		return nil, err
	}
	win, err := mahjong.ParseTile(r.Win)
	if err != nil {
		return nil, err
	}
	flags, err := mahjong.ParseHandFlags(r.Flags)
	if err != nil {
		return nil, err
	}

	situation := defaults
	if r.Situation != nil {
		situation, err = parseSituation(r.Situation.RoundWind, r.Situation.SeatWind,
			r.Situation.Honba, r.Situation.RiichiSticks,
			r.Situation.DoraIndicators, r.Situation.UraDoraIndicators)
		if err != nil {
			return nil, err
		}
	}
	return &parsedRequest{hand: hand, win: win, flags: flags, situation: situation}, nil
}

// SituationFromConfig 由配置构造默认场况
func SituationFromConfig(c config.SituationConf) (mahjong.Situation, error) {
	return parseSituation(c.RoundWind, c.SeatWind, c.Honba, c.RiichiSticks, c.DoraIndicators, c.UraDoraIndicators)
}

func parseSituation(round, seat string, honba, sticks int, dora, ura string) (mahjong.Situation, error) {
	var s mahjong.Situation
	var err error
	if s.RoundWind, err = mahjong.ParseTile(round); err != nil {
		return s, fmt.Errorf("round wind: %w", err)
	}
	if s.SeatWind, err = mahjong.ParseTile(seat); err != nil {
		return s, fmt.Errorf("seat wind: %w", err)
	}
	if s.DoraIndicators, err = mahjong.ParseTiles(dora); err != nil {
		return s, fmt.Errorf("dora indicators: %w", err)
	}
	if s.UraDoraIndicators, err = mahjong.ParseTiles(ura); err != nil {
		return s, fmt.Errorf("ura dora indicators: %w", err)
	}
	s.Honba = honba
	s.RiichiSticks = sticks
	return s, nil
}
