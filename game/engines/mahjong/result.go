package mahjong

import (
	"fmt"
	"strings"
)

// YakuHan 成立的役种及番数，役满时 Han 为役满倍数
type YakuHan struct {
	Yaku Yaku
	Han  int
}

// Result 一次计分的结果，创建后不再修改
type Result struct {
	Hand    *Hand
	WinTile TileType
	Tsumo   bool
	Shape   WinShape

	YakuHan []YakuHan
	Yakuman int // 役满倍数合计，非役满为 0
	Han     int
	Fu      int
	FuItems []FuItem
	Title   ScoreTitle

	Blocks []Block // 采用的拆分，七对子、国士无双为空
	Wait   WaitType

	Payment Payment
}

func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hand: %s, win: %s", r.Hand, r.WinTile)
	if r.Tsumo {
		sb.WriteString(" (tsumo)")
	} else {
		sb.WriteString(" (ron)")
	}
	sb.WriteByte('\n')
	for _, yh := range r.YakuHan {
		if yh.Yaku.IsYakuman() {
			fmt.Fprintf(&sb, "  %s x%d\n", yh.Yaku, yh.Han)
		} else {
			fmt.Fprintf(&sb, "  %s %d han\n", yh.Yaku, yh.Han)
		}
	}
	if r.Yakuman == 0 && r.Han > 0 {
		fmt.Fprintf(&sb, "%d han %d fu", r.Han, r.Fu)
		if r.Title != TitleNone {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(r.Title.String())
	fmt.Fprintf(&sb, "\ntotal %d", r.Payment.Total)
	switch {
	case r.Payment.FromDiscarder > 0:
		fmt.Fprintf(&sb, " (discarder pays %d)", r.Payment.FromDiscarder)
	case r.Payment.FromDealer > 0:
		fmt.Fprintf(&sb, " (dealer pays %d, others pay %d)", r.Payment.FromDealer, r.Payment.FromNonDealer)
	default:
		fmt.Fprintf(&sb, " (all pay %d)", r.Payment.FromNonDealer)
	}
	return sb.String()
}
