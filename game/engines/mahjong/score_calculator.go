package mahjong

import (
	"fmt"

	"mahjongscore/common/log"
)

// Situation 场况，在两次计分之间修改
type Situation struct {
	RoundWind         TileType   // 场风
	SeatWind          TileType   // 自风，东为庄家
	Honba             int        // 本场数
	RiichiSticks      int        // 供托数
	DoraIndicators    []TileType // 宝牌指示牌
	UraDoraIndicators []TileType // 里宝牌指示牌
}

// IsDealer 自风为东时为庄家
func (s Situation) IsDealer() bool {
	return s.SeatWind == East
}

func (s Situation) validate() error {
	if !s.RoundWind.IsWind() || !s.SeatWind.IsWind() {
		return fmt.Errorf("%w: round wind %s and seat wind %s must be winds", ErrInvalidArgument, s.RoundWind, s.SeatWind)
	}
	if s.Honba < 0 || s.RiichiSticks < 0 {
		return fmt.Errorf("%w: negative honba or riichi sticks", ErrInvalidArgument)
	}
	for _, t := range append(append([]TileType(nil), s.DoraIndicators...), s.UraDoraIndicators...) {
		if !t.Valid() {
			return fmt.Errorf("%w: indicator id %d out of range", ErrInvalidArgument, int(t))
		}
	}
	return nil
}

// ScoreCalculator 点数计算器
// 表只读共享，规则和场况属于每个计算器自身，不能在计分过程中修改
type ScoreCalculator struct {
	tables    *Tables
	checker   WinChecker
	rules     Rule
	situation Situation
}

// NewScoreCalculator 表未加载时返回错误
// 默认规则：赤宝牌、食断有效，东场东家
func NewScoreCalculator(tables *Tables) (*ScoreCalculator, error) {
	if tables == nil || tables.Suits == nil || tables.Honors == nil || tables.Payments == nil {
		return nil, ErrTableNotLoaded
	}
	return &ScoreCalculator{
		tables:    tables,
		checker:   NewTableWinChecker(tables),
		rules:     RuleAkaDora | RuleOpenTanyao,
		situation: Situation{RoundWind: East, SeatWind: East},
	}, nil
}

// SetWinChecker 替换和了判定
func (c *ScoreCalculator) SetWinChecker(checker WinChecker) {
	c.checker = checker
}

func (c *ScoreCalculator) SetRules(rules Rule) {
	c.rules = rules
}

func (c *ScoreCalculator) SetRule(rule Rule, enabled bool) {
	if enabled {
		c.rules |= rule
	} else {
		c.rules &^= rule
	}
}

func (c *ScoreCalculator) Rules() Rule {
	return c.rules
}

func (c *ScoreCalculator) SetSituation(s Situation) error {
	if err := s.validate(); err != nil {
		return err
	}
	s.DoraIndicators = append([]TileType(nil), s.DoraIndicators...)
	s.UraDoraIndicators = append([]TileType(nil), s.UraDoraIndicators...)
	c.situation = s
	return nil
}

func (c *ScoreCalculator) Situation() Situation {
	return c.situation
}

// Calc 计算和了的点数
// 参数错误返回 ErrInvalidArgument，未和了返回 ErrNotWinning，无役返回 ErrNoYaku
func (c *ScoreCalculator) Calc(hand *Hand, win TileType, flags HandFlag) (*Result, error) {
	if err := c.checkArguments(hand, win, flags); err != nil {
		return nil, err
	}

	result := &Result{
		Hand:    hand,
		WinTile: win,
		Tsumo:   flags.Has(FlagTsumo),
		Wait:    WaitNone,
	}

	// 流局满贯按自摸满贯支付，结果保留调用方的自摸标志
	if flags.Has(FlagNagashiMangan) {
		result.YakuHan = []YakuHan{{YakuNagashiMangan, 0}}
		return c.finishLimit(result, TitleMangan, true)
	}

	shape := c.checker.Check(hand)
	if shape == ShapeNone {
		return nil, fmt.Errorf("%w: %s", ErrNotWinning, hand)
	}
	result.Shape = shape

	ctx := &yakuContext{
		hand:      hand,
		norm:      hand.Normalize(),
		win:       win.Normal(),
		flags:     flags,
		shape:     shape,
		rules:     c.rules,
		seat:      c.situation.SeatWind,
		round:     c.situation.RoundWind,
		concealed: hand.IsConcealed(),
	}

	if yakuman := checkYakuman(ctx); !yakuman.Empty() {
		for _, y := range yakuman.Yakus() {
			result.YakuHan = append(result.YakuHan, YakuHan{y, y.Info().Yakuman})
		}
		result.Yakuman = yakuman.Yakuman()
		return c.finishLimit(result, YakumanTitle(result.Yakuman), result.Tsumo)
	}

	list := checkGeneralYaku(ctx)
	switch shape {
	case ShapeNormal:
		best, ok := c.bestPattern(ctx)
		if !ok {
			return nil, fmt.Errorf("%w: no block pattern for %s", ErrNotWinning, hand)
		}
		list |= best.yaku
		result.Fu = best.fu
		result.FuItems = best.fuItems
		result.Blocks = best.blocks
		result.Wait = best.wait
	case ShapeChiitoitsu:
		result.Fu = FuChiitoitsu
		result.FuItems = []FuItem{{"chiitoitsu", FuChiitoitsu}}
		result.Wait = WaitTanki
	}

	if list.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrNoYaku, hand)
	}

	for _, y := range list.Yakus() {
		han := y.Han(ctx.concealed)
		result.YakuHan = append(result.YakuHan, YakuHan{y, han})
		result.Han += han
	}
	c.addBonusTiles(ctx, result)

	return c.finish(result, ScoreTitleFor(result.Fu, result.Han), result.Tsumo)
}

func (c *ScoreCalculator) checkArguments(hand *Hand, win TileType, flags HandFlag) error {
	if hand == nil {
		return fmt.Errorf("%w: nil hand", ErrInvalidArgument)
	}
	if !win.Valid() {
		return fmt.Errorf("%w: winning tile id %d out of range", ErrInvalidArgument, int(win))
	}
	if !hand.Contains(win) {
		return fmt.Errorf("%w: winning tile %s is not in hand %s", ErrInvalidArgument, win, hand)
	}
	return validateFlags(flags, hand.IsConcealed())
}

type candidate struct {
	yaku    YakuList
	han     int
	fu      int
	fuItems []FuItem
	blocks  []Block
	wait    WaitType
}

// bestPattern 在所有拆分 × 听牌形中选出番数最高者，同番取符高者，再相同时保留先出现的
func (c *ScoreCalculator) bestPattern(ctx *yakuContext) (candidate, bool) {
	patterns := GenerateBlockPatterns(c.tables, ctx.hand, ctx.win, ctx.tsumo())

	best := candidate{han: -1}
	found := false
	for _, p := range patterns {
		list := checkPatternYaku(ctx, p.Blocks)
		han := list.Han(ctx.concealed)

		for _, wait := range p.Waits(ctx.win) {
			cand := list
			candHan := han
			if ctx.concealed && wait == WaitRyanmen && isPinfuShape(p.Blocks, ctx.seat, ctx.round) {
				cand = cand.With(YakuPinfu)
				candHan++
			}
			fu, items := calcFu(p.Blocks, wait, ctx.concealed, ctx.tsumo(), ctx.seat, ctx.round)

			if candHan > best.han || (candHan == best.han && fu > best.fu) {
				best = candidate{yaku: cand, han: candHan, fu: fu, fuItems: items, blocks: p.Blocks, wait: wait}
				found = true
			}
		}
	}
	if found {
		log.Debug("选择拆分: blocks=%v, wait=%s, han=%d, fu=%d, patterns=%d", best.blocks, best.wait, best.han, best.fu, len(patterns))
	}
	return best, found
}

// addBonusTiles 宝牌、里宝牌（仅立直时）、赤宝牌（规则有效时）
func (c *ScoreCalculator) addBonusTiles(ctx *yakuContext, result *Result) {
	add := func(y Yaku, n int) {
		if n > 0 {
			result.YakuHan = append(result.YakuHan, YakuHan{y, n})
			result.Han += n
		}
	}

	add(YakuDora, countDora(ctx.hand, c.situation.DoraIndicators))
	if ctx.flags.Has(FlagRiichi | FlagDoubleRiichi) {
		add(YakuUraDora, countDora(ctx.hand, c.situation.UraDoraIndicators))
	}
	if c.rules.Has(RuleAkaDora) {
		add(YakuAkaDora, countAkaDora(ctx.hand))
	}
}

// countDora 手牌与副露中宝牌的张数，杠子按 4 张计
func countDora(hand *Hand, indicators []TileType) int {
	n := 0
	for _, ind := range indicators {
		dora := DoraFromIndicator(ind)
		n += hand.NumTiles(dora)
		for _, m := range hand.Melds {
			for _, t := range m.Tiles {
				if t.Normal() == dora {
					n++
				}
			}
		}
	}
	return n
}

func countAkaDora(hand *Hand) int {
	n := hand.Reds[0] + hand.Reds[1] + hand.Reds[2]
	for _, m := range hand.Melds {
		for _, t := range m.Tiles {
			if t.IsRed() {
				n++
			}
		}
	}
	return n
}

func (c *ScoreCalculator) finishLimit(result *Result, title ScoreTitle, tsumo bool) (*Result, error) {
	result.Han = 0
	result.Fu = 0
	return c.finish(result, title, tsumo)
}

// finish tsumo 决定按自摸还是荣和支付
func (c *ScoreCalculator) finish(result *Result, title ScoreTitle, tsumo bool) (*Result, error) {
	result.Title = title
	p, err := c.tables.Payments.Payment(title, result.Han, result.Fu,
		c.situation.IsDealer(), tsumo, c.situation.Honba, c.situation.RiichiSticks)
	if err != nil {
		return nil, err
	}
	result.Payment = p
	log.Debug("计分完成: hand=%s, win=%s, title=%s, han=%d, fu=%d, total=%d",
		result.Hand, result.WinTile, title, result.Han, result.Fu, p.Total)
	return result, nil
}
