package mahjong

// BlockPattern 一种完整的 4 面子 + 1 雀头拆分
// WinBlock 为荣和时被和了牌补全（视为明面子）的面子下标，自摸时为 -1
type BlockPattern struct {
	Blocks   []Block
	WinBlock int
}

// Waits 和了牌在该拆分下可能构成的所有听牌形
// 荣和只看被补全的面子；自摸看所有含和了牌的暗面子，不去重
func (p BlockPattern) Waits(win TileType) []WaitType {
	if p.WinBlock >= 0 {
		if w, ok := waitOf(p.Blocks[p.WinBlock], win); ok {
			return []WaitType{w}
		}
		return nil
	}
	var waits []WaitType
	for _, b := range p.Blocks {
		if w, ok := waitOf(b, win); ok {
			waits = append(waits, w)
		}
	}
	return waits
}

// meldBlocks 副露转换为面子：吃为明顺子，碰为明刻子，暗杠为暗杠子，其余杠为明杠子
func meldBlocks(h *Hand) []Block {
	blocks := make([]Block, 0, len(h.Melds))
	for _, m := range h.Melds {
		b := Block{MinTile: m.MinTile(), Melded: true, Open: m.IsOpen()}
		switch m.Type {
		case MeldChi:
			b.Kind = BlockSequence
		case MeldPon:
			b.Kind = BlockTriplet
		default:
			b.Kind = BlockQuad
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// GenerateBlockPatterns 枚举手牌的所有拆分
// hand 必须是未合并副露的原始手牌，各花色的拆分做笛卡尔积后以副露面子为前缀
// 某个花色查不到拆分时视为该花色不提供面子，最终只保留恰好 4 面子 + 1 雀头的组合
func GenerateBlockPatterns(tables *Tables, hand *Hand, win TileType, tsumo bool) []BlockPattern {
	g := &generator{
		tables: tables,
		hand:   hand,
		win:    win.Normal(),
		tsumo:  tsumo,
		blocks: meldBlocks(hand),
	}
	g.walk(SuitManzu)
	return g.patterns
}

type generator struct {
	tables   *Tables
	hand     *Hand
	win      TileType
	tsumo    bool
	blocks   []Block
	patterns []BlockPattern
}

func (g *generator) walk(s Suit) {
	if s > SuitHonor {
		g.emit()
		return
	}
	sig := g.hand.Suits[s]
	parts := g.tables.partitions(s, sig)
	if len(parts) == 0 {
		g.walk(s + 1)
		return
	}
	n := len(g.blocks)
	for _, part := range parts {
		for _, b := range part {
			g.blocks = append(g.blocks, b.offset(s))
		}
		g.walk(s + 1)
		g.blocks = g.blocks[:n]
	}
}

func (g *generator) emit() {
	if len(g.blocks) != 5 {
		return
	}
	pairs := 0
	for _, b := range g.blocks {
		if b.Kind == BlockPair {
			pairs++
		}
	}
	if pairs != 1 {
		return
	}

	if g.tsumo {
		g.patterns = append(g.patterns, BlockPattern{
			Blocks:   append([]Block(nil), g.blocks...),
			WinBlock: -1,
		})
		return
	}

	// 荣和：每个能吸收和了牌的暗面子各产生一个候选，相同的顺子只取一个
	var seen []TileType
	for i, b := range g.blocks {
		if b.Melded || !b.Contains(g.win) {
			continue
		}
		if b.Kind == BlockSequence {
			dup := false
			for _, t := range seen {
				if t == b.MinTile {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			seen = append(seen, b.MinTile)
		} else if b.MinTile != g.win {
			continue
		}
		blocks := append([]Block(nil), g.blocks...)
		blocks[i].Open = true
		g.patterns = append(g.patterns, BlockPattern{Blocks: blocks, WinBlock: i})
	}
}
