package mahjong

// WinShape 和了形
type WinShape int

const (
	ShapeNone       WinShape = iota // 未和了
	ShapeNormal                     // 4 面子 1 雀头
	ShapeChiitoitsu                 // 七对子
	ShapeKokushi                    // 国士无双
)

func (s WinShape) String() string {
	switch s {
	case ShapeNormal:
		return "normal"
	case ShapeChiitoitsu:
		return "chiitoitsu"
	case ShapeKokushi:
		return "kokushi"
	}
	return "none"
}

// WinChecker 判断手牌是否已经和了，返回和了形
type WinChecker interface {
	Check(hand *Hand) WinShape
}

// TableWinChecker 基于拆分表的和了判定
type TableWinChecker struct {
	tables *Tables
}

func NewTableWinChecker(tables *Tables) *TableWinChecker {
	return &TableWinChecker{tables: tables}
}

// Check 依次判定一般形、七对子、国士无双
func (c *TableWinChecker) Check(hand *Hand) WinShape {
	if len(GenerateBlockPatterns(c.tables, hand, Man1, true)) > 0 {
		return ShapeNormal
	}
	if IsChiitoitsu(hand) {
		return ShapeChiitoitsu
	}
	if IsKokushi(hand) {
		return ShapeKokushi
	}
	return ShapeNone
}

// IsChiitoitsu 7 种不同的对子，不能有副露
func IsChiitoitsu(hand *Hand) bool {
	if hand.IsMelded() {
		return false
	}
	pairs := 0
	for _, c := range hand.Suits {
		pairs += c.KindsAtLeast(2)
	}
	return pairs == 7 && hand.TileCount() == HandSize
}

// yaochuMasks 各花色中幺九牌所在的掩码
var yaochuMasks = [4]Counter{TerminalMask, TerminalMask, TerminalMask, HonorMask}

// IsKokushi 13 种幺九牌各至少 1 张，且全部是幺九牌
func IsKokushi(hand *Hand) bool {
	if hand.IsMelded() {
		return false
	}
	kinds, total := 0, 0
	for s, c := range hand.Suits {
		kinds += c.KindsAtLeastIn(yaochuMasks[s], 1)
		total += c.Sum(yaochuMasks[s])
	}
	return kinds == 13 && total == HandSize
}
