package mahjong

import "fmt"

const (
	FuChiitoitsu = 25
	fuBase       = 20
)

// FuItem 符的明细
type FuItem struct {
	Reason string
	Fu     int
}

// RoundUpFu 向上取整到 10 的倍数
func RoundUpFu(fu int) int {
	return (fu + 9) / 10 * 10
}

// isValueTile 役牌：三元牌、自风、场风
func isValueTile(t, seat, round TileType) bool {
	return t.IsDragon() || t == seat || t == round
}

// isPinfuShape 全部为顺子且雀头不是役牌
// 门清与两面听由调用方判断
func isPinfuShape(blocks []Block, seat, round TileType) bool {
	for _, b := range blocks {
		if b.IsTripletLike() {
			return false
		}
		if b.Kind == BlockPair && isValueTile(b.MinTile, seat, round) {
			return false
		}
	}
	return true
}

// calcFu 计算一种拆分在某个听牌形下的符
// 平和形两面听：门清自摸固定 20 符，荣和固定 30 符，不再走通常计算
func calcFu(blocks []Block, wait WaitType, concealed, tsumo bool, seat, round TileType) (int, []FuItem) {
	if wait == WaitRyanmen && isPinfuShape(blocks, seat, round) {
		if tsumo && concealed {
			return 20, []FuItem{{"pinfu tsumo", 20}}
		}
		if !tsumo && concealed {
			return 30, []FuItem{{"pinfu ron", 30}}
		}
		if !tsumo {
			return 30, []FuItem{{"open ron minimum", 30}}
		}
	}

	items := []FuItem{{"base", fuBase}}
	fu := fuBase
	add := func(reason string, n int) {
		items = append(items, FuItem{reason, n})
		fu += n
	}

	if concealed && !tsumo {
		add("concealed ron", 10)
	} else if tsumo {
		add("tsumo", 2)
	}

	switch wait {
	case WaitKanchan, WaitPenchan, WaitTanki:
		add("wait "+wait.String(), 2)
	}

	for _, b := range blocks {
		switch {
		case b.IsTripletLike():
			n := 2
			if !b.Open {
				n *= 2
			}
			if b.Kind == BlockQuad {
				n *= 4
			}
			if b.MinTile.IsYaochu() {
				n *= 2
			}
			add(fmt.Sprintf("%s %s", blockFuName(b), b), n)
		case b.Kind == BlockPair:
			if b.MinTile.IsDragon() {
				add(fmt.Sprintf("dragon pair %s", b), 2)
			}
			if b.MinTile == seat {
				add(fmt.Sprintf("seat wind pair %s", b), 2)
			}
			if b.MinTile == round {
				add(fmt.Sprintf("round wind pair %s", b), 2)
			}
		}
	}

	return RoundUpFu(fu), items
}

func blockFuName(b Block) string {
	state := "concealed"
	if b.Open {
		state = "open"
	}
	return state + " " + b.Kind.String()
}
