package mahjong

import "fmt"

// BlockKind 面子类型
type BlockKind int

const (
	BlockSequence BlockKind = iota // 顺子
	BlockTriplet                   // 刻子
	BlockQuad                      // 杠子
	BlockPair                      // 雀头
)

var blockKindNames = [...]string{"sequence", "triplet", "quad", "pair"}

func (k BlockKind) String() string {
	if k < BlockSequence || k > BlockPair {
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
	return blockKindNames[k]
}

// Block 面子或雀头
// Open 表示明面子：来自副露，或者荣和时被和了牌补全的面子
type Block struct {
	Kind    BlockKind
	MinTile TileType
	Open    bool
	Melded  bool // 来自副露
}

func (b Block) Size() int {
	switch b.Kind {
	case BlockQuad:
		return 4
	case BlockPair:
		return 2
	}
	return 3
}

// Contains 面子是否包含某种牌
func (b Block) Contains(t TileType) bool {
	t = t.Normal()
	if b.Kind == BlockSequence {
		return t.Suit() == b.MinTile.Suit() && t >= b.MinTile && t <= b.MinTile+2
	}
	return t == b.MinTile
}

// IsTripletLike 刻子或杠子
func (b Block) IsTripletLike() bool {
	return b.Kind == BlockTriplet || b.Kind == BlockQuad
}

// HasYaochu 面子中是否含幺九牌
func (b Block) HasYaochu() bool {
	if b.Kind == BlockSequence {
		return b.MinTile.Index() == 0 || b.MinTile.Index() == 6
	}
	return b.MinTile.IsYaochu()
}

// offset 表中的面子按花色偏移到 34 种牌的 ID
func (b Block) offset(s Suit) Block {
	b.MinTile += s.base()
	return b
}

func (b Block) String() string {
	tiles := make([]TileType, 0, b.Size())
	for i := 0; i < b.Size(); i++ {
		if b.Kind == BlockSequence {
			tiles = append(tiles, b.MinTile+TileType(i))
		} else {
			tiles = append(tiles, b.MinTile)
		}
	}
	s := FormatTiles(tiles)
	if b.Open {
		return "<" + s + ">"
	}
	return "[" + s + "]"
}

// WaitType 听牌形
type WaitType int

const (
	WaitRyanmen WaitType = iota // 两面
	WaitPenchan                 // 边张
	WaitKanchan                 // 嵌张
	WaitShanpon                 // 双碰
	WaitTanki                   // 单骑
	WaitNone    WaitType = -1   // 七对子、国士无双等不按面子拆分的和了形
)

var waitTypeNames = [...]string{"ryanmen", "penchan", "kanchan", "shanpon", "tanki"}

func (w WaitType) String() string {
	if w < WaitRyanmen || w > WaitTanki {
		return "none"
	}
	return waitTypeNames[w]
}

// waitOf 和了牌补全该面子时的听牌形，不含和了牌时返回 false
func waitOf(b Block, win TileType) (WaitType, bool) {
	win = win.Normal()
	if b.Melded || !b.Contains(win) {
		return WaitNone, false
	}
	switch b.Kind {
	case BlockSequence:
		idx := b.MinTile.Index()
		switch {
		case win == b.MinTile+1:
			return WaitKanchan, true
		case idx == 0 && win == b.MinTile+2, idx == 6 && win == b.MinTile:
			return WaitPenchan, true
		default:
			return WaitRyanmen, true
		}
	case BlockTriplet:
		return WaitShanpon, true
	case BlockPair:
		return WaitTanki, true
	}
	return WaitNone, false
}
