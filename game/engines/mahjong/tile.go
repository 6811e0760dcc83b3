package mahjong

import (
	"fmt"
	"strings"
)

type TileType int

const (
	// 万子 (0-8)
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red

	// 赤宝牌 (34-36)，计分时等同于对应的 5
	RedMan5
	RedPin5
	RedSo5
)

const (
	NumKinds     = 34 // 逻辑牌种数
	NumTileTypes = 37 // 含赤五的牌 ID 总数
)

// Suit 花色
type Suit int

const (
	SuitManzu Suit = iota
	SuitPinzu
	SuitSouzu
	SuitHonor
)

var suitLetters = [4]byte{'m', 'p', 's', 'z'}

func (s Suit) String() string {
	if s < SuitManzu || s > SuitHonor {
		return "?"
	}
	return string(suitLetters[s])
}

// base 花色在 34 种牌中的起始 ID
func (s Suit) base() TileType {
	return TileType(int(s) * 9)
}

// kinds 花色内的牌种数
func (s Suit) kinds() int {
	if s == SuitHonor {
		return 7
	}
	return 9
}

func (t TileType) Valid() bool {
	return t >= Man1 && t <= RedSo5
}

func (t TileType) IsRed() bool {
	return t >= RedMan5 && t <= RedSo5
}

// Normal 赤五转换为普通 5，其他牌原样返回
func (t TileType) Normal() TileType {
	switch t {
	case RedMan5:
		return Man5
	case RedPin5:
		return Pin5
	case RedSo5:
		return So5
	}
	return t
}

func (t TileType) Suit() Suit {
	return Suit(int(t.Normal()) / 9)
}

// Index 花色内的序号，从 0 开始
func (t TileType) Index() int {
	return int(t.Normal()) % 9
}

// Number 牌面数字，数牌 1-9，字牌 1-7
func (t TileType) Number() int {
	return t.Index() + 1
}

func (t TileType) IsHonor() bool {
	n := t.Normal()
	return n >= East && n <= Red
}

func (t TileType) IsWind() bool {
	n := t.Normal()
	return n >= East && n <= North
}

func (t TileType) IsDragon() bool {
	n := t.Normal()
	return n >= White && n <= Red
}

// IsTerminal 数牌的 1 和 9
func (t TileType) IsTerminal() bool {
	return !t.IsHonor() && (t.Index() == 0 || t.Index() == 8)
}

// IsYaochu 幺九牌：老头牌或字牌
func (t TileType) IsYaochu() bool {
	return t.IsHonor() || t.IsTerminal()
}

// String 输出 mpsz 记法，赤五记为 0
func (t TileType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TileType(%d)", int(t))
	}
	if t.IsRed() {
		return "0" + t.Suit().String()
	}
	return fmt.Sprintf("%d%s", t.Number(), t.Suit())
}

// DoraFromIndicator 根据宝牌指示牌求宝牌
// 数牌 9 之后回到 1，风牌东南西北循环，三元牌白发中循环
func DoraFromIndicator(indicator TileType) TileType {
	t := indicator.Normal()
	switch {
	case t.IsDragon():
		return White + (t-White+1)%3
	case t.IsWind():
		return East + (t-East+1)%4
	default:
		return t.Suit().base() + TileType((t.Index()+1)%9)
	}
}

// ParseTiles 解析 mpsz 记法，例如 "123m406p77z"，0 表示赤五
func ParseTiles(s string) ([]TileType, error) {
	var tiles []TileType
	var digits []int
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ':
			continue
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(digits) == 0 {
				return nil, fmt.Errorf("%w: suit %q without numbers in %q", ErrInvalidArgument, r, s)
			}
			suit := Suit(strings.IndexByte("mpsz", byte(r)))
			for _, d := range digits {
				t, err := tileOf(suit, d)
				if err != nil {
					return nil, fmt.Errorf("%w in %q", err, s)
				}
				tiles = append(tiles, t)
			}
			digits = digits[:0]
		default:
			return nil, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidArgument, r, s)
		}
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("%w: trailing numbers without suit in %q", ErrInvalidArgument, s)
	}
	return tiles, nil
}

// MustParseTiles 解析失败时 panic，用于常量与测试
func MustParseTiles(s string) []TileType {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// ParseTile 解析单张牌
func ParseTile(s string) (TileType, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return 0, err
	}
	if len(tiles) != 1 {
		return 0, fmt.Errorf("%w: expected one tile, got %q", ErrInvalidArgument, s)
	}
	return tiles[0], nil
}

func tileOf(suit Suit, d int) (TileType, error) {
	if suit == SuitHonor {
		if d < 1 || d > 7 {
			return 0, fmt.Errorf("%w: honor tile %dz out of range", ErrInvalidArgument, d)
		}
		return East + TileType(d-1), nil
	}
	if d == 0 {
		return RedMan5 + TileType(suit), nil
	}
	return suit.base() + TileType(d-1), nil
}

// FormatTiles 按输入顺序输出 mpsz 记法，相邻同花色合并
func FormatTiles(tiles []TileType) string {
	var sb strings.Builder
	var pending []byte
	cur := Suit(-1)
	flush := func() {
		if len(pending) > 0 {
			sb.Write(pending)
			sb.WriteString(cur.String())
			pending = pending[:0]
		}
	}
	for _, t := range tiles {
		if t.Suit() != cur {
			flush()
			cur = t.Suit()
		}
		if t.IsRed() {
			pending = append(pending, '0')
		} else {
			pending = append(pending, byte('0'+t.Number()))
		}
	}
	flush()
	return sb.String()
}
