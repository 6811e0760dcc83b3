package mahjong

import (
	"fmt"
	"sort"
	"strings"
)

const HandSize = 14

// MeldType 副露类型
type MeldType int

const (
	MeldChi    MeldType = iota // 吃
	MeldPon                    // 碰
	MeldAnkan                  // 暗杠
	MeldMinkan                 // 明杠（大明杠）
	MeldKakan                  // 加杠
)

var meldTypeNames = [...]string{"chi", "pon", "ankan", "minkan", "kakan"}

func (m MeldType) String() string {
	if m < MeldChi || m > MeldKakan {
		return fmt.Sprintf("MeldType(%d)", int(m))
	}
	return meldTypeNames[m]
}

// ParseMeldType 解析副露类型名
func ParseMeldType(s string) (MeldType, error) {
	for i, name := range meldTypeNames {
		if strings.EqualFold(s, name) {
			return MeldType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown meld type %q", ErrInvalidArgument, s)
}

// MeldedBlock 副露面子
type MeldedBlock struct {
	Type  MeldType
	Tiles []TileType
}

func (m MeldedBlock) IsKan() bool {
	return m.Type == MeldAnkan || m.Type == MeldMinkan || m.Type == MeldKakan
}

// IsOpen 暗杠以外的副露都会破坏门清
func (m MeldedBlock) IsOpen() bool {
	return m.Type != MeldAnkan
}

// MinTile 面子中最小的牌（赤五已转换）
func (m MeldedBlock) MinTile() TileType {
	min := m.Tiles[0].Normal()
	for _, t := range m.Tiles[1:] {
		if t.Normal() < min {
			min = t.Normal()
		}
	}
	return min
}

// HasRed 面子中是否含赤五
func (m MeldedBlock) HasRed() bool {
	for _, t := range m.Tiles {
		if t.IsRed() {
			return true
		}
	}
	return false
}

func (m MeldedBlock) validate() error {
	for _, t := range m.Tiles {
		if !t.Valid() {
			return fmt.Errorf("%w: meld tile id %d out of range", ErrInvalidArgument, int(t))
		}
	}
	normal := make([]int, len(m.Tiles))
	for i, t := range m.Tiles {
		normal[i] = int(t.Normal())
	}
	sort.Ints(normal)

	switch m.Type {
	case MeldChi:
		if len(normal) != 3 || TileType(normal[0]).IsHonor() ||
			TileType(normal[0]).Suit() != TileType(normal[2]).Suit() ||
			normal[1] != normal[0]+1 || normal[2] != normal[0]+2 {
			return fmt.Errorf("%w: chi must be three consecutive numeral tiles, got %s", ErrInvalidArgument, FormatTiles(m.Tiles))
		}
	case MeldPon, MeldAnkan, MeldMinkan, MeldKakan:
		want := 3
		if m.IsKan() {
			want = 4
		}
		if len(normal) != want || normal[0] != normal[want-1] {
			return fmt.Errorf("%w: %s must be %d identical tiles, got %s", ErrInvalidArgument, m.Type, want, FormatTiles(m.Tiles))
		}
	default:
		return fmt.Errorf("%w: unknown meld type %d", ErrInvalidArgument, int(m.Type))
	}
	return nil
}

func (m MeldedBlock) String() string {
	return "[" + FormatTiles(m.Tiles) + "]"
}

// Hand 和了时的 14 张手牌
type Hand struct {
	Suits [4]Counter    // 手牌（不含副露）按花色压缩的计数，下标为 Suit
	Reds  [3]int        // 手牌中赤五的张数（万、筒、索）
	Melds []MeldedBlock // 副露面子
	Tiles []TileType    // 手牌原始顺序

	merged bool
}

// NewHand 由手牌和副露构造手牌
// 手牌张数 + 3 × 副露数必须等于 14，杠子也按 3 张计算
func NewHand(tiles []TileType, melds ...MeldedBlock) (*Hand, error) {
	if len(tiles)+3*len(melds) != HandSize {
		return nil, fmt.Errorf("%w: %d tiles with %d melds, want %d tiles in total",
			ErrInvalidArgument, len(tiles), len(melds), HandSize)
	}

	h := &Hand{
		Tiles: append([]TileType(nil), tiles...),
		Melds: make([]MeldedBlock, 0, len(melds)),
	}
	var total [NumKinds]int
	for _, t := range tiles {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: tile id %d out of range", ErrInvalidArgument, int(t))
		}
		n := t.Normal()
		h.Suits[n.Suit()] = h.Suits[n.Suit()].Add(n.Index(), 1)
		if t.IsRed() {
			h.Reds[t.Suit()]++
		}
		total[n]++
	}
	for _, m := range melds {
		if err := m.validate(); err != nil {
			return nil, err
		}
		for _, t := range m.Tiles {
			total[t.Normal()]++
		}
		h.Melds = append(h.Melds, MeldedBlock{Type: m.Type, Tiles: append([]TileType(nil), m.Tiles...)})
	}
	for kind, n := range total {
		if n > 4 {
			return nil, fmt.Errorf("%w: %d copies of %s", ErrInvalidArgument, n, TileType(kind))
		}
	}
	return h, nil
}

// Contains 手牌（不含副露）中是否有该牌，赤五只匹配赤五
func (h *Hand) Contains(t TileType) bool {
	if !t.Valid() {
		return false
	}
	if t.IsRed() {
		return h.Reds[t.Suit()] > 0
	}
	return h.NumTiles(t) > 0
}

// NumTiles 手牌中某种牌的张数，赤五计入对应的 5
func (h *Hand) NumTiles(t TileType) int {
	n := t.Normal()
	return h.Suits[n.Suit()].Count(n.Index())
}

// IsConcealed 门前清判定，暗杠不破坏门清
func (h *Hand) IsConcealed() bool {
	for _, m := range h.Melds {
		if m.IsOpen() {
			return false
		}
	}
	return true
}

// IsMelded 是否有副露（含暗杠）
func (h *Hand) IsMelded() bool {
	return len(h.Melds) > 0
}

// NumKans 杠子数
func (h *Hand) NumKans() int {
	n := 0
	for _, m := range h.Melds {
		if m.IsKan() {
			n++
		}
	}
	return n
}

// Normalize 将副露合并回计数，杠子只计 3 张，合计保持 14 张
// 返回副本，副露列表保留以便区分杠子
func (h *Hand) Normalize() *Hand {
	n := *h
	if h.merged {
		return &n
	}
	for _, m := range h.Melds {
		min := m.MinTile()
		s := min.Suit()
		if m.Type == MeldChi {
			for i := 0; i < 3; i++ {
				n.Suits[s] = n.Suits[s].Add(min.Index()+i, 1)
			}
		} else {
			n.Suits[s] += Tile3(min.Index())
		}
	}
	n.merged = true
	return &n
}

// TileCount 计数合计
func (h *Hand) TileCount() int {
	n := 0
	for _, c := range h.Suits {
		n += c.Total()
	}
	return n
}

func (h *Hand) String() string {
	var sb strings.Builder
	sb.WriteString(FormatTiles(h.Tiles))
	for _, m := range h.Melds {
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	return sb.String()
}
