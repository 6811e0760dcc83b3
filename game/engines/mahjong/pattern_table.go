package mahjong

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"mahjongscore/common/log"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PatternTable 单个花色的拆分表：压缩计数 -> 该花色所有合法的面子/雀头拆分
// 表内面子的 MinTile 为花色内序号（0 起），由生成器按花色偏移
// 加载完成后只读，可被多个计算器并发共享
type PatternTable struct {
	honor   bool
	entries map[Counter][][]Block
}

// patternEntry 拆分表文件中的一条记录
// key 可以是压缩后的整数，也可以是按牌序排列的张数字符串，如 "111111111"
type patternEntry struct {
	Key     jsoniter.RawMessage `json:"key"`
	Pattern []string            `json:"pattern"`
}

// NewPatternTable 创建空表，honor 为 true 时为字牌表（7 种牌，不允许顺子）
func NewPatternTable(honor bool) *PatternTable {
	return &PatternTable{
		honor:   honor,
		entries: make(map[Counter][][]Block),
	}
}

func (t *PatternTable) kinds() int {
	if t.honor {
		return 7
	}
	return 9
}

// Partitions 返回该计数的所有拆分，无法完整拆分时返回空
// 返回值与表共享，调用方不得修改
func (t *PatternTable) Partitions(sig Counter) [][]Block {
	if t == nil {
		return nil
	}
	return t.entries[sig]
}

// Len 表中记录数
func (t *PatternTable) Len() int {
	return len(t.entries)
}

// Add 添加一条记录，每个拆分是一串符号，如 "0s3s6s"
func (t *PatternTable) Add(key Counter, patterns ...string) error {
	if err := t.checkKey(key); err != nil {
		return err
	}
	partitions := make([][]Block, 0, len(patterns))
	for _, p := range patterns {
		blocks, err := t.parsePattern(p)
		if err != nil {
			return err
		}
		var sum Counter
		for _, b := range blocks {
			for i := 0; i < b.Size(); i++ {
				if b.Kind == BlockSequence {
					sum += Tile1(int(b.MinTile) + i)
				} else {
					sum += Tile1(int(b.MinTile))
				}
			}
		}
		if sum != key {
			return fmt.Errorf("%w: pattern %q does not add up to key %s", ErrTableMalformed, p, t.formatKey(key))
		}
		partitions = append(partitions, blocks)
	}
	t.entries[key] = append(t.entries[key], partitions...)
	return nil
}

func (t *PatternTable) checkKey(key Counter) error {
	if key>>(fieldBits*t.kinds()) != 0 {
		return fmt.Errorf("%w: key %d out of range", ErrTableMalformed, uint32(key))
	}
	for i := 0; i < t.kinds(); i++ {
		if key.Count(i) > 4 {
			return fmt.Errorf("%w: key %s holds more than 4 copies of one tile", ErrTableMalformed, t.formatKey(key))
		}
	}
	return nil
}

func (t *PatternTable) parsePattern(p string) ([]Block, error) {
	if len(p)%2 != 0 {
		return nil, fmt.Errorf("%w: odd pattern length %q", ErrTableMalformed, p)
	}
	blocks := make([]Block, 0, len(p)/2)
	for i := 0; i < len(p); i += 2 {
		idx := int(p[i] - '0')
		if idx < 0 || idx >= t.kinds() {
			return nil, fmt.Errorf("%w: tile %q out of range in %q", ErrTableMalformed, p[i], p)
		}
		var b Block
		switch p[i+1] {
		case 'k':
			b.Kind = BlockTriplet
		case 's':
			if t.honor || idx > 6 {
				return nil, fmt.Errorf("%w: illegal sequence %q in %q", ErrTableMalformed, p[i:i+2], p)
			}
			b.Kind = BlockSequence
		case 't':
			b.Kind = BlockPair
		default:
			return nil, fmt.Errorf("%w: unknown block symbol %q in %q", ErrTableMalformed, p[i+1], p)
		}
		b.MinTile = TileType(idx)
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (t *PatternTable) parseKey(raw jsoniter.RawMessage) (Counter, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTableMalformed, err)
		}
		if len(s) != t.kinds() {
			return 0, fmt.Errorf("%w: key %q must have %d digits", ErrTableMalformed, s, t.kinds())
		}
		var key Counter
		for i := 0; i < len(s); i++ {
			n := int(s[i] - '0')
			if n < 0 || n > 4 {
				return 0, fmt.Errorf("%w: key %q has invalid count %q", ErrTableMalformed, s, s[i])
			}
			key = key.Add(i, n)
		}
		return key, nil
	}
	v, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid key %s", ErrTableMalformed, string(raw))
	}
	return Counter(v), nil
}

func (t *PatternTable) formatKey(key Counter) string {
	b := make([]byte, t.kinds())
	for i := range b {
		b[i] = byte('0' + key.Count(i))
	}
	return string(b)
}

// LoadPatternTable 从 JSON 读取拆分表
func LoadPatternTable(r io.Reader, honor bool) (*PatternTable, error) {
	var entries []patternEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTableMalformed, err)
	}
	t := NewPatternTable(honor)
	for _, e := range entries {
		key, err := t.parseKey(e.Key)
		if err != nil {
			return nil, err
		}
		if err := t.Add(key, e.Pattern...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LoadPatternTableFile 从文件读取拆分表
func LoadPatternTableFile(path string, honor bool) (*PatternTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrTableNotFound, err)
	}
	defer f.Close()

	t, err := LoadPatternTable(f, honor)
	if err != nil {
		log.Error("加载拆分表失败: path=%s, err=%v", path, err)
		return nil, err
	}
	log.Info("加载拆分表成功: path=%s, entries=%d", path, t.Len())
	return t, nil
}

// Tables 计分所需的全部只读表
type Tables struct {
	Suits    *PatternTable // 万、筒、索共用
	Honors   *PatternTable
	Payments *PaymentTable
}

// LoadTables 启动时加载数牌表和字牌表，并构建点数表
func LoadTables(suitPath, honorPath string) (*Tables, error) {
	suits, err := LoadPatternTableFile(suitPath, false)
	if err != nil {
		return nil, err
	}
	honors, err := LoadPatternTableFile(honorPath, true)
	if err != nil {
		return nil, err
	}
	return NewTables(suits, honors)
}

// NewTables 由已加载的拆分表组装
func NewTables(suits, honors *PatternTable) (*Tables, error) {
	if suits == nil || honors == nil || suits.honor || !honors.honor {
		return nil, ErrTableNotLoaded
	}
	return &Tables{
		Suits:    suits,
		Honors:   honors,
		Payments: NewPaymentTable(),
	}, nil
}

func (t *Tables) partitions(s Suit, sig Counter) [][]Block {
	if s == SuitHonor {
		return t.Honors.Partitions(sig)
	}
	return t.Suits.Partitions(sig)
}
