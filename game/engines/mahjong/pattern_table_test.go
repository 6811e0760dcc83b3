package mahjong

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadPatternTableFile(t *testing.T) {
	suits, err := LoadPatternTableFile("testdata/suits.json", false)
	if err != nil {
		t.Fatalf("load suits: %v", err)
	}
	if suits.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", suits.Len())
	}

	// 数字键与字符串键等价
	var ittsuu Counter
	for i := 0; i < 9; i++ {
		ittsuu = ittsuu.Add(i, 1)
	}
	parts := suits.Partitions(ittsuu)
	if len(parts) != 1 || len(parts[0]) != 3 {
		t.Fatalf("expected one partition of three blocks, got %v", parts)
	}
	for i, b := range parts[0] {
		if b.Kind != BlockSequence || b.MinTile != TileType(3*i) {
			t.Fatalf("block %d: unexpected %v", i, b)
		}
	}

	triple := Counter(0).Add(0, 3).Add(1, 3).Add(2, 3)
	if got := len(suits.Partitions(triple)); got != 2 {
		t.Fatalf("expected 2 partitions for 111222333, got %d", got)
	}
	if got := suits.Partitions(Counter(0).Add(0, 1)); len(got) != 0 {
		t.Fatalf("expected no partition for a lone tile, got %v", got)
	}

	honors, err := LoadPatternTableFile("testdata/honors.json", true)
	if err != nil {
		t.Fatalf("load honors: %v", err)
	}
	if _, err := NewTables(suits, honors); err != nil {
		t.Fatalf("NewTables: %v", err)
	}
	if _, err := NewTables(honors, suits); !errors.Is(err, ErrTableNotLoaded) {
		t.Fatalf("swapped tables: expected ErrTableNotLoaded, got %v", err)
	}
}

func TestLoadPatternTableErrors(t *testing.T) {
	if _, err := LoadPatternTableFile("testdata/missing.json", false); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("missing file: expected ErrTableNotFound, got %v", err)
	}
	if _, err := LoadPatternTableFile("testdata/malformed.json", false); !errors.Is(err, ErrTableMalformed) {
		t.Fatalf("malformed file: expected ErrTableMalformed, got %v", err)
	}

	tests := []struct {
		name  string
		honor bool
		data  string
	}{
		{"not json", false, `{`},
		{"unknown symbol", false, `[{"key": "011100000", "pattern": ["1x"]}]`},
		{"sum mismatch", false, `[{"key": "011100000", "pattern": ["2s"]}]`},
		{"odd pattern", false, `[{"key": "011100000", "pattern": ["1s2"]}]`},
		{"sequence past 7", false, `[{"key": "000000011", "pattern": ["7s"]}]`},
		{"honor sequence", true, `[{"key": "1110000", "pattern": ["0s"]}]`},
		{"honor tile out of range", true, `[{"key": "0000003", "pattern": ["7k"]}]`},
		{"short string key", false, `[{"key": "0111", "pattern": ["1s"]}]`},
		{"five copies", false, `[{"key": "500000000", "pattern": []}]`},
		{"numeric key out of range", true, `[{"key": 134217727, "pattern": []}]`},
	}
	for _, tt := range tests {
		if _, err := LoadPatternTable(strings.NewReader(tt.data), tt.honor); !errors.Is(err, ErrTableMalformed) {
			t.Fatalf("%s: expected ErrTableMalformed, got %v", tt.name, err)
		}
	}
}

func TestNewScoreCalculatorRequiresTables(t *testing.T) {
	if _, err := NewScoreCalculator(nil); !errors.Is(err, ErrTableNotLoaded) {
		t.Fatalf("expected ErrTableNotLoaded, got %v", err)
	}
	if _, err := NewScoreCalculator(&Tables{}); !errors.Is(err, ErrTableNotLoaded) {
		t.Fatalf("expected ErrTableNotLoaded for empty tables, got %v", err)
	}
}
