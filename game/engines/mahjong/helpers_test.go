package mahjong

import (
	"sync"
	"testing"
)

const (
	suitCatalog  = "../../../resource/suits.json"
	honorCatalog = "../../../resource/honors.json"
)

var (
	tablesOnce sync.Once
	tables     *Tables
	tablesErr  error
)

func loadTables(t testing.TB) *Tables {
	t.Helper()
	tablesOnce.Do(func() {
		tables, tablesErr = LoadTables(suitCatalog, honorCatalog)
	})
	if tablesErr != nil {
		t.Fatalf("load tables: %v", tablesErr)
	}
	return tables
}

func tiles(s string) []TileType {
	return MustParseTiles(s)
}

func tile(s string) TileType {
	return MustParseTiles(s)[0]
}

func meld(typ MeldType, s string) MeldedBlock {
	return MeldedBlock{Type: typ, Tiles: tiles(s)}
}

func newHand(t testing.TB, s string, melds ...MeldedBlock) *Hand {
	t.Helper()
	h, err := NewHand(tiles(s), melds...)
	if err != nil {
		t.Fatalf("NewHand(%q): %v", s, err)
	}
	return h
}

// newCalculator 默认：东场南家，赤宝牌与食断有效
func newCalculator(t testing.TB) *ScoreCalculator {
	t.Helper()
	c, err := NewScoreCalculator(loadTables(t))
	if err != nil {
		t.Fatalf("NewScoreCalculator: %v", err)
	}
	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: South}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	return c
}

func hasYaku(r *Result, y Yaku) bool {
	for _, yh := range r.YakuHan {
		if yh.Yaku == y {
			return true
		}
	}
	return false
}
