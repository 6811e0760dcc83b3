package mahjong

import (
	"errors"
	"strings"
	"testing"
)

func calc(t *testing.T, c *ScoreCalculator, h *Hand, win string, flags HandFlag) *Result {
	t.Helper()
	r, err := c.Calc(h, tile(win), flags)
	if err != nil {
		t.Fatalf("Calc(%s, %s, %s): %v", h, win, flags, err)
	}
	return r
}

func checkPayment(t *testing.T, r *Result, total, fromDealer, fromNonDealer, fromDiscarder int) {
	t.Helper()
	p := r.Payment
	if p.Total != total || p.FromDealer != fromDealer || p.FromNonDealer != fromNonDealer || p.FromDiscarder != fromDiscarder {
		t.Fatalf("unexpected payment %+v for\n%s", p, r)
	}
}

func TestCalcPinfuIttsuu(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "123456789m234p55s")

	r := calc(t, c, h, "4p", FlagTsumo)
	if r.Han != 4 || r.Fu != 20 || r.Wait != WaitRyanmen {
		t.Fatalf("tsumo: expected 4 han 20 fu ryanmen, got %d han %d fu %s", r.Han, r.Fu, r.Wait)
	}
	for _, y := range []Yaku{YakuMenzenTsumo, YakuPinfu, YakuIttsuu} {
		if !hasYaku(r, y) {
			t.Fatalf("tsumo: missing %s", y)
		}
	}
	checkPayment(t, r, 5200, 2600, 1300, 0)

	r = calc(t, c, h, "4p", 0)
	if r.Han != 3 || r.Fu != 30 || r.Tsumo {
		t.Fatalf("ron: expected 3 han 30 fu, got %d han %d fu", r.Han, r.Fu)
	}
	checkPayment(t, r, 3900, 0, 0, 3900)
}

func TestCalcDoraAndRiichi(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "123456789m234p55s")

	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: South, DoraIndicators: tiles("1m")}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	r := calc(t, c, h, "4p", FlagRiichi)
	if r.Han != 5 || r.Title != TitleMangan || !hasYaku(r, YakuDora) {
		t.Fatalf("expected riichi mangan with dora, got\n%s", r)
	}
	checkPayment(t, r, 8000, 0, 0, 8000)

	// 未立直时里宝牌不计
	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: South, UraDoraIndicators: tiles("1m")}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	r = calc(t, c, h, "4p", FlagTsumo)
	if r.Han != 4 || hasYaku(r, YakuUraDora) {
		t.Fatalf("ura dora without riichi must not count, got\n%s", r)
	}
	r = calc(t, c, h, "4p", FlagTsumo|FlagRiichi)
	if r.Han != 6 || !hasYaku(r, YakuUraDora) {
		t.Fatalf("expected riichi tsumo with ura dora, got\n%s", r)
	}
}

func TestCalcAkaDora(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "123456789m234p50s")

	r := calc(t, c, h, "4p", FlagTsumo)
	if r.Title != TitleMangan || !hasYaku(r, YakuAkaDora) {
		t.Fatalf("expected mangan with aka dora, got\n%s", r)
	}
	checkPayment(t, r, 8000, 4000, 2000, 0)

	c.SetRule(RuleAkaDora, false)
	r = calc(t, c, h, "4p", FlagTsumo)
	if r.Han != 4 || hasYaku(r, YakuAkaDora) {
		t.Fatalf("aka dora rule off, got\n%s", r)
	}
	checkPayment(t, r, 5200, 2600, 1300, 0)
}

func TestCalcHonbaAndDealer(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "123456789m234p55s")

	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: South, Honba: 2, RiichiSticks: 1}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	checkPayment(t, calc(t, c, h, "4p", FlagTsumo), 6800, 2800, 1500, 0)

	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: East}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	checkPayment(t, calc(t, c, h, "4p", FlagTsumo), 7800, 0, 2600, 0)
}

func TestCalcBestInterpretation(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "111222333m456p88s")

	r := calc(t, c, h, "3m", FlagTsumo)
	if r.Han != 3 || r.Fu != 40 || !hasYaku(r, YakuSanankou) || r.Wait != WaitShanpon {
		t.Fatalf("tsumo: expected sanankou 3 han 40 fu, got\n%s", r)
	}
	checkPayment(t, r, 5200, 2600, 1300, 0)

	r = calc(t, c, h, "3m", 0)
	if r.Han != 1 || r.Fu != 40 || !hasYaku(r, YakuIipeikou) || r.Wait != WaitPenchan {
		t.Fatalf("ron: expected iipeikou 1 han 40 fu, got\n%s", r)
	}
	checkPayment(t, r, 1300, 0, 0, 1300)
}

func TestCalcOpenHands(t *testing.T) {
	c := newCalculator(t)

	h := newHand(t, "234m567p88p345s", meld(MeldPon, "777z"))
	r := calc(t, c, h, "8p", 0)
	if r.Han != 1 || r.Fu != 30 || !hasYaku(r, YakuChun) {
		t.Fatalf("chun: expected 1 han 30 fu, got\n%s", r)
	}
	checkPayment(t, r, 1000, 0, 0, 1000)

	if _, err := c.Calc(h, tile("8p"), FlagRiichi); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("riichi on open hand: expected ErrInvalidArgument, got %v", err)
	}

	// 副露中的宝牌
	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: South, DoraIndicators: tiles("6z")}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	r = calc(t, c, h, "8p", 0)
	if r.Han != 4 || r.Fu != 30 {
		t.Fatalf("chun with 3 dora: expected 4 han 30 fu, got\n%s", r)
	}
	checkPayment(t, r, 7700, 0, 0, 7700)
}

func TestCalcOpenTanyao(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "567p88p345s678s", meld(MeldChi, "234m"))

	r := calc(t, c, h, "8p", 0)
	if r.Han != 1 || r.Fu != 30 || !hasYaku(r, YakuTanyao) {
		t.Fatalf("open tanyao: expected 1 han 30 fu, got\n%s", r)
	}
	checkPayment(t, r, 1000, 0, 0, 1000)

	c.SetRule(RuleOpenTanyao, false)
	if _, err := c.Calc(h, tile("8p"), 0); !errors.Is(err, ErrNoYaku) {
		t.Fatalf("open tanyao off: expected ErrNoYaku, got %v", err)
	}

	c.SetRule(RuleOpenTanyao, true)
	h = newHand(t, "567p88p345s678s", meld(MeldChi, "123m"))
	if _, err := c.Calc(h, tile("8p"), 0); !errors.Is(err, ErrNoYaku) {
		t.Fatalf("terminal chi: expected ErrNoYaku, got %v", err)
	}
}

func TestCalcChiitoitsu(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "1122m5566p99s1133z")

	r := calc(t, c, h, "3z", FlagTsumo)
	if r.Shape != ShapeChiitoitsu || r.Han != 3 || r.Fu != FuChiitoitsu || len(r.Blocks) != 0 || r.Wait != WaitTanki {
		t.Fatalf("expected chiitoitsu tsumo 3 han 25 fu, got\n%s", r)
	}
	checkPayment(t, r, 3200, 1600, 800, 0)
}

func TestCalcRinshanWithAnkan(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "234m567p88p345s", meld(MeldAnkan, "1111z"))

	r := calc(t, c, h, "8p", FlagTsumo|FlagRinshan)
	for _, y := range []Yaku{YakuRinshan, YakuMenzenTsumo, YakuRoundEast} {
		if !hasYaku(r, y) {
			t.Fatalf("missing %s in\n%s", y, r)
		}
	}
	if r.Han != 3 || r.Fu != 60 {
		t.Fatalf("expected 3 han 60 fu, got %d han %d fu", r.Han, r.Fu)
	}
	checkPayment(t, r, 7900, 3900, 2000, 0)
}

func TestCalcYakuman(t *testing.T) {
	c := newCalculator(t)

	tests := []struct {
		name    string
		hand    string
		win     string
		flags   HandFlag
		yaku    Yaku
		yakuman int
		total   int
	}{
		{"daisangen", "123m99p555666777z", "7z", FlagTsumo, YakuDaisangen, 1, 32000},
		{"kokushi", "119m19p19s1234567z", "9m", 0, YakuKokushi, 1, 32000},
		{"kokushi 13 wait", "119m19p19s1234567z", "1m", 0, YakuKokushi13, 2, 64000},
		{"suuankou tanki", "111m555p777s22233z", "3z", FlagTsumo, YakuSuuankouTanki, 2, 64000},
		{"suuankou", "111m555p777s22233z", "2z", FlagTsumo, YakuSuuankou, 1, 32000},
		{"ryuuiisou", "22334466888s666z", "8s", FlagTsumo, YakuRyuuiisou, 1, 32000},
		{"junsei chuuren", "11123455678999m", "5m", FlagTsumo, YakuJunseiChuuren, 2, 64000},
		{"chuuren", "11112345678999m", "9m", 0, YakuChuuren, 1, 32000},
		{"combined", "111555666777z22z", "2z", FlagTsumo, YakuTsuuiisou, 4, 128000},
	}
	for _, tt := range tests {
		r, err := c.Calc(newHand(t, tt.hand), tile(tt.win), tt.flags)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if !hasYaku(r, tt.yaku) || r.Yakuman != tt.yakuman || r.Payment.Total != tt.total {
			t.Fatalf("%s: expected %s x%d total %d, got\n%s", tt.name, tt.yaku, tt.yakuman, tt.total, r)
		}
		if r.Han != 0 || r.Fu != 0 || r.Title != YakumanTitle(tt.yakuman) {
			t.Fatalf("%s: limit hand must carry only a title, got\n%s", tt.name, r)
		}
	}
}

func TestCalcYakumanIgnoresDora(t *testing.T) {
	c := newCalculator(t)
	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: South, DoraIndicators: tiles("6z")}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	r := calc(t, c, newHand(t, "123m99p555666777z"), "7z", FlagTsumo)
	if r.Han != 0 || hasYaku(r, YakuDora) || len(r.YakuHan) != 1 {
		t.Fatalf("dora must not count on a limit hand, got\n%s", r)
	}
	checkPayment(t, r, 32000, 16000, 8000, 0)
}

func TestCalcSuuankouRon(t *testing.T) {
	c := newCalculator(t)
	r := calc(t, c, newHand(t, "111m555p777s22233z"), "2z", 0)
	if r.Yakuman != 0 || r.Han != 5 || r.Title != TitleMangan {
		t.Fatalf("ron on a triplet: expected 5 han mangan, got\n%s", r)
	}
	for _, y := range []Yaku{YakuToitoi, YakuSanankou, YakuSeatSouth} {
		if !hasYaku(r, y) {
			t.Fatalf("missing %s in\n%s", y, r)
		}
	}
	checkPayment(t, r, 8000, 0, 0, 8000)
}

func TestCalcTenhou(t *testing.T) {
	c := newCalculator(t)
	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: East}); err != nil {
		t.Fatalf("SetSituation: %v", err)
	}
	r := calc(t, c, newHand(t, "123456789m234p55s"), "4p", FlagTsumo|FlagTenhou)
	if !hasYaku(r, YakuTenhou) || r.Title != TitleYakuman {
		t.Fatalf("expected tenhou, got\n%s", r)
	}
	checkPayment(t, r, 48000, 0, 16000, 0)
}

func TestCalcNagashiMangan(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "123456789m234p55s")

	// 不带自摸标志时结果仍是荣和，但按自摸满贯支付
	r := calc(t, c, h, "4p", FlagNagashiMangan)
	if r.Tsumo || r.Title != TitleMangan || !hasYaku(r, YakuNagashiMangan) {
		t.Fatalf("expected nagashi mangan keeping the ron flag, got\n%s", r)
	}
	checkPayment(t, r, 8000, 4000, 2000, 0)
	if s := r.String(); !strings.Contains(s, "(ron)") || !strings.Contains(s, "dealer pays 4000") {
		t.Fatalf("unexpected result string %q", s)
	}

	r = calc(t, c, h, "4p", FlagNagashiMangan|FlagTsumo)
	if !r.Tsumo {
		t.Fatalf("tsumo flag must be kept")
	}
	checkPayment(t, r, 8000, 4000, 2000, 0)
}

func TestCalcErrors(t *testing.T) {
	c := newCalculator(t)
	h := newHand(t, "123456789m234p55s")

	tests := []struct {
		name  string
		hand  *Hand
		win   string
		flags HandFlag
		err   error
	}{
		{"riichi and double riichi", h, "4p", FlagRiichi | FlagDoubleRiichi, ErrInvalidArgument},
		{"ippatsu without riichi", h, "4p", FlagIppatsu, ErrInvalidArgument},
		{"rinshan without tsumo", h, "4p", FlagRinshan, ErrInvalidArgument},
		{"houtei with tsumo", h, "4p", FlagTsumo | FlagHoutei, ErrInvalidArgument},
		{"tenhou and renhou", h, "4p", FlagTsumo | FlagTenhou | FlagRenhou, ErrInvalidArgument},
		{"win tile not in hand", h, "9s", FlagTsumo, ErrInvalidArgument},
		{"nil hand", nil, "4p", 0, ErrInvalidArgument},
		{"not winning", newHand(t, "123456789m24p557s"), "5s", FlagTsumo, ErrNotWinning},
	}
	for _, tt := range tests {
		if _, err := c.Calc(tt.hand, tile(tt.win), tt.flags); !errors.Is(err, tt.err) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.err, err)
		}
	}
}

type stubChecker struct{ shape WinShape }

func (s stubChecker) Check(*Hand) WinShape { return s.shape }

func TestCalculatorConfiguration(t *testing.T) {
	if _, err := NewScoreCalculator(nil); !errors.Is(err, ErrTableNotLoaded) {
		t.Fatalf("expected ErrTableNotLoaded, got %v", err)
	}

	c := newCalculator(t)
	if c.Rules() != RuleAkaDora|RuleOpenTanyao {
		t.Fatalf("unexpected default rules %b", c.Rules())
	}
	if err := c.SetSituation(Situation{RoundWind: Man1, SeatWind: East}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("non-wind round: expected ErrInvalidArgument, got %v", err)
	}
	if err := c.SetSituation(Situation{RoundWind: East, SeatWind: East, Honba: -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("negative honba: expected ErrInvalidArgument, got %v", err)
	}
	if c.Situation().SeatWind != South {
		t.Fatalf("failed SetSituation must keep the previous situation")
	}

	c.SetWinChecker(stubChecker{ShapeNone})
	if _, err := c.Calc(newHand(t, "123456789m234p55s"), Pin4, FlagTsumo); !errors.Is(err, ErrNotWinning) {
		t.Fatalf("stub checker: expected ErrNotWinning, got %v", err)
	}
}

func TestResultString(t *testing.T) {
	c := newCalculator(t)
	s := calc(t, c, newHand(t, "123456789m234p55s"), "4p", FlagTsumo).String()
	for _, want := range []string{"Pinfu", "4 han 20 fu", "total 5200", "dealer pays 2600"} {
		if !strings.Contains(s, want) {
			t.Fatalf("result string %q does not contain %q", s, want)
		}
	}
}

func TestResultStringYakuman(t *testing.T) {
	c := newCalculator(t)
	s := calc(t, c, newHand(t, "111m555p777s22233z"), "3z", FlagTsumo).String()
	if !strings.Contains(s, "Suuankou Tanki x2") || !strings.Contains(s, "Double Yakuman") {
		t.Fatalf("unexpected yakuman string %q", s)
	}
	if !YakuSuuankouTanki.IsYakuman() || YakuRiichi.IsYakuman() {
		t.Fatalf("IsYakuman mismatch")
	}
}

func TestParseHandFlags(t *testing.T) {
	f, err := ParseHandFlags([]string{"tsumo", "Riichi", "ippatsu"})
	if err != nil {
		t.Fatalf("ParseHandFlags: %v", err)
	}
	if f != FlagTsumo|FlagRiichi|FlagIppatsu || f.String() != "tsumo|riichi|ippatsu" {
		t.Fatalf("unexpected flags %s", f)
	}
	if _, err := ParseHandFlags([]string{"kan"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func BenchmarkCalc(b *testing.B) {
	c, err := NewScoreCalculator(loadTables(b))
	if err != nil {
		b.Fatalf("NewScoreCalculator: %v", err)
	}
	h, err := NewHand(MustParseTiles("111222333m456p88s"))
	if err != nil {
		b.Fatalf("NewHand: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Calc(h, Man3, FlagTsumo); err != nil {
			b.Fatalf("Calc: %v", err)
		}
	}
}
