package mahjong

import "testing"

func TestScoreTitleFor(t *testing.T) {
	tests := []struct {
		fu, han int
		title   ScoreTitle
	}{
		{30, 1, TitleNone},
		{30, 4, TitleNone},
		{40, 4, TitleMangan},
		{60, 3, TitleNone},
		{70, 3, TitleMangan},
		{20, 5, TitleMangan},
		{30, 6, TitleHaneman},
		{30, 7, TitleHaneman},
		{30, 8, TitleBaiman},
		{30, 10, TitleBaiman},
		{30, 11, TitleSanbaiman},
		{30, 12, TitleSanbaiman},
		{30, 13, TitleKazoeYakuman},
		{30, 20, TitleKazoeYakuman},
	}
	for _, tt := range tests {
		if got := ScoreTitleFor(tt.fu, tt.han); got != tt.title {
			t.Fatalf("%d han %d fu: expected %s, got %s", tt.han, tt.fu, tt.title, got)
		}
	}

	if YakumanTitle(1) != TitleYakuman || YakumanTitle(2) != TitleDoubleYakuman ||
		YakumanTitle(6) != TitleSextupleYakuman || YakumanTitle(9) != TitleSextupleYakuman {
		t.Fatalf("yakuman titles mismatch")
	}
}

func TestPaymentTable(t *testing.T) {
	pt := NewPaymentTable()
	tests := []struct {
		name                string
		title               ScoreTitle
		han, fu             int
		dealer, tsumo       bool
		honba, sticks       int
		dealerPay, otherPay int
		discarderPay, total int
	}{
		{"1 han 30 fu ron", TitleNone, 1, 30, false, false, 0, 0, 0, 0, 1000, 1000},
		{"1 han 30 fu dealer ron", TitleNone, 1, 30, true, false, 0, 0, 0, 0, 1500, 1500},
		{"1 han 30 fu tsumo", TitleNone, 1, 30, false, true, 0, 0, 500, 300, 0, 1100},
		{"1 han 30 fu dealer tsumo", TitleNone, 1, 30, true, true, 0, 0, 0, 500, 0, 1500},
		{"2 han 25 fu ron", TitleNone, 2, 25, false, false, 0, 0, 0, 0, 1600, 1600},
		{"3 han 30 fu ron", TitleNone, 3, 30, false, false, 0, 0, 0, 0, 3900, 3900},
		{"4 han 30 fu ron", TitleNone, 4, 30, false, false, 0, 0, 0, 0, 7700, 7700},
		{"4 han 20 fu tsumo", TitleNone, 4, 20, false, true, 0, 0, 2600, 1300, 0, 5200},
		{"mangan ron", TitleMangan, 5, 30, false, false, 0, 0, 0, 0, 8000, 8000},
		{"mangan dealer ron", TitleMangan, 5, 30, true, false, 0, 0, 0, 0, 12000, 12000},
		{"haneman tsumo", TitleHaneman, 6, 30, false, true, 0, 0, 6000, 3000, 0, 12000},
		{"yakuman dealer tsumo", TitleYakuman, 0, 0, true, true, 0, 0, 0, 16000, 0, 48000},
		{"double yakuman ron", TitleDoubleYakuman, 0, 0, false, false, 0, 0, 0, 0, 64000, 64000},
		{"honba tsumo", TitleNone, 4, 20, false, true, 2, 1, 2800, 1500, 0, 6800},
		{"honba ron", TitleNone, 1, 30, false, false, 2, 3, 0, 0, 1600, 4600},
	}
	for _, tt := range tests {
		p, err := pt.Payment(tt.title, tt.han, tt.fu, tt.dealer, tt.tsumo, tt.honba, tt.sticks)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if p.FromDealer != tt.dealerPay || p.FromNonDealer != tt.otherPay ||
			p.FromDiscarder != tt.discarderPay || p.Total != tt.total {
			t.Fatalf("%s: unexpected payment %+v", tt.name, p)
		}
	}

	if _, err := pt.Payment(TitleNone, 5, 30, false, false, 0, 0); err == nil {
		t.Fatalf("5 han without a title must fail")
	}
	if _, err := pt.Payment(TitleNone, 1, 35, false, false, 0, 0); err == nil {
		t.Fatalf("35 fu must fail")
	}
}
