package mahjong

import "fmt"

// ScoreTitle 满贯以上的称号
type ScoreTitle int

const (
	TitleNone ScoreTitle = iota
	TitleMangan
	TitleHaneman
	TitleBaiman
	TitleSanbaiman
	TitleKazoeYakuman
	TitleYakuman
	TitleDoubleYakuman
	TitleTripleYakuman
	TitleQuadrupleYakuman
	TitleQuintupleYakuman
	TitleSextupleYakuman
)

var titleNames = [...]string{
	"", "Mangan", "Haneman", "Baiman", "Sanbaiman", "Kazoe Yakuman",
	"Yakuman", "Double Yakuman", "Triple Yakuman", "Quadruple Yakuman",
	"Quintuple Yakuman", "Sextuple Yakuman",
}

func (t ScoreTitle) String() string {
	if t < TitleNone || t > TitleSextupleYakuman {
		return fmt.Sprintf("ScoreTitle(%d)", int(t))
	}
	return titleNames[t]
}

// basePoints 称号对应的基本点
func (t ScoreTitle) basePoints() int {
	switch {
	case t == TitleMangan:
		return 2000
	case t == TitleHaneman:
		return 3000
	case t == TitleBaiman:
		return 4000
	case t == TitleSanbaiman:
		return 6000
	case t == TitleKazoeYakuman:
		return 8000
	case t >= TitleYakuman:
		return 8000 * int(t-TitleYakuman+1)
	}
	return 0
}

// ScoreTitleFor 由番符决定称号，不到满贯时返回 TitleNone
func ScoreTitleFor(fu, han int) ScoreTitle {
	switch {
	case han < 5:
		if (han == 4 && fu >= 40) || (han == 3 && fu >= 70) {
			return TitleMangan
		}
		return TitleNone
	case han == 5:
		return TitleMangan
	case han <= 7:
		return TitleHaneman
	case han <= 10:
		return TitleBaiman
	case han <= 12:
		return TitleSanbaiman
	}
	return TitleKazoeYakuman
}

// YakumanTitle 役满倍数对应的称号，超过 6 倍按 6 倍
func YakumanTitle(n int) ScoreTitle {
	if n <= 0 {
		return TitleNone
	}
	if n > 6 {
		n = 6
	}
	return TitleYakuman + ScoreTitle(n-1)
}

// Payment 点数移动
type Payment struct {
	Total         int // 和了者的收入（含本场、供托）
	FromDealer    int // 子家自摸时庄家的支付
	FromNonDealer int // 自摸时每个子家的支付
	FromDiscarder int // 荣和时放铳者的支付
}

// paymentEntry 不含本场的四种支付
type paymentEntry struct {
	DealerTsumo          int // 庄家自摸，每家支付
	DealerRon            int
	NonDealerTsumoDealer int // 子家自摸，庄家支付
	NonDealerTsumoOther  int // 子家自摸，其他子家支付
	NonDealerRon         int
}

func newPaymentEntry(base int) paymentEntry {
	return paymentEntry{
		DealerTsumo:          roundUp100(base * 2),
		DealerRon:            roundUp100(base * 6),
		NonDealerTsumoDealer: roundUp100(base * 2),
		NonDealerTsumoOther:  roundUp100(base),
		NonDealerRon:         roundUp100(base * 4),
	}
}

func roundUp100(n int) int {
	return (n + 99) / 100 * 100
}

const (
	maxTableHan = 4
	maxTableFu  = 170

	HonbaTsumo  = 100  // 自摸时每家每本场
	HonbaRon    = 300  // 荣和时每本场
	RiichiStick = 1000 // 供托
)

// PaymentTable 点数表，构建后只读
type PaymentTable struct {
	grid   [maxTableHan + 1][maxTableFu/10 + 1]paymentEntry // [han][fu/10]，25 符单独存放
	fu25   [maxTableHan + 1]paymentEntry
	limits [TitleSextupleYakuman + 1]paymentEntry
}

func NewPaymentTable() *PaymentTable {
	t := &PaymentTable{}
	for han := 1; han <= maxTableHan; han++ {
		for fu := 20; fu <= maxTableFu; fu += 10 {
			t.grid[han][fu/10] = newPaymentEntry(fu << (2 + han))
		}
		t.fu25[han] = newPaymentEntry(25 << (2 + han))
	}
	for title := TitleMangan; title <= TitleSextupleYakuman; title++ {
		t.limits[title] = newPaymentEntry(title.basePoints())
	}
	return t
}

func (t *PaymentTable) entry(title ScoreTitle, han, fu int) (paymentEntry, error) {
	if title != TitleNone {
		return t.limits[title], nil
	}
	if han < 1 || han > maxTableHan {
		return paymentEntry{}, fmt.Errorf("%w: no payment for %d han without a title", ErrInvalidArgument, han)
	}
	if fu == FuChiitoitsu {
		return t.fu25[han], nil
	}
	if fu < 20 || fu > maxTableFu || fu%10 != 0 {
		return paymentEntry{}, fmt.Errorf("%w: no payment for %d fu", ErrInvalidArgument, fu)
	}
	return t.grid[han][fu/10], nil
}

// Payment 根据称号或番符计算点数移动
func (t *PaymentTable) Payment(title ScoreTitle, han, fu int, dealer, tsumo bool, honba, sticks int) (Payment, error) {
	e, err := t.entry(title, han, fu)
	if err != nil {
		return Payment{}, err
	}

	var p Payment
	bonus := RiichiStick * sticks
	switch {
	case tsumo && dealer:
		p.FromNonDealer = e.DealerTsumo + HonbaTsumo*honba
		p.Total = bonus + 3*p.FromNonDealer
	case tsumo:
		p.FromDealer = e.NonDealerTsumoDealer + HonbaTsumo*honba
		p.FromNonDealer = e.NonDealerTsumoOther + HonbaTsumo*honba
		p.Total = bonus + p.FromDealer + 2*p.FromNonDealer
	case dealer:
		p.FromDiscarder = e.DealerRon + HonbaRon*honba
		p.Total = bonus + p.FromDiscarder
	default:
		p.FromDiscarder = e.NonDealerRon + HonbaRon*honba
		p.Total = bonus + p.FromDiscarder
	}
	return p, nil
}
