package mahjong

// 绿一色可用的牌：索子 23468，字牌发
const (
	greenSouMask   Counter = 0o70707770
	greenHonorMask Counter = 0o7 << 15
)

// 九莲宝灯 1112345678999 的形状
const chuurenShape Counter = 0o311111113

// yakuContext 判定役种所需的信息
type yakuContext struct {
	hand      *Hand // 原始手牌
	norm      *Hand // 合并副露后的手牌
	win       TileType
	flags     HandFlag
	shape     WinShape
	rules     Rule
	seat      TileType
	round     TileType
	concealed bool
}

func (ctx *yakuContext) tsumo() bool {
	return ctx.flags.Has(FlagTsumo)
}

func (ctx *yakuContext) numerals() (m, p, s Counter) {
	return ctx.norm.Suits[SuitManzu], ctx.norm.Suits[SuitPinzu], ctx.norm.Suits[SuitSouzu]
}

func (ctx *yakuContext) honors() Counter {
	return ctx.norm.Suits[SuitHonor]
}

// checkYakuman 役满判定，基于合并后的手牌和状况标志
func checkYakuman(ctx *yakuContext) YakuList {
	var list YakuList

	switch {
	case ctx.flags.Has(FlagTenhou):
		list = list.With(YakuTenhou)
	case ctx.flags.Has(FlagChiihou):
		list = list.With(YakuChiihou)
	case ctx.flags.Has(FlagRenhou):
		list = list.With(YakuRenhou)
	}

	m, p, s := ctx.numerals()
	z := ctx.honors()

	switch ctx.shape {
	case ShapeNormal:
		if m == 0 && p == 0 && s&^greenSouMask == 0 && z&^greenHonorMask == 0 {
			list = list.With(YakuRyuuiisou)
		}
		if z.KindsAtLeastIn(DragonMask, 3) == 3 {
			list = list.With(YakuDaisangen)
		}
		switch z.Sum(WindMask) {
		case 12:
			list = list.With(YakuDaisuushii)
		case 11:
			list = list.With(YakuShousuushii)
		}
		if m|p|s == 0 {
			list = list.With(YakuTsuuiisou)
		}
		if y, ok := checkChuuren(ctx); ok {
			list = list.With(y)
		}
		if y, ok := checkSuuankou(ctx); ok {
			list = list.With(y)
		}
		if z == 0 && (m|p|s)&SimpleMask == 0 {
			list = list.With(YakuChinroutou)
		}
		if ctx.hand.NumKans() == 4 {
			list = list.With(YakuSuukantsu)
		}
	case ShapeChiitoitsu:
		if m|p|s == 0 {
			list = list.With(YakuTsuuiisou)
		}
	case ShapeKokushi:
		if ctx.hand.NumTiles(ctx.win) == 2 {
			list = list.With(YakuKokushi13)
		} else {
			list = list.With(YakuKokushi)
		}
	}
	return list
}

// checkChuuren 九莲宝灯：门清、单一花色、1112345678999 加任意一张
// 去掉和了牌后恰好是 1112345678999 时为纯正九莲宝灯
func checkChuuren(ctx *yakuContext) (Yaku, bool) {
	if ctx.hand.IsMelded() || ctx.honors() != 0 || ctx.win.IsHonor() {
		return 0, false
	}
	suit := ctx.win.Suit()
	for s := SuitManzu; s <= SuitSouzu; s++ {
		if s != suit && ctx.norm.Suits[s] != 0 {
			return 0, false
		}
	}
	c := ctx.norm.Suits[suit]
	if c-Tile1(ctx.win.Index()) == chuurenShape {
		return YakuJunseiChuuren, true
	}
	if c.Count(0) >= 3 && c.Count(8) >= 3 && c.KindsAtLeastIn(SimpleMask, 1) == 7 {
		return YakuChuuren, true
	}
	return 0, false
}

// checkSuuankou 四暗刻：门清且 4 种牌为刻子
// 和了牌为雀头（单骑）时为四暗刻单骑，荣和成立；否则只有自摸成立
func checkSuuankou(ctx *yakuContext) (Yaku, bool) {
	if !ctx.concealed {
		return 0, false
	}
	triplets, kinds := 0, 0
	for _, c := range ctx.norm.Suits {
		triplets += c.KindsAtLeast(3) - c.KindsAtLeast(4)
		kinds += c.KindsAtLeast(1)
	}
	if triplets != 4 {
		return 0, false
	}
	if ctx.norm.NumTiles(ctx.win) == 2 {
		return YakuSuuankouTanki, true
	}
	if ctx.tsumo() && kinds == 5 {
		return YakuSuuankou, true
	}
	return 0, false
}

// checkGeneralYaku 与拆分无关的一般役
func checkGeneralYaku(ctx *yakuContext) YakuList {
	var list YakuList
	f := ctx.flags

	if f.Has(FlagDoubleRiichi) {
		list = list.With(YakuDoubleRiichi)
	} else if f.Has(FlagRiichi) {
		list = list.With(YakuRiichi)
	}
	if f.Has(FlagIppatsu) {
		list = list.With(YakuIppatsu)
	}
	switch {
	case f.Has(FlagChankan):
		list = list.With(YakuChankan)
	case f.Has(FlagRinshan):
		list = list.With(YakuRinshan)
	case f.Has(FlagHaitei):
		list = list.With(YakuHaitei)
	case f.Has(FlagHoutei):
		list = list.With(YakuHoutei)
	}
	if ctx.tsumo() && ctx.concealed {
		list = list.With(YakuMenzenTsumo)
	}

	m, p, s := ctx.numerals()
	z := ctx.honors()

	if (ctx.concealed || ctx.rules.Has(RuleOpenTanyao)) && z == 0 && (m|p|s)&TerminalMask == 0 {
		list = list.With(YakuTanyao)
	}

	suits := 0
	for _, c := range []Counter{m, p, s} {
		if c != 0 {
			suits++
		}
	}
	if suits == 1 {
		if z == 0 {
			list = list.With(YakuChinitsu)
		} else {
			list = list.With(YakuHonitsu)
		}
	}

	if (m|p|s)&SimpleMask == 0 && z != 0 {
		list = list.With(YakuHonroutou)
	}

	switch ctx.shape {
	case ShapeNormal:
		if z.Sum(DragonMask) == 8 {
			list = list.With(YakuShousangen)
		}
		if ctx.hand.NumKans() == 3 {
			list = list.With(YakuSankantsu)
		}
		for i, y := range []Yaku{YakuHaku, YakuHatsu, YakuChun} {
			if z.AtLeast(int(White-East)+i, 3) {
				list = list.With(y)
			}
		}
		if z.AtLeast(int(ctx.seat-East), 3) {
			list = list.With(seatWindYaku(ctx.seat))
		}
		if z.AtLeast(int(ctx.round-East), 3) {
			list = list.With(roundWindYaku(ctx.round))
		}
	case ShapeChiitoitsu:
		list = list.With(YakuChiitoitsu)
	}
	return list
}

// checkPatternYaku 与拆分有关的一般役（不含平和）
func checkPatternYaku(ctx *yakuContext, blocks []Block) YakuList {
	var list YakuList

	var seqs, trips [NumKinds]int
	for _, b := range blocks {
		switch {
		case b.Kind == BlockSequence:
			seqs[b.MinTile]++
		case b.IsTripletLike():
			trips[b.MinTile]++
		}
	}

	if ctx.concealed {
		switch countPeikou(seqs) {
		case 1:
			list = list.With(YakuIipeikou)
		case 2:
			list = list.With(YakuRyanpeikou)
		}
	}

	switch {
	case hasIttsuu(seqs):
		list = list.With(YakuIttsuu)
	case hasSanshoku(trips):
		list = list.With(YakuSanshokuDoukou)
	case hasSanshoku(seqs):
		list = list.With(YakuSanshokuDoujun)
	}

	switch checkChanta(blocks) {
	case 1:
		list = list.With(YakuChanta)
	case 2:
		list = list.With(YakuJunchan)
	}

	toitoi := true
	concealedTrips := 0
	for _, b := range blocks {
		if b.Kind == BlockSequence {
			toitoi = false
		}
		if b.IsTripletLike() && !b.Open {
			concealedTrips++
		}
	}
	if toitoi {
		list = list.With(YakuToitoi)
	}
	if concealedTrips == 3 {
		list = list.With(YakuSanankou)
	}
	return list
}

// countPeikou 相同顺子的组数，4 组相同算 2
func countPeikou(seqs [NumKinds]int) int {
	n := 0
	for _, x := range seqs {
		if x == 4 {
			n += 2
		} else if x >= 2 {
			n++
		}
	}
	return n
}

func hasIttsuu(seqs [NumKinds]int) bool {
	for s := SuitManzu; s <= SuitSouzu; s++ {
		b := s.base()
		if seqs[b] > 0 && seqs[b+3] > 0 && seqs[b+6] > 0 {
			return true
		}
	}
	return false
}

func hasSanshoku(counts [NumKinds]int) bool {
	for i := 0; i < 9; i++ {
		if counts[i] > 0 && counts[i+9] > 0 && counts[i+18] > 0 {
			return true
		}
	}
	return false
}

// checkChanta 所有面子都含幺九牌且至少一个顺子：含字牌为 1（混全带），不含为 2（纯全带）
func checkChanta(blocks []Block) int {
	honor, seq := false, false
	for _, b := range blocks {
		if !b.HasYaochu() {
			return 0
		}
		if b.Kind == BlockSequence {
			seq = true
		} else if b.MinTile.IsHonor() {
			honor = true
		}
	}
	switch {
	case !seq:
		return 0
	case honor:
		return 1
	}
	return 2
}
