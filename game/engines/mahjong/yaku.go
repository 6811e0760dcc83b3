package mahjong

import "strings"

// Yaku 役种
type Yaku int

const (
	// 一般役
	YakuMenzenTsumo    Yaku = iota // 门前清自摸和
	YakuRiichi                     // 立直
	YakuIppatsu                    // 一发
	YakuChankan                    // 抢杠
	YakuRinshan                    // 岭上开花
	YakuHaitei                     // 海底摸月
	YakuHoutei                     // 河底捞鱼
	YakuPinfu                      // 平和
	YakuTanyao                     // 断幺九
	YakuIipeikou                   // 一杯口
	YakuSeatEast                   // 自风 东
	YakuSeatSouth                  // 自风 南
	YakuSeatWest                   // 自风 西
	YakuSeatNorth                  // 自风 北
	YakuRoundEast                  // 场风 东
	YakuRoundSouth                 // 场风 南
	YakuRoundWest                  // 场风 西
	YakuRoundNorth                 // 场风 北
	YakuHaku                       // 役牌 白
	YakuHatsu                      // 役牌 发
	YakuChun                       // 役牌 中
	YakuDoubleRiichi               // 两立直
	YakuChiitoitsu                 // 七对子
	YakuToitoi                     // 对对和
	YakuSanankou                   // 三暗刻
	YakuSanshokuDoukou             // 三色同刻
	YakuSanshokuDoujun             // 三色同顺
	YakuHonroutou                  // 混老头
	YakuIttsuu                     // 一气通贯
	YakuChanta                     // 混全带幺九
	YakuShousangen                 // 小三元
	YakuSankantsu                  // 三杠子
	YakuHonitsu                    // 混一色
	YakuJunchan                    // 纯全带幺九
	YakuRyanpeikou                 // 二杯口
	YakuChinitsu                   // 清一色
	YakuNagashiMangan              // 流局满贯

	// 役满
	YakuTenhou        // 天和
	YakuChiihou       // 地和
	YakuRenhou        // 人和
	YakuRyuuiisou     // 绿一色
	YakuDaisangen     // 大三元
	YakuShousuushii   // 小四喜
	YakuTsuuiisou     // 字一色
	YakuKokushi       // 国士无双
	YakuChuuren       // 九莲宝灯
	YakuSuuankou      // 四暗刻
	YakuChinroutou    // 清老头
	YakuSuukantsu     // 四杠子
	YakuSuuankouTanki // 四暗刻单骑（双倍）
	YakuDaisuushii    // 大四喜（双倍）
	YakuJunseiChuuren // 纯正九莲宝灯（双倍）
	YakuKokushi13     // 国士无双十三面（双倍）

	// 宝牌，不单独成役
	YakuDora
	YakuUraDora
	YakuAkaDora

	yakuCount
)

// YakuInfo 役种的名称与番数
// ClosedHan 为门清时的番数，OpenHan 为副露时的番数（0 表示副露不成立）
// Yakuman 为役满倍数，非役满为 0
type YakuInfo struct {
	Name      string
	ClosedHan int
	OpenHan   int
	Yakuman   int
}

var yakuInfos = [yakuCount]YakuInfo{
	YakuMenzenTsumo:    {"Menzen Tsumo", 1, 0, 0},
	YakuRiichi:         {"Riichi", 1, 0, 0},
	YakuIppatsu:        {"Ippatsu", 1, 0, 0},
	YakuChankan:        {"Chankan", 1, 1, 0},
	YakuRinshan:        {"Rinshan Kaihou", 1, 1, 0},
	YakuHaitei:         {"Haitei Raoyue", 1, 1, 0},
	YakuHoutei:         {"Houtei Raoyui", 1, 1, 0},
	YakuPinfu:          {"Pinfu", 1, 0, 0},
	YakuTanyao:         {"Tanyao", 1, 1, 0},
	YakuIipeikou:       {"Iipeikou", 1, 0, 0},
	YakuSeatEast:       {"Seat Wind East", 1, 1, 0},
	YakuSeatSouth:      {"Seat Wind South", 1, 1, 0},
	YakuSeatWest:       {"Seat Wind West", 1, 1, 0},
	YakuSeatNorth:      {"Seat Wind North", 1, 1, 0},
	YakuRoundEast:      {"Round Wind East", 1, 1, 0},
	YakuRoundSouth:     {"Round Wind South", 1, 1, 0},
	YakuRoundWest:      {"Round Wind West", 1, 1, 0},
	YakuRoundNorth:     {"Round Wind North", 1, 1, 0},
	YakuHaku:           {"Haku", 1, 1, 0},
	YakuHatsu:          {"Hatsu", 1, 1, 0},
	YakuChun:           {"Chun", 1, 1, 0},
	YakuDoubleRiichi:   {"Double Riichi", 2, 0, 0},
	YakuChiitoitsu:     {"Chiitoitsu", 2, 0, 0},
	YakuToitoi:         {"Toitoi", 2, 2, 0},
	YakuSanankou:       {"Sanankou", 2, 2, 0},
	YakuSanshokuDoukou: {"Sanshoku Doukou", 2, 2, 0},
	YakuSanshokuDoujun: {"Sanshoku Doujun", 2, 1, 0},
	YakuHonroutou:      {"Honroutou", 2, 2, 0},
	YakuIttsuu:         {"Ittsuu", 2, 1, 0},
	YakuChanta:         {"Chanta", 2, 1, 0},
	YakuShousangen:     {"Shousangen", 2, 2, 0},
	YakuSankantsu:      {"Sankantsu", 2, 2, 0},
	YakuHonitsu:        {"Honitsu", 3, 2, 0},
	YakuJunchan:        {"Junchan", 3, 2, 0},
	YakuRyanpeikou:     {"Ryanpeikou", 3, 0, 0},
	YakuChinitsu:       {"Chinitsu", 6, 5, 0},
	YakuNagashiMangan:  {"Nagashi Mangan", 0, 0, 0},

	YakuTenhou:        {"Tenhou", 0, 0, 1},
	YakuChiihou:       {"Chiihou", 0, 0, 1},
	YakuRenhou:        {"Renhou", 0, 0, 1},
	YakuRyuuiisou:     {"Ryuuiisou", 0, 0, 1},
	YakuDaisangen:     {"Daisangen", 0, 0, 1},
	YakuShousuushii:   {"Shousuushii", 0, 0, 1},
	YakuTsuuiisou:     {"Tsuuiisou", 0, 0, 1},
	YakuKokushi:       {"Kokushi Musou", 0, 0, 1},
	YakuChuuren:       {"Chuuren Poutou", 0, 0, 1},
	YakuSuuankou:      {"Suuankou", 0, 0, 1},
	YakuChinroutou:    {"Chinroutou", 0, 0, 1},
	YakuSuukantsu:     {"Suukantsu", 0, 0, 1},
	YakuSuuankouTanki: {"Suuankou Tanki", 0, 0, 2},
	YakuDaisuushii:    {"Daisuushii", 0, 0, 2},
	YakuJunseiChuuren: {"Junsei Chuuren Poutou", 0, 0, 2},
	YakuKokushi13:     {"Kokushi Musou 13-men", 0, 0, 2},

	YakuDora:    {"Dora", 0, 0, 0},
	YakuUraDora: {"Ura Dora", 0, 0, 0},
	YakuAkaDora: {"Aka Dora", 0, 0, 0},
}

func (y Yaku) Info() YakuInfo {
	if y < 0 || y >= yakuCount {
		return YakuInfo{}
	}
	return yakuInfos[y]
}

func (y Yaku) String() string {
	if y < 0 || y >= yakuCount {
		return "Unknown"
	}
	return yakuInfos[y].Name
}

func (y Yaku) IsYakuman() bool {
	return y.Info().Yakuman > 0
}

// Han 按门清/副露取番数
func (y Yaku) Han(concealed bool) int {
	info := y.Info()
	if concealed {
		return info.ClosedHan
	}
	return info.OpenHan
}

// YakuList 役种集合
type YakuList uint64

func (l YakuList) Has(y Yaku) bool {
	return l&(1<<y) != 0
}

func (l YakuList) With(ys ...Yaku) YakuList {
	for _, y := range ys {
		l |= 1 << y
	}
	return l
}

func (l YakuList) Empty() bool {
	return l == 0
}

// Yakus 按役种顺序展开
func (l YakuList) Yakus() []Yaku {
	var ys []Yaku
	for y := Yaku(0); y < yakuCount; y++ {
		if l.Has(y) {
			ys = append(ys, y)
		}
	}
	return ys
}

// Han 集合中一般役的番数合计
func (l YakuList) Han(concealed bool) int {
	han := 0
	for _, y := range l.Yakus() {
		han += y.Han(concealed)
	}
	return han
}

// Yakuman 集合中役满倍数合计
func (l YakuList) Yakuman() int {
	n := 0
	for _, y := range l.Yakus() {
		n += y.Info().Yakuman
	}
	return n
}

func (l YakuList) String() string {
	names := make([]string, 0, 8)
	for _, y := range l.Yakus() {
		names = append(names, y.String())
	}
	return strings.Join(names, ", ")
}

// seatWindYaku / roundWindYaku 风牌对应的役种
func seatWindYaku(wind TileType) Yaku {
	return YakuSeatEast + Yaku(wind-East)
}

func roundWindYaku(wind TileType) Yaku {
	return YakuRoundEast + Yaku(wind-East)
}
