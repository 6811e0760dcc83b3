package mahjong

import (
	"fmt"
	"strings"
)

// HandFlag 和了时的状况
type HandFlag uint32

const (
	FlagTsumo         HandFlag = 1 << iota // 自摸
	FlagRiichi                             // 立直
	FlagDoubleRiichi                       // 两立直
	FlagIppatsu                            // 一发
	FlagChankan                            // 抢杠
	FlagRinshan                            // 岭上开花
	FlagHaitei                             // 海底摸月
	FlagHoutei                             // 河底捞鱼
	FlagTenhou                             // 天和
	FlagChiihou                            // 地和
	FlagRenhou                             // 人和
	FlagNagashiMangan                      // 流局满贯
)

var flagNames = []struct {
	flag HandFlag
	name string
}{
	{FlagTsumo, "tsumo"},
	{FlagRiichi, "riichi"},
	{FlagDoubleRiichi, "doubleRiichi"},
	{FlagIppatsu, "ippatsu"},
	{FlagChankan, "chankan"},
	{FlagRinshan, "rinshan"},
	{FlagHaitei, "haitei"},
	{FlagHoutei, "houtei"},
	{FlagTenhou, "tenhou"},
	{FlagChiihou, "chiihou"},
	{FlagRenhou, "renhou"},
	{FlagNagashiMangan, "nagashiMangan"},
}

func (f HandFlag) Has(flag HandFlag) bool {
	return f&flag != 0
}

func (f HandFlag) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseHandFlags 解析标志名列表
func ParseHandFlags(names []string) (HandFlag, error) {
	var f HandFlag
	for _, name := range names {
		found := false
		for _, fn := range flagNames {
			if strings.EqualFold(name, fn.name) {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: unknown flag %q", ErrInvalidArgument, name)
		}
	}
	return f, nil
}

// 互斥的标志组
var exclusiveFlags = []HandFlag{
	FlagRiichi | FlagDoubleRiichi,
	FlagChankan | FlagRinshan | FlagHaitei | FlagHoutei,
	FlagTenhou | FlagChiihou | FlagRenhou,
}

// 标志的前置条件
var flagRequirements = []struct {
	flag    HandFlag
	needs   HandFlag
	tsumo   bool // 需要自摸
	ron     bool // 需要荣和
	message string
}{
	{flag: FlagIppatsu, needs: FlagRiichi | FlagDoubleRiichi, message: "ippatsu requires riichi"},
	{flag: FlagRinshan, tsumo: true, message: "rinshan requires tsumo"},
	{flag: FlagHaitei, tsumo: true, message: "haitei requires tsumo"},
	{flag: FlagTenhou, tsumo: true, message: "tenhou requires tsumo"},
	{flag: FlagChiihou, tsumo: true, message: "chiihou requires tsumo"},
	{flag: FlagChankan, ron: true, message: "chankan requires ron"},
	{flag: FlagHoutei, ron: true, message: "houtei requires ron"},
	{flag: FlagRenhou, ron: true, message: "renhou requires ron"},
}

// validateFlags 检查互斥与前置条件
func validateFlags(f HandFlag, concealed bool) error {
	for _, group := range exclusiveFlags {
		if set := f & group; set&(set-1) != 0 {
			return fmt.Errorf("%w: flags %s are mutually exclusive", ErrInvalidArgument, set)
		}
	}
	if f.Has(FlagRiichi|FlagDoubleRiichi) && !concealed {
		return fmt.Errorf("%w: riichi requires a concealed hand", ErrInvalidArgument)
	}
	tsumo := f.Has(FlagTsumo)
	for _, r := range flagRequirements {
		if !f.Has(r.flag) {
			continue
		}
		if (r.needs != 0 && !f.Has(r.needs)) || (r.tsumo && !tsumo) || (r.ron && tsumo) {
			return fmt.Errorf("%w: %s", ErrInvalidArgument, r.message)
		}
	}
	return nil
}

// Rule 规则开关
type Rule uint32

const (
	RuleAkaDora    Rule = 1 << iota // 赤宝牌计入宝牌
	RuleOpenTanyao                  // 食断（副露断幺九成立）
)

func (r Rule) Has(rule Rule) bool {
	return r&rule != 0
}
