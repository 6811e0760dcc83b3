package mahjong

import "math/bits"

// Counter 单个花色的压缩计数，每种牌占 3 bit，序号 0 的牌在最低位
// 数牌使用 9 个字段（27 bit），字牌使用 7 个字段（东南西北白发中，21 bit）
type Counter uint32

const (
	fieldBits = 3
	fieldMask = 0b111

	ones9 Counter = 0o111111111 // 每个字段的最低位
)

// 常用掩码
const (
	TerminalMask Counter = 0o700000007 // 1 和 9
	SimpleMask   Counter = 0o077777770 // 2-8
	WindMask     Counter = 0o7777      // 东南西北
	DragonMask   Counter = 0o777 << 12 // 白发中
	SuitMask     Counter = 0o777777777
	HonorMask    Counter = 0o7777777
)

// Tile1 序号 i 的牌 1 张
func Tile1(i int) Counter {
	return 1 << (fieldBits * i)
}

// Tile3 序号 i 的牌 3 张
func Tile3(i int) Counter {
	return 3 << (fieldBits * i)
}

// Count 序号 i 的牌的张数
func (c Counter) Count(i int) int {
	return int(c>>(fieldBits*i)) & fieldMask
}

// Add 序号 i 的牌增加 n 张
func (c Counter) Add(i, n int) Counter {
	return c + Counter(n)<<(fieldBits*i)
}

// AtLeast 序号 i 的牌是否至少 n 张
func (c Counter) AtLeast(i, n int) bool {
	return c.Count(i) >= n
}

// Sum 掩码范围内的张数合计
func (c Counter) Sum(mask Counter) int {
	v := c & mask
	n := 0
	for v != 0 {
		n += int(v & fieldMask)
		v >>= fieldBits
	}
	return n
}

// ge 返回各字段张数 >= n 时最低位置 1 的位图，字段值不超过 4
func (c Counter) ge(n int) Counter {
	switch n {
	case 1:
		return (c | c>>1 | c>>2) & ones9
	case 2:
		return (c>>1 | c>>2) & ones9
	case 3:
		return (c>>2 | c&(c>>1)) & ones9
	case 4:
		return (c >> 2) & ones9
	}
	return 0
}

// KindsAtLeast 张数 >= n 的牌种数
func (c Counter) KindsAtLeast(n int) int {
	return bits.OnesCount32(uint32(c.ge(n)))
}

// KindsAtLeastIn 掩码范围内张数 >= n 的牌种数
func (c Counter) KindsAtLeastIn(mask Counter, n int) int {
	return (c & mask).KindsAtLeast(n)
}

// Total 总张数
func (c Counter) Total() int {
	return c.Sum(SuitMask)
}
