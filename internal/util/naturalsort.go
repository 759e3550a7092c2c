package util

import "sort"

// 自然排序：把字符串切成非数字段与数字段交替的序列，
// 非数字段按字典序比较，数字段按数值比较，
// 保证 video2.mp4 排在 video10.mp4 之前

// NaturalLess 报告 a 在自然顺序下是否严格小于 b
// 两串按非数字段/数字段交替对齐逐段比较，一侧先耗尽时视为前缀排前；
// 所有分段都等价（如前导零不同）时退回整串字典序，保证全序
func NaturalLess(a, b string) bool {
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		ea, eb := nonDigitRun(a, ia), nonDigitRun(b, ib)
		if a[ia:ea] != b[ib:eb] {
			return a[ia:ea] < b[ib:eb]
		}
		ia, ib = ea, eb
		if ia >= len(a) || ib >= len(b) {
			break
		}

		// 两边都停在数字上，按数值比较（跳过前导零后比长度、再逐位比）
		ea, eb = digitRun(a, ia), digitRun(b, ib)
		na, nb := trimLeadingZeros(a[ia:ea]), trimLeadingZeros(b[ib:eb])
		if len(na) != len(nb) {
			return len(na) < len(nb)
		}
		if na != nb {
			return na < nb
		}
		ia, ib = ea, eb
	}
	if ia < len(a) || ib < len(b) {
		return ia >= len(a)
	}
	return a < b
}

// SortNatural 原地按自然顺序稳定排序
func SortNatural(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		return NaturalLess(items[i], items[j])
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digitRun(s string, start int) int {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return end
}

func nonDigitRun(s string, start int) int {
	end := start
	for end < len(s) && !isDigit(s[end]) {
		end++
	}
	return end
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
