package util

import (
	"reflect"
	"testing"
)

func TestSortNatural(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "数字段按数值比较",
			in:   []string{"v2.mp4", "v10.mp4", "v1.mp4"},
			want: []string{"v1.mp4", "v2.mp4", "v10.mp4"},
		},
		{
			name: "子目录中的编号",
			in:   []string{"Module 10/video1.mp4", "Module 2/video1.mp4", "Module 2/video10.mp4", "Module 2/video9.mp4"},
			want: []string{"Module 2/video1.mp4", "Module 2/video9.mp4", "Module 2/video10.mp4", "Module 10/video1.mp4"},
		},
		{
			name: "纯字典序回退",
			in:   []string{"b.mp4", "a.mp4"},
			want: []string{"a.mp4", "b.mp4"},
		},
		{
			name: "前导零数值相等时退回字典序",
			in:   []string{"1.mp4", "01.mp4"},
			want: []string{"01.mp4", "1.mp4"},
		},
		{
			name: "多段数字",
			in:   []string{"s2e10.mkv", "s2e9.mkv", "s10e1.mkv", "s1e1.mkv"},
			want: []string{"s1e1.mkv", "s2e9.mkv", "s2e10.mkv", "s10e1.mkv"},
		},
		{
			// 数字段与非数字段相遇时比较的是整个非数字段，
			// 较短的非数字段作为前缀排前，与逐字节比较相反
			name: "数字与非数字交界按段比较",
			in:   []string{"Module 2/video1.mp4", "Module10/video1.mp4"},
			want: []string{"Module10/video1.mp4", "Module 2/video1.mp4"},
		},
		{
			name: "连字符在数字交界处不抢占顺序",
			in:   []string{"video-2.mp4", "video2.mp4"},
			want: []string{"video2.mp4", "video-2.mp4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.in...)
			SortNatural(in)
			if !reflect.DeepEqual(in, tt.want) {
				t.Errorf("SortNatural(%v) = %v, want %v", tt.in, in, tt.want)
			}
		})
	}
}

func TestNaturalLessTotalOrder(t *testing.T) {
	if NaturalLess("a", "a") {
		t.Error("NaturalLess must be irreflexive")
	}
	if NaturalLess("video10.mp4", "video2.mp4") {
		t.Error("video10 must not sort before video2")
	}
	if !NaturalLess("video2.mp4", "video10.mp4") {
		t.Error("video2 must sort before video10")
	}
}

func TestNaturalLessRunBoundary(t *testing.T) {
	if !NaturalLess("Module10/video1.mp4", "Module 2/video1.mp4") {
		t.Error("Module10 must sort before Module 2 (shorter non-digit run is a prefix)")
	}
	if NaturalLess("Module 2/video1.mp4", "Module10/video1.mp4") {
		t.Error("Module 2 must not sort before Module10")
	}
	if !NaturalLess("video2.mp4", "video-2.mp4") {
		t.Error("video2.mp4 must sort before video-2.mp4")
	}
	if !NaturalLess("video", "video2.mp4") {
		t.Error("exhausted side must sort first")
	}
}
