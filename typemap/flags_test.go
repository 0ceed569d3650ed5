package typemap_test

import (
	"testing"

	"github.com/juusaw/maptype/typemap"
)

func TestExtractFlagsZero(t *testing.T) {
	if got := typemap.ExtractFlags(0); got != nil {
		t.Errorf("ExtractFlags(0) = %v, want nil", got)
	}
}

func TestExtractFlagsSingleBit(t *testing.T) {
	for _, mask := range []uint32{1, 2, 128, 1 << 31} {
		got := typemap.ExtractFlags(mask)
		if len(got) != 1 || got[0] != mask {
			t.Errorf("ExtractFlags(%d) = %v, want [%d]", mask, got, mask)
		}
	}
}

func TestExtractFlagsComposite(t *testing.T) {
	tests := []struct {
		mask uint32
		want []uint32
	}{
		{0b1101, []uint32{8, 4, 1}},
		{0b11, []uint32{2, 1}},
		{1<<31 | 1, []uint32{1 << 31, 1}},
		{524402, []uint32{524288, 64, 32, 16, 2}},
	}
	for _, tt := range tests {
		got := typemap.ExtractFlags(tt.mask)
		if len(got) != len(tt.want) {
			t.Errorf("ExtractFlags(%d) = %v, want %v", tt.mask, got, tt.want)
			continue
		}
		var sum uint32
		for i, flag := range got {
			if flag != tt.want[i] {
				t.Errorf("ExtractFlags(%d)[%d] = %d, want %d", tt.mask, i, flag, tt.want[i])
			}
			sum += flag
		}
		if sum != tt.mask {
			t.Errorf("ExtractFlags(%d) sums to %d", tt.mask, sum)
		}
	}
}
