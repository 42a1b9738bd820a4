package milesian

import (
	"math/big"
	"reflect"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		n    uint64
		want []int
	}{
		{1, []int{0, 0, 0, 1}},
		{241, []int{0, 2, 4, 1}},
		{5683, []int{5, 6, 8, 3}},
		{10000, []int{0, 0, 0, 1, 0, 0, 0, 0}},
		{97554, []int{0, 0, 0, 9, 7, 5, 5, 4}},
	}

	for _, tt := range tests {
		got := decompose(tt.n)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("decompose(%d) = %v, want %v", tt.n, got, tt.want)
		}
		if len(got)%4 != 0 {
			t.Errorf("decompose(%d): length %d not a multiple of 4", tt.n, len(got))
		}
	}
}

func TestDecomposeBig_MatchesDecompose(t *testing.T) {
	inputs := []uint64{1, 9, 10, 9999, 10000, 97554, 12312398676, 1<<64 - 1}
	for _, n := range inputs {
		got := decomposeBig(new(big.Int).SetUint64(n))
		want := decompose(n)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("decomposeBig(%d) = %v, want %v", n, got, want)
		}
	}
}
