package freq

import (
	"errors"
	"testing"

	"github.com/cognicore/retag/pkg/retag/internalerr"
)

func TestCountBasic(t *testing.T) {
	counts, err := Count([]string{"1", "2", "1", "3", "2", "1"})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}

	if len(counts) != 3 {
		t.Errorf("Expected 3 distinct tokens, got %d", len(counts))
	}
	if counts["1"] != 3 {
		t.Errorf("Token \"1\" count = %d, want 3", counts["1"])
	}
	if counts["2"] != 2 {
		t.Errorf("Token \"2\" count = %d, want 2", counts["2"])
	}
	if counts["3"] != 1 {
		t.Errorf("Token \"3\" count = %d, want 1", counts["3"])
	}
}

func TestCountSumEqualsLength(t *testing.T) {
	tokens := []byte{1, 1, 2, 3, 3, 3, 4}
	counts, err := Count(tokens)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}

	var sum uint32
	for _, n := range counts {
		sum += n
	}
	if int(sum) != len(tokens) {
		t.Errorf("Count sum = %d, want %d", sum, len(tokens))
	}
}

func TestCountEmptyInput(t *testing.T) {
	_, err := Count([]string{})
	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Errorf("Count([]) error = %v, want ErrEmptyInput", err)
	}
}

func TestDistributionSortedAscending(t *testing.T) {
	counts := map[string]uint32{"a": 3, "b": 1, "c": 2}
	dist, err := Distribution(counts)
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}

	want := []uint32{1, 2, 3}
	if len(dist) != len(want) {
		t.Fatalf("Distribution length = %d, want %d", len(dist), len(want))
	}
	for i := range want {
		if dist[i] != want[i] {
			t.Errorf("dist[%d] = %d, want %d", i, dist[i], want[i])
		}
	}
}

func TestDistributionKeepsTies(t *testing.T) {
	counts := map[rune]uint32{'a': 2, 'b': 2, 'c': 1}
	dist, err := Distribution(counts)
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}

	if len(dist) != 3 || dist[0] != 1 || dist[1] != 2 || dist[2] != 2 {
		t.Errorf("Distribution = %v, want [1 2 2]", dist)
	}
}

func TestDistributionEmptyInput(t *testing.T) {
	_, err := Distribution(map[string]uint32{})
	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Errorf("Distribution({}) error = %v, want ErrEmptyInput", err)
	}
}
