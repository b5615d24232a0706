package boardextract

import (
	"fmt"
	"sort"
	"strings"
)

// SelectMode picks which candidate SelectBoard returns.
type SelectMode int

const (
	SelectLargest SelectMode = iota
	SelectSmallest
)

func (m SelectMode) String() string {
	switch m {
	case SelectLargest:
		return "largest"
	case SelectSmallest:
		return "smallest"
	default:
		return fmt.Sprintf("SelectMode(%d)", int(m))
	}
}

// ParseSelectMode accepts "largest" or "smallest"; empty means largest.
func ParseSelectMode(s string) (SelectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "largest":
		return SelectLargest, nil
	case "smallest":
		return SelectSmallest, nil
	}
	return 0, fmt.Errorf("%w: unknown board selection %q", ErrInvalidArgument, s)
}

// SelectBoard ranks candidates by width+height and returns the largest or
// smallest. ok is false when there are no candidates. Among equal sizes no
// particular candidate is promised.
func SelectBoard(candidates []Candidate, mode SelectMode) (Candidate, bool, error) {
	if mode != SelectLargest && mode != SelectSmallest {
		return Candidate{}, false, fmt.Errorf("%w: invalid board selection %v", ErrInvalidArgument, mode)
	}
	if len(candidates) == 0 {
		return Candidate{}, false, nil
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size() > sorted[j].Size()
	})

	if mode == SelectLargest {
		return sorted[0], true, nil
	}
	return sorted[len(sorted)-1], true, nil
}
