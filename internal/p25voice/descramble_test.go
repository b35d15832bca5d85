package p25voice

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25const"
)

func TestDescramblersCoverEveryDibitTwice(t *testing.T) {
	var visited [p25const.FrameDibits]int

	for _, d := range descramblers {
		for _, zz := range d {
			zz.fold(0, func(acc uint32, idx int, hi bool) uint32 {
				visited[idx]++
				return acc
			})
		}
	}

	for idx, v := range visited {
		if v != 2 {
			t.Errorf("dibit %d visited %d times, want 2", idx, v)
		}
	}
}
