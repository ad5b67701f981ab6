package graphstore

import (
	"sort"
	"testing"
)

func TestCommunityIndex(t *testing.T) {
	s, _ := newTestStore(t)
	nodeCount := len(s.Current().Nodes)

	index := s.CommunityIndex()

	for _, level := range []struct {
		name       string
		level      CommunityLevel
		resolution float64
	}{
		{"coarse", index.Coarse, CoarseResolution},
		{"fine", index.Fine, FineResolution},
	} {
		if level.level.Resolution != level.resolution {
			t.Errorf("%s resolution = %v, want %v", level.name, level.level.Resolution, level.resolution)
		}
		if len(level.level.Communities) == 0 {
			t.Fatalf("%s level has no communities", level.name)
		}
		if len(level.level.Communities) == 1 {
			t.Errorf("%s level collapsed into a single community", level.name)
		}

		total := 0
		for _, c := range level.level.Communities {
			total += c.Size
			if c.Size != len(c.Members) {
				t.Errorf("%s community %d size %d != member count %d", level.name, c.ID, c.Size, len(c.Members))
			}
			if !sort.StringsAreSorted(c.Members) {
				t.Errorf("%s community %d members not sorted", level.name, c.ID)
			}
		}
		if total != nodeCount {
			t.Errorf("%s level covers %d nodes, want %d", level.name, total, nodeCount)
		}

		for i := 1; i < len(level.level.Communities); i++ {
			if level.level.Communities[i].Size > level.level.Communities[i-1].Size {
				t.Fatalf("%s communities not sorted by size descending", level.name)
			}
		}
	}
}

func TestCommunityDescriptors(t *testing.T) {
	s, _ := newTestStore(t)
	index := s.CommunityIndex()

	// The community carrying Dmowski spans his active years and leans on
	// the regions his circle is tagged with.
	for _, c := range index.Coarse.Communities {
		for _, id := range c.Members {
			if id != "dmowski_roman" {
				continue
			}
			if c.YearStart == 0 || c.YearEnd < c.YearStart {
				t.Errorf("community year span [%d, %d] malformed", c.YearStart, c.YearEnd)
			}
			return
		}
	}
	t.Fatal("dmowski_roman not assigned to any coarse community")
}
