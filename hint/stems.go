// seehuhn.de/go/autohint - automatic hinting for PostScript fonts
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hint

import (
	"math"
	"slices"

	"seehuhn.de/go/autohint/bez"
	"seehuhn.de/go/autohint/fontinfo"
)

// stem is a candidate hint, formed by two edges which enclose a filled
// region.
type stem struct {
	low, high float64
	curved    bool
	vertical  bool

	lowEdge, highEdge edge
}

func (s stem) width() float64 {
	return s.high - s.low
}

func (s stem) firstElt() int {
	return min(s.lowEdge.elt, s.highEdge.elt)
}

// pairEdges forms stems from edges.  Every lower edge (filled above) is
// paired with the nearest overlapping upper edge (filled below) within
// maxWidth, and vice versa.
func pairEdges(edges []edge, maxWidth float64, vertical bool) []stem {
	var res []stem
	seen := make(map[[2]int]bool)
	add := func(lo, hi edge) {
		key := [2]int{lo.elt*2 + b2i(lo.start), hi.elt*2 + b2i(hi.start)}
		if seen[key] {
			return
		}
		seen[key] = true
		res = append(res, stem{
			low:      lo.pos,
			high:     hi.pos,
			curved:   lo.curved || hi.curved,
			vertical: vertical,
			lowEdge:  lo,
			highEdge: hi,
		})
	}
	overlaps := func(a, b edge) bool {
		return a.lo <= b.hi && b.lo <= a.hi
	}

	for i, lo := range edges {
		if !lo.fillAbove {
			continue
		}
		best := -1
		for j, hi := range edges {
			if hi.fillAbove || hi.pos <= lo.pos || hi.pos-lo.pos > maxWidth || !overlaps(lo, hi) {
				continue
			}
			if best < 0 || hi.pos < edges[best].pos {
				best = j
			}
		}
		if best >= 0 {
			add(edges[i], edges[best])
		}
	}
	for i, hi := range edges {
		if hi.fillAbove {
			continue
		}
		best := -1
		for j, lo := range edges {
			if !lo.fillAbove || lo.pos >= hi.pos || hi.pos-lo.pos > maxWidth || !overlaps(lo, hi) {
				continue
			}
			if best < 0 || lo.pos > edges[best].pos {
				best = j
			}
		}
		if best >= 0 {
			add(edges[best], edges[i])
		}
	}

	slices.SortStableFunc(res, func(a, b stem) int {
		switch {
		case a.low < b.low:
			return -1
		case a.low > b.low:
			return 1
		case a.high < b.high:
			return -1
		case a.high > b.high:
			return 1
		}
		return 0
	})
	return res
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// selector chooses the hints of a glyph from the candidate stems.
type selector struct {
	info    *fontinfo.FontInfo
	initial []bez.Hint
}

// choose selects non-overlapping hints for one direction.  Stems which were
// rejected because they overlap a chosen hint are returned separately.
func (sel *selector) choose(stems []stem, vertical bool) ([]bez.Hint, []stem) {
	var chosen []bez.Hint
	for _, h := range sel.initial {
		if h.Type.IsVertical() == vertical {
			chosen = append(chosen, h)
		}
	}

	cands := slices.Clone(stems)
	score := make(map[int]float64, len(cands))
	for i, s := range cands {
		score[i] = sel.score(s, vertical)
	}
	order := make([]int, len(cands))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		sa, sb := score[a], score[b]
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	})

	tp := bez.HStem
	if vertical {
		tp = bez.VStem
	}
	var rejected []stem
candidates:
	for _, i := range order {
		s := cands[i]
		h := bez.Hint{
			Type:   tp,
			Low:    s.low,
			High:   s.high,
			Elt0:   s.lowEdge.elt,
			Elt1:   s.highEdge.elt,
			Start0: s.lowEdge.start,
			Start1: s.highEdge.start,
		}
		for _, other := range chosen {
			if other.Low == h.Low && other.High == h.High {
				continue candidates
			}
		}
		for _, other := range chosen {
			if h.Overlaps(other) {
				rejected = append(rejected, s)
				continue candidates
			}
		}
		chosen = append(chosen, h)
	}

	slices.SortStableFunc(chosen, func(a, b bez.Hint) int {
		switch {
		case a.Low < b.Low:
			return -1
		case a.Low > b.Low:
			return 1
		}
		return 0
	})
	return chosen, rejected
}

// score computes the priority of a stem.  Smaller is better.
func (sel *selector) score(s stem, vertical bool) float64 {
	res := 0.0
	if s.curved {
		res += 10000
	}
	if !vertical && !sel.inZone(s) {
		res += 1000
	}

	dominant := sel.info.DominantH
	if vertical {
		dominant = sel.info.DominantV
	}
	w := s.width()
	if len(dominant) > 0 {
		best := math.Inf(1)
		for _, d := range dominant {
			best = min(best, math.Abs(w-float64(d)))
		}
		res += min(best, 999)
	} else {
		res += min(w, 999) / 2
	}
	return res
}

// inZone reports whether an edge of a horizontal stem lies in an alignment
// zone.
func (sel *selector) inZone(s stem) bool {
	fuzz := float64(sel.info.BlueFuzz)
	for _, z := range sel.info.TopZones() {
		lo, hi := z.Bounds()
		if s.high >= lo-fuzz && s.high <= hi+fuzz {
			return true
		}
	}
	for _, z := range sel.info.BottomZones() {
		lo, hi := z.Bounds()
		if s.low >= lo-fuzz && s.low <= hi+fuzz {
			return true
		}
	}
	return false
}

// substitute adds hint substitution for rejected stems.  A rejected stem
// can be used once the outline has passed all elements which define the
// conflicting hints of the currently active hint set.
func substitute(g *bez.Glyph, rejected []stem) {
	slices.SortStableFunc(rejected, func(a, b stem) int {
		return a.firstElt() - b.firstElt()
	})

	active := slices.Clone(g.Hints)
	for _, s := range rejected {
		tp := bez.HStem
		if s.vertical {
			tp = bez.VStem
		}
		h := bez.Hint{
			Type:   tp,
			Low:    s.low,
			High:   s.high,
			Elt0:   s.lowEdge.elt,
			Elt1:   s.highEdge.elt,
			Start0: s.lowEdge.start,
			Start1: s.highEdge.start,
		}
		at := s.firstElt()
		if at <= 1 || at > len(g.Cmds) {
			continue
		}

		var next []bez.Hint
		usable := true
		for _, other := range active {
			if !h.Overlaps(other) {
				next = append(next, other)
				continue
			}
			if max(other.Elt0, other.Elt1) >= at || other.Elt0 == 0 {
				usable = false
				break
			}
		}
		if !usable {
			continue
		}
		next = append(next, h)

		cmd := &g.Cmds[at-1]
		cmd.NewHints = next
		active = next
	}
}

// edgePoint returns the point of element elt (1-based) which defines an
// edge.
func edgePoint(g *bez.Glyph, elt int, start bool) (float64, float64) {
	if start {
		return g.StartPoint(elt - 1)
	}
	return g.StartPoint(elt)
}
