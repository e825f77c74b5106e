// SPDX-License-Identifier: MIT

package dcftp

import "github.com/katalvlaran/prs/geom"

// pointSet is an insertion-indexed set of identified points with O(1)
// add, remove and membership.
type pointSet struct {
	pts []geom.Point
	ids []int
	pos map[int]int
}

func newPointSet() *pointSet {
	return &pointSet{pos: make(map[int]int)}
}

func (s *pointSet) len() int { return len(s.ids) }

func (s *pointSet) has(id int) bool {
	_, ok := s.pos[id]
	return ok
}

func (s *pointSet) add(id int, p geom.Point) {
	if s.has(id) {
		return
	}
	s.pos[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.pts = append(s.pts, p)
}

func (s *pointSet) remove(id int) {
	i, ok := s.pos[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	s.ids[i], s.pts[i] = s.ids[last], s.pts[last]
	s.pos[s.ids[i]] = i
	s.ids, s.pts = s.ids[:last], s.pts[:last]
	delete(s.pos, id)
}

// at returns the id of the k-th element.
func (s *pointSet) at(k int) int { return s.ids[k] }

// points returns the live point slice; callers must not retain it.
func (s *pointSet) points() []geom.Point { return s.pts }

func (s *pointSet) clone() *pointSet {
	c := &pointSet{
		pts: append([]geom.Point(nil), s.pts...),
		ids: append([]int(nil), s.ids...),
		pos: make(map[int]int, len(s.pos)),
	}
	for id, i := range s.pos {
		c.pos[id] = i
	}
	return c
}
