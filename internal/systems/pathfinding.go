package systems

import (
	"container/heap"
	"fmt"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
	"github.com/sirupsen/logrus"
)

// neighbour order: up, down, left, right
var directions = [4]domain.GridPos{
	{Col: 0, Row: -1},
	{Col: 0, Row: 1},
	{Col: -1, Row: 0},
	{Col: 1, Row: 0},
}

// FindPath returns the shortest 4-directional route from start to goal over
// the grid as it is right now. The path excludes start and includes goal.
// It never mutates the grid.
func FindPath(g *domain.Grid, start, goal domain.GridPos) (domain.Path, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "pathfinder",
		"start":     start,
		"goal":      goal,
	})

	// 1. Early exits that need no search
	if !g.InBounds(goal.Col, goal.Row) || !g.IsWalkable(goal.Col, goal.Row) {
		log.Debug("goal out of bounds or blocked")
		return nil, fmt.Errorf("goal %v: %w", goal, domain.ErrNoPath)
	}
	if !g.InBounds(start.Col, start.Row) {
		log.Debug("start out of bounds")
		return nil, fmt.Errorf("start %v: %w", start, domain.ErrNoPath)
	}
	if start == goal {
		return domain.Path{}, nil
	}

	// 2. Per-cell bookkeeping, indexed row-major
	w := g.Width()
	size := w * g.Height()
	idx := func(p domain.GridPos) int { return p.Row*w + p.Col }

	cameFrom := make([]int, size)
	queued := make([]*openItem, size)
	closed := make([]bool, size)
	for i := range cameFrom {
		cameFrom[i] = -1
	}

	open := make(openSet, 0, size)
	heap.Init(&open)
	seq := 0
	push := func(p domain.GridPos, gCost int) {
		item := &openItem{Pos: p, G: gCost, F: gCost + p.ManhattanTo(goal), Seq: seq}
		seq++
		queued[idx(p)] = item
		heap.Push(&open, item)
	}
	push(start, 0)

	// 3. Search
	for open.Len() > 0 {
		current := heap.Pop(&open).(*openItem)
		ci := idx(current.Pos)
		if current.Pos == goal {
			path := reconstruct(cameFrom, ci, idx(start), w)
			log.WithField("length", len(path)).Debug("path found")
			return path, nil
		}
		closed[ci] = true

		for _, d := range directions {
			next := current.Pos.Add(d)
			if !g.IsWalkable(next.Col, next.Row) {
				continue
			}
			ni := idx(next)
			if closed[ni] {
				continue
			}

			tentative := current.G + 1
			if existing := queued[ni]; existing != nil {
				if tentative < existing.G {
					cameFrom[ni] = ci
					open.Update(existing, tentative, tentative+next.ManhattanTo(goal))
				}
				continue
			}
			cameFrom[ni] = ci
			push(next, tentative)
		}
	}

	log.Debug("open set exhausted")
	return nil, fmt.Errorf("goal %v unreachable: %w", goal, domain.ErrNoPath)
}

func reconstruct(cameFrom []int, goal, start, width int) domain.Path {
	var reversed []domain.GridPos
	for at := goal; at != start; at = cameFrom[at] {
		reversed = append(reversed, domain.GridPos{Col: at % width, Row: at / width})
	}

	path := make(domain.Path, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}
