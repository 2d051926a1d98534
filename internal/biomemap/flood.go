package biomemap

import (
	"fmt"

	"terragen/internal/biome"
	"terragen/internal/generr"
	"terragen/internal/grid"
)

// label validates every cell and partitions the grid into regions. Cells are
// scanned row-major; the first unclaimed cell in scan order seeds the next
// region.
func (m *Map) label(namer *biome.Namer) error {
	for i := range m.cells {
		if err := m.cells[i].Weights.Validate(); err != nil {
			return fmt.Errorf("cell %s: %w", grid.FromIndex(i, m.width), err)
		}
	}

	queued := make([]bool, len(m.cells))
	queue := make([]grid.Point, 0, 64)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			seed := grid.Pt(x, y)
			if m.cells[seed.Index(m.width)].RegionID != Unclaimed {
				continue
			}
			id := len(m.regions)
			category := m.cells[seed.Index(m.width)].Primary
			var size int
			size, queue = m.fill(seed, id, category, queue[:0], queued)
			m.regions = append(m.regions, Region{
				ID:       id,
				Category: category,
				Name:     namer.Name(category, size),
				Size:     size,
				Seed:     seed,
			})
		}
	}
	return m.checkPartition()
}

// fill claims the 4-connected component of category around seed for region
// id and returns its size along with the queue buffer for reuse. Only claimed cells push their neighbours, so the
// fill never walks past the component boundary. queued is cleared for every
// visited cell before returning so the next fill can reuse it.
func (m *Map) fill(seed grid.Point, id int, category biome.Category, queue []grid.Point, queued []bool) (int, []grid.Point) {
	queue = append(queue, seed)
	queued[seed.Index(m.width)] = true
	size := 0
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		c := &m.cells[p.Index(m.width)]
		if c.Primary != category {
			continue
		}
		c.RegionID = id
		size++
		for _, n := range p.Cardinal() {
			if !n.InBounds(0, 0, m.width, m.height) {
				continue
			}
			i := n.Index(m.width)
			if queued[i] || m.cells[i].RegionID != Unclaimed {
				continue
			}
			queued[i] = true
			queue = append(queue, n)
		}
	}
	for _, p := range queue {
		queued[p.Index(m.width)] = false
	}
	return size, queue
}

func (m *Map) checkPartition() error {
	total := 0
	for _, r := range m.regions {
		total += r.Size
	}
	for i, c := range m.cells {
		if c.RegionID == Unclaimed {
			return generr.Invariantf("cell %s left unclaimed after labelling", grid.FromIndex(i, m.width))
		}
	}
	if total != len(m.cells) {
		return generr.Invariantf("region sizes sum to %d, expected %d", total, len(m.cells))
	}
	return nil
}
