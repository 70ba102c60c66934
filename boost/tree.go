package boost

import (
	"sort"

	"github.com/go-ml-lab/harboost/tables"
)

// treeNode is a binary regression tree over the log-loss gradients.
// A node with nil children is a leaf carrying the additive weight.
type treeNode struct {
	feature     int
	threshold   float64
	left, right *treeNode
	weight      float64
}

func (t *treeNode) predict(row []float64) float64 {
	n := t
	for n.left != nil {
		if row[n.feature] < n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.weight
}

type treeBuilder struct {
	x              *tables.Matrix
	grad, hess     []float64
	maxDepth       int
	minChildWeight float64
	lambda         float64
	gamma          float64
	gain           []float64 // per-feature split gain totals, shared across rounds
}

type splitInfo struct {
	feature   int
	threshold float64
	gain      float64
	left      []int
	right     []int
}

func (b *treeBuilder) build(rows, feats []int, depth int) *treeNode {
	var g, h float64
	for _, i := range rows {
		g += b.grad[i]
		h += b.hess[i]
	}
	if depth <= 0 || len(rows) < 2 {
		return b.leaf(g, h)
	}
	best := b.findBestSplit(rows, feats, g, h)
	if best.feature < 0 {
		return b.leaf(g, h)
	}
	b.gain[best.feature] += best.gain
	return &treeNode{
		feature:   best.feature,
		threshold: best.threshold,
		left:      b.build(best.left, feats, depth-1),
		right:     b.build(best.right, feats, depth-1),
	}
}

func (b *treeBuilder) leaf(g, h float64) *treeNode {
	return &treeNode{feature: -1, weight: -g / (h + b.lambda)}
}

func (b *treeBuilder) findBestSplit(rows, feats []int, g, h float64) splitInfo {
	best := splitInfo{feature: -1}
	base := g * g / (h + b.lambda)
	order := make([]int, len(rows))
	for _, j := range feats {
		copy(order, rows)
		sort.Slice(order, func(a, c int) bool {
			return b.x.At(order[a], j) < b.x.At(order[c], j)
		})
		var gl, hl float64
		for q := 0; q < len(order)-1; q++ {
			i := order[q]
			gl += b.grad[i]
			hl += b.hess[i]
			v, next := b.x.At(i, j), b.x.At(order[q+1], j)
			if v == next {
				continue
			}
			gr, hr := g-gl, h-hl
			if hl < b.minChildWeight || hr < b.minChildWeight {
				continue
			}
			gain := 0.5*(gl*gl/(hl+b.lambda)+gr*gr/(hr+b.lambda)-base) - b.gamma
			if gain > best.gain {
				best = splitInfo{
					feature:   j,
					threshold: (v + next) / 2,
					gain:      gain,
					left:      append([]int{}, order[:q+1]...),
					right:     append([]int{}, order[q+1:]...),
				}
			}
		}
	}
	return best
}
