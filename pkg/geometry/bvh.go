package geometry

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Leaves are the scene objects themselves; a node built from a single
// object stores it as both children.
type BVHNode struct {
	Box   core.AABB
	Left  Hittable
	Right Hittable
}

// NewBVH constructs a BVH over objects. It panics if objects is empty.
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build a BVH from an empty object list")
	}

	// Sorting happens in place, so work on a copy of the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// NewBVHFromList constructs a BVH over the objects of a list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects())
}

// buildBVH recursively splits objects at the median centroid along the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	boundingBox := core.EmptyAABB
	for _, object := range objects {
		boundingBox = boundingBox.Union(object.BoundingBox())
	}

	axis := boundingBox.LongestAxis()

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		node.Left = objects[0]
		node.Right = objects[1]
	default:
		sortObjectsByAxis(objects, axis)
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	node.Box = node.Left.BoundingBox().Union(node.Right.BoundingBox())
	return node
}

// sortObjectsByAxis sorts objects by their bounding box center along the specified axis
func sortObjectsByAxis(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		centerI := objects[i].BoundingBox().Center()
		centerJ := objects[j].BoundingBox().Center()
		return centerI.Axis(axis) < centerJ.Axis(axis)
	})
}

// Hit tests the node box first, then both children with the interval tightened by the left hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)
	// A single-object node must be queried once: volumes draw a fresh distance per query
	if n.Right == n.Left {
		return leftHit, hitLeft
	}

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, rightT, sampler)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int     // Interior BVH nodes
	LeafObjects int     // Objects referenced by leaves
	MaxDepth    int     // Depth of the deepest node, root = 0
	AvgDepth    float64 // Mean depth of leaf references
}

// Stats walks the tree and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.LeafObjects > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafObjects)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left, n.Right}
	if n.Left == n.Right {
		children = children[:1]
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.LeafObjects++
			stats.AvgDepth += float64(depth + 1) // Accumulate depth for average calculation
		}
	}
}
