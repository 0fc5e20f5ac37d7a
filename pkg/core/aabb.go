package core

import "math"

// minAABBThickness is the smallest extent an AABB axis may have. Planar shapes
// such as quads would otherwise produce zero-width slabs that rays slip through.
const minAABBThickness = 0.0001

// AABB represents an axis-aligned bounding box as the product of three intervals
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing and is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates the box spanned by two opposite corners given in any order
func NewAABB(a, b Vec3) AABB {
	return NewAABBFromIntervals(
		Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	)
}

// NewAABBFromIntervals creates a box from three axis intervals
func NewAABBFromIntervals(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	minPoint := points[0]
	maxPoint := points[0]

	for _, point := range points[1:] {
		minPoint.X = math.Min(minPoint.X, point.X)
		minPoint.Y = math.Min(minPoint.Y, point.Y)
		minPoint.Z = math.Min(minPoint.Z, point.Z)

		maxPoint.X = math.Max(maxPoint.X, point.X)
		maxPoint.Y = math.Max(maxPoint.Y, point.Y)
		maxPoint.Z = math.Max(maxPoint.Z, point.Z)
	}

	return NewAABB(minPoint, maxPoint)
}

func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() < minAABBThickness {
		aabb.X = aabb.X.Expand(minAABBThickness)
	}
	if aabb.Y.Size() < minAABBThickness {
		aabb.Y = aabb.Y.Expand(minAABBThickness)
	}
	if aabb.Z.Size() < minAABBThickness {
		aabb.Z = aabb.Z.Expand(minAABBThickness)
	}
	return aabb
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel rays only hit if the origin lies within the slab
		if math.Abs(direction) < 1e-8 {
			if origin < slab.Min || origin > slab.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (slab.Min - origin) * invDirection
		t2 := (slab.Max - origin) * invDirection

		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: NewIntervalEnclosing(aabb.X, other.X),
		Y: NewIntervalEnclosing(aabb.Y, other.Y),
		Z: NewIntervalEnclosing(aabb.Z, other.Z),
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Add returns the box translated by offset
func (aabb AABB) Add(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// IsValid returns true if no axis is empty
func (aabb AABB) IsValid() bool {
	return !aabb.X.IsEmpty() && !aabb.Y.IsEmpty() && !aabb.Z.IsEmpty()
}
