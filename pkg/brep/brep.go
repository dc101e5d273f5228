// Package brep builds the boundary-representation records of extruded
// polygon solids: vertices, edges, loops, planar faces, shells, solids
// and the assembly that ties them into one shape representation.
//
// Layers are strictly bottom-up. Every builder method interns records
// through a step.Registry, so geometrically identical primitives
// collapse to a single record id.
package brep

import (
	"strconv"

	"github.com/evvaletov/stepfg/pkg/geom"
	"github.com/evvaletov/stepfg/pkg/step"
)

// orientTol bounds |n+h| when deciding whether a face's geometric
// normal opposes its target normal. Both vectors are unit length, and
// for extrusion-generated faces they derive from the same arithmetic,
// so the sum is either exactly zero or close to 2.
const orientTol = 1e-9

// Builder emits B-rep records through a registry. One builder serves
// one generation run; its part counter names successive solids
// PartBody.1, PartBody.2, ...
type Builder struct {
	reg   *step.Registry
	parts int
}

// NewBuilder returns a builder emitting into reg.
func NewBuilder(reg *step.Registry) *Builder {
	return &Builder{reg: reg, parts: 1}
}

func coord(v geom.Vec3) string {
	return step.FormatCoord(v.X, v.Y, v.Z)
}

// Point interns a bare cartesian point record.
func (b *Builder) Point(v geom.Vec3) int {
	return b.reg.Intern("CARTESIAN_POINT", "'',("+coord(v)+")")
}

// Direction interns a line direction record. d must be unit length.
func (b *Builder) Direction(d geom.Vec3) int {
	return b.reg.Intern("DIRECTION", "'Vector Direction',("+coord(d)+")")
}

// Line interns the records of the straight line through origin along
// dir: the origin point, the normalized direction, a unit vector over
// it and the line itself. Returns the line id.
func (b *Builder) Line(origin, dir geom.Vec3) (int, error) {
	originID := b.reg.Intern("CARTESIAN_POINT", "'Origin Line',("+coord(origin)+")")
	unit, err := geom.Normalize(dir)
	if err != nil {
		return 0, err
	}
	dirID := b.Direction(unit)
	vecID := b.reg.Intern("VECTOR", "'Line Direction',"+step.Ref(dirID)+",1.")
	return b.reg.Intern("LINE", "'Line',"+step.Ref(originID)+","+step.Ref(vecID)), nil
}

// Vertex interns a topological vertex at v and returns its id.
func (b *Builder) Vertex(v geom.Vec3) int {
	cp := b.reg.Intern("CARTESIAN_POINT", "'Vertex',("+coord(v)+")")
	return b.reg.Intern("VERTEX_POINT", "'',"+step.Ref(cp))
}

// Edge interns a straight edge from p to q: both bounding vertices,
// the carrying line through the segment midpoint, and the edge curve.
func (b *Builder) Edge(p, q geom.Vec3) (int, error) {
	vp := b.Vertex(p)
	vq := b.Vertex(q)
	lineID, err := b.Line(geom.Midpoint(p, q), q.Sub(p))
	if err != nil {
		return 0, err
	}
	return b.reg.Intern("EDGE_CURVE",
		"'',"+step.Ref(vp)+","+step.Ref(vq)+","+step.Ref(lineID)+",.T."), nil
}

// OrientedEdge wraps an edge curve with a traversal sense.
func (b *Builder) OrientedEdge(edgeID int, sameSense bool) int {
	return b.reg.Intern("ORIENTED_EDGE", "'',*,*,"+step.Ref(edgeID)+","+step.Bool(sameSense))
}

// Loop interns one oriented edge per cyclic vertex pair of ring and
// closes them into an edge loop.
func (b *Builder) Loop(ring []geom.Vec3) (int, error) {
	edges := make([]int, len(ring))
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		e, err := b.Edge(p, q)
		if err != nil {
			return 0, err
		}
		edges[i] = b.OrientedEdge(e, true)
	}
	return b.reg.Intern("EDGE_LOOP", "'',("+step.RefList(edges)+")"), nil
}

// OuterBound marks a loop as a face's outer boundary.
func (b *Builder) OuterBound(loopID int, sameSense bool) int {
	return b.reg.Intern("FACE_OUTER_BOUND", "'',"+step.Ref(loopID)+","+step.Bool(sameSense))
}

// Frame interns an axis placement: location, plane normal, in-plane
// reference direction.
func (b *Builder) Frame(origin, zdir, xdir geom.Vec3) int {
	loc := b.reg.Intern("CARTESIAN_POINT", "'Axis2P3D Location',("+coord(origin)+")")
	z := b.reg.Intern("DIRECTION", "'Axis2P3D ZDirection',("+coord(zdir)+")")
	x := b.reg.Intern("DIRECTION", "'Axis2P3D XDirection',("+coord(xdir)+")")
	return b.reg.Intern("AXIS2_PLACEMENT_3D",
		"'Plane Axis2P3D',"+step.Ref(loc)+","+step.Ref(z)+","+step.Ref(x))
}

// Plane interns the unbounded plane positioned by a frame.
func (b *Builder) Plane(frameID int) int {
	return b.reg.Intern("PLANE", "'',"+step.Ref(frameID))
}

// PlanarFace builds a bounded planar face whose stored orientation
// matches hint. The ring's geometric normal, right-handed from its
// first three vertices, either already points along hint and the given
// order is kept, or opposes it and the loop runs over the reversed
// order. The placement origin is the first vertex and the reference
// direction the first edge of whichever order the loop uses; the
// placement normal is the normalized hint.
func (b *Builder) PlanarFace(ring []geom.Vec3, hint geom.Vec3) (int, error) {
	n, err := geom.Normalize(geom.Cross(ring[1].Sub(ring[0]), ring[2].Sub(ring[0])))
	if err != nil {
		return 0, err
	}
	h, err := geom.Normalize(hint)
	if err != nil {
		return 0, err
	}
	order := ring
	if n.Add(h).Length() < orientTol {
		order = geom.Reversed(ring)
	}

	loopID, err := b.Loop(order)
	if err != nil {
		return 0, err
	}
	bound := b.OuterBound(loopID, true)

	xdir, err := geom.Normalize(order[1].Sub(order[0]))
	if err != nil {
		return 0, err
	}
	plane := b.Plane(b.Frame(order[0], h, xdir))

	return b.reg.Intern("ADVANCED_FACE",
		"'PartBody',("+step.Ref(bound)+"),"+step.Ref(plane)+",.T."), nil
}

// ExtrudeProfile builds the N+2 faces of the solid swept from a
// clockwise ring between zmin and zmax: the top face, the bottom face,
// then one lateral quad per ring edge. Face ids come back in that
// order.
func (b *Builder) ExtrudeProfile(ring []geom.Vec3, zmin, zmax float64) ([]int, error) {
	faces := make([]int, 0, len(ring)+2)

	lifted := func(dz float64) []geom.Vec3 {
		out := make([]geom.Vec3, len(ring))
		for i, v := range ring {
			out[i] = v.Add(geom.Vec3{Z: dz})
		}
		return out
	}

	top, err := b.PlanarFace(lifted(zmax), geom.Vec3{Z: 1})
	if err != nil {
		return nil, err
	}
	faces = append(faces, top)

	bottom, err := b.PlanarFace(lifted(zmin), geom.Vec3{Z: -1})
	if err != nil {
		return nil, err
	}
	faces = append(faces, bottom)

	height := zmax - zmin
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		quad := []geom.Vec3{
			p.Add(geom.Vec3{Z: zmin}),
			q.Add(geom.Vec3{Z: zmin}),
			q.Add(geom.Vec3{Z: zmax}),
			p.Add(geom.Vec3{Z: zmax}),
		}
		hint, err := geom.Normalize(geom.Cross(q.Sub(p), geom.Vec3{Z: -height}))
		if err != nil {
			return nil, err
		}
		face, err := b.PlanarFace(quad, hint)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}

// Solid closes the faces into a shell and wraps it into a manifold
// solid named PartBody.<n> from the part counter.
func (b *Builder) Solid(faceIDs []int) int {
	shell := b.reg.Intern("CLOSED_SHELL", "'Closed Shell',("+step.RefList(faceIDs)+")")
	solid := b.reg.Intern("MANIFOLD_SOLID_BREP",
		"'PartBody."+strconv.Itoa(b.parts)+"',"+step.Ref(shell))
	b.parts++
	return solid
}

// Assembly wraps the solids into one shape representation under the
// document's geometric context and links it to the document's root
// shape representation. Returns the relationship record id.
func (b *Builder) Assembly(solidIDs []int, contextID, rootShapeID int) int {
	absr := b.reg.Intern("ADVANCED_BREP_SHAPE_REPRESENTATION",
		"'NONE',("+step.RefList(solidIDs)+"),"+step.Ref(contextID))
	return b.reg.Intern("SHAPE_REPRESENTATION_RELATIONSHIP",
		"' ',' ',"+step.Ref(rootShapeID)+","+step.Ref(absr))
}
