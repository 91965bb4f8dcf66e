// Package scene holds the transform tree the animation writes into and the
// renderer reads from.
package scene

import (
	"fmt"

	"github.com/Faultbox/lionfan/internal/engine/geometry"
	"github.com/Faultbox/lionfan/pkg/math"
)

// WorldUp is the up axis used by LookAt.
var WorldUp = math.Vec3{Y: 1}

// Node is a transform in the scene graph. Rotation holds XYZ Euler angles in
// radians. A node with a nil Mesh is a pure group.
//
// The tree shape is fixed once built: Add is for construction only and there
// is no way to detach or re-parent a node.
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3

	Mesh     *geometry.Mesh
	Material geometry.Material

	parent   *Node
	children []*Node
}

// NewGroup returns an empty group node.
func NewGroup(name string) *Node {
	return &Node{Name: name, Scale: math.One()}
}

// NewMesh returns a node drawing mesh with material.
func NewMesh(name string, mesh *geometry.Mesh, material geometry.Material) *Node {
	return &Node{Name: name, Scale: math.One(), Mesh: mesh, Material: material}
}

// Add attaches children to n and returns n. It panics if a child already has
// a parent, since that would re-parent it.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c.parent != nil {
			panic(fmt.Sprintf("scene: node %q already attached to %q", c.Name, c.parent.Name))
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Clone returns a detached deep copy sharing the mesh handles.
func (n *Node) Clone() *Node {
	c := &Node{
		Name:     n.Name,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
		Mesh:     n.Mesh,
		Material: n.Material,
	}
	for _, child := range n.children {
		c.Add(child.Clone())
	}
	return c
}

// LocalMatrix returns the transform relative to the parent.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix returns the transform relative to the root.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// WorldPosition returns the node origin in root space.
func (n *Node) WorldPosition() math.Vec3 {
	return n.WorldMatrix().Position()
}

// LookAt rotates the node so its +Z axis points at target, given in root
// space. Any previous rotation is overwritten.
func (n *Node) LookAt(target math.Vec3) {
	rot := math.FaceTowards(n.WorldPosition(), target, WorldUp)
	if n.parent != nil {
		rot = n.parent.WorldMatrix().Rotation().Transpose().Mul(rot)
	}
	n.Rotation = math.EulerFromMat4(rot)
}

// Walk visits n and its descendants depth-first, passing each node's world
// matrix.
func (n *Node) Walk(fn func(node *Node, world math.Mat4)) {
	var parentWorld math.Mat4
	if n.parent != nil {
		parentWorld = n.parent.WorldMatrix()
	} else {
		parentWorld = math.Identity()
	}
	n.walk(parentWorld, fn)
}

func (n *Node) walk(parentWorld math.Mat4, fn func(*Node, math.Mat4)) {
	world := parentWorld.Mul(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Find returns the first node named name in depth-first order, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of nodes in the subtree, n included.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}
