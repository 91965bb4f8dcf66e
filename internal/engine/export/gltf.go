// Package export writes a posed scene graph to glTF 2.0.
package export

import (
	"fmt"
	stdmath "math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/lionfan/internal/engine/geometry"
	"github.com/Faultbox/lionfan/internal/engine/scene"
)

type meshKey struct {
	mesh     *geometry.Mesh
	material geometry.Material
}

type builder struct {
	doc       *gltf.Document
	meshes    map[meshKey]int
	materials map[geometry.Material]int
}

// Document converts the tree under root into a glTF document. Node
// transforms are written as matrices in the current pose. Meshes shared
// between nodes are written once per material.
func Document(root *scene.Node) *gltf.Document {
	b := &builder{
		doc:       gltf.NewDocument(),
		meshes:    make(map[meshKey]int),
		materials: make(map[geometry.Material]int),
	}
	b.doc.Asset.Generator = "lionfan"

	idx := b.node(root)
	b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, idx)
	return b.doc
}

// WriteGLB writes the tree under root as a binary glTF file.
func WriteGLB(path string, root *scene.Node) error {
	if err := gltf.SaveBinary(Document(root), path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func (b *builder) node(n *scene.Node) int {
	local := n.LocalMatrix()
	gn := &gltf.Node{
		Name:     n.Name,
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
	}
	for i, v := range local {
		gn.Matrix[i] = float64(v)
	}
	if n.Mesh != nil {
		gn.Mesh = index(b.mesh(n.Mesh, n.Material))
	}

	idx := len(b.doc.Nodes)
	b.doc.Nodes = append(b.doc.Nodes, gn)
	for _, c := range n.Children() {
		gn.Children = append(gn.Children, b.node(c))
	}
	return idx
}

func (b *builder) mesh(m *geometry.Mesh, mat geometry.Material) int {
	key := meshKey{m, mat}
	if idx, ok := b.meshes[key]; ok {
		return idx
	}

	positions := make([][3]float32, len(m.Positions))
	for i, p := range m.Positions {
		positions[i] = [3]float32{p.X, p.Y, p.Z}
	}
	pos := modeler.WritePosition(b.doc, positions)
	ind := modeler.WriteIndices(b.doc, m.Indices)

	idx := len(b.doc.Meshes)
	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name: m.Name,
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{gltf.POSITION: pos},
			Indices:    index(ind),
			Material:   index(b.material(mat)),
		}},
	})
	b.meshes[key] = idx
	return idx
}

func (b *builder) material(mat geometry.Material) int {
	if idx, ok := b.materials[mat]; ok {
		return idx
	}
	c := geometry.HexColor(mat.Hex())
	metallic, roughness := 0.0, 1.0

	idx := len(b.doc.Materials)
	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		Name: mat.String(),
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{linear(c[0]), linear(c[1]), linear(c[2]), 1},
			MetallicFactor:  &metallic,
			RoughnessFactor: &roughness,
		},
	})
	b.materials[mat] = idx
	return idx
}

// linear converts an sRGB channel to the linear space glTF colours use.
func linear(c float32) float64 {
	v := float64(c)
	if v <= 0.04045 {
		return v / 12.92
	}
	return stdmath.Pow((v+0.055)/1.055, 2.4)
}

func index(i int) *int {
	return &i
}
