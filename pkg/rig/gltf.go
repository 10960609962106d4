package rig

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/neon/pkg/math3d"
	"github.com/taigrr/neon/pkg/transform"
)

// boxCorners are the corners of the [-1, 1] cube every segment scales.
var boxCorners = [][3]float32{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// boxIndices wind every face counter-clockwise seen from outside.
var boxIndices = []uint16{
	0, 2, 1, 0, 3, 2, // back
	4, 5, 6, 4, 6, 7, // front
	0, 1, 5, 0, 5, 4, // bottom
	3, 7, 6, 3, 6, 2, // top
	0, 4, 7, 0, 7, 3, // left
	1, 2, 6, 1, 6, 5, // right
}

func nodeMatrix(m math3d.Mat4) [16]float64 {
	var out [16]float64
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

// Document exports the rig at its current joint angles as a glTF scene.
// The node tree mirrors the op-list: a base node holds the mount ops and
// base translation, each joint node is a child of the previous one with the
// joint's own ops as its local matrix, each segment is a child box of its
// joint, and an "effector" node marks the tip. objects are added as
// top-level boxes.
func (r *Rig) Document(objects ...*Object) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "neon/rig"

	pos := modeler.WritePosition(doc, boxCorners)
	idx := modeler.WriteIndices(doc, boxIndices)
	doc.Meshes = []*gltf.Mesh{{
		Name: "box",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}

	add := func(n *gltf.Node) int {
		doc.Nodes = append(doc.Nodes, n)
		return len(doc.Nodes) - 1
	}
	box := func(name string, local math3d.Mat4) int {
		return add(&gltf.Node{Name: name, Mesh: gltf.Index(0), Matrix: nodeMatrix(local)})
	}
	scaling := func(v math3d.Vec3) math3d.Mat4 {
		var m math3d.Mat4
		return *m.FromScaling(v)
	}

	parent := add(&gltf.Node{
		Name:   "base",
		Matrix: nodeMatrix(transform.New(r.Mount...).Push(transform.Translate{V: r.Base}).Mat()),
	})
	root := parent
	for _, j := range r.Joints {
		local := transform.New(j.Spec.ops(float32(j.Angle))...).Mat()
		joint := add(&gltf.Node{Name: j.Spec.Name, Matrix: nodeMatrix(local)})
		seg := box(j.Spec.Name+"-segment", scaling(j.Spec.Size))
		doc.Nodes[joint].Children = append(doc.Nodes[joint].Children, seg)
		doc.Nodes[parent].Children = append(doc.Nodes[parent].Children, joint)
		parent = joint
	}
	tip := add(&gltf.Node{
		Name:   "effector",
		Matrix: nodeMatrix(transform.New(transform.Translate{V: r.Tip}).Mat()),
	})
	doc.Nodes[parent].Children = append(doc.Nodes[parent].Children, tip)

	doc.Scenes[0].Name = "rig"
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, root)
	for _, o := range objects {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, box("object", o.Segment().Model))
	}
	return doc
}

// Encode writes doc to w as glTF JSON, or as GLB when binary is set.
func Encode(w io.Writer, doc *gltf.Document, binary bool) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	if !binary {
		doc = embedBuffers(doc)
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gltf: %w", err)
	}
	return nil
}

// WriteGLTF saves doc to path. A .glb extension selects the binary
// container.
func WriteGLTF(path string, doc *gltf.Document) error {
	save := gltf.Save
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		save = gltf.SaveBinary
	} else {
		doc = embedBuffers(doc)
	}
	if err := save(doc, path); err != nil {
		return fmt.Errorf("save gltf: %w", err)
	}
	return nil
}

// embedBuffers returns a shallow copy of doc whose URI-less buffers are
// embedded as data URIs, as a plain .gltf file has no binary chunk.
func embedBuffers(doc *gltf.Document) *gltf.Document {
	out := *doc
	out.Buffers = make([]*gltf.Buffer, len(doc.Buffers))
	for i, b := range doc.Buffers {
		nb := *b
		if nb.URI == "" {
			nb.EmbeddedResource()
		}
		out.Buffers[i] = &nb
	}
	return &out
}
