package rig

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/neon/pkg/math3d"
	"github.com/taigrr/neon/pkg/transform"
)

func nodeByName(t *testing.T, doc *gltf.Document, name string) (int, *gltf.Node) {
	t.Helper()
	for i, n := range doc.Nodes {
		if n.Name == name {
			return i, n
		}
	}
	t.Fatalf("no node named %q", name)
	return -1, nil
}

func TestDocumentTree(t *testing.T) {
	r := DefaultArm(60)
	doc := r.Document(NewObject(math3d.V3(0, 0, 1)))

	if len(doc.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(doc.Meshes))
	}
	if got := doc.Accessors[doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]].Count; got != len(boxCorners) {
		t.Errorf("box has %d positions, want %d", got, len(boxCorners))
	}

	// base -> shoulder -> elbow -> wrist -> effector, each joint with a box.
	parent, _ := nodeByName(t, doc, "base")
	for _, name := range []string{"shoulder", "elbow", "wrist", "effector"} {
		idx, _ := nodeByName(t, doc, name)
		found := false
		for _, c := range doc.Nodes[parent].Children {
			if c == idx {
				found = true
			}
		}
		if !found {
			t.Errorf("%s is not a child of %s", name, doc.Nodes[parent].Name)
		}
		parent = idx
	}

	_, seg := nodeByName(t, doc, "elbow-segment")
	if seg.Mesh == nil || *seg.Mesh != 0 {
		t.Errorf("elbow-segment mesh = %v, want box", seg.Mesh)
	}

	if got := doc.Scenes[0].Nodes; len(got) != 2 {
		t.Errorf("scene has %d root nodes, want base and one object", len(got))
	}
}

// The node tree must pose the effector where the op-list does.
func TestDocumentMatchesPose(t *testing.T) {
	r := DefaultArm(60)
	if err := r.SetAngle(0, 0.7); err != nil {
		t.Fatal(err)
	}
	r.Mount = []transform.Op{transform.RotateZ{Rad: 0.3}}
	doc := r.Document()

	var world math3d.Mat4
	world.Identity()
	for _, name := range []string{"base", "shoulder", "elbow", "wrist", "effector"} {
		_, n := nodeByName(t, doc, name)
		var local math3d.Mat4
		for i, v := range n.MatrixOrDefault() {
			local[i] = float32(v)
		}
		world.Multiply(local)
	}

	got := world.Transform(math3d.Vec3{})
	if want := r.Pose().Effector; !near3(got, want, 1e-5) {
		t.Errorf("node tree effector = %v, want %v", got, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := DefaultArm(60).Document()

	for _, binary := range []bool{false, true} {
		name := "json"
		if binary {
			name = "glb"
		}
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, doc, binary); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got := bytes.HasPrefix(buf.Bytes(), []byte("glTF")); got != binary {
				t.Errorf("GLB magic present = %v, want %v", got, binary)
			}

			var back gltf.Document
			if err := gltf.NewDecoder(&buf).Decode(&back); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if len(back.Nodes) != len(doc.Nodes) {
				t.Errorf("decoded %d nodes, want %d", len(back.Nodes), len(doc.Nodes))
			}
		})
	}
}

func TestWriteGLTF(t *testing.T) {
	doc := DefaultArm(60).Document()
	dir := t.TempDir()

	for _, file := range []string{"arm.gltf", "arm.glb"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(dir, file)
			if err := WriteGLTF(path, doc); err != nil {
				t.Fatalf("WriteGLTF: %v", err)
			}
			back, err := gltf.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			_, tip := nodeByName(t, back, "effector")
			if got := tip.MatrixOrDefault()[13]; got != -0.75 {
				t.Errorf("effector y offset = %v, want -0.75", got)
			}
		})
	}
}
