package dataset_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"slices"
	"testing"

	tensor3d "github.com/sw965/crowpose/blas32/tensor/3d"
	"github.com/sw965/crowpose/dataset"
	"github.com/sbinet/npyio"
	orand "github.com/sw965/omw/math/rand"
)

func TestNpyRows(t *testing.T) {
	rng := orand.NewMt19937()
	g := tensor3d.NewUniform(3, 17, 2, -100, 100, rng)

	var buf bytes.Buffer
	if err := dataset.WriteNpy(&buf, g); err != nil {
		t.Fatal(err)
	}
	got, err := dataset.ReadNpyRows(&buf, 17)
	if err != nil {
		t.Fatal(err)
	}
	if !got.SameShape(g) {
		t.Fatalf("shape = %v, want %v", got.Shape(), g.Shape())
	}
	if !slices.Equal(got.Data, g.Data) {
		t.Errorf("data mismatch")
	}
}

func TestReadNpyRowsInvalidJoints(t *testing.T) {
	g := tensor3d.NewOnes(2, 3, 2)
	var buf bytes.Buffer
	if err := dataset.WriteNpy(&buf, g); err != nil {
		t.Fatal(err)
	}
	if _, err := dataset.ReadNpyRows(&buf, 4); err == nil {
		t.Errorf("expected an error when rows are not divisible by joints")
	}
}

func TestReadNpyRequires3D(t *testing.T) {
	var buf bytes.Buffer
	if err := npyio.Write(&buf, []float32{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if _, err := dataset.ReadNpy(&buf); err == nil {
		t.Errorf("expected an error for a 1-D array")
	}
}

func TestGob(t *testing.T) {
	rng := orand.NewMt19937()
	gs := []tensor3d.General{
		tensor3d.NewUniform(2, 5, 2, -1, 1, rng),
		tensor3d.NewUniform(1, 5, 2, -1, 1, rng),
	}
	path := filepath.Join(t.TempDir(), "keypoints.gob")
	if err := dataset.SaveGob(path, gs); err != nil {
		t.Fatal(err)
	}
	got, err := dataset.LoadGob(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(gs) {
		t.Fatalf("len = %d, want %d", len(got), len(gs))
	}
	for i := range gs {
		if !got[i].SameShape(gs[i]) || !slices.Equal(got[i].Data, gs[i].Data) {
			t.Errorf("tensor %d differs after reload", i)
		}
	}
}

// npy3Dは (N, K, D) 形状の <f4 .npy (version 1.0) をバイト列として組み立てる。
func npy3D(t *testing.T, batches, joints, dims int, data []float32) *bytes.Buffer {
	t.Helper()
	header := fmt.Sprintf("{'descr': '<f4', 'fortran_order': False, 'shape': (%d, %d, %d), }", batches, joints, dims)
	for (10+len(header)+1)%64 != 0 {
		header += " "
	}
	header += "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(header))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(header)
	if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadNpy(t *testing.T) {
	data := []float32{0, 0, 1, 0, 2.5, -3, 4, 5}
	g, err := dataset.ReadNpy(npy3D(t, 2, 2, 2, data))
	if err != nil {
		t.Fatal(err)
	}
	if g.Shape() != (tensor3d.Shape{Batches: 2, Joints: 2, Dims: 2}) {
		t.Errorf("shape = %v", g.Shape())
	}
	if !slices.Equal(g.Data, data) {
		t.Errorf("data = %v, want %v", g.Data, data)
	}
	if got := g.Data[g.At(1, 0, 1)]; got != -3 {
		t.Errorf("At(1, 0, 1) -> %v, want -3", got)
	}
}

func TestLoadNpyMissing(t *testing.T) {
	if _, err := dataset.LoadNpy(filepath.Join(t.TempDir(), "missing.npy")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
