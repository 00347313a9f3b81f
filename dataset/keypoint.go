// Package dataset はキーポイント座標テンソルのファイル入出力を扱う。
package dataset

import (
	"fmt"
	"io"
	"os"

	tensor3d "github.com/sw965/crowpose/blas32/tensor/3d"
	"github.com/sbinet/npyio"
	ogob "github.com/sw965/omw/encoding/gob"
	"gonum.org/v1/gonum/mat"
)

// ReadNpyは (N, K, D) 形状の3次元 .npy (<f4 または <f8) を読み込む。
func ReadNpy(r io.Reader) (tensor3d.General, error) {
	npy, err := npyio.NewReader(r)
	if err != nil {
		return tensor3d.General{}, err
	}

	descr := npy.Header.Descr
	if descr.Fortran {
		return tensor3d.General{}, fmt.Errorf("Fortran順の .npy には対応していません。")
	}
	shape := descr.Shape
	if len(shape) != 3 {
		return tensor3d.General{}, fmt.Errorf(".npy の次元数は3でなければなりません。shape = %v", shape)
	}

	var data []float32
	switch descr.Type {
	case "<f4":
		if err := npy.Read(&data); err != nil {
			return tensor3d.General{}, err
		}
	case "<f8":
		var f64 []float64
		if err := npy.Read(&f64); err != nil {
			return tensor3d.General{}, err
		}
		data = make([]float32, len(f64))
		for i, e := range f64 {
			data[i] = float32(e)
		}
	default:
		return tensor3d.General{}, fmt.Errorf("未対応の .npy データ型です: %s", descr.Type)
	}
	return tensor3d.New(shape[0], shape[1], shape[2], data)
}

func LoadNpy(path string) (tensor3d.General, error) {
	f, err := os.Open(path)
	if err != nil {
		return tensor3d.General{}, err
	}
	defer f.Close()

	g, err := ReadNpy(f)
	if err != nil {
		return tensor3d.General{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ReadNpyRowsは (N*K, D) 形状の2次元 .npy を関節数 joints で (N, K, D) に変形して読み込む。
// WriteNpyで書き出したファイルはこの関数で読み戻す。
func ReadNpyRows(r io.Reader, joints int) (tensor3d.General, error) {
	npy, err := npyio.NewReader(r)
	if err != nil {
		return tensor3d.General{}, err
	}
	m := &mat.Dense{}
	if err := npy.Read(m); err != nil {
		return tensor3d.General{}, err
	}

	rows, dims := m.Dims()
	if joints <= 0 || rows%joints != 0 {
		return tensor3d.General{}, fmt.Errorf("行数 %d を関節数 %d で割り切れません。", rows, joints)
	}
	g := tensor3d.NewZeros(rows/joints, joints, dims)
	for i := 0; i < rows; i++ {
		for d := 0; d < dims; d++ {
			g.Data[i*dims+d] = float32(m.At(i, d))
		}
	}
	return g, nil
}

// WriteNpyは g を (N*K, D) 形状の float64 行列として書き出す。
func WriteNpy(w io.Writer, g tensor3d.General) error {
	if g.N() == 0 {
		return fmt.Errorf("要素数が0のテンソルは書き出せません。shape = %v", g.Shape())
	}
	data := make([]float64, g.N())
	for i, e := range g.Data {
		data[i] = float64(e)
	}
	m := mat.NewDense(g.Batches*g.Joints, g.Dims, data)
	return npyio.Write(w, m)
}

func SaveNpy(path string, g tensor3d.General) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteNpy(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func SaveGob(path string, gs []tensor3d.General) error {
	return ogob.Save(&gs, path)
}

func LoadGob(path string) ([]tensor3d.General, error) {
	return ogob.Load[[]tensor3d.General](path)
}
