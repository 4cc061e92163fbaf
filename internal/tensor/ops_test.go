package tensor

import (
	"testing"
)

func mustFromSlice[T DType, B Backend](t *testing.T, data []T, shape Shape, b B) *Tensor[T, B] {
	t.Helper()
	x, err := FromSlice(data, shape, b)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return x
}

func TestArithmeticOps(t *testing.T) {
	b := NewMockBackend()

	a := mustFromSlice(t, []float32{1, 2, 3, 4}, Shape{2, 2}, b)
	c := mustFromSlice(t, []float32{10, 20, 30, 40}, Shape{2, 2}, b)

	t.Run("Add", func(t *testing.T) {
		got := a.Add(c).Data()
		want := []float32{11, 22, 33, 44}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("element %d = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("Mul", func(t *testing.T) {
		got := a.Mul(c).Data()
		want := []float32{10, 40, 90, 160}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("element %d = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("MulScalar", func(t *testing.T) {
		got := a.MulScalar(2).Data()
		want := []float32{2, 4, 6, 8}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("element %d = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("AddBroadcast", func(t *testing.T) {
		row := mustFromSlice(t, []float32{100, 200}, Shape{2}, b)
		got := a.Add(row)
		if !got.Shape().Equal(Shape{2, 2}) {
			t.Fatalf("shape = %v, want [2 2]", got.Shape())
		}
		want := []float32{101, 202, 103, 204}
		for i, v := range got.Data() {
			if v != want[i] {
				t.Errorf("element %d = %v, want %v", i, v, want[i])
			}
		}
	})
}

func TestComparisonOps(t *testing.T) {
	b := NewMockBackend()

	a := mustFromSlice(t, []float32{1, 5, 3}, Shape{3}, b)
	c := mustFromSlice(t, []float32{3, 3, 3}, Shape{3}, b)

	t.Run("Greater", func(t *testing.T) {
		got := a.Greater(c)
		if got.DType() != Bool {
			t.Fatalf("dtype = %v, want Bool", got.DType())
		}
		want := []bool{false, true, false}
		for i, v := range got.Data() {
			if v != want[i] {
				t.Errorf("element %d = %v, want %v", i, v, want[i])
			}
		}
	})

	t.Run("LowerEqual", func(t *testing.T) {
		want := []bool{true, false, true}
		for i, v := range a.LowerEqual(c).Data() {
			if v != want[i] {
				t.Errorf("element %d = %v, want %v", i, v, want[i])
			}
		}
	})
}

func TestReductionOps(t *testing.T) {
	b := NewMockBackend()

	a := mustFromSlice(t, []float32{3, 1, 4, 1, 5}, Shape{5}, b)

	t.Run("Sum", func(t *testing.T) {
		if got := a.Sum().Item(); got != 14 {
			t.Errorf("Sum = %v, want 14", got)
		}
	})

	t.Run("MaxMin", func(t *testing.T) {
		if got := a.Max().Item(); got != 5 {
			t.Errorf("Max = %v, want 5", got)
		}
		if got := a.Min().Item(); got != 1 {
			t.Errorf("Min = %v, want 1", got)
		}
	})

	t.Run("ArgmaxArgmin", func(t *testing.T) {
		if got := a.Argmax().Item(); got != 4 {
			t.Errorf("Argmax = %v, want 4", got)
		}
		// Ties resolve to the first occurrence
		if got := a.Argmin().Item(); got != 1 {
			t.Errorf("Argmin = %v, want 1", got)
		}
	})
}

func TestBincount(t *testing.T) {
	b := NewMockBackend()

	a := mustFromSlice(t, []float32{0, 1, 1, 3, 3, 3}, Shape{6}, b)
	hist := a.Bincount(4)

	if !hist.Shape().Equal(Shape{4}) {
		t.Fatalf("shape = %v, want [4]", hist.Shape())
	}
	want := []int64{1, 2, 0, 3}
	for i, v := range hist.Data() {
		if v != want[i] {
			t.Errorf("bucket %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestShapeOps(t *testing.T) {
	b := NewMockBackend()

	a := mustFromSlice(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, b)

	t.Run("Reshape", func(t *testing.T) {
		r := a.Reshape(3, 2)
		if !r.Shape().Equal(Shape{3, 2}) {
			t.Errorf("shape = %v, want [3 2]", r.Shape())
		}
		if r.At(2, 1) != 6 {
			t.Errorf("At(2,1) = %v, want 6", r.At(2, 1))
		}
	})

	t.Run("UnsqueezeSqueeze", func(t *testing.T) {
		u := a.Unsqueeze(2)
		if !u.Shape().Equal(Shape{2, 3, 1}) {
			t.Errorf("Unsqueeze shape = %v, want [2 3 1]", u.Shape())
		}
		s := u.Squeeze(2)
		if !s.Shape().Equal(Shape{2, 3}) {
			t.Errorf("Squeeze shape = %v, want [2 3]", s.Shape())
		}
	})

	t.Run("Narrow", func(t *testing.T) {
		n := a.Narrow(1, 1, 2)
		if !n.Shape().Equal(Shape{2, 2}) {
			t.Fatalf("shape = %v, want [2 2]", n.Shape())
		}
		want := []float32{2, 3, 5, 6}
		for i, v := range n.Data() {
			if v != want[i] {
				t.Errorf("element %d = %v, want %v", i, v, want[i])
			}
		}
	})
}

func TestGatherAndWhere(t *testing.T) {
	b := NewMockBackend()

	t.Run("Gather", func(t *testing.T) {
		src := mustFromSlice(t, []float32{10, 20, 30, 40}, Shape{4}, b)
		idx := mustFromSlice(t, []int32{3, 0, 3}, Shape{3}, b)
		got := src.Gather(0, idx)
		want := []float32{40, 10, 40}
		for i, v := range got.Data() {
			if v != want[i] {
				t.Errorf("element %d = %v, want %v", i, v, want[i])
			}
		}
	})

	t.Run("Where", func(t *testing.T) {
		cond := mustFromSlice(t, []bool{true, false, true}, Shape{3}, b)
		x := mustFromSlice(t, []float32{1, 2, 3}, Shape{3}, b)
		y := mustFromSlice(t, []float32{-1, -2, -3}, Shape{3}, b)
		got := Where(cond, x, y)
		want := []float32{1, -2, 3}
		for i, v := range got.Data() {
			if v != want[i] {
				t.Errorf("element %d = %v, want %v", i, v, want[i])
			}
		}
	})
}

func TestCast(t *testing.T) {
	b := NewMockBackend()

	a := mustFromSlice(t, []float32{0.4, 1.6, 255}, Shape{3}, b)

	u := a.Uint8()
	if u.DType() != Uint8 {
		t.Fatalf("dtype = %v, want Uint8", u.DType())
	}
	want := []uint8{0, 1, 255}
	for i, v := range u.Data() {
		if v != want[i] {
			t.Errorf("element %d = %v, want %v", i, v, want[i])
		}
	}

	f := u.Float64()
	if f.DType() != Float64 {
		t.Errorf("dtype = %v, want Float64", f.DType())
	}
}
