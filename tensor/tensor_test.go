// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/vision/internal/backend/cpu"
	"github.com/born-ml/vision/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies the RawTensor type alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if len(raw.AsFloat32()) != 6 {
		t.Errorf("AsFloat32() length = %d, want 6", len(raw.AsFloat32()))
	}
}

// TestTensorAPI exercises the generic tensor surface through the facade.
func TestTensorAPI(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	y := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	z := x.Add(y)

	want := []float32{2, 3, 4, 5}
	for i, v := range z.Data() {
		if v != want[i] {
			t.Errorf("element %d = %v, want %v", i, v, want[i])
		}
	}

	if got := z.Sum().Item(); got != 14 {
		t.Errorf("Sum().Item() = %v, want 14", got)
	}

	mask := z.Greater(y.MulScalar(3))
	wantMask := []bool{false, false, true, true}
	for i, v := range mask.Data() {
		if v != wantMask[i] {
			t.Errorf("mask element %d = %v, want %v", i, v, wantMask[i])
		}
	}
}

// TestBroadcastShapes verifies the re-exported broadcasting helper.
func TestBroadcastShapes(t *testing.T) {
	result, broadcast, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 4})
	if err != nil {
		t.Fatalf("BroadcastShapes failed: %v", err)
	}
	if !result.Equal(tensor.Shape{3, 4}) {
		t.Errorf("result = %v, want [3 4]", result)
	}
	if !broadcast {
		t.Error("broadcast = false, want true")
	}
}
