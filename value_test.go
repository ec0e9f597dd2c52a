package anim

import (
	"errors"
	"testing"
)

func TestColorLerp(t *testing.T) {
	a := Color{R: 0, G: 100, B: 255}
	b := Color{R: 255, G: 100, B: 0}
	tests := []struct {
		t    float32
		want Color
	}{
		{0, a},
		{1, b},
		{0.5, Color{R: 128, G: 100, B: 128}},
		{2, Color{R: 255, G: 100, B: 0}},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPointLerp(t *testing.T) {
	got := Pt(0, 10).Lerp(Pt(10, 30), 0.25)
	if got != Pt(2.5, 15) {
		t.Errorf("Lerp = %v", got)
	}
	if !(Point{}).IsZero() || Pt(0, 1).IsZero() {
		t.Error("IsZero")
	}
}

func TestPathDataLerp(t *testing.T) {
	a := &PathData{Vertices: []Point{{0, 0}, {10, 0}}, InTangents: make([]Point, 2), OutTangents: make([]Point, 2)}
	b := &PathData{Vertices: []Point{{0, 10}, {20, 0}}, InTangents: make([]Point, 2), OutTangents: make([]Point, 2), Closed: true}

	mid := a.Lerp(b, 0.5)
	if mid.Vertices[0] != Pt(0, 5) || mid.Vertices[1] != Pt(15, 0) {
		t.Errorf("Lerp vertices = %v", mid.Vertices)
	}

	c := &PathData{Vertices: []Point{{1, 1}}, InTangents: make([]Point, 1), OutTangents: make([]Point, 1)}
	held := a.Lerp(c, 0.5)
	if held.Len() != 2 || held.Vertices[1] != Pt(10, 0) {
		t.Errorf("mismatched lengths did not hold the start path: %v", held.Vertices)
	}
	var nilPath *PathData
	if nilPath.Len() != 0 {
		t.Error("nil path Len != 0")
	}
}

func TestVerifyError(t *testing.T) {
	err := error(&VerifyError{Path: "compositions[0].layers[2].transform"})
	if !errors.Is(err, ErrMalformedFile) {
		t.Error("VerifyError does not unwrap to ErrMalformedFile")
	}
	var ve *VerifyError
	if !errors.As(err, &ve) || ve.Path != "compositions[0].layers[2].transform" {
		t.Errorf("errors.As failed: %v", err)
	}
}
