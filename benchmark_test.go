package vantage

import (
	"math"
	"testing"
)

// --- Hot-path benchmarks ---

func BenchmarkTransform(b *testing.B) {
	c := NewCamera()
	c.SetViewPortSize(1920, 1080)
	c.SetPosition(Point{X: 120, Y: -60})
	c.SetZoomLevel(1.5)
	c.SetRotation(0.4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Transform(2, true)
	}
}

func BenchmarkViewPortToWorld(b *testing.B) {
	c := NewCamera()
	c.SetViewPortSize(1920, 1080)
	c.SetZoomLevel(2)
	c.SetRotation(0.7)
	p := Point{X: 300, Y: 900}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.ViewPortToWorld(p)
	}
}

func BenchmarkPanByPipeline(b *testing.B) {
	c := NewCamera()
	rig := NewCameraRig(c)
	deltas := [4]Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rig.PanBy(deltas[i%len(deltas)])
	}
}

func BenchmarkBatchedMuxFrame(b *testing.B) {
	_, rig := newBenchRig()
	m := NewBatchedMux(rig)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// A bursty frame: ten pointer moves and a wheel tick, one Step.
		for j := 0; j < 10; j++ {
			m.NotifyPanInput(Point{X: 1, Y: -1})
		}
		m.NotifyZoomInput(0.001*math.Copysign(1, float64(i%2)-0.5), Point{X: 500, Y: 500})
		m.Step()
	}
}

func newBenchRig() (*Camera, *CameraRig) {
	c := NewCamera()
	c.SetBoundaries(UnboundedBoundaries())
	c.SetZoomBoundaries(Range{Min: 0.01, Max: 100})
	return c, NewCameraRig(c)
}

func BenchmarkGestureClassifierDrag(b *testing.B) {
	_, rig := newBenchRig()
	g := NewGestureClassifier(NewRelayMux(rig))
	g.Feed(InputEvent{Type: InputLeftPointerDown})
	move := InputEvent{Type: InputLeftPointerMove, Delta: Point{X: 1}}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.Feed(move)
	}
}
