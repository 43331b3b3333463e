package atmos

import (
	"math"
	"sync"
	"testing"
)

func TestSeaLevel(t *testing.T) {
	s := Compute(0)

	if math.Abs(s.Temperature-288.15) > 1e-6 {
		t.Errorf("expected T 288.15, got %f", s.Temperature)
	}
	if math.Abs(s.Pressure-101325.0) > 1e-3 {
		t.Errorf("expected P 101325, got %f", s.Pressure)
	}
	if math.Abs(s.Density-1.225) > 1e-3 {
		t.Errorf("expected rho 1.225, got %f", s.Density)
	}
}

func TestTroposphere(t *testing.T) {
	s := Compute(5000)

	if math.Abs(s.Temperature-255.65) > 1e-6 {
		t.Errorf("expected T 255.65, got %f", s.Temperature)
	}
	if s.Pressure < 54000 || s.Pressure > 54100 {
		t.Errorf("expected P near 54020, got %f", s.Pressure)
	}
	if s.Density < 0.73 || s.Density > 0.74 {
		t.Errorf("expected rho near 0.736, got %f", s.Density)
	}
}

func TestClamping(t *testing.T) {
	if Compute(-500) != Compute(0) {
		t.Error("negative altitude should clamp to sea level")
	}
	if Compute(20000) != Compute(MaxAltitude) {
		t.Error("altitude above tropopause should clamp to 11000 m")
	}

	s := Compute(1e9)
	if math.IsNaN(s.Pressure) || math.IsInf(s.Pressure, 0) {
		t.Errorf("clamped result must stay finite, got %+v", s)
	}
}

func TestProfileMatchesCompute(t *testing.T) {
	hs := []float64{-100, 0, 1524, 5000, 11000, 15000}
	samples := Profile(hs)

	if len(samples) != len(hs) {
		t.Fatalf("expected %d samples, got %d", len(hs), len(samples))
	}
	for i, h := range hs {
		if samples[i] != Compute(h) {
			t.Errorf("h=%g: batched %+v != scalar %+v", h, samples[i], Compute(h))
		}
	}
}

func TestCachedLookup(t *testing.T) {
	for _, h := range []float64{0, 1524, 5000, 1524} {
		if At(h) != Compute(h) {
			t.Errorf("h=%g: cached %+v != computed %+v", h, At(h), Compute(h))
		}
	}
}

func TestCachedLookupConcurrent(t *testing.T) {
	hs := []float64{0, 100, 1524, 3000, 5000, 8000, 11000}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				h := hs[i%len(hs)]
				if At(h) != Compute(h) {
					t.Errorf("h=%g: cached lookup diverged", h)
					return
				}
			}
		}()
	}
	wg.Wait()
}
