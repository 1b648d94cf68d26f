package system

import "testing"

func TestRenderWorkersPositive(t *testing.T) {
	got := RenderWorkers(0)
	if got < 1 {
		t.Errorf("RenderWorkers(0) = %d, want at least 1", got)
	}
	t.Logf("Render workers without memory cap: %d", got)
}

func TestRenderWorkersMemoryCap(t *testing.T) {
	unlimited := RenderWorkers(0)
	capped := RenderWorkers(1 << 62) // per-frame cost far beyond any host

	if capped < 1 {
		t.Errorf("capped workers = %d, want at least 1", capped)
	}
	if capped > unlimited {
		t.Errorf("capped workers = %d exceeds uncapped %d", capped, unlimited)
	}
}
