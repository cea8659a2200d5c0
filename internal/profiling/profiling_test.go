package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		Track("terrain.Advance")()
	}
	if c := Count("terrain.Advance"); c != 3 {
		t.Fatalf("Count = %d, want 3", c)
	}
	if _, ok := Snapshot()["terrain.Advance"]; !ok {
		t.Fatal("snapshot missing tracked timer")
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("ResetFrame should clear totals")
	}
	if Count("terrain.Advance") != 0 {
		t.Error("ResetFrame should clear counts")
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["terrain.Advance"] = 3 * time.Millisecond
	frameTotals["terrain.BuildChunkMesh"] = 2 * time.Millisecond
	frameTotals["glfw.PollEvents"] = 1 * time.Millisecond
	mu.Unlock()
	defer ResetFrame()

	if got := SumWithPrefix("terrain."); got != 5*time.Millisecond {
		t.Errorf("SumWithPrefix(terrain.) = %v, want 5ms", got)
	}
	if got := SumWithPrefix("render."); got != 0 {
		t.Errorf("SumWithPrefix(render.) = %v, want 0", got)
	}
}

func TestTopNOrdersBySlowest(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["a"] = 1500 * time.Microsecond
	frameTotals["b"] = 4 * time.Millisecond
	frameTotals["c"] = 200 * time.Microsecond
	mu.Unlock()
	defer ResetFrame()

	got := TopN(2)
	if got != "b:4ms, a:1.5ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Errorf("TopN(10) should list all 3 timers, got %q", all)
	}
}
