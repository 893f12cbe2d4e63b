package persist

import (
	"os"
	"path/filepath"
	"testing"

	"galign/splitgraph"
)

func buildSample() *splitgraph.SplitGraph {
	b := splitgraph.NewBuilder()
	b.AddNode(1, "ACGTACGTACGT", "n1", false, []int{0, 12})
	b.AddNode(2, "NNNNACGT", "n2", false, []int{0, 8})
	b.AddEdge(1, 2, 0)
	return b.Finalize(64, true)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := buildSample()
	path := filepath.Join(t.TempDir(), "snap.gln")

	if err := Save(path, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.NodeSize() != g.NodeSize() {
		t.Fatalf("NodeSize mismatch: got %d want %d", got.NodeSize(), g.NodeSize())
	}
	if got.ComponentSize() != g.ComponentSize() {
		t.Fatalf("ComponentSize mismatch: got %d want %d", got.ComponentSize(), g.ComponentSize())
	}
	for v := 0; v < g.NodeSize(); v++ {
		if got.OriginalID(v) != g.OriginalID(v) || got.Offset(v) != g.Offset(v) || got.NodeLength(v) != g.NodeLength(v) {
			t.Fatalf("vertex %d metadata mismatch", v)
		}
		if got.Component(v) != g.Component(v) || got.Linearizable(v) != g.Linearizable(v) {
			t.Fatalf("vertex %d analysis mismatch", v)
		}
		for p := 0; p < g.NodeLength(v); p++ {
			if got.BaseAt(v, p) != g.BaseAt(v, p) {
				t.Fatalf("vertex %d base %d mismatch", v, p)
			}
		}
	}
}

func TestLoadRejectsCorruptedPayload(t *testing.T) {
	g := buildSample()
	path := filepath.Join(t.TempDir(), "snap.gln")
	if err := Save(path, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	data[len(data)-1] ^= 0xFF
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected checksum mismatch error, got nil")
	}
}
