package perf

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/parley/internal/model"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStatsNoData(t *testing.T) {
	s := NewStore()
	if st := s.Stats("missing"); st.Status != model.StatusNoData || st.HasData() {
		t.Fatalf("expected no_data, got %+v", st)
	}
}

func TestStatsComputed(t *testing.T) {
	s := NewStore()
	for _, v := range []float64{1, 2, 3} {
		if err := s.Record("ex1", v); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	st := s.Stats("ex1")
	if st.Status != model.StatusSuccess || st.Count != 3 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if !approxEqual(st.Mean, 2) || st.Min != 1 || st.Max != 3 {
		t.Fatalf("unexpected mean/min/max: %+v", st)
	}
	if !approxEqual(st.StdDev, math.Sqrt(2.0/3.0)) {
		t.Fatalf("expected population std dev, got %f", st.StdDev)
	}
	if st.Trend != -2 {
		t.Fatalf("expected trend -2, got %f", st.Trend)
	}
}

func TestStatsSingleSampleTrend(t *testing.T) {
	st := Compute([]float64{42})
	if st.Trend != 0 || st.StdDev != 0 || st.Count != 1 {
		t.Fatalf("unexpected single-sample stats: %+v", st)
	}
}

func TestStatsImprovementTrendPositive(t *testing.T) {
	st := Compute([]float64{120, 90, 60})
	if st.Trend != 60 {
		t.Fatalf("expected positive trend 60, got %f", st.Trend)
	}
}

func TestRecordRejectsInvalid(t *testing.T) {
	s := NewStore()
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := s.Record("ex", v); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration for %v, got %v", v, err)
		}
	}
	if err := s.Record("", 1); !errors.Is(err, ErrEmptyExerciseID) {
		t.Fatalf("expected ErrEmptyExerciseID, got %v", err)
	}
	if len(s.Exercises()) != 0 {
		t.Fatalf("expected no exercises after rejected records")
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	if err := s.Record("ex1", 5); err != nil {
		t.Fatalf("record: %v", err)
	}
	s.Clear("ex1")
	s.Clear("unknown")
	if st := s.Stats("ex1"); st.HasData() {
		t.Fatalf("expected no_data after clear, got %+v", st)
	}
	all := s.StatsAll()
	if _, ok := all["ex1"]; !ok {
		t.Fatalf("expected cleared exercise to stay known")
	}
	if _, ok := all["unknown"]; ok {
		t.Fatalf("expected clear of unknown id to be a no-op")
	}
}

func TestStatsAll(t *testing.T) {
	s := NewStore()
	_ = s.Record("a", 1)
	_ = s.Record("b", 2)
	_ = s.Record("b", 4)
	all := s.StatsAll()
	if len(all) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(all))
	}
	if all["b"].Count != 2 || all["b"].Mean != 3 {
		t.Fatalf("unexpected stats for b: %+v", all["b"])
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "performance.json")
	s := NewStore()
	for _, v := range []float64{1.0, 2.0, 3.0} {
		_ = s.Record("ex1", v)
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewStore()
	_ = loaded.Record("stale", 9)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"ex1"}, loaded.Exercises()); diff != "" {
		t.Fatalf("expected load to replace state (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, loaded.Samples("ex1")); diff != "" {
		t.Fatalf("unexpected samples (-want +got):\n%s", diff)
	}
	st := loaded.Stats("ex1")
	if !approxEqual(st.Mean, 2) || !approxEqual(st.StdDev, 0.816496580927726) || st.Trend != -2 {
		t.Fatalf("unexpected stats after load: %+v", st)
	}
}

func TestSaveEmptyStoreWritesObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "performance.json")
	s := NewStore()
	_ = s.Record("ex", 1)
	s.Clear("ex")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "{\n    \"ex\": []\n}" {
		t.Fatalf("unexpected file contents: %q", raw)
	}
}

func TestSaveFailsForUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := NewStore().Save(filepath.Join(blocker, "performance.json")); err == nil {
		t.Fatalf("expected save under a regular file to fail")
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	s := NewStore()
	_ = s.Record("keep", 7)

	if err := s.Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := map[string]string{
		"malformed.json": "{not json",
		"array.json":     "[1, 2]",
		"strings.json":   `{"ex": ["a"]}`,
		"null.json":      "null",
	}
	for name, content := range bad {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := s.Load(path); err == nil {
			t.Fatalf("expected error for %s", name)
		}
	}
	if diff := cmp.Diff([]float64{7}, s.Samples("keep")); diff != "" {
		t.Fatalf("expected state untouched (-want +got):\n%s", diff)
	}
}

func TestReplaceCopiesInput(t *testing.T) {
	s := NewStore()
	data := map[string][]float64{"ex": {1, 2}}
	s.Replace(data)
	data["ex"][0] = 99
	if got := s.Samples("ex")[0]; got != 1 {
		t.Fatalf("expected store to own its copy, got %f", got)
	}
}

func TestConcurrentRecordAndStats(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.Record("shared", 1)
				_ = s.Stats("shared")
			}
		}()
	}
	wg.Wait()
	if got := s.Stats("shared").Count; got != 1000 {
		t.Fatalf("expected 1000 samples, got %d", got)
	}
}
