package engine

import (
	"testing"
	"time"
)

func TestTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(100 * time.Millisecond)
	mock.Advance(50 * time.Millisecond)
	if got := mock.Now().Sub(startTime); got != 150*time.Millisecond {
		t.Errorf("Expected 150ms elapsed, got %v", got)
	}
}

func TestUpdateFlags(t *testing.T) {
	tests := []struct {
		flags UpdateFlags
		want  string
	}{
		{0, "none"},
		{FlagPaused, "paused"},
		{FlagPaused | FlagEditor, "paused|editor"},
		{FlagEditor | 1<<7, "editor|unknown"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("UpdateFlags(%d).String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}

	f := FlagPaused | FlagEditor
	if !f.Has(FlagPaused) || !f.Has(FlagEditor) {
		t.Error("Expected both flags set")
	}
	if FlagPaused.Has(FlagEditor) {
		t.Error("FlagPaused must not report FlagEditor")
	}
}
