package gateway

import (
	"errors"
	"testing"
	"time"
)

func TestPollUntil(t *testing.T) {
	t.Run("succeeds on nth attempt", func(t *testing.T) {
		calls := 0
		ok, err := pollUntil(5, time.Millisecond, func() (bool, error) {
			calls++
			return calls == 3, nil
		})
		if err != nil || !ok {
			t.Fatalf("pollUntil = %t, %v, want success", ok, err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		calls := 0
		ok, err := pollUntil(4, time.Millisecond, func() (bool, error) {
			calls++
			return false, nil
		})
		if err != nil {
			t.Fatalf("pollUntil err = %v", err)
		}
		if ok {
			t.Error("pollUntil = true, want exhaustion")
		}
		if calls != 4 {
			t.Errorf("calls = %d, want 4", calls)
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		wantErr := errors.New("probe failed")
		calls := 0
		ok, err := pollUntil(5, time.Millisecond, func() (bool, error) {
			calls++
			return false, wantErr
		})
		if ok || !errors.Is(err, wantErr) {
			t.Fatalf("pollUntil = %t, %v, want error stop", ok, err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}
