package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{`"24h"`, 24 * time.Hour, false},
		{`"90s"`, 90 * time.Second, false},
		{`60000000000`, time.Minute, false},
		{`"nonsense"`, 0, true},
		{`true`, 0, true},
	}

	for _, tc := range tests {
		var d Duration
		err := json.Unmarshal([]byte(tc.in), &d)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("unmarshal %s: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if d.Duration != tc.want {
			t.Fatalf("unmarshal %s = %v, want %v", tc.in, d.Duration, tc.want)
		}
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Duration{Duration: 2 * time.Hour})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(b) != `"2h0m0s"` {
		t.Fatalf("marshal = %s", b)
	}
}
