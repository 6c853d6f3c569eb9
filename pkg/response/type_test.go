package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"care-coordination/pkg/response"
)

func TestDateMarshal(t *testing.T) {
	d := response.Date(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(b) != `"2024-06-01"` {
		t.Errorf("unexpected date encoding: %s", b)
	}
}

func TestDateTimeMarshal(t *testing.T) {
	dt := response.DateTime(time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC))
	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if !strings.Contains(string(b), "2024-06-01 09:30:00") {
		t.Errorf("unexpected datetime encoding: %s", b)
	}
}
