package relay

import (
	"encoding/json"
	"testing"

	"github.com/screenbeam/screenbeam/pkg/api"
)

func TestMailbox(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	env := func(s string) api.SignalPush {
		return api.SignalPush{SenderId: "h", Payload: json.RawMessage(`{"offer":"` + s + `"}`)}
	}

	m.Buffer("r1", env("1"))
	m.Buffer("r1", env("2"))
	m.Buffer("r2", env("x"))
	if m.Size("r1") != 2 {
		t.Fatalf("unexpected size: %d", m.Size("r1"))
	}

	got := m.Drain("r1")
	if len(got) != 2 {
		t.Fatalf("unexpected drain length: %d", len(got))
	}
	for i, want := range []string{`{"offer":"1"}`, `{"offer":"2"}`} {
		if string(got[i].Payload) != want {
			t.Errorf("order broken at %d: %s", i, got[i].Payload)
		}
	}

	// at most once
	if again := m.Drain("r1"); again != nil {
		t.Errorf("second drain should be empty, got: %v", again)
	}

	m.Purge("r2")
	if m.Size("r2") != 0 {
		t.Error("purge should clear the queue")
	}
}
