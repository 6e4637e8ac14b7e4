package relay

import "testing"

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	a, b := newTestUid("a"), newTestUid("b")

	if !r.Bind(a, "r1") {
		t.Fatal("first bind should succeed")
	}
	if !r.Bind(a, "r1") {
		t.Error("rebind to the same room should be a no-op success")
	}
	if r.Bind(a, "r2") {
		t.Error("rebind to another room without unbind should be rejected")
	}
	if room, ok := r.RoomOf(a); !ok || room != "r1" {
		t.Errorf("unexpected room: %v %v", room, ok)
	}

	if room, ok := r.Unbind(a); !ok || room != "r1" {
		t.Errorf("unbind should return the former room, got: %v %v", room, ok)
	}
	if _, ok := r.RoomOf(a); ok {
		t.Error("unbound connection should have no room")
	}
	if _, ok := r.Unbind(b); ok {
		t.Error("unbind of an unknown connection should report absence")
	}

	if !r.Bind(a, "r2") {
		t.Error("bind after unbind should succeed")
	}
}
