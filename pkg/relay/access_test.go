package relay

import "testing"

func TestAccessTable(t *testing.T) {
	t.Parallel()

	a := NewAccessTable()
	v1, v2 := newTestUid("v1"), newTestUid("v2")

	if a.IsAuthorized("r1", v1) {
		t.Fatal("nothing granted yet")
	}

	a.Grant("r1", v1)
	a.Grant("r1", v2)
	if !a.IsAuthorized("r1", v1) || !a.IsAuthorized("r1", v2) {
		t.Error("grant should authorize")
	}
	if a.IsAuthorized("r2", v1) {
		t.Error("grants are scoped per room")
	}

	a.Deny("r1", v1)
	if a.IsAuthorized("r1", v1) {
		t.Error("deny should remove the grant")
	}

	a.Revoke("r1", v2)
	if a.IsAuthorized("r1", v2) {
		t.Error("revoke should remove the grant")
	}
	// revoking the last grant drops the room entry entirely
	if len(a.granted) != 0 {
		t.Errorf("empty rooms should not linger: %v", a.granted)
	}

	a.Grant("r1", v1)
	a.Grant("r1", v2)
	a.RevokeAll("r1")
	if a.IsAuthorized("r1", v1) || a.IsAuthorized("r1", v2) {
		t.Error("revoke all should clear the room")
	}
}
