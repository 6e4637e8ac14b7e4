package relay

import (
	"errors"
	"testing"

	"github.com/screenbeam/screenbeam/pkg/com"
)

func newTestUid(s string) com.Uid { return com.Uid(s) }

func TestDirectoryHostSlot(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	a, b := newTestUid("a"), newTestUid("b")

	if err := d.ClaimHost("r1", a); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	if err := d.ClaimHost("r1", b); !errors.Is(err, ErrAlreadyHosted) {
		t.Errorf("second claim should fail with ErrAlreadyHosted, got: %v", err)
	}
	if host, ok := d.HostOf("r1"); !ok || host != a {
		t.Errorf("host should still be a, got: %v %v", host, ok)
	}

	if d.ReleaseHost("r1", b) {
		t.Error("release by a non-owner should be ignored")
	}
	if !d.ReleaseHost("r1", a) {
		t.Error("release by the owner should succeed")
	}
	if _, ok := d.HostOf("r1"); ok {
		t.Error("released room should have no host")
	}
	if err := d.ClaimHost("r1", b); err != nil {
		t.Errorf("room code should be reusable, got: %v", err)
	}
}

func TestDirectoryStaleRelease(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	old, next := newTestUid("old"), newTestUid("new")

	_ = d.ClaimHost("r1", old)
	if !d.ReleaseHost("r1", old) {
		t.Fatal("release failed")
	}
	_ = d.ClaimHost("r1", next)

	// a stale release racing the new claim must not free the slot
	if d.ReleaseHost("r1", old) {
		t.Error("stale release should be ignored")
	}
	if host, ok := d.HostOf("r1"); !ok || host != next {
		t.Errorf("new host lost the slot: %v %v", host, ok)
	}
}

func TestDirectoryViewers(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	host, v1, v2 := newTestUid("h"), newTestUid("v1"), newTestUid("v2")

	if err := d.AddViewer("r1", v1); !errors.Is(err, ErrNoHost) {
		t.Fatalf("viewer join on a hostless room should fail with ErrNoHost, got: %v", err)
	}
	if len(d.Members("r1")) != 0 {
		t.Error("failed join must not create directory state")
	}

	_ = d.ClaimHost("r1", host)
	_ = d.AddViewer("r1", v1)
	_ = d.AddViewer("r1", v2)

	if !d.IsViewer("r1", v1) || !d.IsViewer("r1", v2) {
		t.Error("viewers should be members")
	}
	if d.IsViewer("r1", host) {
		t.Error("host is not a viewer")
	}
	if n := len(d.Members("r1")); n != 3 {
		t.Errorf("unexpected member count: %d", n)
	}
	if m := d.Members("r1"); m[0] != host {
		t.Errorf("host should be listed first, got: %v", m[0])
	}

	d.RemoveViewer("r1", v1)
	if d.IsViewer("r1", v1) {
		t.Error("removed viewer should not be a member")
	}

	dropped := d.DropViewers("r1")
	if len(dropped) != 1 || dropped[0] != v2 {
		t.Errorf("unexpected dropped set: %v", dropped)
	}
	if len(d.Viewers("r1")) != 0 {
		t.Error("drop should clear the viewer set")
	}
}
