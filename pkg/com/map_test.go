package com

import (
	"sync/atomic"
	"testing"
)

type testClient struct {
	NetClient
	id Uid
	c  int32
}

func (t *testClient) Id() Uid      { return t.id }
func (t *testClient) change(n int) { atomic.AddInt32(&t.c, int32(n)) }

func TestPointerValue(t *testing.T) {
	m := NewNetMap[*testClient]()
	c := testClient{id: "1"}
	m.Add(&c)
	fc, _ := m.FindBy(func(c *testClient) bool { return c.id == "1" })
	c.change(100)
	fc2, _ := m.Find(fc.Id())

	expected := c.c == fc.c && c.c == fc2.c
	if !expected {
		t.Errorf("not expected change, o: %v != %v != %v", c.c, fc.c, fc2.c)
	}
}

func TestMapRemove(t *testing.T) {
	m := NewMap[Uid, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	if m.Len() != 2 {
		t.Fatalf("unexpected len: %v", m.Len())
	}
	m.RemoveByKey("a")
	if m.Has("a") {
		t.Error("removed key should be gone")
	}
	if _, err := m.Find(""); err == nil {
		t.Error("empty key should not be found")
	}
	if m.IsEmpty() {
		t.Error("map should still hold one value")
	}
}
