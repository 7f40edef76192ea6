package domain

import "testing"

func buildLine(t *testing.T, names ...string) *Network {
	t.Helper()
	n := NewNetwork()
	for _, name := range names {
		if _, err := n.AddRouter(name); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i < len(names); i++ {
		if _, err := n.AddLink(names[i-1], names[i], 10*i); err != nil {
			t.Fatal(err)
		}
	}
	return n
}

func TestNetworkFingerprint(t *testing.T) {
	t.Run("same content gives same fingerprint", func(t *testing.T) {
		a := buildLine(t, "alice", "bob", "charlie")
		b := buildLine(t, "alice", "bob", "charlie")
		if a.ID == b.ID {
			t.Fatal("expected distinct instances")
		}
		if a.Fingerprint() != b.Fingerprint() {
			t.Error("expected equal fingerprints")
		}
	})

	t.Run("order is significant", func(t *testing.T) {
		a := buildLine(t, "alice", "bob")
		b := NewNetwork()
		b.AddRouter("bob")
		b.AddRouter("alice")
		b.AddLink("alice", "bob", 10)
		if a.Fingerprint() == b.Fingerprint() {
			t.Error("expected router order to change the fingerprint")
		}
	})

	t.Run("names cannot collide through separators", func(t *testing.T) {
		a := NewNetwork()
		a.AddRouter("ab")
		a.AddRouter("c")
		b := NewNetwork()
		b.AddRouter("a")
		b.AddRouter("bc")
		if a.Fingerprint() == b.Fingerprint() {
			t.Error("expected different fingerprints")
		}
	})

	t.Run("is 32 bytes hex", func(t *testing.T) {
		if got := len(NewNetwork().Fingerprint()); got != 64 {
			t.Errorf("expected 64 hex characters, got %d", got)
		}
	})
}

func TestDemandFingerprint(t *testing.T) {
	n := buildLine(t, "alice", "bob")
	d1 := NewDemand(n)
	d2 := NewDemand(n)
	if d1.Fingerprint() != d2.Fingerprint() {
		t.Error("expected empty demands to match")
	}

	d1.AddPath("p", "alice", "bob", 100, 0.95)
	if d1.Fingerprint() == d2.Fingerprint() {
		t.Error("expected path to change the fingerprint")
	}

	d2.AddPath("p", "alice", "bob", 100, 0.95)
	if d1.Fingerprint() != d2.Fingerprint() {
		t.Error("expected equal content to match")
	}
	if d1.Fingerprint() == n.Fingerprint() {
		t.Error("expected demand fingerprint to differ from network fingerprint")
	}
}
