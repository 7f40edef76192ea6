package domain

import (
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a deterministic digest of the network content. Two
// networks built from the same document get the same fingerprint regardless
// of their instance IDs. Router and link order are part of the content.
func (n *Network) Fingerprint() string {
	h := newDigest()
	writeNetwork(h, n)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns a deterministic digest of the demand together with the
// network it is bound to.
func (d *Demand) Fingerprint() string {
	h := newDigest()
	writeNetwork(h, d.network)
	for _, p := range d.paths.items {
		writeFields(h, "path", p.name, p.endPoint1.name, p.endPoint2.name,
			strconv.Itoa(p.bandwidth), strconv.FormatFloat(p.fidelity, 'g', -1, 64))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func newDigest() hash.Hash {
	// blake2b.New256 only fails for keys longer than 64 bytes.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("domain: blake2b: %v", err))
	}
	return h
}

func writeNetwork(h hash.Hash, n *Network) {
	for _, r := range n.routers.items {
		writeFields(h, "router", r.name)
	}
	for _, l := range n.links {
		writeFields(h, "link",
			l.router1.name, strconv.Itoa(l.port1),
			l.router2.name, strconv.Itoa(l.port2),
			strconv.Itoa(l.length))
	}
}

// writeFields writes length-prefixed fields so names containing separators
// cannot collide.
func writeFields(h hash.Hash, fields ...string) {
	for _, f := range fields {
		fmt.Fprintf(h, "%d:%s", len(f), f)
	}
	h.Write([]byte{'\n'})
}
