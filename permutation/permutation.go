package permutation

import (
	"fmt"
	"strconv"
)

// Permutation is a fixed-capacity buffer of element identifiers with a
// used-length prefix. E[0..C) always holds a permutation of [0, C) once
// populated by IdentityFill or a sequence of SetElement calls; E[0..L)
// is the decided prefix, E[L..C) holds unassigned identifiers.
type Permutation struct {
	elements  []int
	length    int
	destroyed bool
}

// New allocates an empty Permutation with the given capacity. The buffer
// is not yet a valid permutation until IdentityFill or a full sequence
// of SetElement calls populates it.
func New(capacity int) *Permutation {
	if capacity < 0 {
		panic("permutation: negative capacity")
	}

	return &Permutation{elements: make([]int, capacity)}
}

func (p *Permutation) checkAlive() {
	if p.destroyed {
		panic("permutation: use after Destroy")
	}
}

// Destroy marks the permutation as no longer usable. Any subsequent
// method call panics, catching use-after-free bugs the way the original
// PM_VALID_MAGIC sentinel did.
func (p *Permutation) Destroy() {
	p.checkAlive()
	p.destroyed = true
	p.elements = nil
}

// Capacity returns C, the fixed buffer size.
func (p *Permutation) Capacity() int {
	p.checkAlive()

	return len(p.elements)
}

// Length returns L, the length of the decided prefix.
func (p *Permutation) Length() int {
	p.checkAlive()

	return p.length
}

// SetLength sets L. Panics if n exceeds the capacity.
func (p *Permutation) SetLength(n int) {
	p.checkAlive()
	if n < 0 || n > len(p.elements) {
		panic("permutation: SetLength out of range")
	}
	p.length = n
}

// IdentityFill sets E[i] = i for all i in [0, C) and L = C.
func (p *Permutation) IdentityFill() {
	p.checkAlive()
	for i := range p.elements {
		p.elements[i] = i
	}
	p.length = len(p.elements)
}

// Element returns E[i]. Panics if i >= C (note: not i >= L — callers are
// allowed to read beyond the decided prefix).
func (p *Permutation) Element(i int) int {
	p.checkAlive()
	if i < 0 || i >= len(p.elements) {
		panic("permutation: Element index out of range")
	}

	return p.elements[i]
}

// SetElement writes E[i] = v. If i >= L, L becomes i+1. Panics if i >= C.
func (p *Permutation) SetElement(i int, v int) {
	p.checkAlive()
	if i < 0 || i >= len(p.elements) {
		panic("permutation: SetElement index out of range")
	}
	p.elements[i] = v
	if i >= p.length {
		p.length = i + 1
	}
}

// Swap exchanges E[i] and E[j]. Panics if either index is out of range.
func (p *Permutation) Swap(i, j int) {
	p.checkAlive()
	if i < 0 || i >= len(p.elements) || j < 0 || j >= len(p.elements) {
		panic("permutation: Swap index out of range")
	}
	p.elements[i], p.elements[j] = p.elements[j], p.elements[i]
}

// CopyFrom copies the first src.Length() entries from src into p and
// sets p's length to match. Panics if p's capacity is smaller than
// src's length.
func (p *Permutation) CopyFrom(src *Permutation) {
	p.checkAlive()
	src.checkAlive()
	if len(p.elements) < src.length {
		panic("permutation: CopyFrom destination capacity too small")
	}
	copy(p.elements, src.elements[:src.length])
	p.length = src.length
}

// CopyAllFrom copies all src.Capacity() entries from src into p and sets
// p's length to match src's. Panics if p's capacity is smaller than
// src's capacity.
func (p *Permutation) CopyAllFrom(src *Permutation) {
	p.checkAlive()
	src.checkAlive()
	if len(p.elements) < len(src.elements) {
		panic("permutation: CopyAllFrom destination capacity too small")
	}
	copy(p.elements, src.elements)
	p.length = src.length
}

// Duplicate allocates a new Permutation with the same capacity as p and
// copy-all semantics (all C slots, not only the decided prefix).
func (p *Permutation) Duplicate() *Permutation {
	p.checkAlive()
	dup := New(len(p.elements))
	dup.CopyAllFrom(p)

	return dup
}

// Equal reports whether a and b have equal length and equal decided
// prefixes. Undecided tail slots are not compared.
func Equal(a, b *Permutation) bool {
	a.checkAlive()
	b.checkAlive()
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.elements[i] != b.elements[i] {
			return false
		}
	}

	return true
}

// String renders the decided prefix as a bracketed decimal list, e.g.
// "[3 1 4]". It never truncates; use AppendTo for a bounded-size variant.
func (p *Permutation) String() string {
	p.checkAlive()
	buf := p.AppendTo(make([]byte, 0, 2+4*p.length), -1)

	return string(buf)
}

// AppendTo appends a bracketed decimal list of the decided prefix to buf
// and returns the extended slice. If max >= 0, the rendering stops
// (safely, without truncating a digit mid-number) once appending another
// element would exceed max total bytes; the closing bracket is always
// appended. A negative max means unbounded, matching pmPrint's
// buffer-overflow-safe truncation contract with an opt-out for tests and
// logging that want the full sequence.
func (p *Permutation) AppendTo(buf []byte, max int) []byte {
	p.checkAlive()
	buf = append(buf, '[')
	for i := 0; i < p.length; i++ {
		var piece []byte
		if i > 0 {
			piece = append(piece, ' ')
		}
		piece = strconv.AppendInt(piece, int64(p.elements[i]), 10)
		if max >= 0 && len(buf)+len(piece)+1 > max {
			break
		}
		buf = append(buf, piece...)
	}

	return append(buf, ']')
}

var _ fmt.Stringer = (*Permutation)(nil)
