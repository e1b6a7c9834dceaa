package rankdict

// entriesPerByte is how many 2-bit table entries fit in one byte.
const entriesPerByte = 4

// Table is the packed 2-bit vertex-indexed assignment table g. Entry v
// occupies bits [2*(v%4), 2*(v%4)+2) of byte v/4, low bits first
// (little-endian within the byte), which is also the on-disk layout.
// The sentinel value 3 means "unused"; values 0, 1, 2 are assignment
// labels. A freshly allocated Table has every entry set to 3.
type Table struct {
	bytes []byte
	m     uint64
}

// NewTable allocates a Table over m vertices with every entry set to
// the "unused" sentinel (3).
func NewTable(m uint64) *Table {
	n := byteLen(m)
	b := make([]byte, n)
	for i := range b {
		b[i] = 0xFF // four 0b11 (=3) entries per byte
	}
	return &Table{bytes: b, m: m}
}

// TableFromBytes wraps an existing packed byte slice (e.g. a
// memory-mapped region) as a Table over m vertices without copying.
// b must have at least byteLen(m) bytes.
func TableFromBytes(b []byte, m uint64) *Table {
	return &Table{bytes: b[:byteLen(m)], m: m}
}

// byteLen returns ceil(m*2/8), the packed byte length for m entries.
func byteLen(m uint64) uint64 {
	return (m*2 + 7) / 8
}

// Len returns the number of vertex slots m.
func (t *Table) Len() uint64 { return t.m }

// Bytes exposes the packed representation, e.g. for serialization.
func (t *Table) Bytes() []byte { return t.bytes }

// Get returns the 2-bit value at vertex v.
func (t *Table) Get(v uint64) uint8 {
	byteIdx := v / entriesPerByte
	shift := uint(v%entriesPerByte) * 2
	return (t.bytes[byteIdx] >> shift) & 0x3
}

// Set stores a 2-bit value (0-3) at vertex v.
func (t *Table) Set(v uint64, val uint8) {
	byteIdx := v / entriesPerByte
	shift := uint(v%entriesPerByte) * 2
	t.bytes[byteIdx] &^= 0x3 << shift
	t.bytes[byteIdx] |= (val & 0x3) << shift
}
