package mphf

import (
	"bytes"
	"encoding/binary"
	"hash/crc64"
	"io"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/mphf/rankdict"
)

// Wire layout (little-endian throughout):
//
//	offset  bytes  field
//	0       8      magic "MPHFBDZ\0"
//	8       4      format version (1)
//	12      4      reserved/flags (0)
//	16      8      n
//	24      8      m
//	32      8      seed
//	40      4      gamma, IEEE-754 binary32
//	44      4      rank block size B
//	48      8      length of packed g, in bytes
//	56      8      number of rank blocks
//	64      -      packed g
//	-       -      rank block counters (uint64 each)
//	tail    8      CRC-64 (ECMA) of every preceding byte
const (
	magicString  = "MPHFBDZ\x00"
	formatVer    = 1
	headerSize   = 64
	crcTrailSize = 8
)

var crcTable = crc64.MakeTable(crc64.ECMA)

// Write serializes m to w in the canonical on-disk layout and returns
// the number of bytes written. Two MPHFs built from identical keys,
// gamma, MaxRetries and base seed produce byte-identical output.
func (m *MPHF) Write(w io.Writer) (int64, error) {
	gBytes := m.table.Bytes()
	counters := m.dict.Counters()

	var buf bytes.Buffer
	buf.Grow(headerSize + len(gBytes) + len(counters)*8 + crcTrailSize)

	var hdr [headerSize]byte
	copy(hdr[0:8], magicString)
	binary.LittleEndian.PutUint32(hdr[8:12], formatVer)
	binary.LittleEndian.PutUint32(hdr[12:16], 0)
	binary.LittleEndian.PutUint64(hdr[16:24], m.n)
	binary.LittleEndian.PutUint64(hdr[24:32], m.m)
	binary.LittleEndian.PutUint64(hdr[32:40], m.seed)
	binary.LittleEndian.PutUint32(hdr[40:44], math.Float32bits(float32(m.gamma)))
	binary.LittleEndian.PutUint32(hdr[44:48], rankdict.BlockSize)
	binary.LittleEndian.PutUint64(hdr[48:56], uint64(len(gBytes)))
	binary.LittleEndian.PutUint64(hdr[56:64], uint64(len(counters)))
	buf.Write(hdr[:])

	buf.Write(gBytes)

	var counterBuf [8]byte
	for _, c := range counters {
		binary.LittleEndian.PutUint64(counterBuf[:], c)
		buf.Write(counterBuf[:])
	}

	sum := crc64.Checksum(buf.Bytes(), crcTable)
	var tail [8]byte
	binary.LittleEndian.PutUint64(tail[:], sum)
	buf.Write(tail[:])

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// header is the parsed, validated fixed-size preamble of a serialized
// MPHF, shared by Read and Open.
type header struct {
	n, m, seed   uint64
	gamma        float64
	blockSize    uint32
	gLen, nBlock uint64
}

func parseHeader(buf []byte) (header, error) {
	var hdr header

	if len(buf) < headerSize+crcTrailSize {
		return hdr, errCorrupt("truncated")
	}
	if string(buf[0:8]) != magicString {
		return hdr, errCorrupt("bad magic")
	}
	if v := binary.LittleEndian.Uint32(buf[8:12]); v != formatVer {
		return hdr, errCorrupt("unsupported version")
	}

	hdr.n = binary.LittleEndian.Uint64(buf[16:24])
	hdr.m = binary.LittleEndian.Uint64(buf[24:32])
	hdr.seed = binary.LittleEndian.Uint64(buf[32:40])
	hdr.gamma = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[40:44])))
	hdr.blockSize = binary.LittleEndian.Uint32(buf[44:48])
	hdr.gLen = binary.LittleEndian.Uint64(buf[48:56])
	hdr.nBlock = binary.LittleEndian.Uint64(buf[56:64])

	wantTotal := headerSize + hdr.gLen + hdr.nBlock*8 + crcTrailSize
	if uint64(len(buf)) != wantTotal {
		return hdr, errCorrupt("length mismatch")
	}

	return hdr, nil
}

func errCorrupt(reason string) error {
	return &CorruptSerializationError{Reason: reason}
}

// verifyCRC checks the trailing CRC-64 against the rest of buf.
func verifyCRC(buf []byte) error {
	body, tail := buf[:len(buf)-crcTrailSize], buf[len(buf)-crcTrailSize:]
	want := binary.LittleEndian.Uint64(tail)
	got := crc64.Checksum(body, crcTable)
	if got != want {
		return errCorrupt("CRC-64 mismatch")
	}

	return nil
}

// Read deserializes an MPHF previously written by Write. The entire
// payload is copied into process memory; use Open to memory-map a file
// instead.
func Read(r io.Reader) (*MPHF, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	hdr, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	if err := verifyCRC(buf); err != nil {
		return nil, err
	}

	return assemble(hdr, buf, nil)
}

// Open memory-maps path read-only and reconstructs an MPHF whose
// packed table g reads directly out of the mapped pages, with no copy.
// The caller must call MPHF.Close when done to release the mapping.
func Open(path string) (*MPHF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}

	hdr, err := parseHeader(buf)
	if err != nil {
		_ = buf.Unmap()
		return nil, err
	}
	if err := verifyCRC(buf); err != nil {
		_ = buf.Unmap()
		return nil, err
	}

	mp, err := assemble(hdr, buf, buf)
	if err != nil {
		_ = buf.Unmap()
		return nil, err
	}

	return mp, nil
}

// assemble builds an MPHF from a validated header and the full byte
// buffer (mmap'd or heap-allocated); backing is retained for Close iff
// non-nil.
func assemble(hdr header, buf []byte, backing mmap.MMap) (*MPHF, error) {
	gStart := uint64(headerSize)
	gEnd := gStart + hdr.gLen
	table := rankdict.TableFromBytes(buf[gStart:gEnd], hdr.m)

	counters := make([]uint64, hdr.nBlock)
	cStart := gEnd
	for i := range counters {
		off := cStart + uint64(i)*8
		counters[i] = binary.LittleEndian.Uint64(buf[off : off+8])
	}
	dict := rankdict.FromCounters(table, counters)

	return &MPHF{
		n:       hdr.n,
		m:       hdr.m,
		gamma:   hdr.gamma,
		seed:    hdr.seed,
		table:   table,
		dict:    dict,
		backing: backing,
	}, nil
}
