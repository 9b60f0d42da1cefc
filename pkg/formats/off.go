package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// OFF format errors.
var (
	ErrInvalidOFFHeader = errors.New("invalid OFF header")
	ErrTruncatedOFF     = errors.New("truncated OFF data")
	ErrInvalidOFFIndex  = errors.New("OFF face index out of range")
)

// offPrealloc caps how many vertices or faces are allocated up front from
// the header counts. Larger files grow as they are read.
const offPrealloc = 1 << 16

// OFFFace is one triangle of an OFF mesh as indices into OFF.Vertices.
type OFFFace [3]int

// OFF represents a parsed Object File Format mesh restricted to triangles.
type OFF struct {
	Header   string
	Vertices [][3]float32
	Faces    []OFFFace
}

// ParseOFF parses a whitespace-separated OFF stream:
//
//	OFF
//	vertexCount faceCount edgeCount
//	x y z            (vertexCount lines)
//	n i0 i1 i2       (faceCount lines)
//
// The header label, the edge count and each face's leading vertex count are
// read but not interpreted. Indices are 0-based.
func ParseOFF(r io.Reader) (*OFF, error) {
	t := newTokenizer(r)

	header, err := t.next()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header", ErrTruncatedOFF)
	}

	vertexCount, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%w: vertex count: %v", ErrInvalidOFFHeader, err)
	}
	faceCount, err := t.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%w: face count: %v", ErrInvalidOFFHeader, err)
	}
	if _, err := t.next(); err != nil {
		return nil, fmt.Errorf("%w: edge count: %v", ErrInvalidOFFHeader, err)
	}
	if vertexCount < 0 || faceCount < 0 {
		return nil, fmt.Errorf("%w: negative counts %d/%d", ErrInvalidOFFHeader, vertexCount, faceCount)
	}

	off := &OFF{
		Header:   header,
		Vertices: make([][3]float32, 0, min(vertexCount, offPrealloc)),
		Faces:    make([]OFFFace, 0, min(faceCount, offPrealloc)),
	}

	for i := 0; i < vertexCount; i++ {
		var v [3]float32
		for c := range v {
			if v[c], err = t.nextFloat(); err != nil {
				return nil, fmt.Errorf("%w: vertex %d: %v", ErrTruncatedOFF, i, err)
			}
		}
		off.Vertices = append(off.Vertices, v)
	}

	for i := 0; i < faceCount; i++ {
		if _, err := t.next(); err != nil {
			return nil, fmt.Errorf("%w: face %d: %v", ErrTruncatedOFF, i, err)
		}
		var f OFFFace
		for c := range f {
			idx, err := t.nextInt()
			if err != nil {
				return nil, fmt.Errorf("%w: face %d: %v", ErrTruncatedOFF, i, err)
			}
			if idx < 0 || idx >= vertexCount {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidOFFIndex, i, idx, vertexCount)
			}
			f[c] = idx
		}
		off.Faces = append(off.Faces, f)
	}

	return off, nil
}

// tokenizer reads whitespace-separated tokens.
type tokenizer struct {
	s *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenizer{s: s}
}

func (t *tokenizer) next() (string, error) {
	if !t.s.Scan() {
		if err := t.s.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return t.s.Text(), nil
}

func (t *tokenizer) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func (t *tokenizer) nextFloat() (float32, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 32)
	return float32(f), err
}
