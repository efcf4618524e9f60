package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"inkpad/pkg/geometry"
)

// The wire format puts each shape on one line:
//
//	SHAPE  COLOR( r g b )  ORIGIN( x y )  VERTICES( POINT2D( x y ) ... )
//
// Two spaces separate the groups, one space separates tokens inside a
// group, and each POINT2D( x y ) group contributes four tokens. The
// shape type is not tagged explicitly; it is inferred from the total
// token count, so the dispatch lives in exactly one place (Decode)
// where a future format can bolt on a real type tag.
//
// ErrMalformed is the sentinel for every grammar violation; decode
// errors wrap it with the offending detail.
var ErrMalformed = errors.New("malformed shape description")

// Token kinds. The tokenizer terminates every line with an EOF token,
// so token counts include it: a 2-vertex line is 21 tokens, a triangle
// 25, and each extra polygon vertex adds 4.
type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
}

// Total token counts (EOF included) for the fixed-arity shapes.
const (
	lineTokenCount     = 21
	triangleTokenCount = 25

	// Minimum tokens for the common SHAPE COLOR(...) ORIGIN(...)
	// prefix to be addressable at all.
	headerTokenCount = 10
)

// Keyword tokens checked at fixed positions.
const (
	kwShape    = "SHAPE"
	kwColor    = "COLOR("
	kwOrigin   = "ORIGIN("
	kwVertices = "VERTICES("
	kwPoint    = "POINT2D("
	kwClose    = ")"
)

// tokenize splits a description line on whitespace and appends the
// terminating EOF token.
func tokenize(line string) []token {
	fields := strings.Fields(line)
	toks := make([]token, 0, len(fields)+1)
	for _, f := range fields {
		toks = append(toks, token{kind: tokenWord, text: f})
	}
	return append(toks, token{kind: tokenEOF})
}

// Encode renders s in its single-line wire form, without a trailing
// line break.
func Encode(s Shape) string {
	var b strings.Builder

	c := s.Color()
	o := s.Origin()

	b.WriteString(kwShape)
	b.WriteString("  COLOR( ")
	b.WriteString(geometry.FormatFloat(c.R))
	b.WriteString(" ")
	b.WriteString(geometry.FormatFloat(c.G))
	b.WriteString(" ")
	b.WriteString(geometry.FormatFloat(c.B))
	b.WriteString(" )  ORIGIN( ")
	b.WriteString(geometry.FormatFloat(o.X()))
	b.WriteString(" ")
	b.WriteString(geometry.FormatFloat(o.Y()))
	b.WriteString(" )  VERTICES(")

	for i := 0; i < s.VertexCount(); i++ {
		b.WriteString(" ")
		b.WriteString(s.Vertex(i).String())
	}
	b.WriteString(" )")

	return b.String()
}

// Decode parses one wire line into a freshly built shape, dispatching
// on the total token count: 21 tokens is a Line, 25 a Triangle, more
// than 25 (in whole POINT2D groups) a Polygon. Anything else fails
// with ErrMalformed. The decoded origin is taken from the ORIGIN field
// verbatim, preserving the authored creation-time centroid.
func Decode(line string) (Shape, error) {
	toks := tokenize(line)

	c, origin, err := parseHeader(toks)
	if err != nil {
		return nil, err
	}

	verts, err := parseVertices(toks)
	if err != nil {
		return nil, err
	}

	var s Shape
	switch n := len(toks); {
	case n == lineTokenCount:
		s = NewLineWithColor(verts[0], verts[1], c)
	case n == triangleTokenCount:
		s = NewTriangleWithColor(verts[0], verts[1], verts[2], c)
	case n > triangleTokenCount:
		s = NewPolygonWithColor(verts, c)
	default:
		return nil, fmt.Errorf("%w: %d tokens do not describe any shape", ErrMalformed, len(toks))
	}

	s.SetOrigin(origin)
	return s, nil
}

// parseHeader validates the SHAPE COLOR(...) ORIGIN(...) prefix and
// extracts the color and origin.
func parseHeader(toks []token) (geometry.Color, geometry.Point, error) {
	if len(toks) < headerTokenCount {
		return geometry.Color{}, geometry.Point{}, fmt.Errorf(
			"%w: %d tokens is too short for a shape header", ErrMalformed, len(toks))
	}
	if err := expectKeyword(toks, 0, kwShape); err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}
	if err := expectKeyword(toks, 1, kwColor); err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}
	if err := expectKeyword(toks, 6, kwOrigin); err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}

	r, err := parseNumber(toks, 2)
	if err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}
	g, err := parseNumber(toks, 3)
	if err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}
	b, err := parseNumber(toks, 4)
	if err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}

	x, err := parseNumber(toks, 7)
	if err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}
	y, err := parseNumber(toks, 8)
	if err != nil {
		return geometry.Color{}, geometry.Point{}, err
	}

	return geometry.NewColor(r, g, b), geometry.NewPoint(x, y), nil
}

// parseVertices validates the VERTICES( ... ) tail and extracts every
// POINT2D group. The tail must consist of whole 4-token groups plus
// the closing paren and the EOF token.
func parseVertices(toks []token) ([]geometry.Point, error) {
	if len(toks) < lineTokenCount {
		return nil, fmt.Errorf("%w: %d tokens leave no room for vertices", ErrMalformed, len(toks))
	}
	if (len(toks)-lineTokenCount)%4 != 0 {
		return nil, fmt.Errorf("%w: vertex list is not whole POINT2D groups", ErrMalformed)
	}
	if err := expectKeyword(toks, 10, kwVertices); err != nil {
		return nil, err
	}
	if err := expectKeyword(toks, len(toks)-2, kwClose); err != nil {
		return nil, err
	}

	count := (len(toks) - lineTokenCount + 8) / 4
	verts := make([]geometry.Point, 0, count)

	for i := 11; i+3 < len(toks)-1; i += 4 {
		if err := expectKeyword(toks, i, kwPoint); err != nil {
			return nil, err
		}
		x, err := parseNumber(toks, i+1)
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(toks, i+2)
		if err != nil {
			return nil, err
		}
		if err := expectKeyword(toks, i+3, kwClose); err != nil {
			return nil, err
		}
		verts = append(verts, geometry.NewPoint(x, y))
	}

	return verts, nil
}

func expectKeyword(toks []token, i int, kw string) error {
	if toks[i].kind != tokenWord || toks[i].text != kw {
		return fmt.Errorf("%w: token %d is %q, want %q", ErrMalformed, i, toks[i].text, kw)
	}
	return nil
}

func parseNumber(toks []token, i int) (float64, error) {
	if toks[i].kind != tokenWord {
		return 0, fmt.Errorf("%w: token %d is missing, want a number", ErrMalformed, i)
	}
	v, err := strconv.ParseFloat(toks[i].text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q is not a number", ErrMalformed, i, toks[i].text)
	}
	return v, nil
}
