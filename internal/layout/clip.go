package layout

import (
	"fmt"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ClipKind enumerates the clip-path functions the template catalog uses.
type ClipKind int

const (
	ClipPolygon ClipKind = iota + 1
	ClipCircle
	ClipInset
)

// ClipPoint is a polygon vertex in percent of the slot container.
type ClipPoint struct {
	X, Y float64
}

// ClipShape is a parsed clip-path value with percentage geometry. Only the
// fields for the active Kind are meaningful.
type ClipShape struct {
	Kind   ClipKind
	Points []ClipPoint // polygon vertices

	CX, CY, R float64 // circle center and radius

	Top, Right, Bottom, Left float64 // inset distances from each edge
}

// BoundsPercent returns the bounding box of the visible clipped region in
// percent of the container. For circles the radius percentage is resolved
// per axis (r% of width horizontally, r% of height vertically), which is
// equal to or larger than the CSS reference-box resolution for any aspect
// ratio, so a ShapeBounds that encloses this box encloses the CSS one too.
func (c *ClipShape) BoundsPercent() ShapeBounds {
	switch c.Kind {
	case ClipPolygon:
		minX, minY := c.Points[0].X, c.Points[0].Y
		maxX, maxY := minX, minY
		for _, p := range c.Points[1:] {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		return ShapeBounds{XPercent: minX, YPercent: minY, WPercent: maxX - minX, HPercent: maxY - minY}

	case ClipCircle:
		return ShapeBounds{
			XPercent: c.CX - c.R,
			YPercent: c.CY - c.R,
			WPercent: 2 * c.R,
			HPercent: 2 * c.R,
		}

	case ClipInset:
		w := 100 - c.Left - c.Right
		h := 100 - c.Top - c.Bottom
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		return ShapeBounds{XPercent: c.Left, YPercent: c.Top, WPercent: w, HPercent: h}
	}
	return ShapeBounds{}
}

// ParseClipStyle extracts and parses the clip-path declaration from an
// inline wrapper style string like
// "position:absolute;inset:0;clip-path:polygon(0% 0%, 58% 0%, 42% 100%, 0% 100%)".
// Returns (nil, nil) when the style has no clip-path.
func ParseClipStyle(style string) (*ClipShape, error) {
	input := parse.NewInput(strings.NewReader(style))
	parser := css.NewParser(input, true)

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return nil, nil
		case css.DeclarationGrammar:
			if strings.ToLower(string(data)) != "clip-path" {
				continue
			}
			return parseClipValue(parser.Values())
		}
	}
}

// parseClipValue parses the token stream of a clip-path declaration value.
func parseClipValue(tokens []css.Token) (*ClipShape, error) {
	tokens = dropWhitespace(tokens)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty clip-path value")
	}

	first := tokens[0]
	if first.TokenType == css.IdentToken {
		if strings.EqualFold(string(first.Data), "none") {
			return nil, nil
		}
		return nil, fmt.Errorf("unsupported clip-path keyword %q", first.Data)
	}
	if first.TokenType != css.FunctionToken {
		return nil, fmt.Errorf("unexpected clip-path token %q", first.Data)
	}

	fn := strings.ToLower(strings.TrimSuffix(string(first.Data), "("))
	args := trimCloseParen(tokens[1:])

	switch fn {
	case "polygon":
		return parsePolygonArgs(args)
	case "circle":
		return parseCircleArgs(args)
	case "inset":
		return parseInsetArgs(args)
	default:
		return nil, fmt.Errorf("unsupported clip-path function %q", fn)
	}
}

// parsePolygonArgs parses comma-separated coordinate pairs.
func parsePolygonArgs(tokens []css.Token) (*ClipShape, error) {
	shape := &ClipShape{Kind: ClipPolygon}

	var pair []float64
	flush := func() error {
		if len(pair) != 2 {
			return fmt.Errorf("polygon vertex needs 2 coordinates, got %d", len(pair))
		}
		shape.Points = append(shape.Points, ClipPoint{X: pair[0], Y: pair[1]})
		pair = pair[:0]
		return nil
	}

	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			continue
		case css.CommaToken:
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			v, ok := percentValue(t)
			if !ok {
				return nil, fmt.Errorf("unexpected polygon token %q", t.Data)
			}
			pair = append(pair, v)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(shape.Points) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(shape.Points))
	}
	return shape, nil
}

// parseCircleArgs parses "circle(R% at CX% CY%)"; radius and position
// default to 50% (centered, half the container).
func parseCircleArgs(tokens []css.Token) (*ClipShape, error) {
	shape := &ClipShape{Kind: ClipCircle, CX: 50, CY: 50, R: 50}

	tokens = dropWhitespace(tokens)
	i := 0
	if i < len(tokens) {
		if v, ok := percentValue(tokens[i]); ok {
			shape.R = v
			i++
		}
	}
	if i < len(tokens) {
		if tokens[i].TokenType != css.IdentToken || !strings.EqualFold(string(tokens[i].Data), "at") {
			return nil, fmt.Errorf("unexpected circle token %q", tokens[i].Data)
		}
		i++
		var pos []float64
		for ; i < len(tokens); i++ {
			v, ok := percentValue(tokens[i])
			if !ok {
				return nil, fmt.Errorf("unexpected circle position token %q", tokens[i].Data)
			}
			pos = append(pos, v)
		}
		if len(pos) != 2 {
			return nil, fmt.Errorf("circle position needs 2 values, got %d", len(pos))
		}
		shape.CX, shape.CY = pos[0], pos[1]
	}
	return shape, nil
}

// parseInsetArgs parses 1-4 edge distances with CSS shorthand expansion.
// A trailing "round <radii>" only rounds corners inward and cannot grow the
// visible region, so it is ignored for bounds purposes.
func parseInsetArgs(tokens []css.Token) (*ClipShape, error) {
	var vals []float64
	for _, t := range dropWhitespace(tokens) {
		if t.TokenType == css.IdentToken && strings.EqualFold(string(t.Data), "round") {
			break
		}
		v, ok := percentValue(t)
		if !ok {
			return nil, fmt.Errorf("unexpected inset token %q", t.Data)
		}
		vals = append(vals, v)
	}

	shape := &ClipShape{Kind: ClipInset}
	switch len(vals) {
	case 1:
		shape.Top, shape.Right, shape.Bottom, shape.Left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		shape.Top, shape.Bottom = vals[0], vals[0]
		shape.Right, shape.Left = vals[1], vals[1]
	case 3:
		shape.Top = vals[0]
		shape.Right, shape.Left = vals[1], vals[1]
		shape.Bottom = vals[2]
	case 4:
		shape.Top, shape.Right, shape.Bottom, shape.Left = vals[0], vals[1], vals[2], vals[3]
	default:
		return nil, fmt.Errorf("inset needs 1-4 values, got %d", len(vals))
	}
	return shape, nil
}

// percentValue reads a percentage token as its numeric value. Bare numbers
// are accepted for the unitless zero CSS allows.
func percentValue(t css.Token) (float64, bool) {
	switch t.TokenType {
	case css.PercentageToken:
		v, err := strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		return v, err == nil
	case css.NumberToken:
		v, err := strconv.ParseFloat(string(t.Data), 64)
		return v, err == nil && v == 0
	}
	return 0, false
}

func dropWhitespace(tokens []css.Token) []css.Token {
	out := make([]css.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			out = append(out, t)
		}
	}
	return out
}

func trimCloseParen(tokens []css.Token) []css.Token {
	if n := len(tokens); n > 0 && tokens[n-1].TokenType == css.RightParenthesisToken {
		return tokens[:n-1]
	}
	return tokens
}
