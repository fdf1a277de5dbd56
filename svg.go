package tween

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// svgArgs is the number of arguments of every SVG path command.
var svgArgs = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(b byte) bool {
	return b >= '0' && b <= '9' || b == '.' || b == '-' || b == '+'
}

// ParseSVG parses SVG path data, such as the d attribute of a path
// element, into drawing commands.
//
// All commands are supported in their absolute and relative forms.
// Elliptical arcs are converted to cubics, one per quarter turn. Malformed
// numbers and unknown commands result in an error. An empty string results
// in an empty path.
func ParseSVG(s string) (BezPath, error) {
	path := []byte(s)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil, nil
	}
	if isNumberStart(path[i]) || i > 0 && path[i-1] == ',' {
		return nil, errors.New("svg path: path must start with a command")
	}

	var (
		out     BezPath
		args    [7]float64
		current Point
		start   Point
		cubicC2 Point // last control point of the previous cubic
		quadC   Point // control point of the previous quadratic
		prevCmd = byte('z')
	)
	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(path[i]) {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := svgArgs[upper]
		if !ok {
			return nil, fmt.Errorf("svg path: unknown command %q at position %d", cmd, i)
		}
		for j := range n {
			if upper == 'A' && (j == 3 || j == 4) {
				// Flags are single digits and may be written without
				// separators.
				if i >= len(path) || path[i] != '0' && path[i] != '1' {
					return nil, fmt.Errorf("svg path: arc flags must be 0 or 1 in command %q at position %d", cmd, i+1)
				}
				args[j] = float64(path[i] - '0')
				i++
				i += skipCommaWhitespace(path[i:])
				continue
			}
			num, k := strconv.ParseFloat(path[i:])
			if k == 0 {
				if repeat && j == 0 {
					return nil, fmt.Errorf("svg path: unknown command %q at position %d", path[i], i+1)
				}
				return nil, fmt.Errorf("svg path: %d numbers should follow command %q at position %d", n, cmd, i+1)
			}
			args[j] = num
			i += k
			i += skipCommaWhitespace(path[i:])
		}

		relative := cmd != upper
		abs := func(j int) Point {
			pt := Pt(args[j], args[j+1])
			if relative {
				pt = pt.Add(Vec2(current))
			}
			return pt
		}

		var end Point
		switch upper {
		case 'M':
			end = abs(0)
			out.MoveTo(end)
			start = end
			// Coordinate pairs after a move are implicit lines.
			if relative {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			out.ClosePath()
			end = start
		case 'L':
			end = abs(0)
			out.LineTo(end)
		case 'H':
			end = Pt(args[0], current.Y)
			if relative {
				end.X += current.X
			}
			out.LineTo(end)
		case 'V':
			end = Pt(current.X, args[0])
			if relative {
				end.Y += current.Y
			}
			out.LineTo(end)
		case 'C':
			c1, c2 := abs(0), abs(2)
			end = abs(4)
			out.CubicTo(c1, c2, end)
			cubicC2 = c2
		case 'S':
			c1 := current
			if p := prevCmd | 0x20; p == 'c' || p == 's' {
				c1 = current.Add(current.Sub(cubicC2))
			}
			c2 := abs(0)
			end = abs(2)
			out.CubicTo(c1, c2, end)
			cubicC2 = c2
		case 'Q':
			c := abs(0)
			end = abs(2)
			out.QuadTo(c, end)
			quadC = c
		case 'T':
			c := current
			if p := prevCmd | 0x20; p == 'q' || p == 't' {
				c = current.Add(current.Sub(quadC))
			}
			end = abs(0)
			out.QuadTo(c, end)
			quadC = c
		case 'A':
			end = abs(5)
			radii := Vec(args[0], args[1])
			rot := args[2] * math.Pi / 180
			if a, ok := svgArc(current, end, radii, rot, args[3] == 1, args[4] == 1); ok {
				for el := range a.cubics() {
					out.Push(el)
				}
				out[len(out)-1].P2 = end
			} else {
				out.LineTo(end)
			}
		}
		prevCmd = cmd
		current = end
	}
	return out, nil
}

// MustParseSVG is like [ParseSVG] but panics on malformed input. It is
// meant for path data that is part of the program.
func MustParseSVG(s string) BezPath {
	p, err := ParseSVG(s)
	if err != nil {
		panic(err)
	}
	return p
}
