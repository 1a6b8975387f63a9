package vbo

import (
	"strings"

	"github.com/Faultbox/vbogen/pkg/math"
)

// cornerSlots is the positional layout of a corner descriptor.
var cornerSlots = [3]Kind{KindPosition, KindTexCoord, KindNormal}

// corner holds the resolved attributes of one triangle corner.
// Kinds that are not active stay zero.
type corner struct {
	pos, tex, norm math.Vec3
}

func (c *corner) set(k Kind, v math.Vec3) {
	switch k {
	case KindPosition:
		c.pos = v
	case KindTexCoord:
		c.tex = v
	case KindNormal:
		c.norm = v
	}
}

func (c *corner) value(f Field) float32 {
	switch f {
	case PosX:
		return c.pos.X
	case PosY:
		return c.pos.Y
	case PosZ:
		return c.pos.Z
	case NormX:
		return c.norm.X
	case NormY:
		return c.norm.Y
	case NormZ:
		return c.norm.Z
	case TexU:
		return c.tex.X
	case TexV:
		return c.tex.Y
	case TexW:
		return c.tex.Z
	default:
		return 0
	}
}

// expander turns face lines into interleaved vertex data.
type expander struct {
	pools  *Pools
	active Active
	order  []Field
}

// run scans src for face lines and returns the concatenated output
// together with the number of triangles emitted.
func (e *expander) run(src Source) ([]float32, int, error) {
	var out []float32
	triangles := 0
	err := scanLines(src, func(n int, line string) error {
		if len(line) < 2 || line[0] != 'f' || line[1] != ' ' {
			return nil
		}
		var err error
		out, err = e.expandFace(n, line[2:], out)
		if err != nil {
			return err
		}
		triangles++
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return out, triangles, nil
}

// expandFace appends the three corners of one face to out.
func (e *expander) expandFace(n int, rest string, out []float32) ([]float32, error) {
	descs := strings.Fields(rest)
	if len(descs) != 3 {
		return out, lineErr(n, KindNone, strings.TrimSpace(rest), ErrNotTriangle)
	}

	var corners [3]corner
	for i, desc := range descs {
		if err := e.resolveCorner(n, desc, &corners[i]); err != nil {
			return out, err
		}
	}

	for i := range corners {
		for _, f := range e.order {
			out = append(out, corners[i].value(f))
		}
	}
	return out, nil
}

// resolveCorner walks the position/texcoord/normal tokens of desc in order.
// Tokens of inactive kinds are skipped whether or not they are present.
func (e *expander) resolveCorner(n int, desc string, c *corner) error {
	tokens := strings.Split(desc, "/")
	for slot, k := range cornerSlots {
		if !e.active.Has(k) {
			continue
		}
		if slot >= len(tokens) {
			return lineErr(n, k, desc, ErrMissingIndex)
		}
		v, err := e.pools.lookup(n, k, tokens[slot])
		if err != nil {
			return err
		}
		c.set(k, v)
	}
	return nil
}
