package vbo

import (
	"strconv"
	"strings"

	"github.com/Faultbox/vbogen/pkg/math"
)

// Pools holds the attribute vectors of one conversion run, in source order.
// Face data addresses them 1-based.
type Pools struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec3
}

// Len returns the number of vectors loaded for kind k.
func (p *Pools) Len(k Kind) int {
	switch k {
	case KindPosition:
		return len(p.Positions)
	case KindNormal:
		return len(p.Normals)
	case KindTexCoord:
		return len(p.TexCoords)
	default:
		return 0
	}
}

// Load empties all three pools, then fills each active one with its own
// pass over src.
func (p *Pools) Load(src Source, active Active) error {
	*p = Pools{}

	var err error
	if active.Positions {
		if p.Positions, err = loadPass(src, KindPosition); err != nil {
			return err
		}
	}
	if active.Normals {
		if p.Normals, err = loadPass(src, KindNormal); err != nil {
			return err
		}
	}
	if active.TexCoords {
		if p.TexCoords, err = loadPass(src, KindTexCoord); err != nil {
			return err
		}
	}
	return nil
}

// lookup resolves a 1-based index token against the pool for kind k.
func (p *Pools) lookup(n int, k Kind, token string) (math.Vec3, error) {
	if token == "" {
		return math.Vec3{}, lineErr(n, k, "", ErrMissingIndex)
	}
	idx, err := strconv.Atoi(token)
	if err != nil {
		return math.Vec3{}, lineErr(n, k, token, ErrMalformedNumber)
	}
	if idx < 1 {
		return math.Vec3{}, lineErr(n, k, token, ErrInvalidIndex)
	}

	var pool []math.Vec3
	switch k {
	case KindPosition:
		pool = p.Positions
	case KindNormal:
		pool = p.Normals
	case KindTexCoord:
		pool = p.TexCoords
	}
	if idx > len(pool) {
		return math.Vec3{}, lineErr(n, k, token, ErrIndexOutOfRange)
	}
	return pool[idx-1], nil
}

// loadPass scans src once and collects every vector of kind k.
func loadPass(src Source, k Kind) ([]math.Vec3, error) {
	var out []math.Vec3
	err := scanLines(src, func(n int, line string) error {
		if len(line) < 2 {
			return nil
		}
		var (
			v   math.Vec3
			err error
		)
		switch {
		case k == KindPosition && line[0] == 'v' && line[1] == ' ':
			v, err = parsePosition(n, line[2:])
		case k == KindNormal && line[0] == 'v' && line[1] == 'n':
			v, err = parseNormal(n, skip3(line))
		case k == KindTexCoord && line[0] == 'v' && line[1] == 't':
			v, err = parseTexCoord(n, skip3(line))
		default:
			return nil
		}
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// skip3 drops the "vn " / "vt " prefix.
func skip3(line string) string {
	if len(line) < 3 {
		return ""
	}
	return line[3:]
}

// parsePosition reads "x y z [w]". A w component divides the other three.
func parsePosition(n int, rest string) (math.Vec3, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return math.Vec3{}, lineErr(n, KindPosition, strings.TrimSpace(rest), ErrMissingValues)
	}
	v, err := parseVec3(n, KindPosition, fields[0], fields[1], fields[2])
	if err != nil {
		return math.Vec3{}, err
	}
	if len(fields) > 3 {
		w, err := parseFloat(n, KindPosition, fields[3])
		if err != nil {
			return math.Vec3{}, err
		}
		v = v.Div(w)
	}
	return v, nil
}

// parseNormal reads "x y z" and normalizes it.
func parseNormal(n int, rest string) (math.Vec3, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return math.Vec3{}, lineErr(n, KindNormal, strings.TrimSpace(rest), ErrMissingValues)
	}
	v, err := parseVec3(n, KindNormal, fields[0], fields[1], fields[2])
	if err != nil {
		return math.Vec3{}, err
	}
	return v.Normalized(), nil
}

// parseTexCoord reads "u v [w]" and normalizes it. A missing w is 0.
func parseTexCoord(n int, rest string) (math.Vec3, error) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return math.Vec3{}, lineErr(n, KindTexCoord, strings.TrimSpace(rest), ErrMissingValues)
	}
	w := "0"
	if len(fields) > 2 {
		w = fields[2]
	}
	v, err := parseVec3(n, KindTexCoord, fields[0], fields[1], w)
	if err != nil {
		return math.Vec3{}, err
	}
	return v.Normalized(), nil
}

func parseVec3(n int, k Kind, x, y, z string) (math.Vec3, error) {
	var v math.Vec3
	var err error
	if v.X, err = parseFloat(n, k, x); err != nil {
		return v, err
	}
	if v.Y, err = parseFloat(n, k, y); err != nil {
		return v, err
	}
	if v.Z, err = parseFloat(n, k, z); err != nil {
		return v, err
	}
	return v, nil
}

func parseFloat(n int, k Kind, token string) (float32, error) {
	f, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, lineErr(n, k, token, ErrMalformedNumber)
	}
	return float32(f), nil
}
