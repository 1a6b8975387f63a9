// Package vbo converts OBJ geometry text into flat, interleaved float32
// vertex buffers. Every triangle corner is expanded into one group of
// values whose layout is given by an ordered list of Fields.
package vbo

import (
	"fmt"
	"strings"
)

// Kind identifies an attribute pool.
type Kind int

const (
	KindNone     Kind = iota // Void selectors read no attribute
	KindPosition             // "v" lines
	KindTexCoord             // "vt" lines
	KindNormal               // "vn" lines
)

// String returns the attribute kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPosition:
		return "position"
	case KindTexCoord:
		return "texcoord"
	case KindNormal:
		return "normal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field selects one scalar slot of an output vertex.
type Field uint8

const (
	Void Field = iota // literal 0.0
	PosX
	PosY
	PosZ
	NormX
	NormY
	NormZ
	TexU
	TexV
	TexW
)

var fieldTokens = [...]string{
	Void:  "*",
	PosX:  "vx",
	PosY:  "vy",
	PosZ:  "vz",
	NormX: "nx",
	NormY: "ny",
	NormZ: "nz",
	TexU:  "tu",
	TexV:  "tv",
	TexW:  "tw",
}

// Fields lists every selector in declaration order.
var Fields = []Field{PosX, PosY, PosZ, NormX, NormY, NormZ, TexU, TexV, TexW, Void}

// String returns the order token for the field.
func (f Field) String() string {
	if int(f) < len(fieldTokens) {
		return fieldTokens[f]
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// Kind returns the attribute kind the field reads from.
func (f Field) Kind() Kind {
	switch f {
	case PosX, PosY, PosZ:
		return KindPosition
	case NormX, NormY, NormZ:
		return KindNormal
	case TexU, TexV, TexW:
		return KindTexCoord
	default:
		return KindNone
	}
}

// ParseField maps an order token to its Field. Unrecognized tokens map to Void.
func ParseField(token string) Field {
	switch token {
	case "vx":
		return PosX
	case "vy":
		return PosY
	case "vz":
		return PosZ
	case "nx":
		return NormX
	case "ny":
		return NormY
	case "nz":
		return NormZ
	case "tu":
		return TexU
	case "tv":
		return TexV
	case "tw":
		return TexW
	default:
		return Void
	}
}

// ParseOrder splits s on whitespace and commas and maps every token with
// ParseField, so "vx vy vz" and "vx,vy,vz" describe the same layout.
func ParseOrder(s string) []Field {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	order := make([]Field, 0, len(tokens))
	for _, tok := range tokens {
		order = append(order, ParseField(tok))
	}
	return order
}

// FormatOrder renders an order back into its token form.
func FormatOrder(order []Field) string {
	tokens := make([]string, len(order))
	for i, f := range order {
		tokens[i] = f.String()
	}
	return strings.Join(tokens, " ")
}

// Active records which attribute pools a field order needs.
type Active struct {
	Positions bool
	Normals   bool
	TexCoords bool
}

// ActiveKinds derives the active set from a field order. A kind is active
// iff at least one of its selectors appears.
func ActiveKinds(order []Field) Active {
	var a Active
	for _, f := range order {
		switch f.Kind() {
		case KindPosition:
			a.Positions = true
		case KindNormal:
			a.Normals = true
		case KindTexCoord:
			a.TexCoords = true
		}
	}
	return a
}

// Has reports whether kind k is active.
func (a Active) Has(k Kind) bool {
	switch k {
	case KindPosition:
		return a.Positions
	case KindNormal:
		return a.Normals
	case KindTexCoord:
		return a.TexCoords
	default:
		return false
	}
}
