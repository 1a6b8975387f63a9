package vbo

// Result is the output of one conversion run.
type Result struct {
	Data      []float32 // interleaved vertex data
	Triangles int       // face lines expanded
	Stride    int       // floats per vertex, len(order)

	// Requested lists the kinds the order asked for.
	Requested Active
	// Empty lists requested kinds for which the source had no vectors.
	// Their slots are written as 0.
	Empty []Kind
}

// Vertices returns the number of vertices in the buffer.
func (r *Result) Vertices() int {
	return r.Triangles * 3
}

// Loader converts one source at a time. It owns the attribute pools of
// the current run; every call to Load rebuilds them from scratch.
// A Loader must not be used from several goroutines at once.
type Loader struct {
	pools Pools
}

// NewLoader returns an empty Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Pools returns the attribute pools filled by the last Load.
func (l *Loader) Pools() *Pools {
	return &l.pools
}

// Load converts src into interleaved vertex data laid out by order.
// On error no data is returned.
func (l *Loader) Load(src Source, order []Field) (*Result, error) {
	requested := ActiveKinds(order)

	if err := l.pools.Load(src, requested); err != nil {
		return nil, err
	}

	// A requested kind with nothing to index behaves as inactive.
	effective := requested
	var empty []Kind
	for _, k := range cornerSlots {
		if requested.Has(k) && l.pools.Len(k) == 0 {
			empty = append(empty, k)
			switch k {
			case KindPosition:
				effective.Positions = false
			case KindTexCoord:
				effective.TexCoords = false
			case KindNormal:
				effective.Normals = false
			}
		}
	}

	e := &expander{pools: &l.pools, active: effective, order: order}
	data, triangles, err := e.run(src)
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:      data,
		Triangles: triangles,
		Stride:    len(order),
		Requested: requested,
		Empty:     empty,
	}, nil
}

// Convert runs a single conversion with a fresh Loader and returns the
// flat vertex data.
func Convert(src Source, order []Field) ([]float32, error) {
	res, err := NewLoader().Load(src, order)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}
