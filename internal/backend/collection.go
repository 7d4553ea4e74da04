package backend

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrUnexpectedShape signals that a response body was neither a bare JSON
// array nor a {data: [...]} envelope. It is a soft condition: the caller
// gets an empty collection to aggregate over and decides whether to log.
var ErrUnexpectedShape = errors.New("unrecognized collection shape")

// CollectionShape tags the wire encoding a collection arrived in. The shape
// is resolved exactly once, here; everything downstream consumes a plain
// slice.
type CollectionShape int

const (
	ShapeUnknown CollectionShape = iota
	ShapeArray
	ShapeEnvelope
)

func (s CollectionShape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeEnvelope:
		return "envelope"
	default:
		return "unknown"
	}
}

// envelope is the paginated response wrapper some backend endpoints use.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

// Collection is the normalized result of decoding one collection response.
type Collection[T any] struct {
	Records []T
	Shape   CollectionShape
	// Skipped counts records that individually failed to decode. A single
	// malformed record must never abort the batch.
	Skipped int
	// Meta carries the raw pagination block when the envelope shape was
	// used, untouched.
	Meta json.RawMessage
}

// DecodeCollection normalizes a raw response body into an ordered record
// slice. Bare arrays and {data: [...]} envelopes are accepted; any other
// shape yields an empty collection and ErrUnexpectedShape. It never panics
// or fails the whole batch for one bad record.
func DecodeCollection[T any](body []byte) (Collection[T], error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Collection[T]{Records: []T{}, Shape: ShapeUnknown}, ErrUnexpectedShape
	}

	switch trimmed[0] {
	case '[':
		return decodeElements[T](trimmed, ShapeArray, nil)
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return Collection[T]{Records: []T{}, Shape: ShapeUnknown}, ErrUnexpectedShape
		}
		inner := bytes.TrimSpace(env.Data)
		if len(inner) == 0 || inner[0] != '[' {
			return Collection[T]{Records: []T{}, Shape: ShapeUnknown}, ErrUnexpectedShape
		}
		return decodeElements[T](inner, ShapeEnvelope, env.Meta)
	default:
		return Collection[T]{Records: []T{}, Shape: ShapeUnknown}, ErrUnexpectedShape
	}
}

func decodeElements[T any](arr []byte, shape CollectionShape, meta json.RawMessage) (Collection[T], error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(arr, &raw); err != nil {
		return Collection[T]{Records: []T{}, Shape: ShapeUnknown}, ErrUnexpectedShape
	}

	col := Collection[T]{
		Records: make([]T, 0, len(raw)),
		Shape:   shape,
		Meta:    meta,
	}
	for _, el := range raw {
		var rec T
		if err := json.Unmarshal(el, &rec); err != nil {
			col.Skipped++
			continue
		}
		col.Records = append(col.Records, rec)
	}
	return col, nil
}
