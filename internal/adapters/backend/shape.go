package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Shape indica en qué envoltorio llegó una lista.
type Shape string

const (
	ShapeUnknown Shape = "unknown"
	ShapeArray   Shape = "array"
	ShapeData    Shape = "data"
	ShapePedidos Shape = "pedidos"
)

var (
	orderShapes   = []Shape{ShapeArray, ShapeData, ShapePedidos}
	productShapes = []Shape{ShapeArray, ShapeData}
)

type Envelope struct {
	Shape   Shape
	Records []json.RawMessage
}

var ErrInvalidJSON = errors.New("respuesta no es JSON válido")

// DecodeEnvelope prueba cada forma candidata en orden. Un JSON válido que no coincide
// con ninguna queda como ShapeUnknown sin registros.
func DecodeEnvelope(body []byte, candidates []Shape) (Envelope, error) {
	if !json.Valid(body) {
		return Envelope{Shape: ShapeUnknown}, ErrInvalidJSON
	}
	var obj map[string]json.RawMessage
	isObj := json.Unmarshal(body, &obj) == nil
	for _, sh := range candidates {
		var raw json.RawMessage
		switch sh {
		case ShapeArray:
			raw = body
		default:
			if !isObj {
				continue
			}
			raw = obj[string(sh)]
		}
		var recs []json.RawMessage
		if len(raw) == 0 || json.Unmarshal(raw, &recs) != nil || recs == nil {
			continue
		}
		return Envelope{Shape: sh, Records: recs}, nil
	}
	return Envelope{Shape: ShapeUnknown}, nil
}

func (s Shape) String() string { return string(s) }

func (e Envelope) Describe() string {
	return fmt.Sprintf("%s(%d)", e.Shape, len(e.Records))
}
