package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// RawRecord es un objeto JSON sin tipar: un campo puede llegar con varios nombres y
// como número o como string.
type RawRecord map[string]json.RawMessage

// ParseRawRecord devuelve false si b no es un objeto JSON.
func ParseRawRecord(b []byte) (RawRecord, bool) {
	var r RawRecord
	if err := json.Unmarshal(b, &r); err != nil || r == nil {
		return nil, false
	}
	return r, true
}

func isNull(b json.RawMessage) bool {
	t := bytes.TrimSpace(b)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// Raw devuelve el primer valor presente y no nulo entre keys.
func (r RawRecord) Raw(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && !isNull(v) {
			return v, true
		}
	}
	return nil, false
}

// String devuelve el primer valor no vacío entre keys; números y booleanos se
// devuelven como texto literal.
func (r RawRecord) String(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || isNull(v) {
			continue
		}
		if s := scalarString(v); s != "" {
			return s
		}
	}
	return ""
}

func (r RawRecord) Float(keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || isNull(v) {
			continue
		}
		if f, ok := scalarFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

// Int trunca la parte decimal.
func (r RawRecord) Int(keys ...string) (int, bool) {
	f, ok := r.Float(keys...)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func scalarString(v json.RawMessage) string {
	t := bytes.TrimSpace(v)
	if len(t) == 0 {
		return ""
	}
	switch t[0] {
	case '"':
		var s string
		if json.Unmarshal(t, &s) != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '{', '[':
		return ""
	}
	return string(t)
}

func scalarFloat(v json.RawMessage) (float64, bool) {
	s := scalarString(v)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" || s == "true" || s == "false" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
