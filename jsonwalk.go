package fdon

import (
	"encoding/json"
	"io"
	"strconv"
)

// WriteJSON renders v as JSON to w, per the mapping in spec.md §6: the
// FDON value sum maps one-to-one onto JSON's, with both Number
// variants as a plain JSON number and both timestamp variants folding
// into their underlying representation (an integer, or a JSON string
// of decoded text).
//
// Grounded on calumari-jwalk's plain Document/Array value-tree shape
// for what a minimal walker over a parsed tree looks like, and on
// jibby's own preference for building output by appending to a
// growable []byte rather than chaining through an io.Writer on every
// scalar — WriteJSON builds into a scratch buffer and writes it once.
func WriteJSON(w io.Writer, v Value) error {
	buf, err := AppendJSON(nil, v)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// AppendJSON appends the JSON rendering of v to dst and returns the
// extended buffer, following the append-style API jibby's own
// Decode(buf []byte) ([]byte, error) uses.
func AppendJSON(dst []byte, v Value) ([]byte, error) {
	return appendValue(dst, v)
}

func appendValue(dst []byte, v Value) ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.Bool() {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindInt, KindTimestampNumber:
		return strconv.AppendInt(dst, v.Int(), 10), nil
	case KindFloat:
		return strconv.AppendFloat(dst, v.Float(), 'g', -1, 64), nil
	case KindRawString, KindEscapedString, KindDate, KindTimestampString:
		return appendJSONString(dst, v.Str()), nil
	case KindArray:
		return appendArray(dst, v.Array())
	case KindObject:
		return appendObject(dst, v.Object())
	default:
		return dst, newParseError(0, "unsupported value kind %s", v.Kind)
	}
}

func appendArray(dst []byte, elems []Value) ([]byte, error) {
	dst = append(dst, '[')
	for i, e := range elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		var err error
		dst, err = appendValue(dst, e)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, ']'), nil
}

func appendObject(dst []byte, obj *Object) ([]byte, error) {
	dst = append(dst, '{')
	first := true
	var rangeErr error
	obj.Range(func(key string, val Value) bool {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = appendJSONString(dst, key)
		dst = append(dst, ':')
		var err error
		dst, err = appendValue(dst, val)
		if err != nil {
			rangeErr = err
			return false
		}
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return append(dst, '}'), nil
}

// appendJSONString escapes s per JSON's string grammar using
// encoding/json's own encoder rather than a hand-rolled escaper: FDON
// targets plain, standard JSON text, and every pack member that needs
// JSON string escaping either reaches for encoding/json directly or
// hand-rolls an escaper only for its *own* custom wire format (as
// jibby does for BSON's length-prefixed C strings). There is no
// third-party JSON-string-escaping library anywhere in the example
// pack to ground a dependency on instead. Marshal on a string value
// never errors, so the error return is discarded.
func appendJSONString(dst []byte, s string) []byte {
	encoded, _ := json.Marshal(s)
	return append(dst, encoded...)
}
