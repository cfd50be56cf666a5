package api

import "encoding/json"

// validator is implemented by response models that carry required fields.
type validator interface {
	validate() error
}

// parse decodes a single response object and runs its required-field checks.
func parse[T any](body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, wrapDecodeErr(err)
	}
	if m, ok := any(&v).(validator); ok {
		if err := m.validate(); err != nil {
			return nil, err
		}
	}
	return &v, nil
}

// parseList decodes a response array, validating every element.
func parseList[T any](body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, wrapDecodeErr(err)
	}
	for i := range items {
		if m, ok := any(&items[i]).(validator); ok {
			if err := m.validate(); err != nil {
				return nil, err
			}
		}
	}
	return items, nil
}

// parseObject decodes an untyped JSON object, used by endpoints whose payload
// shape is server- or plugin-defined.
func parseObject(body []byte) (map[string]any, error) {
	var v map[string]any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, wrapDecodeErr(err)
	}
	return v, nil
}

// wrapDecodeErr folds json and scalar decode failures into the
// ErrInvalidResponse taxonomy. Errors produced by the flexible scalar types
// already wrap it.
func wrapDecodeErr(err error) error {
	if _, ok := err.(*json.UnmarshalTypeError); ok {
		return invalidf("%v", err)
	}
	if _, ok := err.(*json.SyntaxError); ok {
		return invalidf("%v", err)
	}
	return err
}
