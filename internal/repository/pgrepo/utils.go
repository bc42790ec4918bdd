package pgrepo

import "encoding/json"

// marshalMap сериализует map для jsonb колонки. nil превращается в пустой
// объект, чтобы колонка никогда не хранила SQL NULL.
func marshalMap(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m) //nolint:wrapcheck
}

func marshalList(l []map[string]any) ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l) //nolint:wrapcheck
}

func unmarshalMap(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func unmarshalList(b []byte) ([]map[string]any, error) {
	if len(b) == 0 {
		return []map[string]any{}, nil
	}
	var l []map[string]any
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if l == nil {
		l = []map[string]any{}
	}
	return l, nil
}
