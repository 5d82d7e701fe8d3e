package gdscript

import (
	"fmt"

	"git.home.luguber.info/inful/gddocs/internal/errors"
)

// Raw is one untyped record as decoded from the reference dump.
type Raw = map[string]any

// rawValue fetches a required key, failing with a MissingField error that
// names both the record section and the absent key.
func rawValue(section string, data Raw, key string) (any, error) {
	v, ok := data[key]
	if !ok {
		return nil, errors.MissingField(section, key)
	}
	return v, nil
}

func rawString(section string, data Raw, key string) (string, error) {
	v, err := rawValue(section, data, key)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

// rawText is rawString for fields the dump may populate with non-string
// scalars (default values in particular). Nil becomes the empty string.
func rawText(section string, data Raw, key string) (string, error) {
	v, err := rawValue(section, data, key)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	default:
		return fmt.Sprint(t), nil
	}
}

func rawBool(section string, data Raw, key string) (bool, error) {
	v, err := rawValue(section, data, key)
	if err != nil {
		return false, err
	}
	b, _ := v.(bool)
	return b, nil
}

// rawList returns a required list-valued key. A JSON null counts as present
// and empty.
func rawList(section string, data Raw, key string) ([]any, error) {
	v, err := rawValue(section, data, key)
	if err != nil {
		return nil, err
	}
	list, _ := v.([]any)
	return list, nil
}

func rawStringList(section string, data Raw, key string) ([]string, error) {
	list, err := rawList(section, data, key)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		s, _ := entry.(string)
		out = append(out, s)
	}
	return out, nil
}

func rawMapList(section string, data Raw, key string) ([]Raw, error) {
	list, err := rawList(section, data, key)
	if err != nil {
		return nil, err
	}
	out := make([]Raw, 0, len(list))
	for _, entry := range list {
		m, _ := entry.(map[string]any)
		out = append(out, m)
	}
	return out, nil
}

func rawMap(section string, data Raw, key string) (map[string]any, error) {
	v, err := rawValue(section, data, key)
	if err != nil {
		return nil, err
	}
	m, _ := v.(map[string]any)
	return m, nil
}

// rawInt reads an optional integer key, defaulting to 0. JSON numbers decode
// as float64.
func rawInt(data Raw, key string) int {
	switch t := data[key].(type) {
	case float64:
		return int(t)
	case int:
		return t
	}
	return 0
}
