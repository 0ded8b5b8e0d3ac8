package storage

import (
	"encoding/json"
	"fmt"
)

// ExtensionState is a bag of raw JSON values keyed by extension name. Assets
// carry it so files can hold data the loading code does not interpret; an
// unknown key survives a load/marshal round trip untouched.
type ExtensionState map[string]json.RawMessage

// Set marshals v and stores it under key, allocating the map on first use.
func (e *ExtensionState) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal extension %q: %w", key, err)
	}

	if *e == nil {
		*e = ExtensionState{}
	}
	(*e)[key] = b

	return nil
}

// Get unmarshals the value stored under key into out. The bool reports
// whether the key was present; an absent key is not an error.
func (e ExtensionState) Get(key string, out any) (bool, error) {
	raw, ok := e[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal extension %q: %w", key, err)
	}

	return true, nil
}

// Delete removes key, if present. Safe on a nil map.
func (e ExtensionState) Delete(key string) {
	delete(e, key)
}
