package tag

import "encoding/json"

// Decode turns a persisted JSON array back into a registry. An absent key,
// invalid JSON or an empty array all yield the defaults.
func Decode(raw string, found bool) Registry {
	if !found || raw == "" {
		return Defaults()
	}
	var r Registry
	if err := json.Unmarshal([]byte(raw), &r); err != nil || len(r) == 0 {
		return Defaults()
	}
	return r
}

// Encode renders r as the persisted JSON array.
func Encode(r Registry) (string, error) {
	if r == nil {
		r = Registry{}
	}
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
