package collection

import "encoding/json"

// Meta describes a persisted collection as found on disk.
type Meta struct {
	Name    Name   `json:"name"`
	Records int    `json:"records"`
	Bytes   int    `json:"bytes"`
	Error   string `json:"error,omitempty"`
}

// Healthy reports whether the collection decoded cleanly.
func (m Meta) Healthy() bool {
	return m.Error == ""
}

// MarshalList serialises metadata slice.
func MarshalList(metas []Meta) ([]byte, error) {
	return json.MarshalIndent(metas, "", "  ")
}

// CountRecords returns the number of elements in a JSON array, or 1 for any
// other JSON value.
func CountRecords(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		return len(list), nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, err
	}
	return 1, nil
}
