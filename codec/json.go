package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// The most portable, lowest-dependency option. Use it when run artifacts must
// be readable by tools outside this module.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// Persisted artifacts record the codec name, so changing the default never
// breaks reading existing artifacts.
var Default Codec = JSON{}
