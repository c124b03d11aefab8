package codec

import "encoding/json"

// JSON decodes entries holding a JSON document. The zero value is ready to use.
type JSON struct{}

func (JSON) Decode(data []byte, v any) error { return json.Unmarshal(data, v) }
