package servicebindings

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes the full content of a binding into v, mapping entry keys
// to struct fields. Values are read as trimmed text and weakly typed into the
// target field, so numeric and boolean entries decode without manual
// conversion. Field names match case-insensitively; use the `servicebinding`
// struct tag for keys that are not valid Go identifiers:
//
//	type Postgres struct {
//		URL            string `servicebinding:"url"`
//		MaxConnections int    `servicebinding:"max-connections"`
//	}
//
// The binding must support key enumeration (KeyLister).
func Unmarshal(b Binding, v any) error {
	kl, ok := b.(KeyLister)
	if !ok {
		return fmt.Errorf("binding %q does not support key enumeration", b.GetName())
	}

	content := make(map[string]string)
	for _, k := range kl.Keys() {
		if s, ok := Get(b, k); ok {
			content[k] = s
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          "servicebinding",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(content)
}
