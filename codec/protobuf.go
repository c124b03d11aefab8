package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Protobuf decodes entries holding a binary protobuf message. The value
// passed to Decode must be a proto.Message.
type Protobuf struct{}

func (Protobuf) Decode(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("protobuf codec: %T is not a proto.Message", v)
	}
	return proto.Unmarshal(data, m)
}
