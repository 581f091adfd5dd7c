package grpcserver

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codec carries catalog messages as JSON so the service needs no generated stubs.
type codec struct{}

func (codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (codec) Name() string {
	return "json"
}

func init() {
	encoding.RegisterCodec(codec{})
}
