package adapter

import (
	"encoding/json"
)

// JSON abstracts payload encoding so broker publishes can assert and fail
// encoding in tests. The chat mirror is its only consumer.
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// NewJSON returns the encoding/json backed implementation
func NewJSON() JSON {
	return &RealJSON{}
}

// RealJSON implements JSON on the standard library encoder
type RealJSON struct{}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
