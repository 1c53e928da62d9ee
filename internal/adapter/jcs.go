package adapter

import "github.com/gowebpki/jcs"

// JCS canonicalizes journal payloads (RFC 8785) so the same event always serializes to the same bytes
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

type gowebpkiJCS struct{}

// NewJCS returns the gowebpki/jcs implementation
func NewJCS() JCS {
	return gowebpkiJCS{}
}

func (gowebpkiJCS) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}
