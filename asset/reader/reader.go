package reader

import (
	"errors"
	"strings"

	"github.com/achilleasa/polaris-bvh/asset"
)

var (
	ErrUnsupportedFormat = errors.New("reader: unsupported scene file format")
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*Scene, error)
}

// Read scene from a local file or URL. The reader is selected based on the
// file extension.
func ReadScene(filename string) (*Scene, error) {
	var reader Reader
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".obj"):
		reader = newWavefrontReader()
	default:
		return nil, ErrUnsupportedFormat
	}

	res, err := asset.Open(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}
