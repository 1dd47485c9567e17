package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"github.com/vmihailenco/msgpack/v5"
)

// Format is an on-disk image encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatCBOR
	FormatMsgpack
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatCBOR:
		return "cbor"
	case FormatMsgpack:
		return "msgpack"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor":
		return FormatCBOR
	case ".msgpack", ".mp":
		return FormatMsgpack
	case ".json", ".jsonc":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// encMode uses Core Deterministic Encoding so the same image always produces
// identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("metadata: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("metadata: CBOR decoder initialization failed: " + err.Error())
	}
}

// Decode parses an encoded image and indexes it.
func Decode(data []byte, format Format) (*Image, error) {
	var img Image

	switch format {
	case FormatCBOR:
		if err := decMode.Unmarshal(data, &img); err != nil {
			return nil, fmt.Errorf("decoding CBOR image: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&img); err != nil {
			return nil, fmt.Errorf("decoding msgpack image: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &img); err != nil {
			return nil, fmt.Errorf("decoding JSON image: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format %s", format)
	}

	if err := img.Index(); err != nil {
		return nil, err
	}

	return &img, nil
}

// Encode serializes the image.
func Encode(img *Image, format Format) ([]byte, error) {
	switch format {
	case FormatCBOR:
		return encMode.Marshal(img)
	case FormatMsgpack:
		var buf bytes.Buffer
		if err := msgpack.NewEncoder(&buf).Encode(img); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(img, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported image format %s", format)
	}
}

// LoadFile reads an image, choosing the decoder from the extension.
func LoadFile(path string) (*Image, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("metadata image %s: unrecognized extension %q", path, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata image %s: %w", path, err)
	}

	img, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// WriteFile encodes the image using the extension of path.
func WriteFile(img *Image, path string) error {
	data, err := Encode(img, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("encoding metadata image: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metadata image %s: %w", path, err)
	}

	return nil
}
