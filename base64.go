package brandkit

import (
	"encoding/base64"
	"image"
	"strings"

	"github.com/pkg/errors"
)

// DecodeBase64Image accepts artwork pasted as base64, either bare or as a
// data URL, and decodes it like DecodeImageBytes.
func DecodeBase64Image(input string) (image.Image, string, error) {
	payload := trimDataURL(strings.TrimSpace(input))

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode base64")
	}

	return DecodeImageBytes(data)
}

// EncodePNGToBase64 returns img as base64-encoded PNG.
func EncodePNGToBase64(img image.Image) (string, error) {
	data, err := encodePNGBytes(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// trimDataURL drops a "data:<mime>;base64," header if present.
func trimDataURL(s string) string {
	if len(s) < 5 || !strings.EqualFold(s[:5], "data:") {
		return s
	}
	if _, payload, found := strings.Cut(s, ","); found {
		return payload
	}
	return s
}
