package brandkit

// KeyBlackBytes decodes raw image bytes, keys out pixels darker than
// threshold and returns the result encoded as PNG.
func KeyBlackBytes(data []byte, threshold uint8) ([]byte, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, err
	}

	keyed, err := KeyBlack(img, threshold)
	if err != nil {
		return nil, err
	}

	return encodePNGBytes(keyed)
}

// ExtractIconBytes is ExtractIcon for raw banner bytes. The icon is returned
// encoded as PNG together with the extraction details.
func ExtractIconBytes(data []byte, opts ExtractOptions) ([]byte, Info, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Info{}, err
	}

	icon, info, err := ExtractIcon(img, opts)
	if err != nil {
		return nil, Info{}, err
	}

	out, err := encodePNGBytes(icon)
	if err != nil {
		return nil, Info{}, err
	}
	return out, info, nil
}
