package iconset

import "encoding/base64"

// placeholderPayload is a 1×1 fully transparent PNG, base64 encoded.
// Every file written in placeholder mode is an exact copy of its decoded bytes.
const placeholderPayload = `iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAAEUlEQVR4nGJiYGBgAAQAAP//AA8AA/6P688AAAAASUVORK5CYII=`

// DefaultSizes holds the icon dimensions generated when no explicit size list is provided.
var DefaultSizes = []int{16, 32, 48, 64, 96, 128}

// PlaceholderBytes decodes the fixed placeholder payload.
func PlaceholderBytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(placeholderPayload)
}
