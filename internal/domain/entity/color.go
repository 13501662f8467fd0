// Package entity defines the core business entities for the domain layer.
package entity

// Color represents an RGBA color with 8-bit channels, the canonical
// serialized form being exactly 4 bytes (R, G, B, A).
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Default colors used when decoding fails or no color was chosen.
var (
	// ColorWhite is the default Location color.
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}

	// ColorAccent is the fallback for symbol colors (indigo accent).
	ColorAccent = Color{R: 99, G: 102, B: 241, A: 255}
)

// colorDataLength is the required length of a serialized color blob.
const colorDataLength = 4

// Bytes returns the canonical 4-byte R,G,B,A serialization.
func (c Color) Bytes() []byte {
	return []byte{c.R, c.G, c.B, c.A}
}

// ColorFromBytes decodes a 4-byte R,G,B,A blob. Blobs of any other length
// (including nil) decode to the provided fallback instead of failing.
func ColorFromBytes(data []byte, fallback Color) Color {
	if len(data) != colorDataLength {
		return fallback
	}
	return Color{R: data[0], G: data[1], B: data[2], A: data[3]}
}
