package qrcode

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePNG_Deterministic(t *testing.T) {
	enc := NewEncoder()
	payload := "https://wedding.example/event/abc123"

	for _, opts := range []Options{StandaloneOptions(), OverlayOptions()} {
		first, err := enc.EncodePNG(payload, opts)
		require.NoError(t, err)
		second, err := enc.EncodePNG(payload, opts)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(first, second))

		img, err := png.Decode(bytes.NewReader(first))
		require.NoError(t, err)
		assert.Equal(t, opts.Width, img.Bounds().Dx())
		assert.Equal(t, opts.Width, img.Bounds().Dy())
	}
}

func TestEncode_MarginAndColours(t *testing.T) {
	enc := NewEncoder()

	img, err := enc.Encode("https://wedding.example/event/abc123", OverlayOptions())
	require.NoError(t, err)

	// The quiet zone keeps the light colour, here fully transparent.
	assert.Equal(t, Transparent, img.NRGBAAt(0, 0))
	assert.Equal(t, Transparent, img.NRGBAAt(511, 511))

	// The top-left finder pattern starts right after the one-module margin.
	var sawDark bool
	for x := 0; x < 40 && !sawDark; x++ {
		sawDark = img.NRGBAAt(x, 20) == Black
	}
	assert.True(t, sawDark)
}

func TestEncode_WidthSmallerThanMatrix(t *testing.T) {
	img, err := NewEncoder().Encode("hello", Options{Width: 1, Margin: 4, Dark: Black, Light: White})
	require.NoError(t, err)
	// Version 1 is 21 modules, plus 4 on each side.
	assert.Equal(t, 29, img.Bounds().Dx())
}

func TestEncode_Errors(t *testing.T) {
	enc := NewEncoder()

	_, err := enc.Encode("", StandaloneOptions())
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = enc.Encode(strings.Repeat("x", 4000), StandaloneOptions())
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#000000", want: Black},
		{in: "#ffffff", want: White},
		{in: "#00000000", want: Transparent},
		{in: "fff", want: White},
		{in: "#ff000080", want: color.NRGBA{R: 0xff, A: 0x80}},
		{in: "#12", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
