package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upload struct {
	ContentType string `validate:"required,supported_image"`
	Size        int64  `validate:"gt=0,lte=5242880"`
}

func TestValidator_SupportedImage(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		in     upload
		fields map[string]string
	}{
		{name: "jpeg", in: upload{ContentType: "image/jpeg", Size: 1}},
		{name: "png upper case", in: upload{ContentType: "IMAGE/PNG", Size: 1}},
		{name: "gif at limit", in: upload{ContentType: "image/gif", Size: 5 * 1024 * 1024}},
		{name: "webp", in: upload{ContentType: "image/webp", Size: 1}, fields: map[string]string{"content_type": "supported_image"}},
		{name: "too large", in: upload{ContentType: "image/png", Size: 5*1024*1024 + 1}, fields: map[string]string{"size": "lte=5242880"}},
		{name: "empty", in: upload{}, fields: map[string]string{"content_type": "required", "size": "gt=0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.fields, FieldErrors(err))
		})
	}
}

func TestFieldErrors_NonValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestMonotonicClock(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	c := NewMonotonicClock(func() time.Time { return fixed })

	assert.Equal(t, int64(1_700_000_000_000), c.NextMillis())
	assert.Equal(t, int64(1_700_000_000_001), c.NextMillis())
	assert.Equal(t, int64(1_700_000_000_002), c.NextMillis())

	fixed = fixed.Add(time.Second)
	assert.Equal(t, int64(1_700_000_001_000), c.NextMillis())
}
