package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, "http://localhost:5173")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_PlaceURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "http://localhost:5173/")

	assert.Equal(t, "http://localhost:5173/?place=the-stud", service.PlaceURL("the-stud"))
	assert.Equal(t, "http://localhost:5173/?place=a+b%26c", service.PlaceURL("a b&c"))
}

func TestQRCodeService_GeneratePlaceQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "http://localhost:5173")

			qrBytes, err := service.GeneratePlaceQR("stonewall-inn")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GeneratePlaceQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(256, "M", "http://localhost:5173")

	_, err := service.GeneratePlaceQR(" ")
	assert.Error(t, err)
}
