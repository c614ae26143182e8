package qrcode

import (
	"net/url"
	"strings"

	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// PlaceURL builds the link that opens the map with the place selected
func (s *qrcodeService) PlaceURL(placeID string) string {
	return s.baseURL + "/?place=" + url.QueryEscape(placeID)
}

// GeneratePlaceQR generates a PNG QR code for the place share link
func (s *qrcodeService) GeneratePlaceQR(placeID string) ([]byte, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, errors.New("place id is required")
	}

	qrCode, err := qrcode.New(s.PlaceURL(placeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
