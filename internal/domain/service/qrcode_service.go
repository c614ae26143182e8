package service

// QRCodeService renders share codes for places.
type QRCodeService interface {
	// GeneratePlaceQR returns a PNG encoding the share link of the place.
	GeneratePlaceQR(placeID string) ([]byte, error)

	// PlaceURL is the share link encoded by GeneratePlaceQR.
	PlaceURL(placeID string) string
}
