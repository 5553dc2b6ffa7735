package service

// QRCodeService generates QR code images.
type QRCodeService interface {
	// Generate renders the given payload as a PNG QR code.
	Generate(payload string) ([]byte, error)
}
