package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator produces the PNG served from an order's QR endpoint.
type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

const qrImageSize = 256

// TrackingQRGenerator encodes a link to the customer-facing tracking
// page for an order, rooted at the configured public base URL.
type TrackingQRGenerator struct {
	BaseURL string
}

func (g TrackingQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(g.trackingURL(orderID), qrcode.Medium, qrImageSize)
}

func (g TrackingQRGenerator) trackingURL(orderID int) string {
	return fmt.Sprintf("%s/track.html?order_id=%d", g.BaseURL, orderID)
}
