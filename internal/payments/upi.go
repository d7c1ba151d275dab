package payments

import (
	"fmt"
	"net/url"
)

// qrServiceBase is the external QR rendering service. Purely presentational:
// the portal never fetches the image itself, it hands the URL to the client.
const qrServiceBase = "https://api.qrserver.com/v1/create-qr-code/"

// UPILink builds the upi:// deep link for the given payee. A zero amount
// leaves the amount open for the payer to fill in.
func UPILink(upiID, payeeName string, amount float64) string {
	link := fmt.Sprintf("upi://pay?pa=%s&pn=%s&cu=INR", url.QueryEscape(upiID), url.QueryEscape(payeeName))
	if amount > 0 {
		link += fmt.Sprintf("&am=%.2f", amount)
	}
	return link
}

// QRURL returns a scannable-code image URL for the given payee and optional
// amount.
func QRURL(upiID, payeeName string, amount float64) string {
	params := url.Values{}
	params.Set("size", "200x200")
	params.Set("data", UPILink(upiID, payeeName, amount))
	return qrServiceBase + "?" + params.Encode()
}
