package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// qrSize is the pixel size of the generated QR code image.
const qrSize = 300

// TicketData carries everything printed on the PDF ticket.
type TicketData struct {
	Reference string // opaque code, also encoded into the QR
	PlayTitle string
	DateTime  time.Time
	Venue     string
	Price     float64
	Username  string
}

// RenderTicket renders a one-page A4 PDF ticket with a QR code of the
// reference code. The bytes can be written to disk or attached to an
// email.
// PRE: data.Reference is non-empty
// POST: Returns the PDF bytes or an error
func RenderTicket(data TicketData) ([]byte, error) {
	if data.Reference == "" {
		return nil, errors.New("ticket reference cannot be empty")
	}

	qrPNG, err := qrcode.Encode(data.Reference, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("generate ticket QR: %w", err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 22)
	doc.CellFormat(0, 12, "Theatre Ticket", "", 1, "C", false, 0, "")
	doc.Ln(4)

	// QR code centered under the heading
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	imgName := "qr_" + data.Reference
	doc.RegisterImageOptionsReader(imgName, imgOpts, bytes.NewReader(qrPNG))
	qrX := (210.0 - 80.0) / 2
	doc.ImageOptions(imgName, qrX, doc.GetY(), 80, 80, false, imgOpts, 0, "")
	doc.Ln(84)

	doc.SetDrawColor(200, 200, 200)
	doc.SetLineWidth(0.5)
	doc.Line(20, doc.GetY(), 190, doc.GetY())
	doc.Ln(8)

	rows := []struct {
		label, value string
	}{
		{"Play", data.PlayTitle},
		{"Date", data.DateTime.Format("Monday, 2 January 2006 at 15:04")},
		{"Venue", data.Venue},
		{"Holder", data.Username},
		{"Price", fmt.Sprintf("%.2f", data.Price)},
		{"Reference", data.Reference},
	}
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(40, 8, row.label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 12)
		doc.CellFormat(0, 8, row.value, "", 1, "L", false, 0, "")
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "I", 9)
	doc.CellFormat(0, 6, "Present this ticket at the entrance. The QR code admits one person.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket PDF: %w", err)
	}
	return buf.Bytes(), nil
}
