// Package document lays out the booking confirmation PDF.
package document

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"hotel/config"
	"hotel/internal/domains/booking/model"
	"hotel/shared/timezone"
)

const (
	Title = "Booking Confirmation"

	fileNamePattern = "booking-%s.pdf"
	displayDate     = "Jan 2, 2006"
	noRequests      = "None"
)

// Property identifies the hotel printed on every receipt.
type Property struct {
	Name     string
	Address  string
	Email    string
	Phone    string
	Currency string
}

func PropertyFromConfig(cfg *config.Config) Property {
	return Property{
		Name:     cfg.App.Booking.PropertyName,
		Address:  cfg.App.Booking.PropertyAddress,
		Email:    cfg.App.Booking.PropertyEmail,
		Phone:    cfg.App.Booking.PropertyPhone,
		Currency: cfg.App.Booking.Currency,
	}
}

// Content is everything printed on a receipt, already formatted.
type Content struct {
	Property        Property
	Issued          time.Time
	BookingID       string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	RoomType        string
	CheckIn         string
	CheckOut        string
	Nights          int
	Rooms           int
	Guests          int
	SpecialRequests string
	Total           string
}

// NewContent snapshots booking. The document date is the booking's creation
// time so re-rendering the same booking yields the same receipt.
func NewContent(booking model.Booking, property Property) Content {
	requests := booking.SpecialRequests
	if requests == "" {
		requests = noRequests
	}

	issued := booking.CreatedAt
	if issued.IsZero() {
		issued = timezone.Now()
	}

	return Content{
		Property:        property,
		Issued:          issued,
		BookingID:       booking.ID,
		GuestName:       booking.UserName,
		GuestEmail:      booking.UserEmail,
		GuestPhone:      booking.UserPhone,
		RoomType:        string(booking.RoomType),
		CheckIn:         booking.CheckInDate.UTC().Format(displayDate),
		CheckOut:        booking.CheckOutDate.UTC().Format(displayDate),
		Nights:          booking.TotalNights,
		Rooms:           booking.NumberOfRooms,
		Guests:          booking.NumberOfGuests,
		SpecialRequests: requests,
		Total:           FormatMoney(property.Currency, booking.TotalPrice),
	}
}

// Date is the printed document date.
func (c Content) Date() string {
	return timezone.Format(c.Issued, displayDate)
}

// FormatMoney renders amount with thousands separators after the currency.
// A single-rune symbol is attached ("₱16,500"), a code is spaced ("USD 16,500").
func FormatMoney(currency string, amount float64) string {
	printer := message.NewPrinter(language.English)
	formatted := printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))

	switch utf8.RuneCountInString(currency) {
	case 0:
		return formatted
	case 1:
		return currency + formatted
	default:
		return currency + " " + formatted
	}
}

func FileName(bookingID string) string {
	return fmt.Sprintf(fileNamePattern, bookingID)
}

type rgb struct{ r, g, b int }

var (
	colorAccent  = rgb{0xDF, 0xA9, 0x74}
	colorSummary = rgb{0xF7, 0xED, 0xE1}
	colorDivider = rgb{0xCC, 0xCC, 0xCC}
	colorBody    = rgb{0x33, 0x33, 0x33}
	colorFooter  = rgb{0x66, 0x66, 0x66}
	colorMuted   = rgb{0x99, 0x99, 0x99}
	colorWhite   = rgb{0xFF, 0xFF, 0xFF}
	colorBlack   = rgb{0x00, 0x00, 0x00}
)

// page geometry in millimetres
const (
	margin       = 18.0
	headerHeight = 25.0
	lineHeight   = 5.5
	columnGap    = 4.0
	summaryH     = 50.0
	totalBoxH    = 12.0
	footerOffset = 21.0
	fontFamily   = "DejaVu"
)

// Core PDF fonts are cp1252 only and cannot print symbols such as ₱.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

// Render lays out content as a single A4 page. Output is deterministic for a
// given content.
func Render(content Content) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetCreationDate(content.Issued)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(content.Property.Name+" "+Title, true)
	pdf.AddUTF8FontFromBytes(fontFamily, "", fontRegular)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", fontBold)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 2*margin

	renderHeader(pdf, content, usable)

	startY := margin + headerHeight + 8
	leftW := usable * 0.64
	rightX := margin + leftW + columnGap
	rightW := usable - leftW - columnGap

	renderDetails(pdf, content, startY, leftW)
	renderSummary(pdf, content, rightX, startY, rightW)
	renderFooter(pdf, content, pageH-margin-footerOffset, usable)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out receipt: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write receipt: %w", err)
	}

	return buf.Bytes(), nil
}

func renderHeader(pdf *fpdf.Fpdf, content Content, usable float64) {
	setFill(pdf, colorAccent)
	pdf.Rect(margin, margin, usable, headerHeight, "F")

	setText(pdf, colorWhite)
	pdf.SetFont(fontFamily, "B", 20)
	pdf.Text(margin+6, margin+10, content.Property.Name)

	pdf.SetFont(fontFamily, "", 11)
	pdf.Text(margin+6, margin+18, Title)

	pdf.SetFont(fontFamily, "", 10)
	pdf.SetXY(margin+usable-60, margin+7)
	pdf.CellFormat(56, lineHeight, "Date: "+content.Date(), "", 0, "R", false, 0, "")

	setDraw(pdf, colorDivider)
	pdf.Line(margin, margin+headerHeight+2, margin+usable, margin+headerHeight+2)
}

func renderDetails(pdf *fpdf.Fpdf, content Content, y, width float64) {
	setText(pdf, colorBlack)
	pdf.SetXY(margin, y)

	section(pdf, "Guest Information", width)
	field(pdf, width, "Booking ID", content.BookingID)
	field(pdf, width, "Name", content.GuestName)
	field(pdf, width, "Email", content.GuestEmail)
	field(pdf, width, "Phone", content.GuestPhone)
	pdf.Ln(2)

	section(pdf, "Reservation Details", width)
	field(pdf, width, "Room Type", content.RoomType)
	field(pdf, width, "Check-In", content.CheckIn)
	field(pdf, width, "Check-Out", content.CheckOut)
	field(pdf, width, "Nights", fmt.Sprint(content.Nights))
	field(pdf, width, "Rooms", fmt.Sprint(content.Rooms))
	field(pdf, width, "Guests", fmt.Sprint(content.Guests))
	pdf.Ln(3)

	section(pdf, "Special Requests", width)
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetX(margin)
	pdf.MultiCell(width, lineHeight, content.SpecialRequests, "", "L", false)
}

func renderSummary(pdf *fpdf.Fpdf, content Content, x, y, width float64) {
	setFill(pdf, colorSummary)
	pdf.RoundedRect(x, y, width, summaryH, 2, "1234", "F")

	setText(pdf, colorBlack)
	pdf.SetFont(fontFamily, "B", 10)
	pdf.Text(x+4, y+7, "Booking Summary")

	setText(pdf, colorBody)
	pdf.SetFont(fontFamily, "", 12)
	pdf.Text(x+4, y+15, fmt.Sprintf("Rooms: %d", content.Rooms))
	pdf.Text(x+4, y+21.5, fmt.Sprintf("Guests: %d", content.Guests))
	pdf.Text(x+4, y+28, fmt.Sprintf("Nights: %d", content.Nights))

	boxY := y + summaryH - totalBoxH - 4
	setFill(pdf, colorAccent)
	pdf.RoundedRect(x+4, boxY, width-8, totalBoxH, 1.5, "1234", "F")

	setText(pdf, colorWhite)
	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetXY(x+4, boxY)
	pdf.CellFormat(width-8, totalBoxH, "Total: "+content.Total, "", 0, "C", false, 0, "")
}

func renderFooter(pdf *fpdf.Fpdf, content Content, y, usable float64) {
	property := content.Property

	setText(pdf, colorFooter)
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetXY(margin, y)
	pdf.CellFormat(usable, lineHeight,
		fmt.Sprintf("Thank you for booking with %s. We look forward to welcoming you.", property.Name),
		"", 1, "C", false, 0, "")

	setText(pdf, colorMuted)
	pdf.SetFont(fontFamily, "", 8)
	pdf.SetX(margin)
	pdf.CellFormat(usable, lineHeight,
		fmt.Sprintf("%s | %s | %s | %s", property.Name, property.Address, property.Email, property.Phone),
		"", 1, "C", false, 0, "")
}

func section(pdf *fpdf.Fpdf, title string, width float64) {
	pdf.SetFont(fontFamily, "BU", 11)
	pdf.SetX(margin)
	pdf.CellFormat(width, lineHeight+1, title, "", 1, "L", false, 0, "")
}

func field(pdf *fpdf.Fpdf, width float64, label, value string) {
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetX(margin)
	pdf.MultiCell(width, lineHeight, label+": "+value, "", "L", false)
}

func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
