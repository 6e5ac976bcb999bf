package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/fw-development/model"
	"github.com/muhammadheryan/fw-development/utils/rupiah"
)

// A4 portrait, millimetres, y grows downwards.
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	TopMargin    = 20.0
	BottomMargin = 20.0

	leftColumn  = 25.0
	itemColumn  = 30.0
	rightColumn = 160.0
	tableX      = 20.0
	tableWidth  = 170.0
	separatorX  = 150.0
	wrapAt      = 95
)

type ElementKind int

const (
	ElementText ElementKind = iota + 1
	ElementRect
	ElementLine
)

type RGB struct {
	R, G, B int
}

var (
	black     = RGB{0, 0, 0}
	gray      = RGB{100, 100, 100}
	lightGray = RGB{200, 200, 200}
	tableFill = RGB{240, 240, 240}
)

// Element is one drawing instruction. Text uses X/Y as the baseline origin,
// Rect uses X/Y/W/H, Line draws from X/Y to X2/Y2.
type Element struct {
	Kind     ElementKind
	X, Y     float64
	W, H     float64
	X2, Y2   float64
	Text     string
	FontSize float64
	Bold     bool
	Color    RGB
	Fill     bool
}

type Page struct {
	Elements []Element
}

type Document struct {
	Title    string
	IssuedAt time.Time
	Pages    []Page
}

// Issuer is the business printed on the invoice and in its payment block.
type Issuer struct {
	Name          string
	Tagline       string
	ContactEmail  string
	ContactPhone  string
	PaymentMethod string
	AccountNumber string
	AccountName   string
}

type layout struct {
	doc *Document
	y   float64
}

func (l *layout) page() *Page {
	return &l.doc.Pages[len(l.doc.Pages)-1]
}

// ensure starts a new page when a block of height h would cross the bottom margin.
func (l *layout) ensure(h float64) bool {
	if l.y+h <= PageHeight-BottomMargin {
		return false
	}
	l.doc.Pages = append(l.doc.Pages, Page{})
	l.y = TopMargin
	return true
}

func (l *layout) text(x, y float64, size float64, color RGB, bold bool, s string) {
	l.page().Elements = append(l.page().Elements, Element{Kind: ElementText, X: x, Y: y, Text: s, FontSize: size, Color: color, Bold: bold})
}

func (l *layout) rect(x, y, w, h float64, color RGB, fill bool) {
	l.page().Elements = append(l.page().Elements, Element{Kind: ElementRect, X: x, Y: y, W: w, H: h, Color: color, Fill: fill})
}

func (l *layout) line(x, y, x2, y2 float64, color RGB) {
	l.page().Elements = append(l.page().Elements, Element{Kind: ElementLine, X: x, Y: y, X2: x2, Y2: y2, Color: color})
}

// RenderDocument lays out the invoice. Equal input gives an equal Document.
func RenderDocument(order *model.Order, issuer Issuer, issuedAt time.Time) Document {
	doc := Document{
		Title:    fmt.Sprintf("Invoice %s", order.OrderID),
		IssuedAt: issuedAt,
		Pages:    []Page{{}},
	}
	l := &layout{doc: &doc}

	// header
	l.text(20, 25, 16, black, true, issuer.Name)
	l.text(20, 32, 10, black, false, issuer.Tagline)
	l.text(150, 25, 14, gray, true, "INVOICE")
	l.text(150, 33, 10, black, false, fmt.Sprintf("INVOICE %s", order.OrderID))
	l.text(150, 40, 10, black, false, fmt.Sprintf("DATE: %s", rupiah.Date(issuedAt)))

	// bill to
	info := order.CustomerInfo
	l.text(20, 52, 10, black, true, "Bill To:")
	l.text(20, 60, 10, black, false, info.Name)
	l.text(20, 66, 10, black, false, info.Email)
	if info.Phone != "" {
		l.text(20, 72, 10, black, false, info.Phone)
	}
	if info.Company != "" {
		l.text(20, 78, 10, black, false, info.Company)
	}
	l.text(120, 52, 10, black, true, "For:")
	l.text(120, 60, 10, black, false, "Professional Development Services")
	if info.DomainName != "" {
		l.text(120, 66, 10, black, false, fmt.Sprintf("Domain: %s", info.DomainName))
	}

	renderItems(l, order)
	renderTotals(l, order)
	renderClosing(l, order, issuer)

	return doc
}

func renderItems(l *layout, order *model.Order) {
	l.rect(tableX, 86, tableWidth, 10, tableFill, true)
	l.text(leftColumn, 92, 10, black, true, "DESCRIPTION")
	l.text(rightColumn, 92, 10, black, true, "AMOUNT")

	l.y = 104
	segmentTop := l.y - 8

	// closeSegment draws the table border for the rows placed on the current page
	closeSegment := func() {
		l.rect(tableX, segmentTop, tableWidth, l.y-segmentTop, lightGray, false)
		l.line(separatorX, segmentTop, separatorX, l.y, lightGray)
	}
	// row keeps a block of height h, gaps included, on one page
	row := func(h float64) {
		if l.y+h > PageHeight-BottomMargin {
			closeSegment()
			l.ensure(h)
			segmentTop = l.y - 8
		}
	}

	if len(order.Services) > 0 {
		row(8)
		l.text(leftColumn, l.y, 9, black, true, "DEVELOPMENT SERVICES:")
		l.y += 8
		for _, s := range order.Services {
			h := 8.0
			if s.Hours > 0 {
				h += 5
			}
			row(h)
			l.text(itemColumn, l.y, 9, black, false, "• "+s.Name)
			if s.Hours > 0 {
				l.text(itemColumn, l.y+5, 9, gray, false, fmt.Sprintf("(%d hours)", s.Hours))
				l.y += 5
			}
			l.text(rightColumn, l.y, 9, black, false, rupiah.Format(s.Price))
			l.y += 8
		}
	}

	if len(order.AddOns) > 0 {
		if len(order.Services) > 0 {
			row(12)
			l.y += 4
		} else {
			row(8)
		}
		l.text(leftColumn, l.y, 9, black, true, "ADDITIONAL SERVICES:")
		l.y += 8
		for _, a := range order.AddOns {
			row(8)
			l.text(itemColumn, l.y, 9, black, false, "• "+a.Name)
			l.text(rightColumn, l.y, 9, black, false, rupiah.Format(a.Price))
			l.y += 8
		}
	}

	closeSegment()
}

func renderTotals(l *layout, order *model.Order) {
	l.y += 8
	l.ensure(7)
	l.line(120, l.y, 190, l.y, black)
	l.text(140, l.y+7, 12, black, true, "TOTAL")
	l.text(rightColumn, l.y+7, 12, black, true, rupiah.Format(order.Total))

	l.y += 15
	lines := wrap("Terbilang: "+rupiah.Words(order.Total), wrapAt)
	l.ensure(float64(len(lines)-1) * 6)
	for i, s := range lines {
		l.text(20, l.y+float64(i)*6, 10, black, false, s)
	}
	l.y += float64(len(lines)-1) * 6
}

// bullets places a bold heading followed by its bullet lines as one block.
func bullets(l *layout, heading string, items []string) {
	l.y += 10
	l.ensure(6 + float64(len(items)-1)*5)
	l.text(20, l.y, 9, black, true, heading)
	l.y += 6
	for i, s := range items {
		l.text(leftColumn, l.y+float64(i)*5, 9, black, false, s)
	}
	l.y += float64(len(items)-1) * 5
}

func renderClosing(l *layout, order *model.Order, issuer Issuer) {
	bullets(l, "PAYMENT INFORMATION:", []string{
		"• Payment Method: " + issuer.PaymentMethod,
		"• OVO Number: " + issuer.AccountNumber,
		"• Account Name: " + issuer.AccountName,
		"• Reference: Order " + order.OrderID,
	})
	bullets(l, "TERMS & CONDITIONS:", []string{
		"• 50% down payment required to start the project",
		"• Remaining 50% upon project completion",
		"• Payment verification within 1-2 hours",
		"• Project timeline will be discussed after payment confirmation",
	})

	l.y += 10
	l.ensure(8)
	for i, s := range []string{
		fmt.Sprintf("Thank you for choosing %s for your project needs.", issuer.Name),
		"This invoice was generated automatically by our system.",
		fmt.Sprintf("For questions, contact us at %s or %s", issuer.ContactEmail, issuer.ContactPhone),
	} {
		l.text(20, l.y+float64(i)*4, 8, gray, false, s)
	}
	l.y += 8
}

// wrap breaks s on spaces into lines of at most width runes; single long words are kept whole.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len([]rune(current))+1+len([]rune(w)) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}
