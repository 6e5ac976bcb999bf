// Package rupiah formats Indonesian currency amounts, amount-in-words and dates.
package rupiah

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Symbol = "Rp"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

func idPrinter() *message.Printer {
	printerOnce.Do(func() {
		printer = message.NewPrinter(language.Indonesian)
	})
	return printer
}

// Format renders an integral rupiah amount as "Rp6.000.000".
func Format(amount int64) string {
	if amount < 0 {
		return "-" + Symbol + groupThousands(uint64(-(amount+1))+1)
	}
	return Symbol + groupThousands(uint64(amount))
}

func groupThousands(n uint64) string {
	return idPrinter().Sprintf("%d", n)
}

var (
	ones = [...]string{"", "satu", "dua", "tiga", "empat", "lima", "enam", "tujuh", "delapan", "sembilan"}

	teens = [...]string{
		"sepuluh", "sebelas", "dua belas", "tiga belas", "empat belas",
		"lima belas", "enam belas", "tujuh belas", "delapan belas", "sembilan belas",
	}

	tens = [...]string{
		"", "", "dua puluh", "tiga puluh", "empat puluh",
		"lima puluh", "enam puluh", "tujuh puluh", "delapan puluh", "sembilan puluh",
	}

	scales = [...]string{"", "ribu", "juta", "miliar", "triliun"}
)

const triliun = 1_000_000_000_000

// Words spells an amount in Indonesian followed by "rupiah". Zero is "nol".
func Words(amount int64) string {
	if amount == 0 {
		return "nol"
	}
	if amount < 0 {
		return "minus " + spell(uint64(-(amount+1))+1) + " rupiah"
	}
	return spell(uint64(amount)) + " rupiah"
}

// spell handles n > 0. Amounts past 999 triliun are spelled as a count of triliun.
func spell(n uint64) string {
	if n >= 1000*triliun {
		head := spell(n/triliun) + " triliun"
		if rest := n % triliun; rest > 0 {
			return head + " " + spell(rest)
		}
		return head
	}

	var parts []string
	for scale := 0; n > 0; scale++ {
		chunk := int(n % 1000)
		n /= 1000
		if chunk == 0 {
			continue
		}

		var text string
		switch {
		case scale == 1 && chunk == 1:
			text = "seribu"
		case scale > 0:
			text = hundreds(chunk) + " " + scales[scale]
		default:
			text = hundreds(chunk)
		}
		parts = append([]string{text}, parts...)
	}
	return strings.Join(parts, " ")
}

// hundreds spells 1..999.
func hundreds(n int) string {
	var b strings.Builder

	if n >= 100 {
		if n/100 == 1 {
			b.WriteString("seratus")
		} else {
			b.WriteString(ones[n/100])
			b.WriteString(" ratus")
		}
		n %= 100
		if n > 0 {
			b.WriteByte(' ')
		}
	}

	switch {
	case n >= 20:
		b.WriteString(tens[n/10])
		if n%10 != 0 {
			b.WriteByte(' ')
			b.WriteString(ones[n%10])
		}
	case n >= 10:
		b.WriteString(teens[n-10])
	case n > 0:
		b.WriteString(ones[n])
	}

	return b.String()
}

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Date renders t as "02 Oktober 2026".
func Date(t time.Time) string {
	return t.Format("02") + " " + months[t.Month()-1] + " " + t.Format("2006")
}

// DateTime renders t as "02 Oktober 2026 15.04", the Indonesian clock style.
func DateTime(t time.Time) string {
	return Date(t) + " " + t.Format("15.04")
}
