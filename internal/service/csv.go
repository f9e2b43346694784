package service

import (
	"bufio"
	"io"
	"strings"

	"github.com/a2sh3r/fundledger/internal/models"
)

const (
	ExportRowLimit = 5000
	csvTimeLayout  = "2006-01-02T15:04:05.000Z"
)

var csvHeader = []string{"name", "email", "country", "amount", "paymentMethod", "donationType", "createdAt"}

// csvValue quotes a field containing a comma, quote or newline and doubles inner quotes.
func csvValue(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeCSVLine(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(csvValue(f)); err != nil {
			return err
		}
	}
	return nil
}

func writeDonationsCSV(out io.Writer, donations []models.Donation) error {
	w := bufio.NewWriter(out)
	if err := writeCSVLine(w, csvHeader); err != nil {
		return err
	}
	for _, d := range donations {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		err := writeCSVLine(w, []string{
			d.Name,
			d.Email,
			d.Country,
			d.Amount.String(),
			string(d.PaymentMethod),
			string(d.DonationType),
			d.CreatedAt.UTC().Format(csvTimeLayout),
		})
		if err != nil {
			return err
		}
	}
	return w.Flush()
}
