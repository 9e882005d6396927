// Package receipt renders a printable HTML slip for a recorded sale.
package receipt

import (
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

var vatRate = decimal.NewFromInt(7)

// VAT is the tax already included in a VAT-inclusive amount at 7%.
func VAT(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(vatRate).Div(vatRate.Add(decimal.NewFromInt(100))).Round(2)
}

// Baht formats an amount as ฿1,234.50.
func Baht(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "฿" + b.String() + "." + frac
}

type Options struct {
	ShopName     string
	CustomerName string
	Location     *time.Location
}

type view struct {
	Shop     string
	Customer string
	Tx       domain.Transaction
	Date     string
	Net      decimal.Decimal
	VAT      decimal.Decimal
}

var tmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"baht":  Baht,
	"total": func(p domain.Product) decimal.Decimal { return p.LineTotal() },
}).Parse(page))

func Render(w io.Writer, tx domain.Transaction, opts Options) error {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	vat := VAT(tx.Amount)
	v := view{
		Shop:     opts.ShopName,
		Customer: opts.CustomerName,
		Tx:       tx,
		Date:     tx.Date.In(loc).Format("02 Jan 2006 15:04"),
		Net:      tx.Amount.Sub(vat),
		VAT:      vat,
	}
	return errors.Wrapf(tmpl.Execute(w, v), "render receipt %s", tx.ID)
}

const page = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Receipt {{.Tx.ID}}</title>
<style>body{font-family:monospace;width:320px;margin:auto}table{width:100%}td.r{text-align:right}</style>
</head>
<body>
<h2>{{.Shop}}</h2>
<p>Receipt: {{.Tx.ID}}<br>Date: {{.Date}}<br>Payment: {{.Tx.PaymentMethod}}{{if .Customer}}<br>Customer: {{.Customer}}{{end}}</p>
{{if ne (printf "%s" .Tx.Status) "completed"}}<p><strong>{{.Tx.Status}}</strong></p>{{end}}
<table>
{{range .Tx.Products}}<tr><td>{{.Name}} x{{.Quantity}}</td><td class="r">{{baht (total .)}}</td></tr>
{{end}}</table>
<hr>
<table>
<tr><td>Subtotal (excl. VAT)</td><td class="r">{{baht .Net}}</td></tr>
<tr><td>VAT 7%</td><td class="r">{{baht .VAT}}</td></tr>
<tr><td><strong>Total</strong></td><td class="r"><strong>{{baht .Tx.Amount}}</strong></td></tr>
</table>
<p>Items: {{.Tx.Items}}</p>
<p>Thank you!</p>
</body>
</html>
`
