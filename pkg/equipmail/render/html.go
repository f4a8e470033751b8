package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/classify"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// EmptyPlaceholder replaces a table that has no rows.
const EmptyPlaceholder = "<h3>Empty</h3>"

// OrderSubject is the subject of the order digest email.
const OrderSubject = "Daily order reminder email"

const templates = `
{{- define "table" -}}
{{- if .Empty -}}
<h3>Empty</h3>
{{- else -}}
<table border="0"><tr>{{range .Columns}}<th align="left">{{.}}</th>{{end}}</tr>
{{- range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end -}}
</table>
{{- end -}}
{{- end -}}

{{- define "laptops" -}}
<p>The following employee's laptops are at or over the age of {{.MaxAge}} years.</p><p>{{template "table" .Table}}</p>
{{- end -}}

{{- define "orders" -}}
{{- range .Sections}}<h2>{{.Title}}:</h2><p>{{template "table" .Table}}</p>{{end -}}
{{- end -}}
`

var tmpl = template.Must(template.New("email").Parse(templates))

// Section is one titled table of the order digest. Title is trusted markup.
type Section struct {
	Title template.HTML
	Table models.Table
}

// RenderTable renders t as an HTML table, or the empty placeholder when t
// has no rows. Cell text is escaped.
func RenderTable(t models.Table) (string, error) {
	return execute("table", t)
}

// LaptopSubject returns the laptop email subject for the month of now.
func LaptopSubject(now time.Time) string {
	return fmt.Sprintf("Monthly laptop replacement script mail | month number %d", int(now.Month()))
}

// LaptopBody renders the laptop replacement email body.
func LaptopBody(rows []models.LaptopRow, maxAge float64) (string, error) {
	return execute("laptops", struct {
		MaxAge string
		Table  models.Table
	}{
		MaxAge: strconv.FormatFloat(maxAge, 'f', -1, 64),
		Table:  LaptopTable(rows),
	})
}

// OrderSections builds the digest sections in email order.
func OrderSections(d *classify.Digest) []Section {
	sections := make([]Section, 0, len(models.DigestOrder))
	for _, b := range models.DigestOrder {
		sections = append(sections, Section{
			Title: template.HTML(b.Title()),
			Table: OrderTable(b, d.Rows(b)),
		})
	}
	return sections
}

// OrderBody renders the order digest email body.
func OrderBody(d *classify.Digest) (string, error) {
	return execute("orders", struct {
		Sections []Section
	}{
		Sections: OrderSections(d),
	})
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
