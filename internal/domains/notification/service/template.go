package service

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	templateInquiryCustomer = "inquiry_customer"
	templateInquiryStaff    = "inquiry_staff"
	templateMenuCustomer    = "menu_customer"
	templateMenuStaff       = "menu_staff"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "inquiry_customer"}}<div>
<p>Hi {{.Name}},</p>
<p>We received your inquiry for <strong>{{.EventType}}</strong> between <strong>{{.StartDate}}</strong> and <strong>{{.EndDate}}</strong>.</p>
<p>Our team will review availability and get back to you shortly.</p>
<hr/>
<p><strong>Details</strong></p>
<ul>
<li>Name: {{.Name}}</li>
<li>Email: {{.Email}}</li>
<li>Phone: {{.Phone}}</li>
<li>Date range: {{.StartDate}} → {{.EndDate}}</li>
{{if .Description}}<li>Notes: {{.Description}}</li>{{end}}
<li>Reference ID: {{.BookingID}}</li>
</ul>
</div>{{end}}

{{define "inquiry_staff"}}<div>
<p>New booking inquiry received.</p>
<ul>
<li><strong>ID</strong>: {{.BookingID}}</li>
<li><strong>Name</strong>: {{.Name}}</li>
<li><strong>Email</strong>: {{.Email}}</li>
<li><strong>Phone</strong>: {{.Phone}}</li>
<li><strong>Event type</strong>: {{.EventType}}</li>
<li><strong>Date range</strong>: {{.StartDate}} → {{.EndDate}}</li>
{{if .Description}}<li><strong>Notes</strong>: {{.Description}}</li>{{end}}
</ul>
</div>{{end}}

{{define "menu_lines"}}<table>
<thead><tr><th>Category</th><th>Item</th><th>Qty</th><th>Session</th><th>Instructions</th></tr></thead>
<tbody>
{{range .Items}}<tr><td>{{.Category}}</td><td>{{.Name}}</td><td>{{.Qty}}</td><td>{{.Session}}</td><td>{{.Instructions}}</td></tr>
{{end}}</tbody>
</table>{{end}}

{{define "menu_customer"}}<div>
<p>Hi {{.CustomerName}},</p>
<p>Thank you! Your menu selections for <strong>{{.EventType}}</strong> ({{.StartDate}} → {{.EndDate}}) were submitted on {{.SubmittedAt}}.</p>
{{template "menu_lines" .}}
{{if .MenuURL}}<p>You can review your menu at <a href="{{.MenuURL}}">{{.MenuURL}}</a> until our team locks it.</p>{{end}}
</div>{{end}}

{{define "menu_staff"}}<div>
<p>{{.CustomerName}} ({{.CustomerEmail}}) submitted menu selections for booking {{.BookingID}}.</p>
<p><strong>{{.EventType}}</strong>, {{.StartDate}} → {{.EndDate}}</p>
{{template "menu_lines" .}}
<p>Review the selections and lock the menu when ready.</p>
</div>{{end}}
`))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	return buf.String(), nil
}
