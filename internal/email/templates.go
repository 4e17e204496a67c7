package email

import (
	"fmt"
	"html/template"
	"strings"
)

const contactNotificationTemplate = `<h2>New contact request</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;{{if .Phone}} · {{.Phone}}{{end}}</p>
{{if .Services}}<p>Services: {{join .Services ", "}}</p>{{end}}
{{if .Location}}<p>Location: {{.Location}}</p>{{end}}
{{if .ProjectType}}<p>Project type: {{.ProjectType}}</p>{{end}}
{{if .Surface}}<p>Surface: {{.Surface}}</p>{{end}}
<blockquote>{{.Message}}</blockquote>`

var contactNotification = template.Must(template.New("contact_notification").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(contactNotificationTemplate))

// RenderContactNotification renders the admin notification for a contact
// submission. Values are HTML-escaped.
func RenderContactNotification(data TemplateData) (string, error) {
	var buf strings.Builder
	if err := contactNotification.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
