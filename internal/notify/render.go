package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/longwapps/leave-alert/internal/dispatch"
	"github.com/longwapps/leave-alert/internal/leave"
)

// longDateFormat renders a reference date as e.g. 'Saturday, July 26, 2025'
const longDateFormat = "Monday, January 02, 2006"

var htmlTemplate = template.Must(template.New("notification").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Heading}}</h2>
  <p>{{.Date}}</p>
  <p>{{.Intro}}</p>
  <ul>
    {{- range .Entries}}
    <li><strong>{{.Name}}</strong> ({{.Type}}){{if .Duration}} &ndash; {{.Duration}}{{end}}</li>
    {{- end}}
  </ul>
  <hr>
  <p style="font-size: 12px; color: #888;">{{.Footer}}</p>
</body>
</html>
`))

// templateEntry represents one leave line of a rendered message
type templateEntry struct {
	Name     string
	Type     string
	Duration string
}

// Render turns a notification batch into a deliverable message with a plain-text body and an
// HTML alternative
func Render(batch *dispatch.Batch) (*Message, error) {
	date, err := time.Parse(leave.DateFormat, batch.ReferenceDate)
	if err != nil {
		return nil, fmt.Errorf("invalid reference date %q: %w", batch.ReferenceDate, err)
	}
	formattedDate := date.Format(longDateFormat)
	advance := batch.Mode == dispatch.ModeNotification

	subject := "Reminder: Team Members on Leave Today - " + formattedDate
	heading := "Today's Team Member Leaves"
	intro := "The following team members are on leave today:"
	footer := "This is an automated reminder email from the Leave Alert System."
	if advance {
		subject = "Notification: Upcoming Team Members on Leave"
		heading = "Upcoming Team Member Leaves"
		intro = "The following team members will be on leave starting " + formattedDate + ":"
		footer = "This is an automated notification email from the Leave Alert System."
	}

	entries := make([]templateEntry, 0, len(batch.Entries))
	for _, record := range batch.Entries {
		entries = append(entries, templateEntry{
			Name:     record.EmployeeName,
			Type:     record.TypeName,
			Duration: record.Describe(advance),
		})
	}

	// Plain text body
	builder := new(strings.Builder)
	builder.WriteString(heading + "\n")
	builder.WriteString(formattedDate + "\n\n")
	builder.WriteString(intro + "\n\n")
	for _, entry := range entries {
		if advance {
			builder.WriteString(fmt.Sprintf("- %s (%s - %s)\n", entry.Name, entry.Type, entry.Duration))
		} else if entry.Duration != "" {
			builder.WriteString(fmt.Sprintf("- %s - %s\n", entry.Name, entry.Duration))
		} else {
			builder.WriteString(fmt.Sprintf("- %s\n", entry.Name))
		}
	}
	builder.WriteString("\n---\n" + footer)

	// HTML body
	buf := new(bytes.Buffer)
	err = htmlTemplate.Execute(buf, map[string]interface{}{
		"Heading": heading,
		"Date":    formattedDate,
		"Intro":   intro,
		"Entries": entries,
		"Footer":  footer,
	})
	if err != nil {
		return nil, err
	}

	return &Message{
		To:        batch.Recipient,
		Subject:   subject,
		PlainBody: builder.String(),
		HTMLBody:  buf.String(),
	}, nil
}
