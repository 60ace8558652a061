package resend

import (
	"bytes"
	"html/template"

	"github.com/resend/resend-go/v2"

	"github.com/brk3/habittracker/internal/nudge"
)

type ResendNotifier struct {
	ApiKey string
	Email  string
	From   string
}

var emailTemplate = template.Must(template.New("email").Parse(`
{{if .AtRisk}}
<p>These streaks break tomorrow unless you check in today:</p>
<ul>
{{range .AtRisk}}
  <li>{{.}}</li>
{{end}}
</ul>
{{end}}
{{if .Broken}}
<p>These streaks are broken. Check in to start a new one:</p>
<ul>
{{range .Broken}}
  <li>{{.}}</li>
{{end}}
</ul>
{{end}}
`))

func render(atRisk, broken []string) (string, error) {
	data := struct {
		AtRisk []string
		Broken []string
	}{
		AtRisk: atRisk,
		Broken: broken,
	}
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *ResendNotifier) SendNudge(atRisk, broken []string) error {
	html, err := render(atRisk, broken)
	if err != nil {
		return err
	}

	subject := "Streaks are expiring soon"
	if len(atRisk) == 0 {
		subject = "Some habit streaks are broken"
	}

	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      []string{r.Email},
		Subject: subject,
		Html:    html,
	}

	_, err = client.Emails.Send(params)
	return err
}

var _ nudge.Notifier = (*ResendNotifier)(nil)
