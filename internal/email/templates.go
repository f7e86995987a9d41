package email

import (
	"bytes"
	"fmt"
	"text/template"
)

const subjectEstimateSummaryFmt = "Målerikalkyl: %s – %s"

var summaryTemplate = template.Must(template.New("estimate_summary").Parse(`Hej,

här är kalkylen för {{.ProjectName}}, {{.RoomName}}:

{{range .Lines}}- {{.Name}}: {{printf "%.2f" .Quantity}} {{.Unit}} à {{printf "%.2f" .UnitPrice}} kr = {{printf "%.2f" .Subtotal}} kr
{{end}}
Summa: {{printf "%.2f" .Subtotal}} kr
Påslag: {{printf "%.2f" .Markup}} kr
Totalt: {{printf "%.2f" .GrandTotal}} kr
{{if .Errors}}
Fraser som inte kunde tolkas:
{{range .Errors}}- {{.}}
{{end}}{{end}}
Hälsningar,
Målerikalkyl
`))

func renderSummary(summary EstimateSummary) (string, error) {
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, summary); err != nil {
		return "", fmt.Errorf("render summary mail: %w", err)
	}
	return buf.String(), nil
}
