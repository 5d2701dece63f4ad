package digest

import (
	"bytes"
	"html/template"
)

// Line is one row of a digest or reminder email.
type Line struct {
	DueDate string
	Action  string
	Crop    string
}

var actionLabels = map[string]string{
	"sow":           "Sow",
	"plant_out":     "Plant out",
	"harvest_start": "Start harvesting",
	"harvest_end":   "Finish harvesting",
}

// ActionLabel turns a task type into email wording.
func ActionLabel(taskType string) string {
	if l, ok := actionLabels[taskType]; ok {
		return l
	}
	return taskType
}

var weeklyTmpl = template.Must(template.New("weekly").Parse(`<h2>Your garden week ahead</h2>
{{if .Lines}}<p>{{len .Lines}} task(s) coming up:</p>
<ul>
{{range .Lines}}<li><strong>{{.DueDate}}</strong> — {{.Action}} {{.Crop}}</li>
{{end}}</ul>{{else}}<p>Nothing scheduled — enjoy the quiet week.</p>{{end}}
<p>Happy gardening!</p>`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`<h2>Garden task due</h2>
<p><strong>{{.DueDate}}</strong> — {{.Action}} {{.Crop}}</p>`))

func RenderWeekly(lines []Line) (string, error) {
	var buf bytes.Buffer
	if err := weeklyTmpl.Execute(&buf, map[string]any{"Lines": lines}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderReminder(l Line) (string, error) {
	var buf bytes.Buffer
	if err := reminderTmpl.Execute(&buf, l); err != nil {
		return "", err
	}
	return buf.String(), nil
}
