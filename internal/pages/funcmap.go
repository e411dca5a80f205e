package pages

import (
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"ng-jenkins-demo/internal/notify"
)

var buttonClasses = map[notify.Action]string{
	notify.ActionInfo:      "btn-primary",
	notify.ActionHealth:    "btn-secondary",
	notify.ActionBuild:     "btn-success",
	notify.ActionLogs:      "btn-warning",
	notify.ActionDashboard: "btn-secondary",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"timeago": func(t time.Time) string {
			if t.IsZero() {
				return "just now"
			}
			return humanize.Time(t)
		},
		"buttonClass": func(a notify.Action) string {
			if c, ok := buttonClasses[a]; ok {
				return c
			}
			return "btn-secondary"
		},
	}
}
