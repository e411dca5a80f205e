// Package notify holds the fixed messages behind the home view's buttons.
// None of them reach out to a real service.
package notify

import (
	"errors"
	"fmt"
)

type Action string

const (
	ActionInfo      Action = "info"
	ActionHealth    Action = "health"
	ActionBuild     Action = "build"
	ActionLogs      Action = "logs"
	ActionDashboard Action = "dashboard"
)

var ErrUnknownAction = errors.New("unknown action")

// Notification is a message shown to the user when a button is pressed.
type Notification struct {
	Action  Action `json:"action"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

const (
	infoMessage      = "This is a demo Angular application showcasing CI/CD with Jenkins and Kubernetes deployment on Minikube!"
	healthMessage    = "Health check endpoint: /health\nStatus: Healthy ✅"
	buildMessage     = "Build triggered! Check Jenkins pipeline for progress."
	logsMessage      = "View logs with: kubectl logs -n ng-jenkins-demo -l app=ng-jenkins-demo"
	dashboardMessage = "Open Kubernetes dashboard with: minikube dashboard"
)

func ShowInfo() Notification {
	return Notification{Action: ActionInfo, Label: "Learn More", Message: infoMessage}
}

// CheckHealth only reports the endpoint; it does not call it.
func CheckHealth() Notification {
	return Notification{Action: ActionHealth, Label: "Health Check", Message: healthMessage}
}

func TriggerBuild() Notification {
	return Notification{Action: ActionBuild, Label: "Trigger Build", Message: buildMessage}
}

func ViewLogs() Notification {
	return Notification{Action: ActionLogs, Label: "View Logs", Message: logsMessage}
}

func OpenDashboard() Notification {
	return Notification{Action: ActionDashboard, Label: "K8s Dashboard", Message: dashboardMessage}
}

// All returns every notification in button order.
func All() []Notification {
	return []Notification{
		ShowInfo(),
		CheckHealth(),
		TriggerBuild(),
		ViewLogs(),
		OpenDashboard(),
	}
}

// Lookup resolves an action name such as "health".
func Lookup(name string) (Notification, error) {
	for _, n := range All() {
		if string(n.Action) == name {
			return n, nil
		}
	}
	return Notification{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
