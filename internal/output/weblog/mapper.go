package weblog

import (
	"time"

	"github.com/olusolaa/azmgmt/internal/core/domain"
)

type LogType string

const (
	LogTypeMessage LogType = "Message"
	LogTypeWarning LogType = "Warning"
	LogTypeError   LogType = "Error"
)

// Entry is one deployment log line as emitted by `website log get`.
type Entry struct {
	ID           string    `json:"id"`
	DeploymentID string    `json:"deployment_id"`
	LogTime      time.Time `json:"log_time"`
	Type         LogType   `json:"type"`
	Message      string    `json:"message"`
	DetailsURL   string    `json:"details_url,omitempty"`
}

// Latest picks the deployment with the newest start time. Ties keep the
// earlier element, so a newest-first listing returns its head.
func Latest(deployments []domain.WebsiteDeployment) (domain.WebsiteDeployment, bool) {
	if len(deployments) == 0 {
		return domain.WebsiteDeployment{}, false
	}
	latest := deployments[0]
	for _, d := range deployments[1:] {
		if d.StartTime.After(latest.StartTime) {
			latest = d
		}
	}
	return latest, true
}

// Map converts the logs of one deployment, keeping their order.
func Map(deploymentID string, logs []domain.WebsiteLog) []Entry {
	out := make([]Entry, 0, len(logs))
	for _, l := range logs {
		id := l.DeploymentID
		if id == "" {
			id = deploymentID
		}
		out = append(out, Entry{
			ID:           l.ID,
			DeploymentID: id,
			LogTime:      l.LogTime,
			Type:         logType(l.Type),
			Message:      l.Message,
			DetailsURL:   l.DetailsURL,
		})
	}
	return out
}

func logType(t int32) LogType {
	switch t {
	case 1:
		return LogTypeWarning
	case 2:
		return LogTypeError
	default:
		return LogTypeMessage
	}
}
