package domain

import "time"

type Deployment struct {
	Name              string    `json:"name"`
	ResourceGroup     string    `json:"resource_group"`
	ProvisioningState string    `json:"provisioning_state"`
	Timestamp         time.Time `json:"timestamp,omitempty"`
	CorrelationID     string    `json:"correlation_id,omitempty"`
}

// Cancellable reports whether the provider still accepts a cancel request.
func (d Deployment) Cancellable() bool {
	switch d.ProvisioningState {
	case "Running", "Accepted":
		return true
	}
	return false
}

// WebsiteDeployment is one deployment of a web site, newest first in listings.
type WebsiteDeployment struct {
	ID        string
	Author    string
	Message   string
	Status    int32
	Active    bool
	StartTime time.Time
	EndTime   time.Time
}

type WebsiteLog struct {
	ID           string
	DeploymentID string
	Message      string
	Type         int32
	LogTime      time.Time
	DetailsURL   string
}
