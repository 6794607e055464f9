package domain

type ResourceKind string

const (
	KindDeployment        ResourceKind = "ResourceGroupDeployment"
	KindNetworkConfig     ResourceKind = "VirtualNetworkConfiguration"
	KindTrafficProfile    ResourceKind = "TrafficManagerProfile"
	KindTrafficEndpoint   ResourceKind = "TrafficManagerEndpoint"
	KindAutomationJob     ResourceKind = "AutomationJob"
	KindWebsiteDeployment ResourceKind = "WebsiteDeployment"
	KindWebsite           ResourceKind = "Website"
	KindResourceGroup     ResourceKind = "ResourceGroup"
)

var kindLabels = map[ResourceKind]string{
	KindDeployment:        "deployment",
	KindNetworkConfig:     "network configuration",
	KindTrafficProfile:    "traffic manager profile",
	KindTrafficEndpoint:   "traffic manager endpoint",
	KindAutomationJob:     "automation job",
	KindWebsiteDeployment: "web app deployment",
	KindWebsite:           "web app",
	KindResourceGroup:     "resource group",
}

func (rk ResourceKind) String() string {
	return string(rk)
}

// Label is the kind as it reads in messages.
func (rk ResourceKind) Label() string {
	if l, ok := kindLabels[rk]; ok {
		return l
	}
	return string(rk)
}
