package automation

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/automation/armautomation"
)

// JobAPI is the part of *armautomation.JobClient this package uses.
type JobAPI interface {
	Suspend(ctx context.Context, resourceGroupName string, automationAccountName string, jobName string, options *armautomation.JobClientSuspendOptions) (armautomation.JobClientSuspendResponse, error)
}
