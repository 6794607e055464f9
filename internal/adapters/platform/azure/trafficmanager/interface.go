package trafficmanager

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/trafficmanager/armtrafficmanager"
)

// ProfilesAPI is the part of *armtrafficmanager.ProfilesClient this package uses.
type ProfilesAPI interface {
	Get(ctx context.Context, resourceGroupName string, profileName string, options *armtrafficmanager.ProfilesClientGetOptions) (armtrafficmanager.ProfilesClientGetResponse, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName string, profileName string, parameters armtrafficmanager.Profile, options *armtrafficmanager.ProfilesClientCreateOrUpdateOptions) (armtrafficmanager.ProfilesClientCreateOrUpdateResponse, error)
}
