package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/errors"
)

const credentialSuggestion = "Run 'az login' or set AZURE_TENANT_ID, AZURE_CLIENT_ID and AZURE_CLIENT_SECRET."

// HandleAzureError maps an Azure SDK error onto an application error code.
// ref is what was being accessed.
func HandleAzureError(ctx context.Context, ref domain.ResourceRef, err error) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in Azure error handler for %s", ref))
	}

	if ctx.Err() != nil {
		return errors.Wrap(ctx.Err(), errors.CodePlatformAPIError,
			fmt.Sprintf("context canceled during Azure API call for %s", ref))
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodePlatformAPIError,
			fmt.Sprintf("context canceled during Azure API call for %s", ref))
	}

	var authErr *azidentity.AuthenticationFailedError
	if stderrs.As(err, &authErr) {
		return errors.WrapUserFacing(err, errors.CodePlatformAuthError,
			"Azure authentication failed", credentialSuggestion)
	}

	var respErr *azcore.ResponseError
	if stderrs.As(err, &respErr) {
		switch {
		case respErr.StatusCode == http.StatusNotFound || isNotFoundErrorCode(respErr.ErrorCode):
			return errors.WrapUserFacing(err, errors.CodeResourceNotFound,
				fmt.Sprintf("%s not found", ref),
				"Check the name and the resource group, and that the subscription is the right one.")
		case respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden:
			return errors.WrapUserFacing(err, errors.CodePlatformAuthError,
				fmt.Sprintf("not authorized to access %s (%s)", ref, respErr.ErrorCode),
				"Check the role assignments of the signed-in identity on the subscription.")
		}
		return errors.WrapUserFacing(err, errors.CodePlatformAPIError,
			fmt.Sprintf("Azure rejected the request for %s: %s", ref, respErr.ErrorCode),
			"Re-run with --verbose for the full provider response.")
	}

	// An exhausted credential chain has no exported error type.
	if isCredentialUnavailable(err) {
		return errors.WrapUserFacing(err, errors.CodePlatformAuthError,
			"no Azure credential is available", credentialSuggestion)
	}

	return errors.Wrap(err, errors.CodePlatformAPIError,
		fmt.Sprintf("failed to access %s", ref))
}

func isNotFoundErrorCode(code string) bool {
	switch code {
	case "ResourceNotFound", "ResourceGroupNotFound", "NotFound", "DeploymentNotFound", "ParentResourceNotFound":
		return true
	}
	return false
}

func isCredentialUnavailable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "DefaultAzureCredential") || strings.Contains(msg, "credential unavailable")
}

// DefaultErrorHandler implements shared.ErrorHandler.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(ctx context.Context, ref domain.ResourceRef, err error) error {
	return HandleAzureError(ctx, ref, err)
}
