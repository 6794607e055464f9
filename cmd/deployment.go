package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/azmgmt/internal/app"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/resources/deployment"
)

func newDeploymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployment",
		Short: "Manage resource group deployments",
	}
	cmd.AddCommand(newDeploymentStopCmd(), newDeploymentListCmd())
	return cmd
}

func newDeploymentStopCmd() *cobra.Command {
	var params deployment.StopParams
	cmd := &cobra.Command{
		Use:   "stop [resource-group]",
		Short: "Cancel the running deployment of a resource group",
		Long: `Cancels a deployment of the resource group. Without --name the running
deployment is looked up. Asks for confirmation unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWith(cmd, func(a *app.Application) (ports.Command, error) {
				client, err := a.Registry.DeploymentClient()
				if err != nil {
					return nil, err
				}
				params.ResourceGroup = a.Session.ResourceGroupOr(argAt(args, 0))
				return deployment.NewStopCommand(params, client, a.Logger), nil
			})
		},
	}
	cmd.Flags().StringVar(&params.Name, "name", "", "Deployment name (default: the running deployment)")
	cmd.Flags().BoolVar(&params.Force, "force", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&params.PassThru, "passthru", false, "Print true when the deployment was cancelled, false otherwise")
	return cmd
}

func newDeploymentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [resource-group]",
		Short: "List the deployments of a resource group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWith(cmd, func(a *app.Application) (ports.Command, error) {
				client, err := a.Registry.DeploymentClient()
				if err != nil {
					return nil, err
				}
				params := deployment.ListParams{ResourceGroup: a.Session.ResourceGroupOr(argAt(args, 0))}
				return deployment.NewListCommand(params, client), nil
			})
		},
	}
}
