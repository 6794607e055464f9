package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/olusolaa/azmgmt/internal/app"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/resources/trafficmanager"
)

func newTrafficManagerCmd() *cobra.Command {
	tm := &cobra.Command{
		Use:   "trafficmanager",
		Short: "Manage Traffic Manager profiles",
	}
	endpoint := &cobra.Command{
		Use:   "endpoint",
		Short: "Traffic Manager endpoints",
	}
	endpoint.AddCommand(newEndpointSetCmd())
	tm.AddCommand(endpoint)
	return tm
}

func newEndpointSetCmd() *cobra.Command {
	var (
		params                trafficmanager.SetEndpointParams
		location, typ, status string
		weight                int64
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add or update an endpoint of a Traffic Manager profile",
		Long: `Adds the endpoint named by --domain-name to the profile, or updates it in
place. Only the flags given on the command line change an existing endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("location") {
				params.Location = &location
			}
			if flags.Changed("type") {
				params.Type = &typ
			}
			if flags.Changed("status") {
				params.Status = &status
			}
			if flags.Changed("weight") {
				params.Weight = &weight
			}
			return runWith(cmd, func(a *app.Application) (ports.Command, error) {
				client, err := a.Registry.TrafficManagerClient()
				if err != nil {
					return nil, err
				}
				params.ResourceGroup = a.Session.ResourceGroupOr(params.ResourceGroup)
				return trafficmanager.NewSetEndpointCommand(params, client, a.Logger), nil
			})
		},
	}
	cmd.Flags().StringVar(&params.ResourceGroup, "resource-group", "", "Resource group of the profile")
	cmd.Flags().StringVar(&params.ProfileName, "profile", "", "Traffic Manager profile name")
	cmd.Flags().StringVar(&params.DomainName, "domain-name", "", "Endpoint domain name")
	cmd.Flags().StringVar(&location, "location", "", "Endpoint location")
	cmd.Flags().StringVar(&typ, "type", "", "Endpoint type ("+strings.Join(domain.EndpointTypeValues(), ", ")+")")
	cmd.Flags().StringVar(&status, "status", "", "Endpoint status ("+strings.Join(domain.EndpointStatusValues(), ", ")+")")
	cmd.Flags().Int64Var(&weight, "weight", 1, "Endpoint weight")
	return cmd
}
