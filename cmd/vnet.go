package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/olusolaa/azmgmt/internal/app"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/resources/network"
)

func newVnetCmd() *cobra.Command {
	vnet := &cobra.Command{
		Use:   "vnet",
		Short: "Inspect virtual network configuration",
	}
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Virtual network configuration document",
	}
	configCmd.AddCommand(newVnetConfigGetCmd())
	vnet.AddCommand(configCmd)
	return vnet
}

func newVnetConfigGetCmd() *cobra.Command {
	var params network.GetConfigParams
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the legacy network configuration document",
		Long: `Builds the classic NetworkConfiguration XML document from the virtual networks,
gateways and local network gateways of a resource group, or of the whole
subscription when no group is given. --export-to-file also writes the document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Description = commandLine(cmd)
			return runWith(cmd, func(a *app.Application) (ports.Command, error) {
				client, err := a.Registry.NetworkClient()
				if err != nil {
					return nil, err
				}
				return network.NewGetConfigCommand(params, client, a.Logger), nil
			})
		},
	}
	cmd.Flags().StringVar(&params.ResourceGroup, "resource-group", "", "Resource group (default: whole subscription)")
	cmd.Flags().StringVar(&params.ExportToFile, "export-to-file", "", "Also write the XML document to this path")
	return cmd
}

// commandLine renders the invoked command with the flags that were set.
func commandLine(cmd *cobra.Command) string {
	parts := []string{cmd.CommandPath()}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		parts = append(parts, fmt.Sprintf("--%s %s", f.Name, f.Value.String()))
	})
	return strings.Join(parts, " ")
}
