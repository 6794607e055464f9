package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/azmgmt/internal/app"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/resources/automation"
)

func newAutomationCmd() *cobra.Command {
	auto := &cobra.Command{
		Use:   "automation",
		Short: "Manage Azure Automation jobs",
	}
	job := &cobra.Command{
		Use:   "job",
		Short: "Automation runbook jobs",
	}
	job.AddCommand(newJobSuspendCmd())
	auto.AddCommand(job)
	return auto
}

func newJobSuspendCmd() *cobra.Command {
	var params automation.SuspendParams
	cmd := &cobra.Command{
		Use:   "suspend",
		Short: "Suspend a running automation job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWith(cmd, func(a *app.Application) (ports.Command, error) {
				client, err := a.Registry.AutomationClient()
				if err != nil {
					return nil, err
				}
				params.ResourceGroup = a.Session.ResourceGroupOr(params.ResourceGroup)
				return automation.NewSuspendCommand(params, client, a.Logger), nil
			})
		},
	}
	cmd.Flags().StringVar(&params.ResourceGroup, "resource-group", "", "Resource group of the automation account")
	cmd.Flags().StringVar(&params.Account, "account", "", "Automation account name")
	cmd.Flags().StringVar(&params.ID, "id", "", "Job ID (GUID)")
	return cmd
}
