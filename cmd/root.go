package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/azmgmt/internal/app"
	"github.com/olusolaa/azmgmt/internal/config"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "azmgmt",
	Short: "Manages Azure deployments, networks, Traffic Manager, automation jobs and web sites.",
	Long: `azmgmt runs single management operations against an Azure subscription.
Each command validates its parameters, asks for confirmation before destructive
changes, calls the Azure management API and prints the result as text or JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(os.Stderr, err)
	}
	return err
}

func reportError(w io.Writer, err error) {
	userMsg, suggestion, ok := apperrors.GetUserFacingMessage(err)
	if !ok && apperrors.GetCode(err) == apperrors.CodeUnknown {
		userMsg = err.Error()
	}
	fmt.Fprintf(w, "ERROR: %s\n", userMsg)
	if !ok && apperrors.GetCode(err) != apperrors.CodeUnknown {
		fmt.Fprintf(w, "Details: %v\n", err)
	}
	if suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", suggestion)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .azmgmt.yaml in . or $HOME)")
	flags.String("log-level", "", "Override log level (debug, info, warn, error)")
	flags.String("log-format", "", "Override log format (text, json)")
	flags.StringP("output", "o", "", "Output format (text, json)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Verbose logging, same as --log-level debug")
	flags.String("subscription", "", "Azure subscription ID")

	viper.BindPFlag("settings.log_level", flags.Lookup("log-level"))
	viper.BindPFlag("settings.log_format", flags.Lookup("log-format"))
	viper.BindPFlag("settings.output", flags.Lookup("output"))
	viper.BindPFlag("settings.no_color", flags.Lookup("no-color"))
	viper.BindPFlag("settings.verbose", flags.Lookup("verbose"))
	viper.BindPFlag("azure.subscription_id", flags.Lookup("subscription"))

	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix("AZMGMT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		newDeploymentCmd(),
		newVnetCmd(),
		newTrafficManagerCmd(),
		newAutomationCmd(),
		newWebsiteCmd(),
	)
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".azmgmt")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError, "failed to read config file", "Check the path given to --config.")
		}
	}
	return nil
}

// commandFactory builds the command to dispatch once the application is wired.
type commandFactory func(application *app.Application) (ports.Command, error)

func runWith(cmd *cobra.Command, build commandFactory) error {
	ctx := cmd.Context()
	application, err := app.BuildApplicationFromViper(ctx, viper.GetViper(), app.StdStreams())
	if err != nil {
		return err
	}
	command, err := build(application)
	if err != nil {
		return err
	}
	return application.Run(ctx, command)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
