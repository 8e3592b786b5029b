// Package cli implements boardctl, a command line client for the board API.
package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/itchan-dev/msgboard/client/internal/apiclient"
	"github.com/itchan-dev/msgboard/shared/logger"
	"github.com/spf13/cobra"
)

const (
	defaultAPI = "http://localhost:8080"
	tokenEnv   = "BOARD_TOKEN"
	apiEnv     = "BOARD_API"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	API     string
	Token   string
	Format  string // "json" | "text"
	Retries int
	Verbose bool

	client *apiclient.APIClient
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for boardctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "boardctl",
		Short:         "boardctl - message board client",
		Long:          "Create, read, edit and delete messages on a board API server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			// stdout is reserved for command output
			level := "warn"
			if opts.Verbose {
				level = "debug"
			}
			logger.InitializeWriter(cmd.ErrOrStderr(), level, false)

			opts.client = apiclient.New(opts.API, opts.Token, apiclient.WithRetries(opts.Retries))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.API, "api", envOr(apiEnv, defaultAPI), "board API base URL (env "+apiEnv+")")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", os.Getenv(tokenEnv), "bearer token (env "+tokenEnv+")")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Retries, "retries", 3, "retries for transient failures")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewBoardCommand(opts))
	cmd.AddCommand(NewPostCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
