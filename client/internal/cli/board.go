package cli

import (
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command. The caller becomes the board authority.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the board with the caller as authority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := rootOpts.client.InitBoard(cmd.Context())
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Board(board)
		},
	}
}

// NewBoardCommand creates the board command.
func NewBoardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the board authority and message counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := rootOpts.client.GetBoard(cmd.Context())
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Board(board)
		},
	}
}
