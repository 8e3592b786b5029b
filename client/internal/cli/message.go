package cli

import (
	"fmt"
	"io"

	"github.com/itchan-dev/msgboard/shared/api"
	"github.com/itchan-dev/msgboard/shared/domain"
	"github.com/spf13/cobra"
)

type messageOptions struct {
	Title   string
	Content string
}

// readContent resolves "-" to the command's stdin.
func (o *messageOptions) readContent(cmd *cobra.Command) (string, error) {
	if o.Content != "-" {
		return o.Content, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read content from stdin: %w", err)
	}
	return string(b), nil
}

func (o *messageOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "", "message title (up to 64 bytes)")
	cmd.Flags().StringVarP(&o.Content, "content", "c", "", `message content (up to 1024 bytes), "-" reads stdin`)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
}

// NewPostCommand creates the post command.
func NewPostCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &messageOptions{}
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := opts.readContent(cmd)
			if err != nil {
				return err
			}
			msg, err := rootOpts.client.CreateMessage(cmd.Context(), opts.Title, content)
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Message(msg)
		},
	}
	opts.bind(cmd)
	return cmd
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &messageOptions{}
	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Replace the title and content of your message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			content, err := opts.readContent(cmd)
			if err != nil {
				return err
			}
			msg, err := rootOpts.client.EditMessage(cmd.Context(), index, opts.Title, content)
			if err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Message(msg)
		},
	}
	opts.bind(cmd)
	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete your message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := rootOpts.client.DeleteMessage(cmd.Context(), index); err != nil {
				return err
			}
			return rootOpts.formatter(cmd).Deleted(index)
		},
	}
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	var html bool
	cmd := &cobra.Command{
		Use:   "get <index>",
		Short: "Show a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			out := rootOpts.formatter(cmd)
			if html {
				rendered, err := rootOpts.client.GetMessageHTML(cmd.Context(), index)
				if err != nil {
					return err
				}
				return out.HTML(index, rendered)
			}
			msg, err := rootOpts.client.GetMessage(cmd.Context(), index)
			if err != nil {
				return err
			}
			return out.Message(msg)
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "print the rendered content instead")
	return cmd
}

type listOptions struct {
	From  domain.MsgIndex
	Limit int
	All   bool
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List live messages in index order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := rootOpts.client.ListMessages(cmd.Context(), opts.From, opts.Limit)
			if err != nil {
				return err
			}
			if !opts.All {
				return rootOpts.formatter(cmd).List(page)
			}

			all := api.MessageListResponse{Messages: page.Messages}
			for page.Next != nil {
				page, err = rootOpts.client.ListMessages(cmd.Context(), *page.Next, opts.Limit)
				if err != nil {
					return err
				}
				all.Messages = append(all.Messages, page.Messages...)
			}
			return rootOpts.formatter(cmd).List(all)
		},
	}
	cmd.Flags().Uint64Var(&opts.From, "from", 0, "first index to list")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "page size, 0 for the server maximum")
	cmd.Flags().BoolVar(&opts.All, "all", false, "follow pages until the end")
	return cmd
}
