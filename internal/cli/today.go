package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's word and definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Today
			if err := client.Get("/api/v1/today", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dismiss-results",
		Short: "Dismiss the previous day's results banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/today/results"); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Previous day results dismissed")
			return nil
		},
	})

	return cmd
}

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <definition>",
		Short: "Submit a definition for today's word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Submission
			body := map[string]string{"text": args[0]}
			if err := client.Post("/api/v1/today/submissions", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if result.ID == "" {
				out.PrintMessage("Blank definition ignored")
				return nil
			}
			out.Print(result)
			return nil
		},
	}
}

func newLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <submission-id>",
		Short: "Upvote a definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/today/submissions/%s/like", url.PathEscape(args[0]))
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Liked")
			return nil
		},
	}
}

func newArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Show past words and their winning definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []ArchivedWord
			if err := client.Get("/api/v1/archive", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Show the current display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Username
			if err := client.Get("/api/v1/username", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Change the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Username
			body := map[string]string{"username": args[0]}
			if err := client.Put("/api/v1/username", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
