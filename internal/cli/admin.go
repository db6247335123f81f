package cli

import (
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin operations (rollover, word override, settings)",
	}

	cmd.AddCommand(newAdminNewDayCmd())
	cmd.AddCommand(newAdminSetWordCmd())
	cmd.AddCommand(newAdminSummarizeCmd())
	cmd.AddCommand(newAdminRegenImageCmd())
	cmd.AddCommand(newAdminSettingsCmd())

	return cmd
}

func newAdminNewDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-day",
		Short: "Force a day rollover: archive the current word and generate a new one",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Rollover
			if err := client.Post("/api/v1/admin/rollover", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newAdminSetWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-word <word>",
		Short: "Override today's word and generate its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Word
			body := map[string]string{"word": args[0]}
			if err := client.Put("/api/v1/admin/word", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newAdminSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Summarize today's definitions early and roll to a new word",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Rollover
			if err := client.Post("/api/v1/admin/summarize", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newAdminRegenImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regen-image",
		Short: "Regenerate the image for today's word",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Word
			if err := client.Post("/api/v1/admin/image", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newAdminSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the provider configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Settings
			if err := client.Get("/api/v1/admin/settings", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	var (
		geminiKey string
		openaiKey string
	)
	setCmd := &cobra.Command{
		Use:   "set <provider>",
		Short: "Select the AI provider and optionally update credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"provider": args[0]}
			if cmd.Flags().Changed("gemini-key") {
				body["gemini_key"] = geminiKey
			}
			if cmd.Flags().Changed("openai-key") {
				body["openai_key"] = openaiKey
			}

			var result Settings
			if err := client.Put("/api/v1/admin/settings", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
	setCmd.Flags().StringVar(&geminiKey, "gemini-key", "", "Gemini API key")
	setCmd.Flags().StringVar(&openaiKey, "openai-key", "", "OpenAI API key")
	cmd.AddCommand(setCmd)

	return cmd
}
