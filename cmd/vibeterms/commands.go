package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/vibeterms/internal/app"
	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	open       opener
	configPath string
	serverURL  string
	raw        bool
	g          glossary
}

func newRootCmd(open opener) *cobra.Command {
	c := &cli{open: open}

	root := &cobra.Command{
		Use:     "vibeterms",
		Version: common.GetFullVersion(),
		Short:   "AI 빌더 사전 - 초보자를 위한 AI 개발 용어 가이드",
		Long: `vibeterms browses a Korean glossary of AI and development terms, generates
new term cards with Gemini and asks the AI tutor for examples and answers.

By default commands work on the local data directory from the config file.
With --server (or VIBETERMS_SERVER_URL) they go through a running
vibeterms-server instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.serverURL == "" {
				c.serverURL = os.Getenv("VIBETERMS_SERVER_URL")
			}
			g, err := c.open(c.configPath, c.serverURL)
			if err != nil {
				return err
			}
			c.g = g
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.g != nil {
				c.g.Close()
				c.g = nil
			}
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: VIBETERMS_CONFIG, then vibeterms.toml)")
	root.PersistentFlags().StringVar(&c.serverURL, "server", "", "vibeterms-server base URL (default: local data directory)")
	root.PersistentFlags().BoolVar(&c.raw, "raw", false, "print plain markdown instead of rendering it")

	root.AddCommand(
		c.listCmd(),
		c.showCmd(),
		c.generateCmd(),
		c.explainCmd(),
		c.deleteCmd(),
		c.resetCmd(),
		c.keyCmd(),
	)
	return root
}

func (c *cli) listCmd() *cobra.Command {
	var category, query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List glossary terms, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := models.Category(strings.TrimSpace(category))
			if strings.EqualFold(string(cat), string(models.CategoryAll)) {
				cat = models.CategoryAll
			}
			if cat != "" && cat != models.CategoryAll && !cat.Valid() {
				return fmt.Errorf("unknown category %q (one of: %s)", category, strings.Join(models.CategoryValues(), ", "))
			}

			terms, err := c.g.Search(cmd.Context(), cat, query)
			if err != nil {
				return err
			}
			display(cmd.OutOrStdout(), app.FormatTermList(terms, cat, query), c.raw)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category label, or ALL")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one term card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := c.g.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			display(cmd.OutOrStdout(), app.FormatTerm(term), c.raw)
			return nil
		},
	}
}

func (c *cli) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <keyword>",
		Short: "Generate a new term card with Gemini and add it to the glossary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := c.g.Generate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			display(cmd.OutOrStdout(), app.FormatTerm(term), c.raw)
			return nil
		},
	}
}

func (c *cli) explainCmd() *cobra.Command {
	var question string
	cmd := &cobra.Command{
		Use:   "explain <id>",
		Short: "Ask the AI tutor about a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.g.Explain(cmd.Context(), args[0], question)
			if err != nil {
				return err
			}
			if !res.OK() {
				fmt.Fprintln(cmd.ErrOrStderr(), res.Text)
				return nil
			}
			display(cmd.OutOrStdout(), res.Text, c.raw)
			return nil
		},
	}
	cmd.Flags().StringVarP(&question, "question", "Q", "", "follow-up question (default: usage example, common mistake, prompt template)")
	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a generated term or hide a built-in one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.g.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove all generated terms and restore hidden built-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes every generated term; pass --yes to confirm")
			}
			if err := c.g.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func (c *cli) keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the saved Gemini API key",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <api-key>",
			Short: "Save a Gemini API key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.g.SetKey(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key saved")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the saved Gemini API key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.g.SetKey(cmd.Context(), ""); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key cleared")
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the saved key, masked",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				masked, err := c.g.MaskedKey(cmd.Context())
				if err != nil {
					return err
				}
				if masked == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No API key saved")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), masked)
				return nil
			},
		},
	)
	return cmd
}
