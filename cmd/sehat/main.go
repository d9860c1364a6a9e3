package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sehat/internal/bootstrap"
	diagdto "sehat/internal/modules/diagnosis/dto"
	reportdto "sehat/internal/modules/report/dto"
	"sehat/internal/platform/config"
	"sehat/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	mode       string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "sehat",
		Short:         "SehatAI terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath(), "config file path")
	root.PersistentFlags().StringVar(&flags.mode, "mode", "", "adapter mode: remote|sim|openai (overrides config)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newLoginCmd(flags))
	root.AddCommand(newAnalyzeCmd(flags))
	root.AddCommand(newChatCmd(flags))
	root.AddCommand(newServeSimCmd(flags))
	return root
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.mode != "" {
		cfg.Mode = config.Mode(flags.mode)
	}
	return cfg, nil
}

func loadContainer(flags *rootFlags) (*bootstrap.Container, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	return bootstrap.Build(cfg, logging.New(os.Stderr, flags.debug))
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive client",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			// Log frames would tear the alternate screen, so the TUI logs to
			// a file or nowhere.
			log := logging.Discard()
			if cfg.LogFile != "" {
				sink, err := logging.FileSink(cfg.LogFile)
				if err != nil {
					return err
				}
				defer func() { _ = sink.Close() }()
				log = logging.New(sink, flags.debug)
			}
			c, err := bootstrap.Build(cfg, log)
			if err != nil {
				return err
			}
			return c.RunTUI()
		},
	}
}

func newLoginCmd(flags *rootFlags) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Verify credentials against the configured service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(flags)
			if err != nil {
				return err
			}
			out, err := c.SessionCLI.Login(context.Background(), args[0], role)
			if err != nil {
				return err
			}
			premium := ""
			if out.IsPremium {
				premium = " premium"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s <%s> (%s%s) id=%s\n",
				out.Name, out.Email, out.Role, premium, out.ProfileID)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "patient", "account role: patient|clinician")
	return cmd
}

func newAnalyzeCmd(flags *rootFlags) *cobra.Command {
	var patientID string
	var symptoms, history []string
	var durationDays, severity int
	var reportPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a one-shot symptom analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadContainer(flags)
			if err != nil {
				return err
			}
			out, err := c.DiagnosisCLI.Analyze(context.Background(), patientID, symptoms, durationDays, severity, history)
			if err != nil {
				return err
			}
			printRecord(cmd, out)

			if reportPath != "" {
				exported, err := c.ReportCLI.Export(context.Background(), reportdto.ExportInput{
					Record: out,
					Path:   reportPath,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written to %s (%d bytes)\n", exported.Path, exported.Bytes)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&patientID, "patient", "", "patient id (optional)")
	cmd.Flags().StringSliceVar(&symptoms, "symptom", nil, "symptom (repeatable)")
	cmd.Flags().IntVar(&durationDays, "days", 0, "symptom duration in days")
	cmd.Flags().IntVar(&severity, "severity", 0, "severity 1-10 (default 5)")
	cmd.Flags().StringSliceVar(&history, "history", nil, "medical history entry (repeatable)")
	cmd.Flags().StringVar(&reportPath, "report", "", "also export a PDF report to this path")
	_ = cmd.MarkFlagRequired("symptom")
	return cmd
}

func printRecord(cmd *cobra.Command, out diagdto.RecordOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "analysis %s  %s risk  confidence %.0f%%  (%dms)\n",
		out.AnalysisID, out.RiskLevel, out.ConfidenceScore*100, out.ProcessingTimeMS)
	_, _ = fmt.Fprintf(w, "\n%s\n", out.ClinicalSummary)
	if len(out.Recommendations) > 0 {
		_, _ = fmt.Fprintln(w)
		for _, r := range out.Recommendations {
			_, _ = fmt.Fprintf(w, "  - %s\n", r)
		}
	}
	if len(out.Sources) > 0 {
		_, _ = fmt.Fprintf(w, "\nsources: %s\n", strings.Join(out.Sources, ", "))
	}
}

func newChatCmd(flags *rootFlags) *cobra.Command {
	var mode, contextID string

	cmd := &cobra.Command{
		Use:   "chat <question>",
		Short: "Ask the assistant a one-shot question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer(flags)
			if err != nil {
				return err
			}
			out, err := c.ChatCLI.Query(context.Background(), strings.Join(args, " "), mode, contextID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, out.Content)
			if len(out.Sources) > 0 {
				_, _ = fmt.Fprintf(w, "\nsources: %s\n", strings.Join(out.Sources, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "general", "assistant mode: general|triage|second_opinion")
	cmd.Flags().StringVar(&contextID, "context", "", "analysis id to discuss")
	return cmd
}

func newServeSimCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-sim",
		Short: "Serve the simulated SehatAI service locally",
		RunE: func(_ *cobra.Command, _ []string) error {
			log := logging.New(os.Stderr, flags.debug)
			return bootstrap.BuildSimServer(log).ListenAndServe(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	return cmd
}
