// Package bootstrap wires configuration to adapters, adapters to services,
// and services to the surfaces that use them. Every binary entry point goes
// through Build so there is exactly one place adapter selection happens.
package bootstrap

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	chatadapter "sehat/internal/modules/chat/adapter/in"
	chatout "sehat/internal/modules/chat/adapter/out"
	chatport "sehat/internal/modules/chat/port/out"
	chatservice "sehat/internal/modules/chat/service"
	chatusecase "sehat/internal/modules/chat/usecase"
	diagadapter "sehat/internal/modules/diagnosis/adapter/in"
	diagout "sehat/internal/modules/diagnosis/adapter/out"
	diagport "sehat/internal/modules/diagnosis/port/out"
	diagservice "sehat/internal/modules/diagnosis/service"
	diagusecase "sehat/internal/modules/diagnosis/usecase"
	reportadapter "sehat/internal/modules/report/adapter/in"
	reportout "sehat/internal/modules/report/adapter/out"
	reportservice "sehat/internal/modules/report/service"
	reportusecase "sehat/internal/modules/report/usecase"
	sessionadapter "sehat/internal/modules/session/adapter/in"
	sessionout "sehat/internal/modules/session/adapter/out"
	sessionport "sehat/internal/modules/session/port/out"
	sessionservice "sehat/internal/modules/session/service"
	sessionusecase "sehat/internal/modules/session/usecase"
	"sehat/internal/platform/clock"
	"sehat/internal/platform/config"
	"sehat/internal/platform/id"
	"sehat/internal/platform/rest"
	"sehat/internal/simsvc"
	"sehat/internal/ui/app"
)

// Container holds every wired component. Services are exposed for the TUI
// ports, CLI handlers for the one-shot commands.
type Container struct {
	Config config.Config
	Log    *slog.Logger

	Session   *sessionservice.SessionService
	Diagnosis *diagservice.DiagnosisService
	Chat      *chatservice.ChatService
	Report    *reportservice.ReportService

	SessionCLI   sessionadapter.CLIHandler
	DiagnosisCLI diagadapter.CLIHandler
	ChatCLI      chatadapter.CLIHandler
	ReportCLI    reportadapter.CLIHandler
}

// Build assembles the adapter family cfg.Mode selects and wires the full
// service graph on top of it.
func Build(cfg config.Config, log *slog.Logger) (*Container, error) {
	idGen := id.UUID{}
	clk := clock.SystemClock{}

	var client *rest.Client
	if cfg.Mode != config.ModeSim {
		client = rest.NewClient(cfg.ServiceURL, cfg.Timeout)
	}

	var issuer sessionport.Issuer
	var analyzer diagport.Analyzer
	var assistant chatport.Assistant

	switch cfg.Mode {
	case config.ModeSim:
		issuer = sessionout.NewLocalIssuer(idGen)
		analyzer = diagout.NewSimAnalyzer(clk, idGen)
		assistant = chatout.NewSimAssistant(clk, idGen)
	case config.ModeOpenAI:
		issuer = sessionout.NewHTTPIssuer(client)
		analyzer = diagout.NewHTTPAnalyzer(client)
		assistant = chatout.NewOpenAIAssistant(cfg.OpenAIKey, cfg.OpenAIModel, clk, idGen)
	case config.ModeRemote:
		issuer = sessionout.NewHTTPIssuer(client)
		analyzer = diagout.NewHTTPAnalyzer(client)
		assistant = chatout.NewHTTPAssistant(client)
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	session := sessionservice.NewSessionService(issuer)
	diagnosis := diagservice.NewDiagnosisService(analyzer)
	chat := chatservice.NewChatService(assistant)
	report := reportservice.NewReportService(reportout.NewPDFRenderer(), reportout.NewFileSink())

	log.Debug("container built", "mode", string(cfg.Mode))

	return &Container{
		Config:       cfg,
		Log:          log,
		Session:      session,
		Diagnosis:    diagnosis,
		Chat:         chat,
		Report:       report,
		SessionCLI:   sessionadapter.NewCLIHandler(sessionusecase.NewInteractor(session)),
		DiagnosisCLI: diagadapter.NewCLIHandler(diagusecase.NewInteractor(diagnosis)),
		ChatCLI:      chatadapter.NewCLIHandler(chatusecase.NewInteractor(chat)),
		ReportCLI:    reportadapter.NewCLIHandler(reportusecase.NewInteractor(report)),
	}, nil
}

// RunTUI starts the interactive client and blocks until it exits.
func (c *Container) RunTUI() error {
	model := app.New(app.Ports{
		Session:   c.Session,
		Diagnosis: c.Diagnosis,
		Chat:      c.Chat,
		Report:    c.Report,
	}, id.UUID{}, clock.SystemClock{}, c.Log)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// BuildSimServer wires the local stand-in service. It always runs on the
// deterministic engines, whatever mode the client itself is in.
func BuildSimServer(log *slog.Logger) *simsvc.Server {
	idGen := id.UUID{}
	clk := clock.SystemClock{}

	diagnosis := diagusecase.NewInteractor(
		diagservice.NewDiagnosisService(diagout.NewSimAnalyzer(clk, idGen)))
	chat := chatusecase.NewInteractor(
		chatservice.NewChatService(chatout.NewSimAssistant(clk, idGen)))

	return simsvc.NewServer(diagnosis, chat, idGen, log)
}
