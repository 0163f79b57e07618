package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	dashboardinadapter "studyhub/internal/modules/dashboard/adapter/in"
	dashboardservice "studyhub/internal/modules/dashboard/service"
	dashboardusecase "studyhub/internal/modules/dashboard/usecase"
	goalsinadapter "studyhub/internal/modules/goals/adapter/in"
	goalsoutadapter "studyhub/internal/modules/goals/adapter/out"
	goalsservice "studyhub/internal/modules/goals/service"
	goalsusecase "studyhub/internal/modules/goals/usecase"
	journalinadapter "studyhub/internal/modules/journal/adapter/in"
	journaloutadapter "studyhub/internal/modules/journal/adapter/out"
	journalservice "studyhub/internal/modules/journal/service"
	journalusecase "studyhub/internal/modules/journal/usecase"
	pomodorousecase "studyhub/internal/modules/pomodoro/usecase"
	progressinadapter "studyhub/internal/modules/progress/adapter/in"
	progressoutadapter "studyhub/internal/modules/progress/adapter/out"
	progressservice "studyhub/internal/modules/progress/service"
	progressusecase "studyhub/internal/modules/progress/usecase"
	remindinadapter "studyhub/internal/modules/reminder/adapter/in"
	remindservice "studyhub/internal/modules/reminder/service"
	remindusecase "studyhub/internal/modules/reminder/usecase"
	scoresinadapter "studyhub/internal/modules/scores/adapter/in"
	scoresoutadapter "studyhub/internal/modules/scores/adapter/out"
	scoresservice "studyhub/internal/modules/scores/service"
	scoresusecase "studyhub/internal/modules/scores/usecase"
	sessioninadapter "studyhub/internal/modules/session/adapter/in"
	sessionoutadapter "studyhub/internal/modules/session/adapter/out"
	sessionservice "studyhub/internal/modules/session/service"
	sessionusecase "studyhub/internal/modules/session/usecase"
	vaultinadapter "studyhub/internal/modules/vault/adapter/in"
	vaultoutadapter "studyhub/internal/modules/vault/adapter/out"
	vaultservice "studyhub/internal/modules/vault/service"
	vaultusecase "studyhub/internal/modules/vault/usecase"
	vocabinadapter "studyhub/internal/modules/vocab/adapter/in"
	vocaboutadapter "studyhub/internal/modules/vocab/adapter/out"
	vocabservice "studyhub/internal/modules/vocab/service"
	vocabusecase "studyhub/internal/modules/vocab/usecase"
	"studyhub/internal/platform/clock"
	"studyhub/internal/platform/config"
	"studyhub/internal/platform/id"
	"studyhub/internal/platform/logging"
	"studyhub/internal/platform/recordstore"
	uiapp "studyhub/internal/ui/app"
)

type App struct {
	Config config.Config
	Logger *zap.Logger

	SessionCLI   sessioninadapter.CLIHandler
	DashboardCLI dashboardinadapter.CLIHandler
	ProgressCLI  progressinadapter.CLIHandler
	ScoresCLI    scoresinadapter.CLIHandler
	GoalsCLI     goalsinadapter.CLIHandler
	JournalCLI   journalinadapter.CLIHandler
	VocabCLI     vocabinadapter.CLIHandler
	VaultCLI     vaultinadapter.CLIHandler
	Reminder     *remindinadapter.Scheduler

	medium *recordstore.SQLiteMedium
}

// New opens the record store and log file and wires every module. Callers
// must Close the app.
func New(cfg config.Config, verbose bool) (*App, error) {
	logger, err := logging.New(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel, Verbose: verbose})
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	medium, err := recordstore.NewSQLiteMedium(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	clk := clock.SystemClock{Location: loc}
	ids := id.UUID{}

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		clk,
		sessionoutadapter.NewRecordUserStore(medium, logger),
	))
	progressUC := progressusecase.NewInteractor(progressservice.NewProgressService(
		progressoutadapter.NewRecordItemStore(medium, logger),
	))
	scoresUC := scoresusecase.NewInteractor(scoresservice.NewScoreService(
		ids,
		scoresoutadapter.NewRecordScoreStore(medium, logger),
	))
	goalsUC := goalsusecase.NewInteractor(goalsservice.NewGoalService(
		clk,
		ids,
		goalsoutadapter.NewRecordGoalStore(medium, logger),
	))
	journalUC := journalusecase.NewInteractor(journalservice.NewJournalService(
		clk,
		ids,
		journaloutadapter.NewRecordLogStore(medium, logger),
		journaloutadapter.NewMarkdownNoteWriter(cfg.JournalDir),
	))

	vocabCatalog, err := vocaboutadapter.NewEmbeddedCatalog()
	if err != nil {
		_ = medium.Close()
		return nil, err
	}
	dictionary, err := vocaboutadapter.NewHTTPDictionary(cfg.DictionaryURL, cfg.LookupTimeout, logger.Named("dictionary"))
	if err != nil {
		_ = medium.Close()
		return nil, err
	}
	vocabUC := vocabusecase.NewInteractor(vocabservice.NewVocabService(
		clk,
		ids,
		vocaboutadapter.NewRecordItemStore(medium, logger),
		vocabCatalog,
		dictionary,
	))

	formulaCatalog, err := vaultoutadapter.NewEmbeddedCatalog()
	if err != nil {
		_ = medium.Close()
		return nil, err
	}
	vaultUC := vaultusecase.NewInteractor(vaultservice.NewVaultService(formulaCatalog))

	dashboardUC := dashboardusecase.NewInteractor(dashboardservice.NewDashboardService(clk, cfg.ExamDate, dashboardservice.Sources{
		Session:  sessionUC,
		Progress: progressUC,
		Scores:   scoresUC,
		Goals:    goalsUC,
		Journal:  journalUC,
	}))
	remindUC := remindusecase.NewInteractor(remindservice.NewReminderService(dashboardUC, goalsUC))

	logger.Debug("app wired", zap.String("data_dir", cfg.DataDir), zap.String("tz", loc.String()))
	return &App{
		Config:       cfg,
		Logger:       logger,
		SessionCLI:   sessioninadapter.NewCLIHandler(sessionUC),
		DashboardCLI: dashboardinadapter.NewCLIHandler(dashboardUC),
		ProgressCLI:  progressinadapter.NewCLIHandler(progressUC),
		ScoresCLI:    scoresinadapter.NewCLIHandler(scoresUC),
		GoalsCLI:     goalsinadapter.NewCLIHandler(goalsUC),
		JournalCLI:   journalinadapter.NewCLIHandler(journalUC),
		VocabCLI:     vocabinadapter.NewCLIHandler(vocabUC),
		VaultCLI:     vaultinadapter.NewCLIHandler(vaultUC),
		Reminder:     remindinadapter.NewScheduler(remindUC, loc, logger.Named("reminder")),
		medium:       medium,
	}, nil
}

func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.medium.Close()
}

// Export dumps every stored collection in browser local-storage shape.
func (a *App) Export(ctx context.Context) (map[string]json.RawMessage, error) {
	return recordstore.Dump(ctx, a.medium)
}

// Import writes the known collections of a dump, replacing what is stored.
func (a *App) Import(ctx context.Context, dump map[string]json.RawMessage) ([]string, error) {
	keys, err := recordstore.Restore(ctx, a.medium, dump)
	if err != nil {
		return keys, err
	}
	a.Logger.Info("records imported", zap.Strings("keys", keys))
	return keys, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(uiapp.Deps{
		Session:   app.SessionCLI,
		Dashboard: app.DashboardCLI,
		Progress:  app.ProgressCLI,
		Scores:    app.ScoresCLI,
		Goals:     app.GoalsCLI,
		Journal:   app.JournalCLI,
		Vocab:     app.VocabCLI,
		Vault:     app.VaultCLI,
		Pomodoro:  pomodorousecase.NewInteractor(app.Config.PomodoroWork, app.Config.PomodoroBreak),
		Tick:      time.Second,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
