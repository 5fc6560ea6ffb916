package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	diaryinadapter "mindbloom/internal/modules/diary/adapter/in"
	diaryoutadapter "mindbloom/internal/modules/diary/adapter/out"
	diaryservice "mindbloom/internal/modules/diary/service"
	diaryusecase "mindbloom/internal/modules/diary/usecase"
	insightsinadapter "mindbloom/internal/modules/insights/adapter/in"
	insightsoutadapter "mindbloom/internal/modules/insights/adapter/out"
	insightsservice "mindbloom/internal/modules/insights/service"
	insightsusecase "mindbloom/internal/modules/insights/usecase"
	subscriptioninadapter "mindbloom/internal/modules/subscription/adapter/in"
	subscriptionoutadapter "mindbloom/internal/modules/subscription/adapter/out"
	subscriptionservice "mindbloom/internal/modules/subscription/service"
	subscriptionusecase "mindbloom/internal/modules/subscription/usecase"
	"mindbloom/internal/platform/clock"
	"mindbloom/internal/platform/config"
	"mindbloom/internal/platform/httpx"
	uiapp "mindbloom/internal/ui/app"
)

type App struct {
	Config          config.Config
	DiaryCLI        diaryinadapter.CLIHandler
	InsightsCLI     insightsinadapter.CLIHandler
	SubscriptionCLI subscriptioninadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	client := httpx.New(cfg.HTTPTimeout)

	cache, err := diaryoutadapter.NewSQLiteWindowCache(cfg.DBPath, clock.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("new window cache: %w", err)
	}
	diarySvc := diaryservice.NewEntryService(
		diaryoutadapter.NewHTTPEntryStore(client, cfg.EntriesURL),
		cache,
	)
	diaryUC := diaryusecase.NewInteractor(diarySvc)

	insightsUC := insightsusecase.NewInteractor(insightsservice.NewAnalysisService(
		insightsoutadapter.NewHTTPAnalysisSource(client, cfg.AnalyticsURL),
	))

	subscriptionUC := subscriptionusecase.NewInteractor(subscriptionservice.NewSubscriptionService(
		subscriptionoutadapter.NewHTTPSubscriptionClient(client, cfg.SubscriptionURL),
	))

	return &App{
		Config:          cfg,
		DiaryCLI:        diaryinadapter.NewCLIHandler(diaryUC),
		InsightsCLI:     insightsinadapter.NewCLIHandler(insightsUC),
		SubscriptionCLI: subscriptioninadapter.NewCLIHandler(subscriptionUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Config.UserID, app.DiaryCLI, app.InsightsCLI, app.SubscriptionCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
