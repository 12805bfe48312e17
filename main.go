package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/bg-remover/internal/config"
	"github.com/ytget/bg-remover/internal/platform"
	"github.com/ytget/bg-remover/internal/rembg"
	"github.com/ytget/bg-remover/internal/removal"
	"github.com/ytget/bg-remover/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.bg-remover"
	AppName = "Background Removal App"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	logger, closer, err := platform.OpenProcessLog(platform.DefaultLogFile, slog.LevelInfo, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open process log: %v\n", err)
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		logger.Error("failed to ensure output dir", "folder", outputDir, "error", err)
	}

	remover, err := rembg.New(settings.RemoverOptions())
	if err != nil {
		logger.Error("failed to configure remover", "error", err)
	}

	removalSvc := removal.NewService(remover, outputDir, settings.GetMaxFileSizeBytes(), settings.GetWorkers())
	removalSvc.SetLogger(logger)

	ui.NewRootUI(myWindow, myApp, removalSvc, logger)

	myWindow.ShowAndRun()
}
