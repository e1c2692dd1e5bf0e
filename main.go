package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytdesk/ytdesk/internal/config"
	"github.com/ytdesk/ytdesk/internal/download"
	"github.com/ytdesk/ytdesk/internal/installer"
	"github.com/ytdesk/ytdesk/internal/platform"
	"github.com/ytdesk/ytdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytdesk.app"
	AppName = "ytdesk"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	layout := platform.NewLayout(settings.GetBaseDirectory())
	if err := platform.EnsureDir(layout.BaseDir); err != nil {
		log.Printf("failed to ensure base dir: %v", err)
	}

	runner := download.NewRunner(layout, settings.RunnerConfig())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, runner)

	// Block downloads behind the dependency check before anything is offered
	ui.ShowDependencyGate(myWindow, installer.New(layout))

	myWindow.ShowAndRun()
}
