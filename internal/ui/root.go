package ui

import (
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytdesk/ytdesk/internal/config"
	"github.com/ytdesk/ytdesk/internal/download"
	"github.com/ytdesk/ytdesk/internal/model"
	"github.com/ytdesk/ytdesk/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	urlEntry *widget.Entry
	audioBtn *widget.Button
	videoBtn *widget.Button
	imageBtn *widget.Button
	logLabel *widget.Label
	logLines []string
	runner   download.Submitter
	settings *config.Settings
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, runner download.Submitter) *RootUI {
	ui := &RootUI{
		window:   window,
		runner:   runner,
		settings: config.NewSettings(app),
	}

	ui.setupUI()

	// Single consumer of the runner's event channel; every log line
	// crosses onto the Fyne thread via fyne.Do.
	go ui.consumeEvents()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)

	ui.audioBtn = widget.NewButton(AudioButtonLabel, func() { ui.start(model.KindAudio) })
	ui.videoBtn = widget.NewButton(VideoButtonLabel, func() { ui.start(model.KindVideo) })
	ui.imageBtn = widget.NewButton(ImageButtonLabel, func() { ui.start(model.KindImage) })

	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord

	top := container.NewVBox(
		ui.urlEntry,
		ui.audioBtn,
		ui.videoBtn,
		ui.imageBtn,
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(FileMenuLabel,
			fyne.NewMenuItem(SettingsMenuLabel, func() {
				NewSettingsDialog(ui.settings, ui.runner, ui.window).Show()
			}),
		),
	))

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, container.NewVScroll(ui.logLabel)))
}

// start submits a request for the given kind. Empty URLs are rejected
// locally and silently: no request starts and the log is unchanged.
func (ui *RootUI) start(kind model.MediaKind) {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		return
	}

	if _, err := ui.runner.Submit(url, kind); err != nil {
		if errors.Is(err, download.ErrEmptyURL) {
			return
		}
		log.Printf("submit failed: %v", err)
		ui.appendLog("Error: " + err.Error())
	}
}

// consumeEvents forwards runner events to the log pane and reveals
// finished files in the system file manager when enabled
func (ui *RootUI) consumeEvents() {
	for ev := range ui.runner.Events() {
		msg := ev.Message
		if ev.IsCompletion() {
			if req, ok := ui.runner.Get(ev.RequestID); ok {
				msg = req.GetDisplayTitle() + ": " + msg
				if !ev.Failed {
					ui.revealOutput(req.OutputPath)
				}
			}
		}
		fyne.Do(func() {
			ui.appendLog(msg)
		})
	}
}

// revealOutput opens the finished file in the platform file manager.
// Runs on the consumer goroutine; a failed reveal only logs.
func (ui *RootUI) revealOutput(path string) {
	if path == "" || !ui.settings.GetAutoRevealOnComplete() {
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("reveal failed: %v", err)
	}
}

// appendLog adds one line to the read-only log pane, trimming old lines
func (ui *RootUI) appendLog(line string) {
	ui.logLines = append(ui.logLines, line)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	ui.logLabel.SetText(strings.Join(ui.logLines, "\n"))
}
