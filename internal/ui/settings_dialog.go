package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytdesk/ytdesk/internal/config"
	"github.com/ytdesk/ytdesk/internal/download"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	runner   download.Submitter
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	baseDirEntry  *widget.Entry
	truncateCheck *widget.Check
	retagCheck    *widget.Check
	convertCheck  *widget.Check
	revealCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, runner download.Submitter, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		runner:   runner,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.baseDirEntry = widget.NewEntry()
	sd.baseDirEntry.SetText(sd.settings.GetBaseDirectory())

	sd.truncateCheck = widget.NewCheck("Keep only the year of the upload date (video)", nil)
	sd.truncateCheck.SetChecked(sd.settings.GetTruncateDateToYear())

	sd.retagCheck = widget.NewCheck("Rewrite ID3 tags after audio downloads", nil)
	sd.retagCheck.SetChecked(sd.settings.GetRetagAudio())

	sd.convertCheck = widget.NewCheck("Convert webp thumbnails to JPEG", nil)
	sd.convertCheck.SetChecked(sd.settings.GetConvertThumbnails())

	sd.revealCheck = widget.NewCheck("Show finished downloads in the file manager", nil)
	sd.revealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())

	form := container.NewVBox(
		widget.NewLabel("Base directory"),
		sd.baseDirEntry,
		sd.truncateCheck,
		sd.retagCheck,
		sd.convertCheck,
		sd.revealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(SettingsTitle, "Save", "Cancel", form, func(save bool) {
		if !save {
			return
		}
		sd.apply()
	}, sd.window)
}

// apply persists the form and reconfigures the runner for future requests
func (sd *SettingsDialog) apply() {
	if dir := sd.baseDirEntry.Text; dir != "" {
		sd.settings.SetBaseDirectory(dir)
		sd.runner.SetBaseDir(dir)
	}

	sd.settings.SetTruncateDateToYear(sd.truncateCheck.Checked)
	sd.settings.SetRetagAudio(sd.retagCheck.Checked)
	sd.settings.SetConvertThumbnails(sd.convertCheck.Checked)
	sd.settings.SetAutoRevealOnComplete(sd.revealCheck.Checked)
	sd.runner.SetConfig(sd.settings.RunnerConfig())
}
