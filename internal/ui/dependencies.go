package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytdesk/ytdesk/internal/installer"
)

// ShowDependencyGate checks the external binaries before any download is
// offered. With everything present it is a no-op. Otherwise it blocks the
// UI behind a modal dialog offering the self-installer; declining closes
// the window, a successful install restarts the process.
func ShowDependencyGate(window fyne.Window, inst *installer.Installer) {
	missing := inst.Missing()
	if len(missing) == 0 {
		return
	}

	message := fmt.Sprintf(MissingDepsFormat, strings.Join(missing, "\n"))
	dialog.NewConfirm(MissingDepsTitle, message, func(install bool) {
		if !install {
			window.Close()
			return
		}

		go func() {
			if err := inst.Install(context.Background()); err != nil {
				log.Printf("installer failed: %v", err)
				fyne.Do(func() {
					dialog.ShowError(err, window)
				})
				return
			}

			fyne.Do(func() {
				info := dialog.NewInformation(InstallDoneTitle, InstallDoneMessage, window)
				info.SetOnClosed(func() {
					if err := inst.Restart(); err != nil {
						log.Printf("restart failed: %v", err)
					}
				})
				info.Show()
			})
		}()
	}, window).Show()
}
