package gui

import (
	"bytes"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"patient-grouper/internal/csvio"
	"patient-grouper/internal/demographics"
	"patient-grouper/internal/dicomio"
	"patient-grouper/internal/report"
)

const (
	AppTitle  = "Patient Demographics Grouper"
	AppWidth  = 650
	AppHeight = 600
)

// App represents the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window

	inputLabel  *widget.Label
	statusLabel *widget.Label
	reportView  *widget.Label
}

// NewApp creates a new GUI application
func NewApp() *App {
	return &App{
		fyneApp: app.New(),
	}
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow = a.fyneApp.NewWindow(AppTitle)
	a.mainWindow.Resize(fyne.NewSize(AppWidth, AppHeight))
	a.mainWindow.CenterOnScreen()

	a.inputLabel = widget.NewLabel("No input selected")
	a.statusLabel = widget.NewLabel("Open a CSV file or a DICOM folder to group its patient records.")

	a.reportView = widget.NewLabel("")
	a.reportView.TextStyle = fyne.TextStyle{Monospace: true}

	openFileBtn := widget.NewButton("Open CSV File", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			a.runCSV(path)
		}, a.mainWindow)
	})

	openFolderBtn := widget.NewButton("Open DICOM Folder", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			a.runDicom(uri.Path())
		}, a.mainWindow)
	})

	header := container.NewVBox(
		widget.NewLabelWithStyle(AppTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(openFileBtn, openFolderBtn),
		a.inputLabel,
		a.statusLabel,
	)

	content := container.NewBorder(header, nil, nil, nil, container.NewScroll(a.reportView))
	a.mainWindow.SetContent(content)
	a.mainWindow.ShowAndRun()
}

func (a *App) runCSV(path string) {
	records, err := csvio.ReadFile(path)
	a.render(path, records, err)
}

func (a *App) runDicom(folder string) {
	records, err := dicomio.ReadFolder(folder, true)
	a.render(folder, records, err)
}

// render groups the records and shows both report orders, or an error
// dialog when any stage fails.
func (a *App) render(inputPath string, records []demographics.Record, err error) {
	a.inputLabel.SetText("Input: " + inputPath)

	if err == nil {
		var table *demographics.Table
		table, err = demographics.Group(records)
		if err == nil {
			var buf bytes.Buffer
			err = report.WriteBoth(&buf, table)
			if err == nil {
				a.statusLabel.SetText(fmt.Sprintf("%d record(s), %d patient group(s)", len(records), table.Len()))
				a.reportView.SetText(buf.String())
				return
			}
		}
	}

	a.statusLabel.SetText("Failed to build reports")
	a.reportView.SetText("")
	dialog.ShowError(err, a.mainWindow)
}
