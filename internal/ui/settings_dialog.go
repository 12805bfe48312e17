package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bg-remover/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry *widget.Entry
	maxSizeEntry   *widget.Entry
	workersEntry   *widget.Entry
	backendSelect  *widget.Select
	serverURLEntry *widget.Entry
	commandEntry   *widget.Entry
	modelEntry     *widget.Entry
	refreshEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	sd.maxSizeEntry = widget.NewEntry()
	sd.maxSizeEntry.SetPlaceHolder("1-1024")

	sd.workersEntry = widget.NewEntry()
	sd.workersEntry.SetPlaceHolder("0-64")

	backendOptions := []string{}
	for _, backend := range sd.settings.GetBackendOptions() {
		backendOptions = append(backendOptions, string(backend))
	}
	sd.backendSelect = widget.NewSelect(backendOptions, sd.onBackendChanged)

	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	sd.commandEntry = widget.NewEntry()
	sd.commandEntry.SetPlaceHolder(config.DefaultCommand)

	sd.modelEntry = widget.NewEntry()
	sd.modelEntry.SetPlaceHolder(config.DefaultModel)

	sd.refreshEntry = widget.NewEntry()
	sd.refreshEntry.SetPlaceHolder("0-3600")

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(text(KeyOutputDirectory), outputDirRow),
		widget.NewFormItem(text(KeyMaxFileSize), sd.maxSizeEntry),
		widget.NewFormItem(text(KeyWorkers), sd.workersEntry),
		widget.NewFormItem(text(KeyBackend), sd.backendSelect),
		widget.NewFormItem(text(KeyServerURL), sd.serverURLEntry),
		widget.NewFormItem(text(KeyCommand), sd.commandEntry),
		widget.NewFormItem(text(KeyModel), sd.modelEntry),
		widget.NewFormItem(text(KeyGalleryRefresh), sd.refreshEntry),
		widget.NewFormItem(text(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.maxSizeEntry.SetText(strconv.Itoa(sd.settings.GetMaxFileSizeMB()))
	sd.workersEntry.SetText(strconv.Itoa(sd.settings.GetWorkers()))
	sd.backendSelect.SetSelected(string(sd.settings.GetBackend()))
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.commandEntry.SetText(sd.settings.GetCommand())
	sd.modelEntry.SetText(sd.settings.GetModel())
	sd.refreshEntry.SetText(strconv.Itoa(sd.settings.GetGalleryRefreshSeconds()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBackendChanged enables only the field the selected backend uses
func (sd *SettingsDialog) onBackendChanged(selected string) {
	if config.Backend(selected) == config.BackendCLI {
		sd.serverURLEntry.Disable()
		sd.commandEntry.Enable()
		return
	}
	sd.serverURLEntry.Enable()
	sd.commandEntry.Disable()
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values into settings; unparsable numbers are ignored
func (sd *SettingsDialog) apply() {
	sd.settings.SetOutputDirectory(strings.TrimSpace(sd.outputDirEntry.Text))

	if mb, err := strconv.Atoi(strings.TrimSpace(sd.maxSizeEntry.Text)); err == nil {
		sd.settings.SetMaxFileSizeMB(mb)
	}
	if workers, err := strconv.Atoi(strings.TrimSpace(sd.workersEntry.Text)); err == nil {
		sd.settings.SetWorkers(workers)
	}
	if sd.backendSelect.Selected != "" {
		sd.settings.SetBackend(config.Backend(sd.backendSelect.Selected))
	}
	sd.settings.SetServerURL(strings.TrimSpace(sd.serverURLEntry.Text))
	sd.settings.SetCommand(strings.TrimSpace(sd.commandEntry.Text))
	sd.settings.SetModel(strings.TrimSpace(sd.modelEntry.Text))
	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.refreshEntry.Text)); err == nil {
		sd.settings.SetGalleryRefreshSeconds(seconds)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
