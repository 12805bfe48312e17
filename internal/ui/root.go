package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bg-remover/internal/config"
	"github.com/ytget/bg-remover/internal/gallery"
	"github.com/ytget/bg-remover/internal/model"
	"github.com/ytget/bg-remover/internal/platform"
	"github.com/ytget/bg-remover/internal/rembg"
	"github.com/ytget/bg-remover/internal/removal"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	processor    removal.Processor
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger
	refresher    *gallery.AutoRefresher

	// Controls
	uploadBtn     *widget.Button
	uploadDirBtn  *widget.Button
	viewFolderBtn *widget.Button
	settingsBtn   *widget.Button
	refreshBtn    *widget.Button
	openImageBtn  *widget.Button
	progress      *widget.ProgressBar
	resultLabel   *widget.Label
	resultsHeader *widget.Label

	// Gallery
	preview     *canvas.Image
	galleryList *widget.List

	// State - UI goroutine only
	entries      []gallery.Entry
	selectedPath string

	processing atomic.Bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, processor removal.Processor, logger *slog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if logger == nil {
		logger = slog.Default()
	}

	ui := &RootUI{
		window:       window,
		processor:    processor,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.processor.SetErrorCallback(ui.onTaskError)

	ui.refresher = gallery.NewAutoRefresher(func() {
		fyne.Do(func() { ui.refreshGallery(false) })
	})
	if err := ui.refresher.SetInterval(settings.GetGalleryRefreshSeconds()); err != nil {
		logger.Error("failed to schedule gallery refresh", "error", err)
	}

	ui.setupUI()
	ui.refreshGallery(false)
	ui.refresher.Start()

	window.SetOnDropped(ui.onDropped)
	window.SetOnClosed(ui.Close)
	return ui
}

// Close stops background schedulers
func (ui *RootUI) Close() {
	ui.refresher.Stop()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	text := ui.localization.GetText

	ui.uploadBtn = widget.NewButtonWithIcon(text(KeyUploadImages), theme.UploadIcon(), ui.onUploadImages)
	ui.uploadBtn.Importance = widget.HighImportance
	ui.uploadDirBtn = widget.NewButtonWithIcon(text(KeyUploadFolder), theme.FolderOpenIcon(), ui.onUploadFolder)
	ui.viewFolderBtn = widget.NewButtonWithIcon(text(KeyViewResultFolder), theme.FolderIcon(), ui.onViewResultFolder)
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.progress = widget.NewProgressBar()
	ui.resultLabel = widget.NewLabel("")
	ui.resultLabel.Alignment = fyne.TextAlignCenter

	controls := container.NewVBox(
		container.NewCenter(container.NewHBox(ui.uploadBtn, ui.uploadDirBtn, ui.viewFolderBtn, ui.settingsBtn)),
		container.NewGridWrap(fyne.NewSize(ProgressMinW, ui.progress.MinSize().Height), ui.progress),
		ui.resultLabel,
	)
	controls = container.NewVBox(container.NewCenter(controls))

	ui.preview = canvas.NewImageFromImage(nil)
	ui.preview.FillMode = canvas.ImageFillContain
	ui.preview.SetMinSize(fyne.NewSize(PreviewMinSize, PreviewMinSize))

	ui.galleryList = widget.NewList(
		func() int { return len(ui.entries) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FileImageIcon()), widget.NewLabel(""))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.entries) {
				return
			}
			row := obj.(*fyne.Container)
			row.Objects[1].(*widget.Label).SetText(ui.entries[id].Name)
		},
	)
	ui.galleryList.OnSelected = ui.onGallerySelected

	ui.resultsHeader = widget.NewLabelWithStyle(text(KeyResults), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.refreshBtn = widget.NewButtonWithIcon(text(KeyRefresh), theme.ViewRefreshIcon(), func() { ui.refreshGallery(true) })
	ui.openImageBtn = widget.NewButtonWithIcon(text(KeyOpenImage), theme.FileImageIcon(), ui.onOpenSelected)

	galleryPane := container.NewBorder(
		container.NewBorder(nil, nil, ui.resultsHeader, container.NewHBox(ui.refreshBtn, ui.openImageBtn)),
		nil, nil, nil,
		ui.galleryList,
	)

	split := container.NewVSplit(container.NewCenter(ui.preview), galleryPane)
	split.Offset = SplitOffset

	ui.window.SetContent(container.NewBorder(controls, nil, nil, nil, split))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	fileMenu := fyne.NewMenu(text(KeyFile),
		fyne.NewMenuItem(text(KeyUploadImages), ui.onUploadImages),
		fyne.NewMenuItem(text(KeyUploadFolder), ui.onUploadFolder),
		fyne.NewMenuItem(text(KeyViewResultFolder), ui.onViewResultFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text(KeySettings), ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText
	ui.window.SetTitle(text(KeyAppTitle))
	ui.uploadBtn.SetText(text(KeyUploadImages))
	ui.uploadDirBtn.SetText(text(KeyUploadFolder))
	ui.viewFolderBtn.SetText(text(KeyViewResultFolder))
	ui.refreshBtn.SetText(text(KeyRefresh))
	ui.openImageBtn.SetText(text(KeyOpenImage))
	ui.resultsHeader.SetText(text(KeyResults))
}

// onUploadImages opens the file picker filtered to image files
func (ui *RootUI) onUploadImages() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		ui.startBatch([]string{path})
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	fd.Show()
}

// onUploadFolder queues every image directly inside the chosen folder
func (ui *RootUI) onUploadFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		paths, err := platform.ListImageFiles(uri.Path())
		if err != nil {
			ui.logger.Error("failed to list folder", "folder", uri.Path(), "error", err)
			ui.showError(err)
			return
		}
		if len(paths) == 0 {
			dialog.ShowInformation(ui.localization.GetText(KeyUploadFolder), ui.localization.GetText(KeyNoImagesFound), ui.window)
			return
		}
		ui.startBatch(paths)
	}, ui.window)
}

// onDropped queues image files dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		paths = append(paths, uri.Path())
	}
	paths = platform.FilterImageFiles(paths)
	if len(paths) == 0 {
		return
	}
	ui.startBatch(paths)
}

// startBatch validates the selection and processes the accepted files in the
// background. Must be called on the UI goroutine.
func (ui *RootUI) startBatch(paths []string) {
	if ui.processing.Load() {
		ui.showBusy()
		return
	}

	accepted, rejected := ui.processor.Validate(paths)
	ui.reportRejections(rejected)

	if len(accepted) == 0 {
		ui.showError(errors.New(ui.localization.GetText(KeyAllTooLarge)))
		return
	}

	ui.prepareForProcessing(len(accepted))
	go ui.runBatch(accepted)
}

// reportRejections shows one warning listing oversized files and an error per unreadable file
func (ui *RootUI) reportRejections(rejected []model.Rejection) {
	var warnings []string
	limitMB := ui.settings.GetMaxFileSizeMB()

	for _, r := range rejected {
		if r.Severity == model.SeverityWarning {
			warnings = append(warnings, fmt.Sprintf(ui.localization.GetText(KeyFileTooLarge), r.Name(), limitMB))
			continue
		}
		msg := fmt.Sprintf(ui.localization.GetText(KeyErrorCheckingFile), r.Path)
		ui.showError(fmt.Errorf("%s: %w", msg, r.Err))
	}

	if len(warnings) > 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyFileTooLargeTitle), strings.Join(warnings, "\n"), ui.window)
	}
}

// prepareForProcessing resets progress and preview and locks the upload controls
func (ui *RootUI) prepareForProcessing(count int) {
	ui.setBusy(true)
	ui.progress.SetValue(0)
	ui.resultLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProcessing), count))
	ui.preview.Image = nil
	ui.preview.Refresh()
	ui.selectedPath = ""
	ui.galleryList.UnselectAll()
}

// runBatch blocks until the batch completes; runs off the UI goroutine
func (ui *RootUI) runBatch(refs []model.ImageRef) {
	batch := ui.processor.Process(context.Background(), refs, ui.onProgress)
	succeeded, failed := batch.Summary()

	fyne.Do(func() {
		ui.progress.SetValue(1)
		ui.resultLabel.SetText(ui.summaryText(len(batch.Tasks), succeeded, failed))
		ui.setBusy(false)
		ui.refreshGallery(true)
	})
}

func (ui *RootUI) summaryText(total, succeeded, failed int) string {
	if failed == 0 {
		return fmt.Sprintf(ui.localization.GetText(KeyProcessedAll), total)
	}
	return fmt.Sprintf(ui.localization.GetText(KeyProcessedSome), total, succeeded, failed)
}

// onProgress is called from worker goroutines
func (ui *RootUI) onProgress(p model.Progress) {
	fyne.Do(func() {
		ui.progress.SetValue(p.Fraction())
	})
}

// onTaskError is called from worker goroutines; the service has already logged it
func (ui *RootUI) onTaskError(task *model.RemovalTask, err error) {
	fyne.Do(func() {
		ui.showError(fmt.Errorf("%s %s: %w", ui.localization.GetText(KeyErrorProcessing), task.InputPath, err))
	})
}

// setBusy toggles the controls that would start another batch
func (ui *RootUI) setBusy(busy bool) {
	ui.processing.Store(busy)
	for _, btn := range []*widget.Button{ui.uploadBtn, ui.uploadDirBtn, ui.settingsBtn} {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

// refreshGallery rescans the output directory. Interactive refreshes surface
// errors in a dialog; scheduled ones only log them.
func (ui *RootUI) refreshGallery(interactive bool) {
	entries, err := gallery.List(ui.processor.OutputDirectory())
	if err != nil {
		ui.logger.Error("error updating image list", "error", err)
		if interactive {
			ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorListing), err))
		}
		entries = nil
	}

	if !samePaths(ui.entries, entries) {
		ui.galleryList.UnselectAll()
	}
	ui.entries = entries
	ui.galleryList.Refresh()
}

func samePaths(a, b []gallery.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Path != b[i].Path {
			return false
		}
	}
	return true
}

// onGallerySelected shows a preview of the selected result
func (ui *RootUI) onGallerySelected(id widget.ListItemID) {
	if id < 0 || id >= len(ui.entries) {
		return
	}
	_ = ui.showPreview(ui.entries[id].Path)
}

// showPreview loads and displays a preview; on failure the previous image stays
func (ui *RootUI) showPreview(path string) error {
	img, err := gallery.LoadPreview(path, gallery.PreviewSize)
	if err != nil {
		ui.logger.Error("error displaying image", "file", path, "error", err)
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorDisplaying), err))
		return err
	}

	ui.preview.Image = img
	ui.preview.Refresh()
	ui.selectedPath = path
	return nil
}

// onViewResultFolder opens the output directory in the OS file manager
func (ui *RootUI) onViewResultFolder() {
	dir := ui.processor.OutputDirectory()
	if err := platform.OpenFolder(dir); err != nil {
		ui.logger.Error("error opening result folder", "folder", dir, "error", err)
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpenFolder), err))
	}
}

// onOpenSelected opens the previewed result with the default image viewer
func (ui *RootUI) onOpenSelected() {
	if ui.selectedPath == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyOpenImage), ui.localization.GetText(KeyNoSelection), ui.window)
		return
	}
	if err := platform.OpenFileWithDefaultApp(ui.selectedPath); err != nil {
		ui.logger.Error("error opening file", "file", ui.selectedPath, "error", err)
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.processing.Load() {
		ui.showBusy()
		return
	}
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes saved settings into the service, scheduler and texts
func (ui *RootUI) applySettings() {
	dir := ui.settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.logger.Error("failed to ensure output dir", "folder", dir, "error", err)
	}
	ui.processor.SetOutputDirectory(dir)
	ui.processor.SetMaxFileSize(ui.settings.GetMaxFileSizeBytes())
	ui.processor.SetWorkers(ui.settings.GetWorkers())

	remover, err := rembg.New(ui.settings.RemoverOptions())
	if err != nil {
		ui.logger.Error("failed to configure remover", "error", err)
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorRemover), err))
	} else {
		ui.processor.SetRemover(remover)
	}

	if err := ui.refresher.SetInterval(ui.settings.GetGalleryRefreshSeconds()); err != nil {
		ui.logger.Error("failed to schedule gallery refresh", "error", err)
	}

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.refreshGallery(true)
}

// showBusy tells the user a batch is still running
func (ui *RootUI) showBusy() {
	dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyBatchInProgress), ui.window)
}

// showError displays a modal error dialog
func (ui *RootUI) showError(err error) {
	dialog.ShowError(err, ui.window)
}
