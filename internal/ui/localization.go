package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyUploadImages      = "upload_images"
	KeyUploadFolder      = "upload_folder"
	KeyViewResultFolder  = "view_result_folder"
	KeyOpenImage         = "open_image"
	KeyRefresh           = "refresh"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyResults           = "results"
	KeyOutputDirectory   = "output_directory"
	KeyMaxFileSize       = "max_file_size"
	KeyWorkers           = "workers"
	KeyBackend           = "backend"
	KeyServerURL         = "server_url"
	KeyCommand           = "command"
	KeyModel             = "model"
	KeyGalleryRefresh    = "gallery_refresh"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyFileTooLargeTitle = "file_too_large_title"
	KeyFileTooLarge      = "file_too_large"
	KeyAllTooLarge       = "all_too_large"
	KeyErrorCheckingFile = "error_checking_file"
	KeyErrorProcessing   = "error_processing"
	KeyErrorDisplaying   = "error_displaying"
	KeyErrorListing      = "error_listing"
	KeyErrorOpenFolder   = "error_open_folder"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorRemover      = "error_remover"
	KeyProcessing        = "processing"
	KeyProcessedAll      = "processed_all"
	KeyProcessedSome     = "processed_some"
	KeyBatchInProgress   = "batch_in_progress"
	KeyNoImagesFound     = "no_images_found"
	KeyNoSelection       = "no_selection"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"id": "Bahasa Indonesia",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Background Removal App",
		KeyUploadImages:      "Upload Images",
		KeyUploadFolder:      "Upload Folder",
		KeyViewResultFolder:  "View Result Folder",
		KeyOpenImage:         "Open Image",
		KeyRefresh:           "Refresh",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyResults:           "Results",
		KeyOutputDirectory:   "Output Directory",
		KeyMaxFileSize:       "Max File Size (MB)",
		KeyWorkers:           "Workers (0 = one per CPU)",
		KeyBackend:           "Removal Backend",
		KeyServerURL:         "rembg Server URL",
		KeyCommand:           "rembg Command",
		KeyModel:             "Model",
		KeyGalleryRefresh:    "Gallery Auto-Refresh (seconds, 0 = off)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyFileTooLargeTitle: "File Too Large",
		KeyFileTooLarge:      "%s exceeds the maximum file size of %d MB.",
		KeyAllTooLarge:       "All selected files are too large to process.",
		KeyErrorCheckingFile: "Error checking file size for %s",
		KeyErrorProcessing:   "Error processing image",
		KeyErrorDisplaying:   "Error displaying image",
		KeyErrorListing:      "Error updating image list",
		KeyErrorOpenFolder:   "Error opening result folder",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorRemover:      "Error configuring background remover",
		KeyProcessing:        "Processing %d images...",
		KeyProcessedAll:      "Processed %d images successfully!",
		KeyProcessedSome:     "Processed %d images: %d succeeded, %d failed",
		KeyBatchInProgress:   "A batch is already being processed",
		KeyNoImagesFound:     "No images found in the selected folder",
		KeyNoSelection:       "Select an image in the results list first",
	}

	l.texts["id"] = map[string]string{
		KeyAppTitle:          "Aplikasi Penghapus Latar Belakang",
		KeyUploadImages:      "Unggah Gambar",
		KeyUploadFolder:      "Unggah Folder",
		KeyViewResultFolder:  "Lihat Folder Hasil",
		KeyOpenImage:         "Buka Gambar",
		KeyRefresh:           "Muat Ulang",
		KeySettings:          "Pengaturan",
		KeyFile:              "Berkas",
		KeyLanguage:          "Bahasa",
		KeyResults:           "Hasil",
		KeyOutputDirectory:   "Folder Keluaran",
		KeyMaxFileSize:       "Ukuran Berkas Maks. (MB)",
		KeyWorkers:           "Pekerja (0 = satu per CPU)",
		KeyBackend:           "Mesin Penghapus",
		KeyServerURL:         "URL Server rembg",
		KeyCommand:           "Perintah rembg",
		KeyModel:             "Model",
		KeyGalleryRefresh:    "Muat Ulang Galeri Otomatis (detik, 0 = mati)",
		KeySave:              "Simpan",
		KeyCancel:            "Batal",
		KeyBrowse:            "Telusuri",
		KeySettingsSaved:     "Pengaturan berhasil disimpan!",
		KeyFileTooLargeTitle: "Berkas Terlalu Besar",
		KeyFileTooLarge:      "%s melebihi ukuran berkas maksimum %d MB.",
		KeyAllTooLarge:       "Semua berkas yang dipilih terlalu besar untuk diproses.",
		KeyErrorCheckingFile: "Gagal memeriksa ukuran berkas %s",
		KeyErrorProcessing:   "Gagal memproses gambar",
		KeyErrorDisplaying:   "Gagal menampilkan gambar",
		KeyErrorListing:      "Gagal memperbarui daftar gambar",
		KeyErrorOpenFolder:   "Gagal membuka folder hasil",
		KeyErrorOpeningFile:  "Gagal membuka berkas",
		KeyErrorRemover:      "Gagal mengatur penghapus latar belakang",
		KeyProcessing:        "Memproses %d gambar...",
		KeyProcessedAll:      "Berhasil memproses %d gambar!",
		KeyProcessedSome:     "Memproses %d gambar: %d berhasil, %d gagal",
		KeyBatchInProgress:   "Sebuah batch sedang diproses",
		KeyNoImagesFound:     "Tidak ada gambar di folder yang dipilih",
		KeyNoSelection:       "Pilih gambar di daftar hasil terlebih dahulu",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Удаление фона",
		KeyUploadImages:      "Загрузить изображения",
		KeyUploadFolder:      "Загрузить папку",
		KeyViewResultFolder:  "Открыть папку результатов",
		KeyOpenImage:         "Открыть изображение",
		KeyRefresh:           "Обновить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyResults:           "Результаты",
		KeyOutputDirectory:   "Папка результатов",
		KeyMaxFileSize:       "Макс. размер файла (МБ)",
		KeyWorkers:           "Потоки (0 = по числу CPU)",
		KeyBackend:           "Способ удаления фона",
		KeyServerURL:         "URL сервера rembg",
		KeyCommand:           "Команда rembg",
		KeyModel:             "Модель",
		KeyGalleryRefresh:    "Автообновление галереи (сек., 0 = выкл.)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyFileTooLargeTitle: "Файл слишком большой",
		KeyFileTooLarge:      "%s превышает максимальный размер %d МБ.",
		KeyAllTooLarge:       "Все выбранные файлы слишком большие для обработки.",
		KeyErrorCheckingFile: "Ошибка проверки размера файла %s",
		KeyErrorProcessing:   "Ошибка обработки изображения",
		KeyErrorDisplaying:   "Ошибка отображения изображения",
		KeyErrorListing:      "Ошибка обновления списка изображений",
		KeyErrorOpenFolder:   "Ошибка открытия папки результатов",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorRemover:      "Ошибка настройки удаления фона",
		KeyProcessing:        "Обработка %d изображений...",
		KeyProcessedAll:      "Успешно обработано изображений: %d",
		KeyProcessedSome:     "Обработано %d изображений: %d успешно, %d с ошибкой",
		KeyBatchInProgress:   "Обработка уже выполняется",
		KeyNoImagesFound:     "В выбранной папке нет изображений",
		KeyNoSelection:       "Сначала выберите изображение в списке",
	}
}
