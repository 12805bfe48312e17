package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Layout sizing
const (
	PreviewMinSize float32 = 250
	ProgressMinW   float32 = 400
	SplitOffset            = 0.6
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)
