package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 480
)

// Widget texts
const (
	URLPlaceholder    = "Paste URL here"
	AudioButtonLabel  = "Download Audio (MP3 320)"
	VideoButtonLabel  = "Download Video (Best)"
	ImageButtonLabel  = "Download Thumbnail"
	SettingsMenuLabel = "Settings"
	FileMenuLabel     = "File"
)

// Dialog texts
const (
	MissingDepsTitle   = "Missing dependencies"
	MissingDepsFormat  = "Missing:\n\n%s\n\nInstall now?"
	InstallDoneTitle   = "Dependencies installed"
	InstallDoneMessage = "Installation finished. The application will restart."
	SettingsTitle      = "Settings"
)

// Log sizing
const (
	MaxLogLines = 500
)
