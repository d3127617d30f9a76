package core

const (
	AppName    = "termfolio"
	AppVersion = "0.1.0"
)

const (
	// PromptMarker prefixes every echoed input line.
	PromptMarker = "$"
	// HelpShortcut dispatches the help command while the input is not focused.
	HelpShortcut = "?"
	HelpCommand  = "help"
)

type OutputLine struct {
	Content string `json:"content"`
	IsEcho  bool   `json:"echo"`
}

type InputState struct {
	Enabled bool   `json:"enabled"`
	Value   string `json:"value"`
	Focused bool   `json:"focused"`
}

type Project struct {
	Name string
	URL  string
}
