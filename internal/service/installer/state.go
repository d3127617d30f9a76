package installer

const (
	keyName           = "PORTFOLIO_NAME"
	keyNickname       = "PORTFOLIO_NICKNAME"
	keyTagline        = "PORTFOLIO_TAGLINE"
	keySkills         = "PORTFOLIO_SKILLS"
	keyEmail          = "PORTFOLIO_EMAIL"
	keyGitHubURL      = "PORTFOLIO_GITHUB_URL"
	keyLinkedInURL    = "PORTFOLIO_LINKEDIN_URL"
	keyProjects       = "PORTFOLIO_PROJECTS"
	keyEnableTelegram = "TERMFOLIO_ENABLE_TELEGRAM"
	keyTelegramToken  = "TERMFOLIO_TELEGRAM_TOKEN"
	keyDebug          = "TERMFOLIO_DEBUG"
)

type InstallState struct {
	EnvVars map[string]string
}

func NewInstallState() *InstallState {
	return &InstallState{
		EnvVars: make(map[string]string),
	}
}

func (s *InstallState) telegramSelected() bool {
	return s.EnvVars[keyEnableTelegram] == "true"
}
