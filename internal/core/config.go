package core

import "time"

type ProfileConfig interface {
	GetName() string
	GetNickname() string
	GetTagline() string
	GetSkills() []string
	GetEmail() string
	GetGitHubURL() string
	GetLinkedInURL() string
	GetProjects() []Project
	// GetSectionPath returns the Markdown override path of a section
	// ("about", "projects", "contact").
	GetSectionPath(section string) string
}

type WebConfig interface {
	GetListenAddr() string
	GetSessionTTL() time.Duration
}

type TelegramConfig interface {
	GetTelegramToken() string
}
