package config

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/pkg/log"
)

// ProfileConfig is the source of every canned command response.
type ProfileConfig struct {
	Name        string   `env:"PORTFOLIO_NAME" envDefault:"Jubayer Hossen"`
	Nickname    string   `env:"PORTFOLIO_NICKNAME" envDefault:"Jubayer"`
	Tagline     string   `env:"PORTFOLIO_TAGLINE" envDefault:"A passionate developer focused on building cool web projects."`
	Skills      []string `env:"PORTFOLIO_SKILLS" envDefault:"JavaScript,HTML,CSS,React,Python"`
	Email       string   `env:"PORTFOLIO_EMAIL" envDefault:"your.email@example.com"`
	GitHubURL   string   `env:"PORTFOLIO_GITHUB_URL" envDefault:"https://github.com/Jubayer-Hossen"`
	LinkedInURL string   `env:"PORTFOLIO_LINKEDIN_URL" envDefault:"https://linkedin.com/in/your-profile"`
	// Entries are "Name=URL"
	Projects []string `env:"PORTFOLIO_PROJECTS" envDefault:"Job Recruiting Agency=https://github.com/Jubayer-Hossen/JobRecruitingAgency,Chess=https://github.com/Jubayer-Hossen/Chess,FlappyBALs=https://github.com/Jubayer-Hossen/FlappyBALs"`

	sectionDir string
}

func NewProfileConfig(ctx context.Context, runtimePath string) *ProfileConfig {
	c := &ProfileConfig{sectionDir: runtimePath}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Profile config")
	}
	return c
}

func (c ProfileConfig) GetName() string {
	return c.Name
}

func (c ProfileConfig) GetNickname() string {
	return c.Nickname
}

func (c ProfileConfig) GetTagline() string {
	return c.Tagline
}

func (c ProfileConfig) GetSkills() []string {
	return c.Skills
}

func (c ProfileConfig) GetEmail() string {
	return c.Email
}

func (c ProfileConfig) GetGitHubURL() string {
	return c.GitHubURL
}

func (c ProfileConfig) GetLinkedInURL() string {
	return c.LinkedInURL
}

func (c ProfileConfig) GetProjects() []core.Project {
	projects := make([]core.Project, 0, len(c.Projects))
	for _, entry := range c.Projects {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, url, _ := strings.Cut(entry, "=")
		projects = append(projects, core.Project{
			Name: strings.TrimSpace(name),
			URL:  strings.TrimSpace(url),
		})
	}
	return projects
}

func (c ProfileConfig) GetSectionPath(section string) string {
	if c.sectionDir == "" {
		return ""
	}
	return filepath.Join(c.sectionDir, strings.ToUpper(section)+".md")
}
