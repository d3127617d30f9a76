package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/pkg/conv"
	"github.com/sandevgo/termfolio/pkg/log"
)

// SectionCommand answers with a canned profile section. A Markdown file at
// the profile's section path takes precedence over the generated text.
type SectionCommand struct {
	name        string
	description string
	path        string
	render      func() string
}

func (c *SectionCommand) Name() string {
	return c.name
}

func (c *SectionCommand) Description() string {
	return c.description
}

func (c *SectionCommand) Execute(ctx context.Context, out core.Output) (string, error) {
	if c.path == "" {
		return c.render(), nil
	}

	md, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c.render(), nil
		}
		return "", fmt.Errorf("failed to read %s section: %w", c.name, err)
	}

	text, err := conv.MarkdownToText(md)
	if err != nil {
		return "", err
	}
	log.FromCtx(ctx).Debug().Str("path", c.path).Msg("rendered section override")
	return text, nil
}

func NewAboutCommand(profile core.ProfileConfig) *SectionCommand {
	f := NewResponseFormatter()
	return &SectionCommand{
		name:        "about",
		description: "About me",
		path:        profile.GetSectionPath("about"),
		render: func() string {
			skills := ""
			if s := profile.GetSkills(); len(s) > 0 {
				skills = f.Label("Skills", strings.Join(s, ", ")+", and more.")
			}
			return f.Combine(profile.GetName(), profile.GetTagline(), skills)
		},
	}
}

func NewProjectsCommand(profile core.ProfileConfig) *SectionCommand {
	f := NewResponseFormatter()
	return &SectionCommand{
		name:        "projects",
		description: "List my projects",
		path:        profile.GetSectionPath("projects"),
		render: func() string {
			projects := profile.GetProjects()
			items := make([]string, 0, len(projects)+1)
			for _, p := range projects {
				if p.URL == "" {
					items = append(items, p.Name)
					continue
				}
				items = append(items, f.Label(p.Name, p.URL))
			}
			if profile.GetGitHubURL() != "" {
				items = append(items, "More on my GitHub!")
			}
			return f.Combine(f.Title("Some of my projects"), f.List(items))
		},
	}
}

func NewContactCommand(profile core.ProfileConfig) *SectionCommand {
	f := NewResponseFormatter()
	label := func(name, value string) string {
		if value == "" {
			return ""
		}
		return f.Label(name, value)
	}
	return &SectionCommand{
		name:        "contact",
		description: "Contact information",
		path:        profile.GetSectionPath("contact"),
		render: func() string {
			return f.Combine(
				f.Title("You can reach me at"),
				label("Email", profile.GetEmail()),
				label("GitHub", profile.GetGitHubURL()),
				label("LinkedIn", profile.GetLinkedInURL()),
			)
		},
	}
}
