package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/sandevgo/termfolio/pkg/log"
)

type execRequest struct {
	Input string `json:"input"`
}

type execResponse struct {
	Lines   []terminal.Line `json:"lines"`
	Scroll  terminal.Scroll `json:"scroll"`
	Enabled bool            `json:"enabled"`
}

type commandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type pageData struct {
	Title       string
	Prompt      string
	Shortcut    string
	HelpCommand string
	Permanent   []terminal.Element
	Lines       []terminal.Line
	Input       core.InputState
}

func cookieID(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// session returns the visitor's stored session, creating it and setting
// the cookie on first use.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *terminal.Session {
	id := cookieID(r)
	newID, sess := s.store.Get(id)
	if newID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// visitors get a stored session on their first command only
	sess, ok := s.store.Find(cookieID(r))
	if !ok {
		sess = s.store.Fresh()
	}
	snap := sess.Screen().Snapshot()

	data := pageData{
		Title:       s.title,
		Prompt:      core.PromptMarker,
		Shortcut:    core.HelpShortcut,
		HelpCommand: core.HelpCommand,
		Permanent:   snap.Permanent,
		Lines:       snap.Lines,
		Input:       sess.Gate().State(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to render page")
	}
}

func (s *Server) handleExec(w http.ResponseWriter, r *http.Request) {
	logger := log.FromCtx(r.Context())
	sess := s.session(w, r)

	var req execRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := sess.Execute(r.Context(), req.Input); err != nil {
		if errors.Is(err, terminal.ErrBusy) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		logger.Error().Err(err).Msg("dispatch failed")
		writeError(w, http.StatusInternalServerError, "dispatch failed")
		return
	}

	snap := sess.Screen().Snapshot()
	writeJSON(w, http.StatusOK, execResponse{
		Lines:   snap.Lines,
		Scroll:  snap.Scroll,
		Enabled: sess.Gate().Enabled(),
	})
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	commands := s.registry.ListCommands()
	res := make([]commandInfo, 0, len(commands))
	for _, cmd := range commands {
		res = append(res, commandInfo{Name: cmd.Name(), Description: cmd.Description()})
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
