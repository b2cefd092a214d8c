// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type transcribeStage int

const (
	transcribeStagePath transcribeStage = iota
	transcribeStageUploading
	transcribeStageEdit
	transcribeStageSaving
)

// transcribeForm walks through picking a file, waiting for the server and
// editing the text before it becomes a note.
type transcribeForm struct {
	stage         transcribeStage
	path          textinput.Model
	title         textinput.Model
	text          textarea.Model
	editTitle     bool
	transcription models.Transcription
}

func newTranscribeForm() transcribeForm {
	path := textinput.New()
	path.Placeholder = "path to an audio file"
	path.CharLimit = 1024
	path.Width = 60

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 50

	text := textarea.New()
	text.SetWidth(60)
	text.SetHeight(10)

	return transcribeForm{path: path, title: title, text: text}
}

func (f *transcribeForm) init() tea.Cmd {
	return f.path.Focus()
}

func (m mainLoopModel) updateTranscribe(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.transcribe

	switch msg := msg.(type) {
	case transcribedMsg:
		if msg.err != nil {
			f.stage = transcribeStagePath
			m.setError(msg.err)
			cmd := f.path.Focus()
			return m, cmd
		}
		f.transcription = msg.transcription
		f.stage = transcribeStageEdit
		f.text.SetValue(msg.transcription.Text)
		f.title.SetValue(titleFromFile(f.path.Value()))
		f.editTitle = false
		m.setStatus("Review the text, then press ctrl+s to save it as a note")
		cmd := f.text.Focus()
		return m, cmd
	case transcriptSavedMsg:
		if msg.err != nil {
			f.stage = transcribeStageEdit
			m.setError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.setStatus("Note created from recording")
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			m.screen = screenList
			m.status, m.errMsg = "", ""
			return m, nil
		}

		switch f.stage {
		case transcribeStagePath:
			if key.Matches(msg, keys.enter) {
				return m.startTranscription()
			}
		case transcribeStageEdit:
			switch {
			case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
				f.editTitle = !f.editTitle
				if f.editTitle {
					f.text.Blur()
					cmd := f.title.Focus()
					return m, cmd
				}
				f.title.Blur()
				cmd := f.text.Focus()
				return m, cmd
			case key.Matches(msg, keys.save):
				text := strings.TrimSpace(f.text.Value())
				if text == "" {
					m.errMsg = "The text is empty"
					return m, nil
				}
				f.stage = transcribeStageSaving
				return m, m.cmdSaveTranscript(f.transcription.ID, text, strings.TrimSpace(f.title.Value()))
			}
		default:
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch {
	case f.stage == transcribeStagePath:
		f.path, cmd = f.path.Update(msg)
	case f.stage == transcribeStageEdit && f.editTitle:
		f.title, cmd = f.title.Update(msg)
	case f.stage == transcribeStageEdit:
		f.text, cmd = f.text.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) startTranscription() (tea.Model, tea.Cmd) {
	path := expandHome(strings.TrimSpace(m.transcribe.path.Value()))
	if path == "" {
		m.errMsg = "Enter the path of an audio file"
		return m, nil
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		m.errMsg = "No audio file at " + path
		return m, nil
	}

	m.transcribe.stage = transcribeStageUploading
	m.transcribe.path.Blur()
	m.setStatus("Transcribing " + filepath.Base(path) + "...")

	ctx, transcriptions := m.ctx, m.services.TranscriptionService
	return m, func() tea.Msg {
		t, err := transcriptions.TranscribeFile(ctx, path)
		return transcribedMsg{transcription: t, err: err}
	}
}

// cmdSaveTranscript finalizes the edited text and files it as a note.
func (m mainLoopModel) cmdSaveTranscript(transcriptionID, text, title string) tea.Cmd {
	ctx, transcriptions := m.ctx, m.services.TranscriptionService
	return func() tea.Msg {
		t, err := transcriptions.Finalize(ctx, transcriptionID, text)
		if err != nil {
			return transcriptSavedMsg{err: err}
		}
		id, err := transcriptions.CreateNote(ctx, t, title)
		return transcriptSavedMsg{noteID: id, err: err}
	}
}

func (m mainLoopModel) viewTranscribe() string {
	f := m.transcribe

	var b strings.Builder
	switch f.stage {
	case transcribeStagePath:
		b.WriteString("File │ [")
		b.WriteString(f.path.View())
		b.WriteString("]\n")
	case transcribeStageUploading:
		b.WriteString("Uploading and transcribing, this can take a while...\n")
	default:
		b.WriteString("Title │ [")
		b.WriteString(f.title.View())
		b.WriteString("]\n\n")
		b.WriteString(f.text.View())
		b.WriteString("\n")
		if f.stage == transcribeStageSaving {
			b.WriteString("\n[Saving...]\n")
		}
	}

	hotKeys := "enter: transcribe │ esc: cancel"
	if f.stage >= transcribeStageEdit {
		hotKeys = "ctrl+s: save note │ tab: title/text │ esc: discard"
	}
	return renderPage("TRANSCRIBE RECORDING", strings.TrimRight(b.String(), "\n")+m.footer(), hotKeys)
}

func titleFromFile(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
