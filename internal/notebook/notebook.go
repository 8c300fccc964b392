// Package notebook holds the research-notes logic: search, note creation,
// tag parsing, save bookkeeping and markdown preview.
package notebook

import (
	"fmt"
	"strings"
	"time"

	"github.com/aetheronum/controlroom/internal/model"
	"github.com/aetheronum/controlroom/internal/store"
)

// LogModule tags log entries written by the notebook.
const LogModule = "NOTEBOOK"

const placeholder = "Start writing your research notes here..."

// Filter returns the notes whose title, content or any tag contains term,
// ignoring case. An empty term matches everything.
func Filter(notes []model.Note, term string) []model.Note {
	term = strings.ToLower(term)
	var out []model.Note
	for _, n := range notes {
		if matches(n, term) {
			out = append(out, n)
		}
	}
	return out
}

func matches(n model.Note, term string) bool {
	if strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// NewNote builds a note titled title. A blank title yields false and no
// note.
func NewNote(title string, now time.Time, id string) (model.Note, bool) {
	if strings.TrimSpace(title) == "" {
		return model.Note{}, false
	}
	return model.Note{
		ID:          id,
		Title:       title,
		Content:     "# " + title + "\n\n" + placeholder,
		Tags:        []string{},
		Lab:         model.LabAI,
		Created:     now,
		Modified:    now,
		LinkedNotes: []string{},
	}, true
}

// ParseTags splits a comma-separated tag list, trimming blanks.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags is the inverse of ParseTags, used to seed the tag editor.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// Edit is a pending change to one note.
type Edit struct {
	Note    model.Note
	Content string
	Tags    string
}

// Save returns the actions that commit e: the note update followed by the
// notebook log line.
func Save(e Edit, user string, now time.Time, newID func() string) []store.Action {
	tags := ParseTags(e.Tags)
	stats := Compare(e.Note.Content, e.Content)
	return []store.Action{
		store.UpdateNote{ID: e.Note.ID, Patch: model.NotePatch{
			Content:  &e.Content,
			Tags:     &tags,
			Modified: &now,
		}},
		store.AddLog{Entry: model.LogEntry{
			ID:        newID(),
			Timestamp: now,
			Level:     model.LevelInfo,
			Module:    LogModule,
			Message:   SaveMessage(e.Note.Title, stats),
			User:      user,
		}},
	}
}

// SaveMessage is the log line written when a note is saved.
func SaveMessage(title string, s DiffStats) string {
	return fmt.Sprintf("Note updated: %s %s", title, s)
}
