// Package export serializes the resume aggregate for local download and for
// the saved-resume archive.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mkravets/resume-editor/pkg/resume"
)

// fallbackName stands in when the resume has no name to derive a filename from.
const fallbackName = "resume"

// Serialize renders the aggregate as the canonical human-readable document:
// two-space-indented JSON. The same bytes are offered for download and sent
// to the archive, so export and save never diverge.
func Serialize(r resume.Resume) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Filename derives the download name from the person's name and the calendar
// date: `{name-or-fallback}_{YYYY-MM-DD}.json`.
func Filename(r resume.Resume, now time.Time) string {
	name := r.PersonalInfo.Name
	if name == "" {
		name = fallbackName
	}
	return fmt.Sprintf("%s_%s.json", name, now.Format("2006-01-02"))
}
