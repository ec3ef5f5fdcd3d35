package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mkravets/resume-editor/pkg/resume"
)

// ErrNoText is the only hard failure of the heuristic: the upstream file
// extraction produced no text at all. Everything else degrades to empty
// fields and lists.
var ErrNoText = errors.New("no text extracted from resume")

var (
	reName     = regexp.MustCompile(`(?im)^[ \t]*name[ \t]*[:\-][ \t]*(.*)$`)
	reLocation = regexp.MustCompile(`(?im)^[ \t]*location[ \t]*[:\-][ \t]*(.*)$`)
	reEmail    = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	rePhone    = regexp.MustCompile(`\+?\d[\d \-().]{7,}\d`)
	reLinkedIn = regexp.MustCompile(`(?i)linkedin\.com/[^\s)]+`)
	reWebsite  = regexp.MustCompile(`(?i)https?://[^\s)]+`)

	// A recognized section header starts a line; the separator after the
	// label is optional. Header words appearing mid-line are body text.
	reHeader = regexp.MustCompile(`(?im)^[ \t]*(summary|experience|education|skills)\b[:\-]?[ \t]*`)

	reBlockSep = regexp.MustCompile(`\n{2,}`)
	reSkillSep = regexp.MustCompile(`[,\n]`)
)

// ParseText runs the full extraction pipeline over unstructured resume text
// and returns an aggregate with empty entry identifiers (the store assigns
// them on import).
func ParseText(text string) (resume.Resume, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return resume.Resume{}, ErrNoText
	}
	sections := segmentSections(text)
	out := resume.Empty()
	out.PersonalInfo = personalInfoFrom(text)
	out.Summary = sections["summary"]
	out.Experience = parseExperienceSection(sections["experience"])
	out.Education = parseEducationSection(sections["education"])
	out.Skills = parseSkillsSection(sections["skills"])
	return out, nil
}

// personalInfoFrom searches the whole document independently per field.
// First match in document order wins; a phone-shaped substring inside an
// address or ID number will be picked up just the same. Known limitation.
func personalInfoFrom(text string) resume.PersonalInfo {
	info := resume.PersonalInfo{}
	if m := reName.FindStringSubmatch(text); m != nil {
		info.Name = strings.TrimSpace(m[1])
	}
	info.Email = reEmail.FindString(text)
	info.Phone = rePhone.FindString(text)
	if m := reLocation.FindStringSubmatch(text); m != nil {
		info.Location = strings.TrimSpace(m[1])
	}
	info.LinkedIn = reLinkedIn.FindString(text)
	info.Website = reWebsite.FindString(text)
	return info
}

// segmentSections locates the four recognized headers wherever they begin a
// line and captures the text between each header and the next one, in
// whatever order the document uses. The first occurrence of a header wins;
// any later header occurrence still terminates the span before it. Absent
// headers yield empty sections.
func segmentSections(text string) map[string]string {
	sections := map[string]string{
		"summary":    "",
		"experience": "",
		"education":  "",
		"skills":     "",
	}
	matches := reHeader.FindAllStringSubmatchIndex(text, -1)
	seen := map[string]bool{}
	for i, m := range matches {
		name := strings.ToLower(text[m[2]:m[3]])
		if seen[name] {
			continue
		}
		seen[name] = true
		spanEnd := len(text)
		if i+1 < len(matches) {
			spanEnd = matches[i+1][0]
		}
		sections[name] = strings.TrimSpace(text[m[1]:spanEnd])
	}
	return sections
}

// blockLines splits a section span into blank-line-delimited blocks, each a
// slice of trimmed non-empty lines. Empty blocks are dropped.
func blockLines(span string) [][]string {
	if span == "" {
		return nil
	}
	var blocks [][]string
	for _, block := range reBlockSep.Split(span, -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			blocks = append(blocks, lines)
		}
	}
	return blocks
}

// parseExperienceSection maps each block to one experience entry: first line
// company, second line position, the rest joined into the description. Dates
// are never pulled out of free text.
func parseExperienceSection(span string) []resume.Experience {
	out := []resume.Experience{}
	for _, lines := range blockLines(span) {
		e := resume.Experience{Company: lines[0]}
		if len(lines) > 1 {
			e.Position = lines[1]
		}
		if len(lines) > 2 {
			e.Description = strings.Join(lines[2:], " ")
		}
		if e.Company == "" && e.Position == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// parseEducationSection mirrors the experience mapping: institution, degree,
// remaining lines as description. Field, GPA and dates stay empty.
func parseEducationSection(span string) []resume.Education {
	out := []resume.Education{}
	for _, lines := range blockLines(span) {
		e := resume.Education{Institution: lines[0]}
		if len(lines) > 1 {
			e.Degree = lines[1]
		}
		if len(lines) > 2 {
			e.Description = strings.Join(lines[2:], " ")
		}
		if e.Institution == "" && e.Degree == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// parseSkillsSection splits on commas and line breaks alike; free text has no
// proficiency information, so every skill gets the Intermediate default.
func parseSkillsSection(span string) []resume.Skill {
	out := []resume.Skill{}
	for _, tok := range reSkillSep.Split(span, -1) {
		if tok = strings.TrimSpace(tok); tok == "" {
			continue
		}
		out = append(out, resume.Skill{Name: tok, Level: resume.LevelIntermediate})
	}
	return out
}
