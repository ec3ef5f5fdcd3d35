// Package importer populates the resume store from uploaded documents:
// structured JSON validated against a shallow shape schema, or unstructured
// text run through the extraction heuristic.
package importer

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mkravets/resume-editor/pkg/extract"
	"github.com/mkravets/resume-editor/pkg/resume"
)

//go:embed resume.schema.json
var resumeSchema string

var (
	// ErrMalformedDocument: the upload is not parseable JSON at all.
	ErrMalformedDocument = errors.New("malformed resume document")
	// ErrInvalidShape: parseable JSON missing the required top-level members.
	ErrInvalidShape = errors.New("invalid resume structure")
)

var schema = gojsonschema.NewStringLoader(resumeSchema)

// Document is the structured import shape. Incoming entry identifiers are
// deliberately absent: imported ids are never trusted or reused.
type Document struct {
	PersonalInfo resume.PersonalInfo `json:"personalInfo"`
	Summary      string              `json:"summary"`
	Experience   []resume.Experience `json:"experience"`
	Education    []resume.Education  `json:"education"`
	Skills       []resume.Skill      `json:"skills"`
	Projects     []resume.Project    `json:"projects"`
}

// ImportJSON validates the raw document and applies it to the store. On any
// failure the store is left untouched; the import is all-or-nothing.
func ImportJSON(store *resume.Store, raw []byte) error {
	doc, err := decode(raw)
	if err != nil {
		return err
	}
	apply(store, doc)
	return nil
}

func decode(raw []byte) (Document, error) {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if !result.Valid() {
		var fields []string
		for _, e := range result.Errors() {
			fields = append(fields, e.String())
		}
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidShape, strings.Join(fields, "; "))
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}

// ImportText runs the extraction heuristic over unstructured resume text and
// applies the result with the same append policy as a structured import.
// Extraction never hard-fails on malformed sections; only completely empty
// text is an error (and leaves the store untouched).
func ImportText(store *resume.Store, text string) error {
	parsed, err := extract.ParseText(text)
	if err != nil {
		return err
	}
	apply(store, Document{
		PersonalInfo: parsed.PersonalInfo,
		Summary:      parsed.Summary,
		Experience:   parsed.Experience,
		Education:    parsed.Education,
		Skills:       parsed.Skills,
	})
	return nil
}

// apply replaces the scalar sections wholesale and appends every list
// element through the store so each gets a fresh identifier. Repeated
// imports accumulate duplicate entries; there is no deduplication.
func apply(store *resume.Store, doc Document) {
	store.SetPersonalInfo(doc.PersonalInfo)
	store.SetSummary(doc.Summary)
	for _, e := range doc.Experience {
		store.AddExperience(e)
	}
	for _, e := range doc.Education {
		store.AddEducation(e)
	}
	for _, sk := range doc.Skills {
		store.AddSkill(sk)
	}
	for _, p := range doc.Projects {
		store.AddProject(p)
	}
}
