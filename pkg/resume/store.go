package resume

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns the single in-memory resume aggregate and exposes a narrow
// mutation API over it. Entry identifiers are assigned here and only here;
// callers never bring their own. The editor serves concurrent HTTP requests,
// so every mutation and read goes through the mutex and no two updates
// interleave.
type Store struct {
	mu sync.Mutex
	r  Resume
}

// NewStore returns a store holding an empty aggregate.
func NewStore() *Store {
	return &Store{r: Empty()}
}

func newID() string {
	return uuid.NewString()
}

// Snapshot returns a deep copy of the current aggregate.
func (s *Store) Snapshot() Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Clone()
}

// Replace swaps the whole aggregate, re-assigning every entry identifier.
func (s *Store) Replace(r Resume) {
	r = r.Clone()
	for i := range r.Experience {
		r.Experience[i].ID = newID()
	}
	for i := range r.Education {
		r.Education[i].ID = newID()
	}
	for i := range r.Skills {
		r.Skills[i].ID = newID()
	}
	for i := range r.Projects {
		r.Projects[i].ID = newID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

// Reset drops everything and starts from an empty aggregate.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = Empty()
}

// SetPersonalInfo replaces the contact block wholesale.
func (s *Store) SetPersonalInfo(info PersonalInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.PersonalInfo = info
}

// PersonalInfoPatch carries partial contact-block edits; nil fields are left
// untouched.
type PersonalInfoPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	LinkedIn *string `json:"linkedin"`
	Website  *string `json:"website"`
}

// UpdatePersonalInfo shallow-merges the patch into the contact block.
func (s *Store) UpdatePersonalInfo(p PersonalInfoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	setStr(&s.r.PersonalInfo.Name, p.Name)
	setStr(&s.r.PersonalInfo.Email, p.Email)
	setStr(&s.r.PersonalInfo.Phone, p.Phone)
	setStr(&s.r.PersonalInfo.Location, p.Location)
	setStr(&s.r.PersonalInfo.LinkedIn, p.LinkedIn)
	setStr(&s.r.PersonalInfo.Website, p.Website)
}

// SetSummary replaces the summary string.
func (s *Store) SetSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Summary = summary
}

// AddExperience appends the entry with a freshly assigned identifier and
// returns that identifier.
func (s *Store) AddExperience(e Experience) string {
	e.ID = newID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Experience = append(s.r.Experience, e)
	return e.ID
}

// ExperiencePatch carries partial edits to one experience entry.
type ExperiencePatch struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Current     *bool   `json:"current"`
	Description *string `json:"description"`
}

// UpdateExperience merges the patch into the entry matching id. Unknown ids
// are a silent no-op: stale edits from the UI are tolerated, not errors.
func (s *Store) UpdateExperience(id string, p ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.r.Experience {
		if s.r.Experience[i].ID != id {
			continue
		}
		e := &s.r.Experience[i]
		setStr(&e.Company, p.Company)
		setStr(&e.Position, p.Position)
		setStr(&e.StartDate, p.StartDate)
		setStr(&e.EndDate, p.EndDate)
		if p.Current != nil {
			e.Current = *p.Current
		}
		setStr(&e.Description, p.Description)
		return
	}
}

// RemoveExperience filters the entry out; no-op if absent.
func (s *Store) RemoveExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Experience = removeByID(s.r.Experience, id, func(e Experience) string { return e.ID })
}

// AddEducation appends the entry with a freshly assigned identifier.
func (s *Store) AddEducation(e Education) string {
	e.ID = newID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Education = append(s.r.Education, e)
	return e.ID
}

// EducationPatch carries partial edits to one education entry.
type EducationPatch struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	GPA         *string `json:"gpa"`
	Description *string `json:"description"`
}

// UpdateEducation merges the patch into the entry matching id; silent no-op
// if absent.
func (s *Store) UpdateEducation(id string, p EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.r.Education {
		if s.r.Education[i].ID != id {
			continue
		}
		e := &s.r.Education[i]
		setStr(&e.Institution, p.Institution)
		setStr(&e.Degree, p.Degree)
		setStr(&e.Field, p.Field)
		setStr(&e.StartDate, p.StartDate)
		setStr(&e.EndDate, p.EndDate)
		setStr(&e.GPA, p.GPA)
		setStr(&e.Description, p.Description)
		return
	}
}

// RemoveEducation filters the entry out; no-op if absent.
func (s *Store) RemoveEducation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Education = removeByID(s.r.Education, id, func(e Education) string { return e.ID })
}

// AddSkill appends the entry with a freshly assigned identifier.
func (s *Store) AddSkill(sk Skill) string {
	sk.ID = newID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Skills = append(s.r.Skills, sk)
	return sk.ID
}

// SkillPatch carries partial edits to one skill entry.
type SkillPatch struct {
	Name  *string     `json:"name"`
	Level *SkillLevel `json:"level"`
}

// UpdateSkill merges the patch into the entry matching id; silent no-op if
// absent.
func (s *Store) UpdateSkill(id string, p SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.r.Skills {
		if s.r.Skills[i].ID != id {
			continue
		}
		if p.Name != nil {
			s.r.Skills[i].Name = *p.Name
		}
		if p.Level != nil {
			s.r.Skills[i].Level = *p.Level
		}
		return
	}
}

// RemoveSkill filters the entry out; no-op if absent.
func (s *Store) RemoveSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Skills = removeByID(s.r.Skills, id, func(sk Skill) string { return sk.ID })
}

// AddProject appends the entry with a freshly assigned identifier.
func (s *Store) AddProject(p Project) string {
	p.ID = newID()
	p.Technologies = append([]string{}, p.Technologies...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Projects = append(s.r.Projects, p)
	return p.ID
}

// ProjectPatch carries partial edits to one project entry.
type ProjectPatch struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	URL          *string   `json:"url"`
}

// UpdateProject merges the patch into the entry matching id; silent no-op if
// absent.
func (s *Store) UpdateProject(id string, p ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.r.Projects {
		if s.r.Projects[i].ID != id {
			continue
		}
		e := &s.r.Projects[i]
		setStr(&e.Name, p.Name)
		setStr(&e.Description, p.Description)
		if p.Technologies != nil {
			e.Technologies = append([]string{}, (*p.Technologies)...)
		}
		setStr(&e.URL, p.URL)
		return
	}
}

// RemoveProject filters the entry out; no-op if absent.
func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Projects = removeByID(s.r.Projects, id, func(p Project) string { return p.ID })
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func removeByID[T any](list []T, id string, idOf func(T) string) []T {
	out := list[:0]
	for _, e := range list {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	return out
}
