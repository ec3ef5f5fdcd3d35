package resume

// SkillLevel is the closed proficiency scale shown in the editor.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// PersonalInfo holds the contact block of a resume. All fields are free text;
// the extraction heuristic fills them best-effort, so no format is enforced.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is one entry of the work-history list.
// When Current is true, EndDate is conventionally empty; that convention is
// enforced at the edit boundary, not here.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one entry of the education list. Description carries whatever
// trailing lines the text heuristic could not map to a named field.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description,omitempty"`
}

// Skill is one entry of the skills list.
type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Project is one entry of the projects list. Projects are editable but are not
// produced by the text extraction heuristic.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// Resume is the complete aggregate the editor operates on. List order is
// insertion order and carries display meaning.
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// Clone returns a deep copy of the aggregate.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = append([]Experience{}, r.Experience...)
	out.Education = append([]Education{}, r.Education...)
	out.Skills = append([]Skill{}, r.Skills...)
	out.Projects = make([]Project, 0, len(r.Projects))
	for _, p := range r.Projects {
		p.Technologies = append([]string{}, p.Technologies...)
		out.Projects = append(out.Projects, p)
	}
	return out
}

// Empty returns a fresh aggregate with allocated (non-nil) lists so the JSON
// form always serializes lists as [].
func Empty() Resume {
	return Resume{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []Skill{},
		Projects:   []Project{},
	}
}
