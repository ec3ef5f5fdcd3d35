package resume

// Demo returns the sample resume used by the "Load Demo" action. Identifiers
// are left empty; Store.Replace assigns them on load.
func Demo() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			Name:     "John Doe",
			Email:    "john.doe@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/johndoe",
			Website:  "johndoe.dev",
		},
		Summary: "Experienced full-stack developer with 5+ years of expertise in React, Node.js, and cloud technologies. " +
			"Passionate about building scalable web applications and leading development teams.",
		Experience: []Experience{
			{
				Company:     "Tech Corp",
				Position:    "Senior Software Engineer",
				StartDate:   "2022-01",
				Current:     true,
				Description: "Led development of microservices architecture, implemented CI/CD pipelines, and mentored junior developers.",
			},
			{
				Company:     "StartupXYZ",
				Position:    "Full Stack Developer",
				StartDate:   "2020-06",
				EndDate:     "2021-12",
				Description: "Built responsive web applications using React and Node.js, integrated payment systems, and optimized database performance.",
			},
		},
		Education: []Education{
			{
				Institution: "University of Technology",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "2016-09",
				EndDate:     "2020-05",
				GPA:         "3.8",
			},
		},
		Skills: []Skill{
			{Name: "JavaScript", Level: LevelExpert},
			{Name: "React", Level: LevelExpert},
			{Name: "Node.js", Level: LevelAdvanced},
			{Name: "Python", Level: LevelIntermediate},
			{Name: "AWS", Level: LevelAdvanced},
		},
		Projects: []Project{
			{
				Name:         "E-commerce Platform",
				Description:  "Built a full-stack e-commerce platform with React, Node.js, and PostgreSQL.",
				Technologies: []string{"React", "Node.js", "PostgreSQL", "Stripe"},
				URL:          "https://github.com/johndoe/ecommerce",
			},
		},
	}
}
