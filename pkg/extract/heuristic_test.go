package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/resume-editor/pkg/resume"
)

const sampleResume = `Name: Jane Smith
jane@x.com

Summary
Builds things.

Experience
Acme Corp
Engineer
Shipped X.

Education
MIT
BS

Skills
Go, Rust, C++`

func TestParseText_FullSample(t *testing.T) {
	r, err := ParseText(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", r.PersonalInfo.Name)
	assert.Equal(t, "jane@x.com", r.PersonalInfo.Email)
	assert.Equal(t, "Builds things.", r.Summary)

	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Acme Corp", r.Experience[0].Company)
	assert.Equal(t, "Engineer", r.Experience[0].Position)
	assert.Equal(t, "Shipped X.", r.Experience[0].Description)

	require.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].Institution)
	assert.Equal(t, "BS", r.Education[0].Degree)

	require.Len(t, r.Skills, 3)
	for i, name := range []string{"Go", "Rust", "C++"} {
		assert.Equal(t, name, r.Skills[i].Name)
		assert.Equal(t, resume.LevelIntermediate, r.Skills[i].Level)
	}
}

// Headers followed by content on the same line, the way labeled resumes are
// often written.
func TestParseText_InlineHeaderContent(t *testing.T) {
	text := "Name: Jane Smith\nEmail: jane@x.com\nSummary: Builds things.\nExperience:\nAcme Corp\nEngineer\nShipped X.\n\nEducation:\nMIT\nBS\n\nSkills:\nGo, Rust, C++"

	r, err := ParseText(text)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", r.PersonalInfo.Name)
	assert.Equal(t, "jane@x.com", r.PersonalInfo.Email)
	assert.Equal(t, "Builds things.", r.Summary)
	require.Len(t, r.Experience, 1)
	assert.Equal(t, resume.Experience{Company: "Acme Corp", Position: "Engineer", Description: "Shipped X."}, r.Experience[0])
	require.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].Institution)
	assert.Equal(t, "BS", r.Education[0].Degree)
	require.Len(t, r.Skills, 3)
	assert.Equal(t, "C++", r.Skills[2].Name)
}

func TestParseText_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n\t  \n"} {
		_, err := ParseText(text)
		assert.ErrorIs(t, err, ErrNoText)
	}
}

func TestParseText_SectionOrderDoesNotMatter(t *testing.T) {
	reordered := `Skills
Go, Rust

Education
MIT
BS

Summary
Builds things.

Experience
Acme Corp
Engineer`

	r, err := ParseText(reordered)
	require.NoError(t, err)

	assert.Equal(t, "Builds things.", r.Summary)
	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Acme Corp", r.Experience[0].Company)
	require.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].Institution)
	assert.Len(t, r.Skills, 2)
}

func TestParseText_MissingSectionsDegradeToEmpty(t *testing.T) {
	r, err := ParseText("just some text with no recognizable structure at all")
	require.NoError(t, err)

	assert.Empty(t, r.Summary)
	assert.Empty(t, r.Experience)
	assert.Empty(t, r.Education)
	assert.Empty(t, r.Skills)
	assert.NotNil(t, r.Experience)
	assert.NotNil(t, r.Skills)
}

func TestParseText_DuplicateHeaderFirstWins(t *testing.T) {
	text := `Summary
First summary.

Summary
Second summary.`

	r, err := ParseText(text)
	require.NoError(t, err)
	assert.Equal(t, "First summary.", r.Summary)
}

func TestParseText_HeaderMidLineIsBodyText(t *testing.T) {
	text := `Summary
My experience includes Go and shipping software.`

	r, err := ParseText(text)
	require.NoError(t, err)
	assert.Equal(t, "My experience includes Go and shipping software.", r.Summary)
	assert.Empty(t, r.Experience)
}

func TestParseText_CRLFInput(t *testing.T) {
	r, err := ParseText("Summary\r\nBuilds things.\r\n\r\nSkills\r\nGo, Rust")
	require.NoError(t, err)
	assert.Equal(t, "Builds things.", r.Summary)
	assert.Len(t, r.Skills, 2)
}

func TestPersonalInfoFrom(t *testing.T) {
	tests := []struct {
		name string
		text string
		want resume.PersonalInfo
	}{
		{
			name: "labeled name and location",
			text: "Name: Jane Smith\nLocation: Berlin, Germany",
			want: resume.PersonalInfo{Name: "Jane Smith", Location: "Berlin, Germany"},
		},
		{
			name: "email and phone anywhere in the text",
			text: "reach me at jane.smith+jobs@example.co.uk or +1 (555) 123-4567 after 5pm",
			want: resume.PersonalInfo{Email: "jane.smith+jobs@example.co.uk", Phone: "+1 (555) 123-4567"},
		},
		{
			name: "linkedin and website",
			text: "profiles: linkedin.com/in/janesmith and https://janesmith.dev",
			want: resume.PersonalInfo{LinkedIn: "linkedin.com/in/janesmith", Website: "https://janesmith.dev"},
		},
		{
			name: "first email in document order wins",
			text: "first@x.com then second@y.com",
			want: resume.PersonalInfo{Email: "first@x.com"},
		},
		{
			name: "unlabeled name line is not recognized",
			text: "Jane Smith\nSoftware Engineer",
			want: resume.PersonalInfo{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, personalInfoFrom(tt.text))
		})
	}
}

func TestParseExperienceSection_MultipleBlocks(t *testing.T) {
	span := "Acme Corp\nEngineer\nShipped X.\nAnd Y.\n\nGlobex\nManager"

	got := parseExperienceSection(span)
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Corp", got[0].Company)
	assert.Equal(t, "Engineer", got[0].Position)
	assert.Equal(t, "Shipped X. And Y.", got[0].Description)
	assert.Equal(t, "Globex", got[1].Company)
	assert.Empty(t, got[1].Description)
}

func TestParseExperienceSection_SingleLineBlock(t *testing.T) {
	got := parseExperienceSection("Acme Corp")
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].Company)
	assert.Empty(t, got[0].Position)
}

func TestParseEducationSection_TrailingLinesBecomeDescription(t *testing.T) {
	got := parseEducationSection("MIT\nBS\nComputer Science\nGraduated with honors")
	require.Len(t, got, 1)
	assert.Equal(t, "MIT", got[0].Institution)
	assert.Equal(t, "BS", got[0].Degree)
	assert.Equal(t, "Computer Science Graduated with honors", got[0].Description)
	assert.Empty(t, got[0].Field)
	assert.Empty(t, got[0].GPA)
}

func TestParseSkillsSection(t *testing.T) {
	tests := []struct {
		name string
		span string
		want []string
	}{
		{"comma separated", "Go, Rust, C++", []string{"Go", "Rust", "C++"}},
		{"newline separated", "Go\nRust", []string{"Go", "Rust"}},
		{"mixed with blanks", "Go,,  , Rust\n\nC++", []string{"Go", "Rust", "C++"}},
		{"empty span", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSkillsSection(tt.span)
			require.Len(t, got, len(tt.want))
			for i, name := range tt.want {
				assert.Equal(t, name, got[i].Name)
				assert.Equal(t, resume.LevelIntermediate, got[i].Level)
			}
		})
	}
}
