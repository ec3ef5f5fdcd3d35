package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_StartsEmpty(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()

	assert.Equal(t, PersonalInfo{}, snap.PersonalInfo)
	assert.Empty(t, snap.Summary)
	assert.NotNil(t, snap.Experience)
	assert.NotNil(t, snap.Education)
	assert.NotNil(t, snap.Skills)
	assert.NotNil(t, snap.Projects)
	assert.Len(t, snap.Experience, 0)
}

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := NewStore()

	ids := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := s.AddSkill(Skill{Name: "Go", Level: LevelIntermediate})
		require.NotEmpty(t, id)
		require.False(t, ids[id], "identifier reused: %s", id)
		ids[id] = true
	}
	assert.Len(t, s.Snapshot().Skills, 100)
}

func TestStore_AddIgnoresCallerID(t *testing.T) {
	s := NewStore()

	id := s.AddExperience(Experience{ID: "caller-supplied", Company: "Acme"})

	assert.NotEqual(t, "caller-supplied", id)
	snap := s.Snapshot()
	require.Len(t, snap.Experience, 1)
	assert.Equal(t, id, snap.Experience[0].ID)
}

func TestStore_UpdateSkill(t *testing.T) {
	s := NewStore()
	id := s.AddSkill(Skill{Name: "Go", Level: LevelIntermediate})

	level := LevelExpert
	s.UpdateSkill(id, SkillPatch{Level: &level})

	snap := s.Snapshot()
	require.Len(t, snap.Skills, 1)
	assert.Equal(t, id, snap.Skills[0].ID)
	assert.Equal(t, "Go", snap.Skills[0].Name)
	assert.Equal(t, LevelExpert, snap.Skills[0].Level)
}

func TestStore_UpdateUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	id := s.AddExperience(Experience{Company: "Acme", Position: "Engineer"})

	pos := "Manager"
	s.UpdateExperience("no-such-id", ExperiencePatch{Position: &pos})

	snap := s.Snapshot()
	require.Len(t, snap.Experience, 1)
	assert.Equal(t, id, snap.Experience[0].ID)
	assert.Equal(t, "Engineer", snap.Experience[0].Position)
}

func TestStore_PatchLeavesUnsetFieldsAlone(t *testing.T) {
	s := NewStore()
	id := s.AddExperience(Experience{
		Company:     "Acme",
		Position:    "Engineer",
		StartDate:   "2020-01",
		Description: "Shipped X.",
	})

	company := "Globex"
	current := true
	s.UpdateExperience(id, ExperiencePatch{Company: &company, Current: &current})

	got := s.Snapshot().Experience[0]
	assert.Equal(t, "Globex", got.Company)
	assert.True(t, got.Current)
	assert.Equal(t, "Engineer", got.Position)
	assert.Equal(t, "2020-01", got.StartDate)
	assert.Equal(t, "Shipped X.", got.Description)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	keep := s.AddEducation(Education{Institution: "MIT", Degree: "BS"})
	drop := s.AddEducation(Education{Institution: "Stanford", Degree: "MS"})

	s.RemoveEducation(drop)
	s.RemoveEducation(drop)
	s.RemoveEducation("never-existed")

	snap := s.Snapshot()
	require.Len(t, snap.Education, 1)
	assert.Equal(t, keep, snap.Education[0].ID)
}

func TestStore_UpdatePersonalInfoMergesPartial(t *testing.T) {
	s := NewStore()
	s.SetPersonalInfo(PersonalInfo{Name: "Jane Smith", Email: "jane@x.com", Phone: "555-0100"})

	email := "jane@y.com"
	s.UpdatePersonalInfo(PersonalInfoPatch{Email: &email})

	info := s.Snapshot().PersonalInfo
	assert.Equal(t, "Jane Smith", info.Name)
	assert.Equal(t, "jane@y.com", info.Email)
	assert.Equal(t, "555-0100", info.Phone)
}

func TestStore_ReplaceAssignsFreshIDs(t *testing.T) {
	s := NewStore()
	s.Replace(Demo())
	first := s.Snapshot()
	s.Replace(Demo())
	second := s.Snapshot()

	require.NotEmpty(t, first.Skills)
	for i := range first.Skills {
		assert.NotEmpty(t, first.Skills[i].ID)
		assert.NotEqual(t, first.Skills[i].ID, second.Skills[i].ID)
	}
	require.NotEmpty(t, first.Experience)
	assert.NotEqual(t, first.Experience[0].ID, second.Experience[0].ID)
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.Replace(Demo())
	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, PersonalInfo{}, snap.PersonalInfo)
	assert.Empty(t, snap.Summary)
	assert.Len(t, snap.Experience, 0)
	assert.Len(t, snap.Skills, 0)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := NewStore()
	s.AddProject(Project{Name: "Editor", Technologies: []string{"Go"}})

	snap := s.Snapshot()
	snap.Projects[0].Name = "mutated"
	snap.Projects[0].Technologies[0] = "mutated"
	snap.Summary = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "Editor", fresh.Projects[0].Name)
	assert.Equal(t, []string{"Go"}, fresh.Projects[0].Technologies)
	assert.Empty(t, fresh.Summary)
}

func TestStore_UpdateProjectReplacesTechnologies(t *testing.T) {
	s := NewStore()
	id := s.AddProject(Project{Name: "Editor", Technologies: []string{"Go"}})

	techs := []string{"Go", "Postgres"}
	s.UpdateProject(id, ProjectPatch{Technologies: &techs})
	techs[1] = "mutated after the call"

	got := s.Snapshot().Projects[0]
	assert.Equal(t, []string{"Go", "Postgres"}, got.Technologies)
}

func TestStore_ListOrderIsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddSkill(Skill{Name: "Go", Level: LevelExpert})
	s.AddSkill(Skill{Name: "Rust", Level: LevelBeginner})
	s.AddSkill(Skill{Name: "C++", Level: LevelAdvanced})

	var names []string
	for _, sk := range s.Snapshot().Skills {
		names = append(names, sk.Name)
	}
	assert.Equal(t, []string{"Go", "Rust", "C++"}, names)
}
