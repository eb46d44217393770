package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func strPtr(s string) *string { return &s }

func TestNew_NilSeedsSample(t *testing.T) {
	s := New(nil)

	r := s.Current()
	require.NotNil(t, r)
	assert.NotEmpty(t, r.PersonalInfo.Name)
	assert.Len(t, r.Sections, 3)
}

func TestUpdatePersonalInfo_PatchSemantics(t *testing.T) {
	before := Seed()

	after := UpdatePersonalInfo(before, PersonalInfoPatch{
		Name:  strPtr("Riley Quinn"),
		Email: strPtr(""),
	})

	assert.Equal(t, "Riley Quinn", after.PersonalInfo.Name)
	assert.Empty(t, after.PersonalInfo.Email, "explicit empty string clears the field")
	assert.Equal(t, before.PersonalInfo.Phone, after.PersonalInfo.Phone, "nil field is untouched")
	assert.NotEmpty(t, before.PersonalInfo.Email, "prior snapshot must not change")
}

func TestUpdateSettings_PatchSemantics(t *testing.T) {
	before := Seed()

	size := 11
	after := UpdateSettings(before, SettingsPatch{FontSize: &size})

	assert.Equal(t, 11, after.Settings.FontSize)
	assert.Equal(t, before.Settings.FontFamily, after.Settings.FontFamily)
	assert.Equal(t, 12, before.Settings.FontSize)
}

func TestAddSection(t *testing.T) {
	before := Seed()

	after := AddSection(before, "Projects")

	require.Len(t, after.Sections, len(before.Sections)+1)
	added := after.Sections[len(after.Sections)-1]
	assert.Equal(t, "Projects", added.Name)
	assert.NotEmpty(t, added.ID)
	assert.Empty(t, added.Points)
}

func TestRenameSection(t *testing.T) {
	before := Seed()
	id := before.Sections[0].ID

	after := RenameSection(before, id, "Work History")

	assert.Equal(t, "Work History", after.Sections[0].Name)
	assert.Equal(t, "Experience", before.Sections[0].Name)
}

func TestRenameSection_UnknownIDIsNoOp(t *testing.T) {
	before := Seed()

	after := RenameSection(before, "missing", "Anything")

	assert.Equal(t, before, after)
	assert.NotSame(t, before, after, "still a fresh snapshot")
}

func TestDeleteSection(t *testing.T) {
	before := Seed()
	id := before.Sections[1].ID

	after := DeleteSection(before, id)

	require.Len(t, after.Sections, 2)
	assert.Equal(t, "Experience", after.Sections[0].Name)
	assert.Equal(t, "Education", after.Sections[1].Name)
	assert.Len(t, before.Sections, 3)
}

func TestMoveSectionUp(t *testing.T) {
	before := Seed()
	id := before.Sections[1].ID

	after := MoveSectionUp(before, id)

	assert.Equal(t, "Skills", after.Sections[0].Name)
	assert.Equal(t, "Experience", after.Sections[1].Name)
}

func TestMoveSectionUp_FirstIsNoOp(t *testing.T) {
	before := Seed()

	after := MoveSectionUp(before, before.Sections[0].ID)

	assert.Equal(t, before.Sections, after.Sections)
}

func TestMoveSectionDown(t *testing.T) {
	before := Seed()
	id := before.Sections[1].ID

	after := MoveSectionDown(before, id)

	assert.Equal(t, "Education", after.Sections[1].Name)
	assert.Equal(t, "Skills", after.Sections[2].Name)
}

func TestMoveSectionDown_LastIsNoOp(t *testing.T) {
	before := Seed()
	last := before.Sections[len(before.Sections)-1].ID

	after := MoveSectionDown(before, last)

	assert.Equal(t, before.Sections, after.Sections)
}

func TestAddBullet(t *testing.T) {
	before := Seed()
	id := before.Sections[0].ID

	after := AddBullet(before, id, "Shipped the thing")

	pts := after.Sections[0].Points
	require.Len(t, pts, len(before.Sections[0].Points)+1)
	assert.Equal(t, "Shipped the thing", pts[len(pts)-1].Text)
	assert.NotEmpty(t, pts[len(pts)-1].ID)
}

func TestUpdateBullet(t *testing.T) {
	before := Seed()
	sec := before.Sections[0]

	after := UpdateBullet(before, sec.ID, sec.Points[0].ID, "Rewritten")

	assert.Equal(t, "Rewritten", after.Sections[0].Points[0].Text)
	assert.NotEqual(t, "Rewritten", before.Sections[0].Points[0].Text)
}

func TestDeleteBullet(t *testing.T) {
	before := Seed()
	sec := before.Sections[0]

	after := DeleteBullet(before, sec.ID, sec.Points[1].ID)

	require.Len(t, after.Sections[0].Points, 2)
	assert.Equal(t, sec.Points[0].ID, after.Sections[0].Points[0].ID)
	assert.Equal(t, sec.Points[2].ID, after.Sections[0].Points[1].ID)
	assert.Len(t, before.Sections[0].Points, 3)
}

func TestStore_ApplySwapsSnapshot(t *testing.T) {
	s := New(nil)
	before := s.Current()

	after := s.Apply(func(r *types.Resume) *types.Resume {
		return AddSection(r, "Projects")
	})

	assert.Same(t, after, s.Current())
	assert.NotSame(t, before, after)
	assert.Len(t, before.Sections, 3)
	assert.Len(t, after.Sections, 4)
}

func TestStore_Replace(t *testing.T) {
	s := New(nil)
	custom := &types.Resume{PersonalInfo: types.PersonalInfo{Name: "Custom"}}

	s.Replace(custom)
	assert.Same(t, custom, s.Current())

	s.Replace(nil)
	assert.NotNil(t, s.Current())
	assert.NotEqual(t, "Custom", s.Current().PersonalInfo.Name)
}

func TestStore_ConcurrentApply(t *testing.T) {
	s := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply(func(r *types.Resume) *types.Resume {
				return AddSection(r, "Extra")
			})
		}()
	}
	wg.Wait()

	assert.Len(t, s.Current().Sections, 23)
}

func TestReducers_NilResumeSeedsSample(t *testing.T) {
	added := AddSection(nil, "Projects")
	assert.Len(t, added.Sections, 4)

	patched := UpdatePersonalInfo(nil, PersonalInfoPatch{Name: strPtr("Nil Start")})
	assert.Equal(t, "Nil Start", patched.PersonalInfo.Name)

	assert.NotNil(t, UpdateSettings(nil, SettingsPatch{}))
	assert.NotNil(t, RenameSection(nil, "missing", "x"))
	assert.NotNil(t, DeleteSection(nil, "missing"))
	assert.NotNil(t, MoveSectionUp(nil, "missing"))
	assert.NotNil(t, MoveSectionDown(nil, "missing"))
	assert.NotNil(t, AddBullet(nil, "missing", "x"))
	assert.NotNil(t, UpdateBullet(nil, "missing", "missing", "x"))
	assert.NotNil(t, DeleteBullet(nil, "missing", "missing"))
}
