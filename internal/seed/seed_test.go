package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"calling-tracker-backend/internal/database/models"
	"calling-tracker-backend/internal/repository"
	"calling-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SeedTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *SeedTestSuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T())
}

func (s *SeedTestSuite) load() *Data {
	data, err := Load(filepath.Join("testdata", "ward.yaml"))
	s.Require().NoError(err)
	return data
}

func (s *SeedTestSuite) TestLoad() {
	data := s.load()

	s.Len(data.Organizations, 3)
	s.Len(data.Members, 3)
	s.Len(data.Callings, 3)
	s.Len(data.Assignments, 2)
	s.Equal("Ward", data.Organizations[1].Parent)
	s.Require().NotNil(data.Members[2].IsActive)
	s.False(*data.Members[2].IsActive)
}

func (s *SeedTestSuite) TestLoadDirectory() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("organizations:\n  - name: Ward\n"), 0o600))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "b.yml"), []byte("members:\n  - full_name: Jane Doe\n"), 0o600))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	data, err := Load(dir)
	s.Require().NoError(err)
	s.Len(data.Organizations, 1)
	s.Len(data.Members, 1)
}

func (s *SeedTestSuite) TestLoadInvalidYAML() {
	path := filepath.Join(s.T().TempDir(), "bad.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("organizations: [\n"), 0o600))

	_, err := Load(path)
	s.Error(err)
}

func (s *SeedTestSuite) TestApply() {
	summary, err := Apply(context.Background(), s.db, s.load())
	s.Require().NoError(err)
	s.Equal(Summary{Organizations: 3, Members: 3, Callings: 3, Assignments: 2}, summary)

	orgs := repository.NewOrganizationRepository(s.db)
	ward, err := orgs.GetByName("Ward")
	s.Require().NoError(err)
	children, err := orgs.GetChildren(ward.ID)
	s.Require().NoError(err)
	s.Len(children, 2)

	rs, err := orgs.GetByName("Relief Society")
	s.Require().NoError(err)
	president, err := repository.NewCallingRepository(s.db).GetByTitle(rs.ID, "President")
	s.Require().NoError(err)
	s.True(president.RequiresSettingApart)

	active, err := repository.NewAssignmentRepository(s.db).GetActiveByCalling(president.ID)
	s.Require().NoError(err)
	s.Equal("Jane Doe", active.Member.FullName)
	s.Require().NotNil(active.SetApartDate)
	s.Equal("2024-01-21", active.SetApartDate.Format(dateLayout))

	history, err := repository.NewAssignmentRepository(s.db).ListByCalling(president.ID)
	s.Require().NoError(err)
	s.Len(history, 2)

	ann, err := repository.NewMemberRepository(s.db).GetByFullName("Ann Lee")
	s.Require().NoError(err)
	s.False(ann.IsActive)
}

func (s *SeedTestSuite) TestApplyIsIdempotent() {
	_, err := Apply(context.Background(), s.db, s.load())
	s.Require().NoError(err)

	summary, err := Apply(context.Background(), s.db, s.load())
	s.Require().NoError(err)
	s.Equal(Summary{}, summary)

	var count int64
	s.Require().NoError(s.db.Model(&models.CallingAssignment{}).Count(&count).Error)
	s.Equal(int64(2), count)
}

func (s *SeedTestSuite) TestActiveAssignmentReleasesPreviousHolder() {
	_, err := Apply(context.Background(), s.db, s.load())
	s.Require().NoError(err)

	next := &Data{Assignments: []AssignmentData{{
		Organization: "Relief Society",
		Calling:      "President",
		Member:       "Mary Smith",
		AssignedDate: "2025-02-02",
	}}}
	// Mary already has a (released) assignment to this calling, so nothing changes.
	summary, err := Apply(context.Background(), s.db, next)
	s.Require().NoError(err)
	s.Zero(summary.Assignments)

	next.Assignments[0].Calling = "Secretary"
	next.Assignments = append(next.Assignments, AssignmentData{
		Organization: "Relief Society",
		Calling:      "Secretary",
		Member:       "jane.doe@example.org",
		AssignedDate: "2025-03-02",
	})
	summary, err = Apply(context.Background(), s.db, next)
	s.Require().NoError(err)
	s.Equal(2, summary.Assignments)

	rs, err := repository.NewOrganizationRepository(s.db).GetByName("Relief Society")
	s.Require().NoError(err)
	secretary, err := repository.NewCallingRepository(s.db).GetByTitle(rs.ID, "Secretary")
	s.Require().NoError(err)

	active, err := repository.NewAssignmentRepository(s.db).GetActiveByCalling(secretary.ID)
	s.Require().NoError(err)
	s.Equal("Jane Doe", active.Member.FullName)

	var released models.CallingAssignment
	s.Require().NoError(s.db.Where("calling_id = ? AND is_active = ?", secretary.ID, false).First(&released).Error)
	s.Require().NotNil(released.ReleasedDate)
	s.Equal("2025-03-02", released.ReleasedDate.Format(dateLayout))
}

func (s *SeedTestSuite) TestApplyRollsBackOnError() {
	data := s.load()
	data.Callings = append(data.Callings, CallingData{Organization: "Primary", Title: "President"})

	_, err := Apply(context.Background(), s.db, data)
	s.Require().Error(err)
	s.Contains(err.Error(), `organization "Primary" is not defined`)

	var count int64
	s.Require().NoError(s.db.Model(&models.Organization{}).Count(&count).Error)
	s.Zero(count)
}

func (s *SeedTestSuite) TestApplyRejectsBadDate() {
	data := s.load()
	data.Assignments[1].AssignedDate = "14/01/2024"

	_, err := Apply(context.Background(), s.db, data)
	s.Require().Error(err)
	assert.Contains(s.T(), err.Error(), "assigned_date must be YYYY-MM-DD")
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
