package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"calling-tracker-backend/internal/database/models"
	apperrors "calling-tracker-backend/internal/errors"
	"calling-tracker-backend/internal/service"
	"calling-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type fakeRecorder struct {
	mu          sync.Mutex
	transitions []models.CallingChangeStatus
	tasks       []models.TaskType
	syncRuns    []string
}

func (r *fakeRecorder) ObserveTransition(to models.CallingChangeStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, to)
}

func (r *fakeRecorder) ObserveTasksGenerated(tasks []models.CallingChangeTask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tasks {
		r.tasks = append(r.tasks, t.TaskType)
	}
}

func (r *fakeRecorder) ObserveSyncRun(result string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncRuns = append(r.syncRuns, result)
}

func (r *fakeRecorder) runs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.syncRuns...)
}

// CallingChangeServiceTestSuite exercises the workflow against an in-process SQLite database
type CallingChangeServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	db        *gorm.DB
	svc       *service.CallingChangeService
	recorder  *fakeRecorder
	factories *testutils.FactorySet
	today     time.Time

	org     *models.Organization
	calling *models.Calling
	holder  *models.Member
	held    *models.CallingAssignment
}

func (suite *CallingChangeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.recorder = &fakeRecorder{}
	suite.today = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	suite.svc = service.NewCallingChangeService(suite.db, service.NewValidator(),
		service.WithRecorder(suite.recorder),
		service.WithClock(func() time.Time { return suite.today }),
	)

	suite.org, suite.calling, suite.holder, suite.held = suite.factories.CreateOccupiedCalling()
	testutils.MustCreate(suite.T(), suite.db, suite.org, suite.calling, suite.holder, suite.held)
}

func (suite *CallingChangeServiceTestSuite) newMember(first, last string) *models.Member {
	m := suite.factories.Member.WithName(first, last)
	testutils.MustCreate(suite.T(), suite.db, m)
	return m
}

func (suite *CallingChangeServiceTestSuite) newVacantCalling() *models.Calling {
	c := suite.factories.Calling.WithOrganization(suite.org.ID)
	c.Title = "Primary Teacher"
	testutils.MustCreate(suite.T(), suite.db, c)
	return c
}

func (suite *CallingChangeServiceTestSuite) openChange(callingID uuid.UUID, current *uuid.UUID) *service.CallingChangeResponse {
	change, err := suite.svc.CreateCallingChange(suite.ctx, &service.CreateCallingChangeRequest{
		CallingID:                 callingID,
		CurrentMemberID:           current,
		AssignedToBishopricMember: "Brother Lee",
	})
	suite.Require().NoError(err)
	return change
}

func (suite *CallingChangeServiceTestSuite) consider(changeID uuid.UUID, member *models.Member) *service.ConsiderationResponse {
	c, err := suite.svc.AddConsideration(suite.ctx, changeID, &service.AddConsiderationRequest{MemberID: member.ID})
	suite.Require().NoError(err)
	return c
}

func (suite *CallingChangeServiceTestSuite) selectedIDs(changeID uuid.UUID) []uuid.UUID {
	var rows []models.CallingConsideration
	suite.Require().NoError(suite.db.Where("calling_change_id = ? AND is_selected_for_prayer = ?", changeID, true).Find(&rows).Error)
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func (suite *CallingChangeServiceTestSuite) taskCount(changeID uuid.UUID) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(&models.CallingChangeTask{}).Where("calling_change_id = ?", changeID).Count(&n).Error)
	return n
}

func (suite *CallingChangeServiceTestSuite) completeAllTasks(change *service.CallingChangeResponse) {
	for _, task := range change.Tasks {
		toggled, err := suite.svc.ToggleTask(suite.ctx, change.ID, task.ID)
		suite.Require().NoError(err)
		suite.Require().Equal(models.TaskStatusCompleted, toggled.Status)
	}
}

func (suite *CallingChangeServiceTestSuite) TestCreateCallingChange() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)

	suite.Equal(models.CallingChangeStatusInProgress, change.Status)
	suite.Equal(suite.calling.Title, change.CallingTitle)
	suite.Equal(suite.org.Name, change.OrganizationName)
	suite.True(change.RequiresSettingApart)
	suite.Require().NotNil(change.CurrentMember)
	suite.Equal(suite.holder.FullName, change.CurrentMember.FullName)
	suite.Nil(change.NewMemberID)
	suite.Empty(change.Considerations)
	suite.Empty(change.Tasks)
	suite.Equal([]models.CallingChangeStatus{models.CallingChangeStatusInProgress}, suite.recorder.transitions)
}

func (suite *CallingChangeServiceTestSuite) TestCreateCallingChange_OnHold() {
	change, err := suite.svc.CreateCallingChange(suite.ctx, &service.CreateCallingChangeRequest{
		CallingID: suite.calling.ID,
		Status:    models.CallingChangeStatusHold,
		Priority:  3,
	})

	suite.NoError(err)
	suite.Equal(models.CallingChangeStatusHold, change.Status)
	suite.Equal(3, change.Priority)
}

func (suite *CallingChangeServiceTestSuite) TestCreateCallingChange_RejectsWorkflowStatus() {
	_, err := suite.svc.CreateCallingChange(suite.ctx, &service.CreateCallingChangeRequest{
		CallingID: suite.calling.ID,
		Status:    models.CallingChangeStatusApproved,
	})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "status")
}

func (suite *CallingChangeServiceTestSuite) TestCreateCallingChange_UnknownReferences() {
	_, err := suite.svc.CreateCallingChange(suite.ctx, &service.CreateCallingChangeRequest{CallingID: uuid.New()})
	suite.ErrorIs(err, apperrors.ErrCallingNotFound)

	missing := uuid.New()
	_, err = suite.svc.CreateCallingChange(suite.ctx, &service.CreateCallingChangeRequest{
		CallingID:       suite.calling.ID,
		CurrentMemberID: &missing,
	})
	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

func (suite *CallingChangeServiceTestSuite) TestCreateCallingChange_OneOpenChangePerCalling() {
	first := suite.openChange(suite.calling.ID, &suite.holder.ID)

	_, err := suite.svc.CreateCallingChange(suite.ctx, &service.CreateCallingChangeRequest{CallingID: suite.calling.ID})
	suite.True(apperrors.IsAlreadyExists(err))

	completed := models.CallingChangeStatusCompleted
	_, err = suite.svc.UpdateCallingChange(suite.ctx, first.ID, &service.UpdateCallingChangeRequest{Status: &completed})
	suite.Require().NoError(err)

	_, err = suite.svc.CreateCallingChange(suite.ctx, &service.CreateCallingChangeRequest{CallingID: suite.calling.ID})
	suite.NoError(err)
}

func (suite *CallingChangeServiceTestSuite) TestGetCallingChange_NotFound() {
	_, err := suite.svc.GetCallingChange(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrCallingChangeNotFound)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *CallingChangeServiceTestSuite) TestListCallingChanges() {
	occupied := suite.openChange(suite.calling.ID, &suite.holder.ID)
	vacant := suite.openChange(suite.newVacantCalling().ID, nil)

	hold := models.CallingChangeStatusHold
	priority := 10
	_, err := suite.svc.UpdateCallingChange(suite.ctx, vacant.ID, &service.UpdateCallingChangeRequest{Status: &hold, Priority: &priority})
	suite.Require().NoError(err)

	all, err := suite.svc.ListCallingChanges(suite.ctx, nil)
	suite.NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(vacant.ID, all[0].ID)

	inProgress := models.CallingChangeStatusInProgress
	filtered, err := suite.svc.ListCallingChanges(suite.ctx, &inProgress)
	suite.NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal(occupied.ID, filtered[0].ID)

	bogus := models.CallingChangeStatus("archived")
	_, err = suite.svc.ListCallingChanges(suite.ctx, &bogus)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CallingChangeServiceTestSuite) TestUpdateCallingChange_HoldAndResume() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)

	hold := models.CallingChangeStatusHold
	updated, err := suite.svc.UpdateCallingChange(suite.ctx, change.ID, &service.UpdateCallingChangeRequest{Status: &hold})
	suite.NoError(err)
	suite.Equal(models.CallingChangeStatusHold, updated.Status)

	resume := models.CallingChangeStatusInProgress
	assignee := "Brother Kim"
	updated, err = suite.svc.UpdateCallingChange(suite.ctx, change.ID, &service.UpdateCallingChangeRequest{
		Status:                    &resume,
		AssignedToBishopricMember: &assignee,
	})
	suite.NoError(err)
	suite.Equal(models.CallingChangeStatusInProgress, updated.Status)
	suite.Equal("Brother Kim", updated.AssignedToBishopricMember)
}

func (suite *CallingChangeServiceTestSuite) TestUpdateCallingChange_ApprovedNeedsNewMember() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)

	approved := models.CallingChangeStatusApproved
	_, err := suite.svc.UpdateCallingChange(suite.ctx, change.ID, &service.UpdateCallingChangeRequest{Status: &approved})

	suite.ErrorIs(err, apperrors.ErrNoNewMemberSelected)
}

// The plain status update can complete a change without Finalize. It must not
// touch assignments or tasks, and a completed change cannot be reopened.
func (suite *CallingChangeServiceTestSuite) TestUpdateCallingChange_CompletedStatusSkipsFinalize() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)

	completed := models.CallingChangeStatusCompleted
	updated, err := suite.svc.UpdateCallingChange(suite.ctx, change.ID, &service.UpdateCallingChangeRequest{Status: &completed})

	suite.NoError(err)
	suite.Equal(models.CallingChangeStatusCompleted, updated.Status)
	suite.Nil(updated.NewMemberID)
	suite.Nil(updated.CompletedDate)
	suite.Zero(suite.taskCount(change.ID))

	var assignment models.CallingAssignment
	suite.Require().NoError(suite.db.First(&assignment, "id = ?", suite.held.ID).Error)
	suite.True(assignment.IsActive)
	suite.Nil(assignment.ReleasedDate)

	resume := models.CallingChangeStatusInProgress
	_, err = suite.svc.UpdateCallingChange(suite.ctx, change.ID, &service.UpdateCallingChangeRequest{Status: &resume})
	suite.ErrorIs(err, apperrors.ErrCallingChangeCompleted)
}

func (suite *CallingChangeServiceTestSuite) TestAddConsideration() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	candidate := suite.newMember("Ada", "Young")

	c, err := suite.svc.AddConsideration(suite.ctx, change.ID, &service.AddConsiderationRequest{
		MemberID:           candidate.ID,
		Notes:              "served before",
		ConsiderationOrder: 2,
	})

	suite.NoError(err)
	suite.False(c.IsSelectedForPrayer)
	suite.Equal("served before", c.Notes)
	suite.Equal(2, c.ConsiderationOrder)
	suite.Require().NotNil(c.Member)
	suite.Equal("Ada Young", c.Member.FullName)

	// the same member may be considered twice
	_, err = suite.svc.AddConsideration(suite.ctx, change.ID, &service.AddConsiderationRequest{MemberID: candidate.ID})
	suite.NoError(err)

	got, err := suite.svc.GetCallingChange(suite.ctx, change.ID)
	suite.NoError(err)
	suite.Len(got.Considerations, 2)
}

func (suite *CallingChangeServiceTestSuite) TestAddConsideration_UnknownReferences() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)

	_, err := suite.svc.AddConsideration(suite.ctx, uuid.New(), &service.AddConsiderationRequest{MemberID: suite.holder.ID})
	suite.ErrorIs(err, apperrors.ErrCallingChangeNotFound)

	_, err = suite.svc.AddConsideration(suite.ctx, change.ID, &service.AddConsiderationRequest{MemberID: uuid.New()})
	suite.ErrorIs(err, apperrors.ErrMemberNotFound)

	_, err = suite.svc.AddConsideration(suite.ctx, change.ID, &service.AddConsiderationRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *CallingChangeServiceTestSuite) TestUpdateConsideration_KeepsSelection() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)

	notes := "prayed about it"
	order := 4
	updated, err := suite.svc.UpdateConsideration(suite.ctx, change.ID, c.ID, &service.UpdateConsiderationRequest{
		Notes:              &notes,
		ConsiderationOrder: &order,
	})

	suite.NoError(err)
	suite.Equal(notes, updated.Notes)
	suite.Equal(4, updated.ConsiderationOrder)
	suite.True(updated.IsSelectedForPrayer)
}

func (suite *CallingChangeServiceTestSuite) TestSelectForPrayer_SwitchesSelection() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	a := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	b := suite.consider(change.ID, suite.newMember("Ben", "Old"))

	other := suite.openChange(suite.newVacantCalling().ID, nil)
	otherPick := suite.consider(other.ID, suite.newMember("Cy", "Park"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, other.ID, otherPick.ID)
	suite.Require().NoError(err)

	selected, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, a.ID)
	suite.NoError(err)
	suite.True(selected.IsSelectedForPrayer)
	suite.Equal([]uuid.UUID{a.ID}, suite.selectedIDs(change.ID))

	_, err = suite.svc.SelectForPrayer(suite.ctx, change.ID, b.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{b.ID}, suite.selectedIDs(change.ID))

	// selecting within one change leaves the other change alone
	suite.Equal([]uuid.UUID{otherPick.ID}, suite.selectedIDs(other.ID))
}

func (suite *CallingChangeServiceTestSuite) TestSelectForPrayer_ConsiderationOfAnotherChange() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	other := suite.openChange(suite.newVacantCalling().ID, nil)
	foreign := suite.consider(other.ID, suite.newMember("Cy", "Park"))

	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, foreign.ID)

	suite.ErrorIs(err, apperrors.ErrConsiderationNotFound)
	suite.Empty(suite.selectedIDs(other.ID))
}

func (suite *CallingChangeServiceTestSuite) TestRemoveConsideration() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.svc.RemoveConsideration(suite.ctx, change.ID, c.ID))
	suite.Empty(suite.selectedIDs(change.ID))

	err = suite.svc.RemoveConsideration(suite.ctx, change.ID, c.ID)
	suite.ErrorIs(err, apperrors.ErrConsiderationNotFound)

	err = suite.svc.RemoveConsideration(suite.ctx, uuid.New(), c.ID)
	suite.ErrorIs(err, apperrors.ErrCallingChangeNotFound)
}

func (suite *CallingChangeServiceTestSuite) TestApproveSelection_NoPersonSelected() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	suite.consider(change.ID, suite.newMember("Ada", "Young"))

	_, err := suite.svc.ApproveSelection(suite.ctx, change.ID)

	suite.True(apperrors.IsPreconditionFailed(err))
	suite.EqualError(err, "no person selected")

	got, err := suite.svc.GetCallingChange(suite.ctx, change.ID)
	suite.NoError(err)
	suite.Equal(models.CallingChangeStatusInProgress, got.Status)
	suite.Nil(got.NewMemberID)
	suite.Zero(suite.taskCount(change.ID))
}

func (suite *CallingChangeServiceTestSuite) TestApproveSelection_OccupiedCalling() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	candidate := suite.newMember("Ada", "Young")
	c := suite.consider(change.ID, candidate)
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)

	approved, err := suite.svc.ApproveSelection(suite.ctx, change.ID)

	suite.Require().NoError(err)
	suite.Equal(models.CallingChangeStatusApproved, approved.Status)
	suite.Require().NotNil(approved.NewMemberID)
	suite.Equal(candidate.ID, *approved.NewMemberID)
	suite.Equal("Ada Young", approved.NewMember.FullName)

	suite.Require().Len(approved.Tasks, 6)
	wantTypes := []models.TaskType{
		models.TaskTypeReleaseCurrent,
		models.TaskTypeExtendCalling,
		models.TaskTypeSustainNew,
		models.TaskTypeReleaseSustained,
		models.TaskTypeSetApart,
		models.TaskTypeRecordInTools,
	}
	wantMembers := []uuid.UUID{suite.holder.ID, candidate.ID, candidate.ID, suite.holder.ID, candidate.ID, candidate.ID}
	for i, task := range approved.Tasks {
		suite.Equal(wantTypes[i], task.TaskType)
		suite.Equal(models.TaskStatusPending, task.Status)
		suite.Equal("Brother Lee", task.AssignedTo)
		suite.Require().NotNil(task.MemberID)
		suite.Equal(wantMembers[i], *task.MemberID)
	}
	suite.Equal(wantTypes, suite.recorder.tasks)
	suite.Contains(suite.recorder.transitions, models.CallingChangeStatusApproved)
}

func (suite *CallingChangeServiceTestSuite) TestApproveSelection_VacantCalling() {
	change := suite.openChange(suite.newVacantCalling().ID, nil)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)

	approved, err := suite.svc.ApproveSelection(suite.ctx, change.ID)

	suite.Require().NoError(err)
	suite.Require().Len(approved.Tasks, 4)
	suite.Equal(models.TaskTypeExtendCalling, approved.Tasks[0].TaskType)
	suite.Equal(models.TaskTypeSustainNew, approved.Tasks[1].TaskType)
	suite.Equal(models.TaskTypeSetApart, approved.Tasks[2].TaskType)
	suite.Equal(models.TaskTypeRecordInTools, approved.Tasks[3].TaskType)
}

func (suite *CallingChangeServiceTestSuite) TestApproveSelection_ReplayRejected() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)
	_, err = suite.svc.ApproveSelection(suite.ctx, change.ID)
	suite.Require().NoError(err)

	_, err = suite.svc.ApproveSelection(suite.ctx, change.ID)

	suite.ErrorIs(err, apperrors.ErrTasksAlreadyGenerated)
	suite.Equal(int64(6), suite.taskCount(change.ID))
}

func (suite *CallingChangeServiceTestSuite) TestApproveSelection_RollsBackWhenTaskInsertFails() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Callback().Create().Before("gorm:create").Register("test:fail_task_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "calling_change_tasks" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	_, err = suite.svc.ApproveSelection(suite.ctx, change.ID)

	suite.Error(err)
	suite.Contains(err.Error(), "disk full")

	got, err := suite.svc.GetCallingChange(suite.ctx, change.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CallingChangeStatusInProgress, got.Status)
	suite.Nil(got.NewMemberID)
	suite.Zero(suite.taskCount(change.ID))
}

func (suite *CallingChangeServiceTestSuite) TestFinalize_RequiresApproval() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)

	_, err := suite.svc.Finalize(suite.ctx, change.ID)

	suite.ErrorIs(err, apperrors.ErrNoNewMemberSelected)
	_, err = suite.svc.Finalize(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrCallingChangeNotFound)
}

func (suite *CallingChangeServiceTestSuite) TestFinalize_RequiresCompletedTasks() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)
	approved, err := suite.svc.ApproveSelection(suite.ctx, change.ID)
	suite.Require().NoError(err)

	// one task left open
	for _, task := range approved.Tasks[:len(approved.Tasks)-1] {
		_, err := suite.svc.ToggleTask(suite.ctx, change.ID, task.ID)
		suite.Require().NoError(err)
	}

	_, err = suite.svc.Finalize(suite.ctx, change.ID)

	suite.ErrorIs(err, apperrors.ErrIncompleteTasks)
	got, err := suite.svc.GetCallingChange(suite.ctx, change.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CallingChangeStatusApproved, got.Status)
}

func (suite *CallingChangeServiceTestSuite) TestFinalize_RollsBackWhenAssignmentInsertFails() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)
	approved, err := suite.svc.ApproveSelection(suite.ctx, change.ID)
	suite.Require().NoError(err)
	suite.completeAllTasks(approved)

	suite.Require().NoError(suite.db.Callback().Create().Before("gorm:create").Register("test:fail_assignment_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "calling_assignments" {
			_ = tx.AddError(errors.New("constraint violated"))
		}
	}))

	_, err = suite.svc.Finalize(suite.ctx, change.ID)
	suite.Error(err)

	var held models.CallingAssignment
	suite.Require().NoError(suite.db.First(&held, "id = ?", suite.held.ID).Error)
	suite.True(held.IsActive)
	suite.Nil(held.ReleasedDate)

	got, err := suite.svc.GetCallingChange(suite.ctx, change.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CallingChangeStatusApproved, got.Status)
	suite.Nil(got.CompletedDate)
}

// Occupied calling: consider two, select the second, approve, complete every task, finalize.
func (suite *CallingChangeServiceTestSuite) TestScenario_OccupiedCallingEndToEnd() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)
	suite.consider(change.ID, suite.newMember("Ada", "Young"))
	chosen := suite.newMember("Ben", "Old")
	pick := suite.consider(change.ID, chosen)
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, pick.ID)
	suite.Require().NoError(err)

	approved, err := suite.svc.ApproveSelection(suite.ctx, change.ID)
	suite.Require().NoError(err)
	suite.completeAllTasks(approved)

	finalized, err := suite.svc.Finalize(suite.ctx, change.ID)

	suite.Require().NoError(err)
	suite.Equal(models.CallingChangeStatusCompleted, finalized.Status)
	suite.Require().NotNil(finalized.CompletedDate)
	suite.Equal("2025-06-15", *finalized.CompletedDate)

	var released models.CallingAssignment
	suite.Require().NoError(suite.db.First(&released, "id = ?", suite.held.ID).Error)
	suite.False(released.IsActive)
	suite.Require().NotNil(released.ReleasedDate)
	suite.Equal("2025-06-15", released.ReleasedDate.Format("2006-01-02"))

	var active []models.CallingAssignment
	suite.Require().NoError(suite.db.Where("calling_id = ? AND is_active = ?", suite.calling.ID, true).Find(&active).Error)
	suite.Require().Len(active, 1)
	suite.Equal(chosen.ID, active[0].MemberID)
	suite.Equal("2025-06-15", active[0].AssignedDate.Format("2006-01-02"))

	_, err = suite.svc.Finalize(suite.ctx, change.ID)
	suite.ErrorIs(err, apperrors.ErrCallingChangeCompleted)

	_, err = suite.svc.ApproveSelection(suite.ctx, change.ID)
	suite.ErrorIs(err, apperrors.ErrCallingChangeCompleted)
}

// Vacant calling: no assignment is released, the new member gets the only active one.
func (suite *CallingChangeServiceTestSuite) TestScenario_VacantCallingEndToEnd() {
	vacant := suite.newVacantCalling()
	change := suite.openChange(vacant.ID, nil)
	chosen := suite.newMember("Ada", "Young")
	pick := suite.consider(change.ID, chosen)
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, pick.ID)
	suite.Require().NoError(err)

	approved, err := suite.svc.ApproveSelection(suite.ctx, change.ID)
	suite.Require().NoError(err)
	suite.Len(approved.Tasks, 4)
	suite.completeAllTasks(approved)

	finalized, err := suite.svc.Finalize(suite.ctx, change.ID)
	suite.Require().NoError(err)
	suite.Equal(models.CallingChangeStatusCompleted, finalized.Status)

	var assignments []models.CallingAssignment
	suite.Require().NoError(suite.db.Where("calling_id = ?", vacant.ID).Find(&assignments).Error)
	suite.Require().Len(assignments, 1)
	suite.True(assignments[0].IsActive)
	suite.Equal(chosen.ID, assignments[0].MemberID)

	// the holder of the other calling is untouched
	var held models.CallingAssignment
	suite.Require().NoError(suite.db.First(&held, "id = ?", suite.held.ID).Error)
	suite.True(held.IsActive)
}

func (suite *CallingChangeServiceTestSuite) TestUpdateTask() {
	change := suite.openChange(suite.newVacantCalling().ID, nil)
	c := suite.consider(change.ID, suite.newMember("Ada", "Young"))
	_, err := suite.svc.SelectForPrayer(suite.ctx, change.ID, c.ID)
	suite.Require().NoError(err)
	approved, err := suite.svc.ApproveSelection(suite.ctx, change.ID)
	suite.Require().NoError(err)
	taskID := approved.Tasks[0].ID

	completed := models.TaskStatusCompleted
	due := "2025-07-01"
	assignee := "Brother Kim"
	notes := "extended after church"
	task, err := suite.svc.UpdateTask(suite.ctx, change.ID, taskID, &service.UpdateTaskRequest{
		Status:     &completed,
		DueDate:    &due,
		AssignedTo: &assignee,
		Notes:      &notes,
	})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusCompleted, task.Status)
	suite.Require().NotNil(task.CompletedDate)
	suite.Equal("2025-06-15", *task.CompletedDate)
	suite.Require().NotNil(task.DueDate)
	suite.Equal("2025-07-01", *task.DueDate)
	suite.Equal(assignee, task.AssignedTo)
	suite.Equal(notes, task.Notes)
	suite.Equal(models.TaskTypeExtendCalling, task.TaskType)

	pending := models.TaskStatusPending
	none := ""
	task, err = suite.svc.UpdateTask(suite.ctx, change.ID, taskID, &service.UpdateTaskRequest{Status: &pending, DueDate: &none})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusPending, task.Status)
	suite.Nil(task.CompletedDate)
	suite.Nil(task.DueDate)
}

func (suite *CallingChangeServiceTestSuite) TestUpdateTask_Validation() {
	bad := models.TaskStatus("skipped")
	_, err := suite.svc.UpdateTask(suite.ctx, uuid.New(), uuid.New(), &service.UpdateTaskRequest{Status: &bad})
	suite.True(apperrors.IsValidation(err))

	due := "July 1st"
	_, err = suite.svc.UpdateTask(suite.ctx, uuid.New(), uuid.New(), &service.UpdateTaskRequest{DueDate: &due})
	suite.True(apperrors.IsValidation(err))
}

func (suite *CallingChangeServiceTestSuite) TestToggleTask_NotFound() {
	change := suite.openChange(suite.calling.ID, &suite.holder.ID)

	_, err := suite.svc.ToggleTask(suite.ctx, change.ID, uuid.New())
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)

	_, err = suite.svc.ToggleTask(suite.ctx, uuid.New(), uuid.New())
	suite.ErrorIs(err, apperrors.ErrCallingChangeNotFound)
}

func TestCallingChangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CallingChangeServiceTestSuite))
}
