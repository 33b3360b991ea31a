package service

import (
	"calling-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

type taskTemplate struct {
	taskType models.TaskType
	memberID *uuid.UUID
}

// GenerateTasks derives the follow-up checklist for an approved calling change.
// A nil currentMemberID means the calling is vacant and no release steps are needed.
// Tasks are pending, carry assignedTo, and are numbered by position in SortOrder.
func GenerateTasks(changeID uuid.UUID, currentMemberID *uuid.UUID, selectedMemberID uuid.UUID, assignedTo string) []models.CallingChangeTask {
	selected := selectedMemberID

	var templates []taskTemplate
	if currentMemberID != nil {
		current := *currentMemberID
		templates = append(templates,
			taskTemplate{models.TaskTypeReleaseCurrent, &current},
			taskTemplate{models.TaskTypeExtendCalling, &selected},
			taskTemplate{models.TaskTypeSustainNew, &selected},
			taskTemplate{models.TaskTypeReleaseSustained, &current},
		)
	} else {
		templates = append(templates,
			taskTemplate{models.TaskTypeExtendCalling, &selected},
			taskTemplate{models.TaskTypeSustainNew, &selected},
		)
	}
	templates = append(templates,
		taskTemplate{models.TaskTypeSetApart, &selected},
		taskTemplate{models.TaskTypeRecordInTools, &selected},
	)

	tasks := make([]models.CallingChangeTask, 0, len(templates))
	for i, tpl := range templates {
		tasks = append(tasks, models.CallingChangeTask{
			CallingChangeID: changeID,
			TaskType:        tpl.taskType,
			MemberID:        tpl.memberID,
			AssignedTo:      assignedTo,
			Status:          models.TaskStatusPending,
			SortOrder:       i,
		})
	}
	return tasks
}
