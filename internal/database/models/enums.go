package models

// CallingChangeStatus is the workflow state of a calling change
type CallingChangeStatus string

const (
	CallingChangeStatusHold       CallingChangeStatus = "hold"
	CallingChangeStatusInProgress CallingChangeStatus = "in_progress"
	CallingChangeStatusApproved   CallingChangeStatus = "approved"
	CallingChangeStatusCompleted  CallingChangeStatus = "completed"
)

// TaskType identifies one step of the follow-up checklist generated on approval
type TaskType string

const (
	TaskTypeReleaseCurrent   TaskType = "release_current"
	TaskTypeExtendCalling    TaskType = "extend_calling"
	TaskTypeSustainNew       TaskType = "sustain_new"
	TaskTypeReleaseSustained TaskType = "release_sustained"
	TaskTypeSetApart         TaskType = "set_apart"
	TaskTypeRecordInTools    TaskType = "record_in_tools"
)

// TaskStatus is the completion state of a checklist task
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid checks if the CallingChangeStatus is valid
func (s CallingChangeStatus) IsValid() bool {
	switch s {
	case CallingChangeStatusHold, CallingChangeStatusInProgress, CallingChangeStatusApproved, CallingChangeStatusCompleted:
		return true
	}
	return false
}

// IsOpen reports whether the change still counts as in-flight work
func (s CallingChangeStatus) IsOpen() bool {
	return s != CallingChangeStatusCompleted
}

// IsValid checks if the TaskType is valid
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeReleaseCurrent, TaskTypeExtendCalling, TaskTypeSustainNew,
		TaskTypeReleaseSustained, TaskTypeSetApart, TaskTypeRecordInTools:
		return true
	}
	return false
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	}
	return false
}
