package booking

import "taskturf/models"

// Action is a lifecycle operation applied to a booking.
type Action string

const (
	ActionAssign   Action = "assign"
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// transitions is the lifecycle table: current status x action -> next
// status. Anything absent is illegal. Terminal states have no entries.
var transitions = map[models.BookingStatus]map[Action]models.BookingStatus{
	models.StatusLookingForWorker: {
		ActionAssign: models.StatusPending,
		ActionCancel: models.StatusCancelled,
	},
	models.StatusPending: {
		ActionAccept: models.StatusAccepted,
		ActionReject: models.StatusRejected,
		ActionCancel: models.StatusCancelled,
	},
	models.StatusAccepted: {
		ActionStart:  models.StatusInProgress,
		ActionCancel: models.StatusCancelled,
	},
	models.StatusInProgress: {
		ActionComplete: models.StatusCompleted,
	},
}

// NextStatus looks up the lifecycle table.
func NextStatus(from models.BookingStatus, act Action) (models.BookingStatus, bool) {
	next, ok := transitions[from][act]
	return next, ok
}

// editableStatuses are the states in which booking details may change.
var editableStatuses = []models.BookingStatus{
	models.StatusPending,
	models.StatusLookingForWorker,
}

// CanEdit reports whether booking details may still be changed.
func CanEdit(s models.BookingStatus) bool {
	for _, e := range editableStatuses {
		if s == e {
			return true
		}
	}
	return false
}

// cancellableStatuses are the states a customer may cancel from.
var cancellableStatuses = []models.BookingStatus{
	models.StatusPending,
	models.StatusAccepted,
	models.StatusLookingForWorker,
}

// CanCancel reports whether the customer may still cancel.
func CanCancel(s models.BookingStatus) bool {
	for _, c := range cancellableStatuses {
		if s == c {
			return true
		}
	}
	return false
}
