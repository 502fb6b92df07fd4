package notificationRepo

import "taskturf/models"

// NotificationRepository stores pull-based notifications. Records are
// created by fanout and mutated only by read acknowledgement.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByRecipient(recipientID string, limit int64) ([]models.Notification, error)
	CountUnread(recipientID string) (int64, error)

	// MarkRead acknowledges one notification. Marking an already-read
	// notification is a no-op success. Returns false when no
	// notification matches id+recipient.
	MarkRead(id, recipientID string) (bool, error)
	MarkAllRead(recipientID string) (int64, error)
}
