package domain

const MaxAlertContacts = 100

type SendAlertRequest struct {
	ContactIDs []string `json:"contactIds" validate:"required,min=1,max=100,dive,uuid"`
}

type DispatchStatus string

const (
	DispatchSent   DispatchStatus = "sent"
	DispatchFailed DispatchStatus = "failed"
)

type ContactDispatch struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Phone  string         `json:"phone"`
	Status DispatchStatus `json:"status"`
	Error  string         `json:"error,omitempty"`
}

// AlertResult reports a fan-out. Success is true unless nothing could be
// sent; partial failures are listed in FailedContacts.
type AlertResult struct {
	Success           bool              `json:"success"`
	Message           string            `json:"message"`
	Sent              int               `json:"sent"`
	Failed            int               `json:"failed"`
	Contacts          []ContactDispatch `json:"contacts"`
	FailedContacts    []ContactDispatch `json:"failedContacts"`
	InvalidContactIDs []string          `json:"invalidContactIds,omitempty"`
}
