package appointment

import "github.com/BruksfildServices01/agendapro/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCompleted Status = "concluido"
	StatusCanceled  Status = "cancelado"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

// ParseStatus accepts the canonical values and the legacy aliases still found
// in older rows and clients.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "pendente", "em_aprovacao", "agendado", "pending", "scheduled":
		return StatusPending, true
	case "confirmado", "confirmed":
		return StatusConfirmed, true
	case "concluido", "completed":
		return StatusCompleted, true
	case "cancelado", "canceled", "cancelled":
		return StatusCanceled, true
	}
	return "", false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Active statuses hold the employee's time slot.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusPending
}
