package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type CancelActor string

const (
	CanceledByClient   CancelActor = "cliente"
	CanceledByEmployee CancelActor = "funcionario"
	CanceledBySystem   CancelActor = "sistema"
)

// ===============================
// Domain Actions
// ===============================

func currentStatus(ap *models.Appointment) Status {
	st, ok := ParseStatus(ap.Status)
	if !ok {
		return Status(ap.Status)
	}
	return st
}

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(currentStatus(ap), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(currentStatus(ap), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Cancel records who canceled and why. Canceled is terminal, so the
// attribution is written once.
func Cancel(ap *models.Appointment, by CancelActor, justification string, now time.Time) error {
	if err := CanTransition(currentStatus(ap), StatusCanceled); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledBy = string(by)
	ap.CancelJustification = strings.TrimSpace(justification)
	ap.CanceledAt = &now
	return nil
}
