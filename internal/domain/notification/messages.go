package notification

import (
	"fmt"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

func when(ap *models.Appointment) string {
	return fmt.Sprintf("%s às %s", ap.Date, ap.Time)
}

func build(
	ap *models.Appointment,
	recipient uint,
	kind models.NotificationKind,
	title string,
	body string,
) models.Notification {
	id := ap.ID
	return models.Notification{
		UserID:        recipient,
		Kind:          kind,
		Title:         title,
		Body:          body,
		AppointmentID: &id,
	}
}

func Booked(ap *models.Appointment, recipient uint, clientName string) models.Notification {
	return build(ap, recipient, models.NotificationAppointment,
		"Novo agendamento",
		fmt.Sprintf("%s agendou um horário para %s.", clientName, when(ap)),
	)
}

func Confirmed(ap *models.Appointment, recipient uint) models.Notification {
	return build(ap, recipient, models.NotificationConfirmation,
		"Agendamento confirmado",
		fmt.Sprintf("Seu agendamento de %s foi confirmado.", when(ap)),
	)
}

func Completed(ap *models.Appointment, recipient uint) models.Notification {
	return build(ap, recipient, models.NotificationConfirmation,
		"Atendimento concluído",
		fmt.Sprintf("Seu atendimento de %s foi concluído. Que tal avaliar?", when(ap)),
	)
}

func Canceled(ap *models.Appointment, recipient uint) models.Notification {
	body := fmt.Sprintf("O agendamento de %s foi cancelado.", when(ap))
	if ap.CancelJustification != "" {
		body += " Motivo: " + ap.CancelJustification
	}
	return build(ap, recipient, models.NotificationCancellation, "Agendamento cancelado", body)
}

func Reminder(ap *models.Appointment, recipient uint) models.Notification {
	return build(ap, recipient, models.NotificationReminder,
		"Lembrete de agendamento",
		fmt.Sprintf("Lembrete: você tem um horário marcado em %s.", when(ap)),
	)
}
