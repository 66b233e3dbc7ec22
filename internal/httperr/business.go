package httperr

import (
	"net/http"

	"github.com/pkg/errors"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code of a BusinessError anywhere in the chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

type businessInfo struct {
	status  int
	message string
}

var businessCatalog = map[string]businessInfo{
	"invalid_request":           {http.StatusBadRequest, "Dados inválidos."},
	"invalid_role":              {http.StatusBadRequest, "Tipo de usuário inválido."},
	"invalid_email_domain":      {http.StatusBadRequest, "O domínio do e-mail informado não parece ser válido."},
	"invalid_tax_id":            {http.StatusBadRequest, "CPF/CNPJ inválido."},
	"invalid_date_or_time":      {http.StatusBadRequest, "Data ou hora inválida."},
	"invalid_date":              {http.StatusBadRequest, "Data inválida."},
	"invalid_status":            {http.StatusBadRequest, "Status inválido."},
	"invalid_operating_hours":   {http.StatusBadRequest, "Horário de funcionamento inválido."},
	"invalid_agenda_window":     {http.StatusBadRequest, "Janela de agenda inválida."},
	"invalid_duration":          {http.StatusBadRequest, "Duração deve ser maior que zero."},
	"invalid_price":             {http.StatusBadRequest, "Preço não pode ser negativo."},
	"invalid_quantity":          {http.StatusBadRequest, "Quantidade inválida."},
	"invalid_score":             {http.StatusBadRequest, "A nota deve ser entre 1 e 5."},
	"invalid_image":             {http.StatusBadRequest, "Imagem inválida."},
	"image_too_large":           {http.StatusBadRequest, "Imagem muito grande."},
	"missing_client":            {http.StatusBadRequest, "Informe o cliente."},
	"missing_target":            {http.StatusBadRequest, "Informe a agenda ou o funcionário."},
	"too_soon":                  {http.StatusBadRequest, "Horário inválido."},
	"outside_working_hours":     {http.StatusBadRequest, "Fora do horário de atendimento."},
	"invalid_credentials":       {http.StatusUnauthorized, "Credenciais inválidas."},
	"forbidden":                 {http.StatusForbidden, "Acesso negado."},
	"user_not_found":            {http.StatusNotFound, "Usuário não encontrado."},
	"company_not_found":         {http.StatusNotFound, "Empresa não encontrada."},
	"employee_not_found":        {http.StatusNotFound, "Funcionário não encontrado."},
	"agenda_not_found":          {http.StatusNotFound, "Agenda não encontrada."},
	"service_not_found":         {http.StatusNotFound, "Serviço não encontrado."},
	"appointment_not_found":     {http.StatusNotFound, "Agendamento não encontrado."},
	"notification_not_found":    {http.StatusNotFound, "Notificação não encontrada."},
	"email_already_exists":      {http.StatusConflict, "E-mail já cadastrado."},
	"email_in_use":              {http.StatusConflict, "E-mail pertence a outro tipo de usuário."},
	"time_conflict":             {http.StatusConflict, "Conflito de horário."},
	"invalid_state":             {http.StatusConflict, "Transição de status não permitida."},
	"appointment_not_completed": {http.StatusConflict, "O agendamento ainda não foi concluído."},
	"rating_already_exists":     {http.StatusConflict, "Este agendamento já foi avaliado."},
}

// Describe returns the HTTP status and user message registered for a code.
// Unknown codes are reported as bad requests with a generic message.
func Describe(code string) (int, string) {
	if info, ok := businessCatalog[code]; ok {
		return info.status, info.message
	}
	return http.StatusBadRequest, "Requisição inválida."
}
