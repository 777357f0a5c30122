package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFilter       = "VAL_004" // Filtro de consulta inválido

	// Erros de recurso
	ErrNotFound        = "RES_001" // Registro não encontrado
	ErrTooManyRequests = "RES_002" // Limite de requisições excedido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrStoreUnavailable  = "SRV_005" // Banco de dados indisponível
	ErrWriteFailed       = "SRV_006" // Escrita abortada
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidFilter:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrTooManyRequests:       http.StatusTooManyRequests,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrStoreUnavailable:      http.StatusServiceUnavailable,
	ErrWriteFailed:           http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, ou 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

// FromDomainError traduz os erros de domínio para o código de API correspondente
func FromDomainError(err error) APIError {
	var filterErr *domain.FilterError

	switch {
	case err == nil:
		return FromError(nil, ErrInternalServer)
	case errors.As(err, &filterErr):
		return APIError{
			Code:    ErrInvalidFilter,
			Message: "Filtro inválido",
			Details: map[string]string{"field": filterErr.Field, "value": filterErr.Value},
		}
	case errors.Is(err, domain.ErrInvalidFilter):
		return APIError{Code: ErrInvalidFilter, Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return APIError{Code: ErrNotFound, Message: "Registro não encontrado"}
	case errors.Is(err, domain.ErrStoreUnavailable):
		return APIError{Code: ErrStoreUnavailable, Message: "Banco de dados indisponível"}
	case errors.Is(err, domain.ErrWriteFailed):
		return APIError{Code: ErrWriteFailed, Message: "Falha ao gravar alterações"}
	default:
		return APIError{Code: ErrInternalServer, Message: "Erro interno do servidor"}
	}
}

// WriteDomainError escreve a resposta de erro para um erro vindo dos casos de uso
// e devolve o erro de API enviado
func WriteDomainError(w http.ResponseWriter, err error) APIError {
	apiErr := FromDomainError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
	return apiErr
}
