package dto

// ErrorResponse corpo de erro HTTP. Message é a string exibida ao usuário
// pelo cliente quando presente.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
