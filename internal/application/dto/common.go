package dto

// ErrorResponse corps d'erreur HTTP. Code est stable et lisible machine.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"msg"`
}

// MessageResponse confirmation simple ({"msg": ...}).
type MessageResponse struct {
	Message string `json:"msg"`
}
