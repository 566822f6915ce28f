package serverutils

// ApiError is the envelope every failure surfaces as at the HTTP boundary.
type ApiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ApiSuccess[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func ErrorResponse(code int, message string) ApiError {
	return ApiError{Code: code, Message: message}
}

func SuccessResponse[T any](message string, data T) ApiSuccess[T] {
	return ApiSuccess[T]{Message: message, Data: data}
}
