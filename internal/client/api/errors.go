package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error представляет ошибку, которую вернул сервер (не-2xx статус).
// Транспортные ошибки (запрос не дошел до сервера) этим типом не
// оборачиваются, чтобы вызывающий код мог их различать.
type Error struct {
	StatusCode int    // HTTP статус ответа
	Message    string // сообщение из тела ошибки, либо сырое тело
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is a server Error with the given status code
func IsStatus(err error, statusCode int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsUnauthorized reports whether err is a 401 server error
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
