// Package envelope — единый формат ответа API.
// Любой ответ, успех или ошибка, заворачивается в один и тот же конверт.
package envelope

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// Write кодирует конверт. Поле data присутствует всегда: при отсутствии
// полезной нагрузки отдается пустой объект, а не null и не пропуск ключа.
func Write(w http.ResponseWriter, statusCode int, message string, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		data = struct{}{}
	}

	return json.NewEncoder(w).Encode(Response{
		Success:    statusCode < http.StatusBadRequest,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return Write(w, statusCode, message, nil)
}
