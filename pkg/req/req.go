package req

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode читает JSON из тела запроса.
// Пустое тело не ошибка - возвращается нулевое значение T
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if body == nil {
		return payload, nil
	}
	defer body.Close()

	err := json.NewDecoder(body).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return payload, err
	}
	return payload, nil
}

// DecodeAndValidate - Decode + проверка тегов validate
func DecodeAndValidate[T any](body io.ReadCloser) (T, error) {
	payload, err := Decode[T](body)
	if err != nil {
		return payload, err
	}

	err = validate.Struct(payload)
	if err != nil {
		return payload, err
	}
	return payload, nil
}
