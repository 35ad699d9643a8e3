package req

import (
	"encoding/json"
	"io"
)

// Максимальный размер тела запроса
const maxBody = 1 << 20

// Decode разбор JSON тела. Лишние поля запрещены
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(io.LimitReader(body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
