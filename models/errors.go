package models

import "github.com/pkg/errors"

// Сентинельные ошибки ядра. Контроллеры транслируют их в коды ответа
// через errors.Is, поэтому оборачивать только через pkg/errors.Wrap.
var (
	ErrNotFound          = errors.New("запись не найдена")
	ErrValidation        = errors.New("некорректные данные")
	ErrInvalidTransition = errors.New("недопустимая смена статуса")
)
