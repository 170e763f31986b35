// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: успешных ответов, ошибок
// и сообщений валидации в едином формате.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
// Поле Fields — сообщения нарушений по полям (при ошибке валидации).
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
	Data   any               `json:"data,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// fieldMessages — человеко-читаемые сообщения нарушений для полей анкет
// и форм входа. Тексты совпадают с сообщениями исходных форм.
var fieldMessages = map[string]string{
	"Name":           "이름을 입력해주세요",
	"Phone":          "전화번호를 입력해주세요",
	"BirthDate":      "생년월일을 입력해주세요",
	"Address":        "주소를 입력해주세요",
	"ZipCode":        "우편번호를 입력해주세요",
	"PaymentMethod":  "납부방법을 선택해주세요",
	"ServiceType":    "서비스 유형을 선택해주세요",
	"PlanName":       "요금제를 선택해주세요",
	"ContractPeriod": "약정기간을 선택해주세요",
	"AuthMethod":     "인증방법을 선택해주세요",
	"SimPurchase":    "유심구매여부를 선택해주세요",
}

// ValidationError формирует Response со статусом Error на основе ошибок
// валидации: карта поле→сообщение и общий текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	fields := make(map[string]string, len(errs))
	var errsMsgs []string

	for _, err := range errs {
		msg, ok := fieldMessages[err.Field()]
		if !ok {
			switch err.ActualTag() {
			case "required":
				msg = fmt.Sprintf("field %s is a required field", err.Field())
			case "alphanum":
				msg = fmt.Sprintf("field %s can contain only numbers and letters", err.Field())
			case "numeric":
				msg = fmt.Sprintf("field %s can contain only numbers", err.Field())
			case "email":
				msg = fmt.Sprintf("field %s must be a valid email", err.Field())
			case "oneof":
				msg = fmt.Sprintf("field %s has an unsupported value", err.Field())
			default:
				msg = fmt.Sprintf("field %s is not a valid", err.Field())
			}
		}
		fields[err.Field()] = msg
		errsMsgs = append(errsMsgs, msg)
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
		Fields: fields,
	}
}
