// Package address реализует получение адреса и почтового индекса для анкет.
//
// Picker абстрагирует способ получения адреса: поиск через Kakao Local REST
// или встраиваемый виджет почтовых индексов, который возвращает адрес
// и индекс одним шагом. Реализация выбирается конфигурацией.
package address

import (
	"context"
	"errors"
)

// Candidate представляет одного кандидата из результатов поиска адреса.
type Candidate struct {
	Name        string `json:"name"`         // Название места
	Address     string `json:"address"`      // Земельный (jibun) адрес
	RoadAddress string `json:"road_address"` // Дорожный адрес
	ZipCode     string `json:"zip_code"`     // Индекс, если уже известен (виджет)
}

// Selection — результат выбора кандидата: адрес всегда непустой,
// индекс — либо найденное значение, либо пустая строка.
type Selection struct {
	Address string `json:"address"`
	ZipCode string `json:"zip_code"`
}

// ErrSearchUnsupported возвращается реализацией, не поддерживающей
// поиск по строке запроса.
var ErrSearchUnsupported = errors.New("search is not supported by this picker")

// Picker описывает способ получения адреса.
type Picker interface {
	// Candidates возвращает кандидатов по строке запроса (минимум 2 символа).
	Candidates(ctx context.Context, query string) ([]Candidate, error)
	// Resolve возвращает адрес и почтовый индекс выбранного кандидата.
	// Неудача определения индекса не считается ошибкой выбора.
	Resolve(ctx context.Context, c Candidate) (Selection, error)
}
