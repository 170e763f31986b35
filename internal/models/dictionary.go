// Package models содержит доменные структуры, описывающие словарные записи —
// справочные значения, которыми заполняются поля выбора в анкетах.
package models

// Категории словарных записей. Каждая категория соответствует одному
// полю выбора в анкете подключения.
const (
	CategoryServiceType    = "SERVICE_TYPE"
	CategoryPlanName       = "PLAN_NAME"
	CategoryContractPeriod = "CONTRACT_PERIOD"
	CategoryAuthMethod     = "AUTH_METHOD"
	CategorySimPurchase    = "SIM_PURCHASE"
	CategoryBankList       = "BANK_LIST"
)

// DictionaryEntry представляет одну словарную запись.
//
// Записи одной категории упорядочиваются по SortOrder по возрастанию;
// в анкеты попадают только записи с IsActive = true.
type DictionaryEntry struct {
	ID        int    // Идентификатор записи
	Category  string // Категория, одно из значений Category*
	Name      string // Отображаемое название
	Value     string // Значение, сохраняемое в анкету
	SortOrder int    // Порядок сортировки внутри категории
	IsActive  bool   // Признак активности
}

// DummyDictionaryEntry используется для приёма данных из JSON-запроса
// при создании или редактировании словарной записи администратором.
type DummyDictionaryEntry struct {
	Category  string `json:"category" validate:"required,oneof=SERVICE_TYPE PLAN_NAME CONTRACT_PERIOD AUTH_METHOD SIM_PURCHASE BANK_LIST"`
	Name      string `json:"name" validate:"required"`
	Value     string `json:"value" validate:"required"`
	SortOrder int    `json:"order" validate:"gte=0"`
	IsActive  *bool  `json:"is_active"`
}
