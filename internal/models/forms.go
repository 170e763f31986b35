// Package models содержит доменные структуры анкет подключения услуг,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// StatusPending — начальный статус каждой принятой анкеты.
// Дальнейших статусов рабочего процесса нет.
const StatusPending = "PENDING"

// Способы оплаты для проводного подключения.
const (
	PaymentMethodAccount = "ACCOUNT"
	PaymentMethodCard    = "CARD"
)

// WiredForm представляет принятую анкету подключения проводной услуги.
// Все даты хранятся в UTC.
type WiredForm struct {
	UID            string    // Уникальный идентификатор анкеты
	AuthorUID      string    // Идентификатор принявшего сотрудника
	Name           string    // Имя заявителя
	Phone          string    // Телефон заявителя
	BirthDate      time.Time // Дата рождения
	Address        string    // Адрес
	DetailAddress  string    // Детальный адрес (опционально)
	ZipCode        string    // Почтовый индекс
	PaymentMethod  string    // ACCOUNT или CARD
	AccountInfo    string    // Реквизиты счёта, обязательны при ACCOUNT
	CardInfo       string    // Реквизиты карты, обязательны при CARD
	ServiceType    string    // Тип услуги (из словаря SERVICE_TYPE)
	PlanName       string    // Тарифный план (из словаря PLAN_NAME)
	ContractPeriod string    // Срок договора (из словаря CONTRACT_PERIOD)
	Status         string    // Статус анкеты, всегда PENDING при создании
	CreatedAt      time.Time // Дата приёма
}

// WirelessForm представляет принятую анкету подключения беспроводной услуги.
type WirelessForm struct {
	UID            string
	AuthorUID      string
	Name           string
	Phone          string
	BirthDate      time.Time
	Address        string
	DetailAddress  string
	ZipCode        string
	AuthMethod     string // Способ аутентификации (из словаря AUTH_METHOD)
	AuthValue      string // Значение аутентификации, обязательно кроме способа NONE
	SimPurchase    string // Покупка SIM (из словаря SIM_PURCHASE)
	PlanName       string
	ContractPeriod string
	Status         string
	CreatedAt      time.Time
}

// DummyWiredForm используется для приёма анкеты проводного подключения
// из JSON-запроса. Дата рождения приходит строкой в формате 2006-01-02,
// чтобы её можно было валидировать и парсить вручную.
type DummyWiredForm struct {
	Name           string `json:"name" validate:"required,min=2"`
	Phone          string `json:"phone" validate:"required,min=10"`
	BirthDate      string `json:"birth_date" validate:"required"`
	Address        string `json:"address" validate:"required"`
	DetailAddress  string `json:"detail_address"`
	ZipCode        string `json:"zip_code" validate:"required"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=ACCOUNT CARD"`
	AccountInfo    string `json:"account_info"`
	CardInfo       string `json:"card_info"`
	ServiceType    string `json:"service_type" validate:"required"`
	PlanName       string `json:"plan_name" validate:"required"`
	ContractPeriod string `json:"contract_period" validate:"required"`
}

// DummyWirelessForm используется для приёма анкеты беспроводного подключения
// из JSON-запроса.
type DummyWirelessForm struct {
	Name           string `json:"name" validate:"required,min=2"`
	Phone          string `json:"phone" validate:"required,min=10"`
	BirthDate      string `json:"birth_date" validate:"required"`
	Address        string `json:"address" validate:"required"`
	DetailAddress  string `json:"detail_address"`
	ZipCode        string `json:"zip_code" validate:"required"`
	AuthMethod     string `json:"auth_method" validate:"required"`
	AuthValue      string `json:"auth_value"`
	SimPurchase    string `json:"sim_purchase" validate:"required"`
	PlanName       string `json:"plan_name" validate:"required"`
	ContractPeriod string `json:"contract_period" validate:"required"`
}
