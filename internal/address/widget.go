package address

import "context"

// WidgetResult описывает данные завершения встраиваемого виджета
// почтовых индексов: адрес и индекс приходят одним шагом.
type WidgetResult struct {
	Address      string `json:"address"`
	ZoneCode     string `json:"zonecode"`
	RoadAddress  string `json:"road_address"`
	JibunAddress string `json:"jibun_address"`
	BuildingName string `json:"building_name"`
}

// WidgetPicker реализует Picker для потока с виджетом: поиск делегирован
// виджету на стороне клиента, сервер только нормализует его результат.
type WidgetPicker struct{}

// NewWidgetPicker создаёт WidgetPicker.
func NewWidgetPicker() *WidgetPicker {
	return &WidgetPicker{}
}

// Candidates не поддерживается: виджет сам ведёт поиск.
func (p *WidgetPicker) Candidates(_ context.Context, _ string) ([]Candidate, error) {
	return nil, ErrSearchUnsupported
}

// Resolve возвращает адрес и индекс кандидата как есть:
// виджет уже определил индекс.
func (p *WidgetPicker) Resolve(_ context.Context, c Candidate) (Selection, error) {
	addr := c.RoadAddress
	if addr == "" {
		addr = c.Address
	}
	return Selection{Address: addr, ZipCode: c.ZipCode}, nil
}

// FromResult нормализует данные завершения виджета в Selection.
// Приоритет у дорожного адреса, затем земельный.
func (p *WidgetPicker) FromResult(res WidgetResult) Selection {
	addr := res.RoadAddress
	if addr == "" {
		addr = res.JibunAddress
	}
	if addr == "" {
		addr = res.Address
	}
	return Selection{Address: addr, ZipCode: res.ZoneCode}
}
