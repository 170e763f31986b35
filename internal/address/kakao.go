package address

import (
	"context"

	"github.com/memora/intake/internal/kakao"
)

// KakaoClient описывает используемую часть клиента Kakao Local API.
type KakaoClient interface {
	SearchKeyword(ctx context.Context, keyword string) ([]kakao.Place, error)
	SearchZipCode(ctx context.Context, address string) (string, error)
}

// KakaoPicker реализует Picker поверх Kakao Local REST API:
// поиск мест по ключевому слову и отдельный запрос почтового индекса.
type KakaoPicker struct {
	client KakaoClient
}

// NewKakaoPicker создаёт KakaoPicker с переданным клиентом.
func NewKakaoPicker(client KakaoClient) *KakaoPicker {
	return &KakaoPicker{client: client}
}

// Candidates ищет места по ключевому слову.
func (p *KakaoPicker) Candidates(ctx context.Context, query string) ([]Candidate, error) {
	places, err := p.client.SearchKeyword(ctx, query)
	if err != nil {
		return nil, err
	}
	result := make([]Candidate, 0, len(places))
	for _, place := range places {
		result = append(result, Candidate{
			Name:        place.PlaceName,
			Address:     place.AddressName,
			RoadAddress: place.RoadAddressName,
		})
	}
	return result, nil
}

// Resolve возвращает адрес кандидата (дорожный, если есть) и почтовый индекс.
// Если индекс определить не удалось, возвращается пустая строка.
func (p *KakaoPicker) Resolve(ctx context.Context, c Candidate) (Selection, error) {
	addr := c.RoadAddress
	if addr == "" {
		addr = c.Address
	}

	zip, err := p.client.SearchZipCode(ctx, addr)
	if err != nil {
		// Индекс необязателен: выбор адреса не должен падать из-за него.
		zip = ""
	}
	return Selection{Address: addr, ZipCode: zip}, nil
}
