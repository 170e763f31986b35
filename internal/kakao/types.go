package kakao

// Place описывает один документ ответа поиска по ключевому слову.
type Place struct {
	PlaceName       string `json:"place_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
}

type keywordResponse struct {
	Documents []Place `json:"documents"`
}

// addressDocument описывает один документ ответа поиска по адресу.
// Почтовый индекс лежит либо в road_address.zone_no, либо в address.zip_code.
type addressDocument struct {
	RoadAddress *struct {
		AddressName string `json:"address_name"`
		ZoneNo      string `json:"zone_no"`
	} `json:"road_address"`
	Address *struct {
		AddressName string `json:"address_name"`
		ZipCode     string `json:"zip_code"`
	} `json:"address"`
}

type addressResponse struct {
	Documents []addressDocument `json:"documents"`
}
