package kakao

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-key", 5*time.Second)
	client.apiURL = srv.URL
	return client
}

func TestClient_SearchKeyword(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/search/keyword.json", r.URL.Path)
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "강남역", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[
			{"place_name":"강남역 2호선","address_name":"서울 강남구 역삼동 858","road_address_name":"서울 강남구 강남대로 396"},
			{"place_name":"강남역 신분당선","address_name":"서울 강남구 역삼동 804","road_address_name":""}
		]}`))
	})

	places, err := client.SearchKeyword(context.Background(), "강남역")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "강남역 2호선", places[0].PlaceName)
	assert.Equal(t, "서울 강남구 강남대로 396", places[0].RoadAddressName)
	assert.Empty(t, places[1].RoadAddressName)
}

func TestClient_SearchKeyword_TooShort(t *testing.T) {
	client := NewClient("test-key", time.Second)

	_, err := client.SearchKeyword(context.Background(), "강")
	assert.ErrorIs(t, err, ErrQueryTooShort)
}

func TestClient_SearchKeyword_BadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.SearchKeyword(context.Background(), "강남역")
	assert.Error(t, err)
}

func TestClient_SearchZipCode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantZip  string
		wantPath string
	}{
		{
			name:    "zone_no from road address",
			body:    `{"documents":[{"road_address":{"address_name":"서울 강남구 강남대로 396","zone_no":"06134"},"address":{"address_name":"서울 강남구 역삼동 858","zip_code":"135-080"}}]}`,
			wantZip: "06134",
		},
		{
			name:    "fallback to zip_code",
			body:    `{"documents":[{"address":{"address_name":"서울 강남구 역삼동 858","zip_code":"135-080"}}]}`,
			wantZip: "135-080",
		},
		{
			name:    "empty documents yield empty zip",
			body:    `{"documents":[]}`,
			wantZip: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/local/search/address.json", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			zip, err := client.SearchZipCode(context.Background(), "서울 강남구 강남대로 396")
			require.NoError(t, err)
			assert.Equal(t, tt.wantZip, zip)
		})
	}
}
