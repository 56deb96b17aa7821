package magazine_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pressroom/internal/core/magazine"
)

func serve(f *fixture, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	magazine.NewHandler(f.service).Routes().ServeHTTP(recorder, request)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

/*
TestHandler_CreateUnderPublisher posts to /{publisherId}.
*/
func TestHandler_CreateUnderPublisher(t *testing.T) {
	f := newFixture()

	recorder := serve(f, http.MethodPost, "/1", `{"title":"X","genre":"Tech","issueNumber":1,"releaseYear":2020,"price":9.99}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	assert.Contains(t, recorder.Body.String(), `"price":9.99`)

	var created magazine.Magazine
	decodeData(t, recorder, &created)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 1, created.PublisherID())
	assert.True(t, created.Price.Equal(decimal.RequireFromString("9.99")))

	var tech []magazine.Magazine
	decodeData(t, serve(f, http.MethodGet, "/genre/Tech", ""), &tech)
	require.Len(t, tech, 1)
	assert.Equal(t, created.ID, tech[0].ID)
}

/*
TestHandler_Errors maps failures onto status codes.
*/
func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"create_missing_publisher", http.MethodPost, "/42", `{"title":"X"}`, http.StatusNotFound},
		{"create_bad_publisher_id", http.MethodPost, "/abc", `{"title":"X"}`, http.StatusBadRequest},
		{"get_missing", http.MethodGet, "/5", "", http.StatusNotFound},
		{"update_missing", http.MethodPut, "/5", `{"title":"X"}`, http.StatusNotFound},
		{"delete_missing", http.MethodDelete, "/5", "", http.StatusNotFound},
		{"bad_year", http.MethodGet, "/releasedAfter/soon", "", http.StatusBadRequest},
		{"price_range_missing_max", http.MethodGet, "/priceRange?minPrice=1", "", http.StatusBadRequest},
		{"price_range_not_decimal", http.MethodGet, "/priceRange?minPrice=a&maxPrice=2", "", http.StatusBadRequest},
		{"unknown_sort", http.MethodGet, "/?sortBy=publisher", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(newFixture(), tt.method, tt.target, tt.body).Code)
		})
	}
}

/*
TestHandler_PriceRangeInclusive includes both boundaries.
*/
func TestHandler_PriceRangeInclusive(t *testing.T) {
	f := newFixture()
	for _, body := range []string{`{"title":"low","price":"5.00"}`, `{"title":"mid","price":"7.5"}`, `{"title":"high","price":"10"}`, `{"title":"over","price":"10.01"}`} {
		require.Equal(t, http.StatusCreated, serve(f, http.MethodPost, "/2", body).Code)
	}

	var found []magazine.Magazine
	decodeData(t, serve(f, http.MethodGet, "/priceRange?minPrice=5&maxPrice=10", ""), &found)

	titles := make([]string, 0, len(found))
	for _, m := range found {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"low", "mid", "high"}, titles)
}

/*
TestHandler_UpdateAndDelete runs a full lifecycle.
*/
func TestHandler_UpdateAndDelete(t *testing.T) {
	f := newFixture()
	require.Equal(t, http.StatusCreated, serve(f, http.MethodPost, "/1", `{"title":"X"}`).Code)

	recorder := serve(f, http.MethodPut, "/1", `{"title":"Y","publisher":{"id":2}}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated magazine.Magazine
	decodeData(t, recorder, &updated)
	assert.Equal(t, "Y", updated.Title)
	assert.Equal(t, 2, updated.PublisherID())

	var owned []magazine.Magazine
	decodeData(t, serve(f, http.MethodGet, "/publisher/2", ""), &owned)
	assert.Len(t, owned, 1)

	assert.Equal(t, http.StatusNoContent, serve(f, http.MethodDelete, "/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(f, http.MethodGet, "/1", "").Code)
}

/*
TestHandler_ListOrder reverses with order=desc.
*/
func TestHandler_ListOrder(t *testing.T) {
	f := newFixture()
	for _, title := range []string{"a", "b", "c"} {
		require.Equal(t, http.StatusCreated, serve(f, http.MethodPost, "/1", `{"title":"`+title+`"}`).Code)
	}

	var descending []magazine.Magazine
	decodeData(t, serve(f, http.MethodGet, "/?sortBy=id&order=desc", ""), &descending)

	require.Len(t, descending, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{descending[0].ID, descending[1].ID, descending[2].ID})
}

/*
TestHandler_EncodedGenre keeps an escaped slash inside one segment.
*/
func TestHandler_EncodedGenre(t *testing.T) {
	f := newFixture()
	require.Equal(t, http.StatusCreated, serve(f, http.MethodPost, "/1", `{"title":"X","genre":"Sci/Fi"}`).Code)
	require.Equal(t, http.StatusCreated, serve(f, http.MethodPost, "/1", `{"title":"Y","genre":"R&D"}`).Code)

	var sciFi []magazine.Magazine
	decodeData(t, serve(f, http.MethodGet, "/genre/Sci%2FFi", ""), &sciFi)
	require.Len(t, sciFi, 1)
	assert.Equal(t, "X", sciFi[0].Title)

	var research []magazine.Magazine
	decodeData(t, serve(f, http.MethodGet, "/genre/R%26D", ""), &research)
	require.Len(t, research, 1)
	assert.Equal(t, "Y", research[0].Title)
}
