package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepresentativeText(t *testing.T) {
	t.Run("name and description", func(t *testing.T) {
		item := Item{Name: "Guyton", Description: "Tratado de fisiología médica"}
		assert.Equal(t, "Guyton Tratado de fisiología médica", item.RepresentativeText())
	})

	t.Run("blank when both empty", func(t *testing.T) {
		assert.Empty(t, Item{}.RepresentativeText())
		assert.Empty(t, Item{Name: "  "}.RepresentativeText())
	})
}

func TestItemUnmarshalJSON(t *testing.T) {
	t.Run("complete record", func(t *testing.T) {
		var item Item
		data := `{"id":"b1","name":"Robbins","description":"Patología","categoryName":"medicina","price":120.5}`
		require.NoError(t, json.Unmarshal([]byte(data), &item))
		assert.Equal(t, "b1", item.ID)
		assert.Equal(t, "Robbins", item.Name)
		assert.Equal(t, 120.5, item.Price)
	})

	t.Run("missing fields decode to zero values", func(t *testing.T) {
		var item Item
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Katzung"}`), &item))
		assert.Empty(t, item.ID)
		assert.Empty(t, item.Description)
		assert.Zero(t, item.Price)
	})

	t.Run("numeric id and string price", func(t *testing.T) {
		var item Item
		require.NoError(t, json.Unmarshal([]byte(`{"id":42,"price":"99.90"}`), &item))
		assert.Equal(t, "42", item.ID)
		assert.Equal(t, 99.90, item.Price)
	})

	t.Run("unparseable price decodes to zero", func(t *testing.T) {
		var item Item
		require.NoError(t, json.Unmarshal([]byte(`{"price":"gratis"}`), &item))
		assert.Zero(t, item.Price)
	})
}

func TestClient(t *testing.T) {
	t.Run("requires base URL", func(t *testing.T) {
		_, err := NewClient("  ")
		assert.ErrorIs(t, err, ErrBaseURLRequired)
	})

	t.Run("fetches items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":1,"name":"Harrison","categoryName":"medicina"},{"name":"Clean Code"}]`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL)
		require.NoError(t, err)

		items, err := client.Items(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, "Clean Code", items[1].Name)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client, err := NewClient(server.URL)
		require.NoError(t, err)

		_, err = client.Items(context.Background())
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}
