package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicler-app/chronicler/internal/model"
)

func TestCampaignLoadHealsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/1", r.URL.Path)
		// A partially corrupted document: the store is trusted for shape, not
		// for content.
		w.Write([]byte(`{
			"obj_id": {"prefix": "CAM", "numeric": 1},
			"title": "The Sundered Vale",
			"version": "1.0",
			"setting": "low fantasy",
			"summary": "A valley torn by an old war.",
			"arcs": [{"name": "Act One", "segments": [{"start": {"name": ""}}]}]
		}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL).Campaign(context.Background(), model.NewIdentifier(model.KindCampaign, 1))
	require.NoError(t, err)
	require.Len(t, c.Arcs, 1)
	require.Len(t, c.Arcs[0].Segments, 1)
	assert.Equal(t, model.DefaultPointName, c.Arcs[0].Segments[0].Start.Name)
}

func TestCampaignRejectsWrongKind(t *testing.T) {
	_, err := NewClient("http://unused").Campaign(context.Background(), model.NewIdentifier(model.KindArc, 1))
	var mismatch *model.KindMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestLoadByIdentifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/characters/3", r.URL.Path)
		w.Write([]byte(`{"obj_id": {"prefix": "CH", "numeric": 3}, "name": "Mirelle"}`))
	}))
	defer srv.Close()

	v, err := NewClient(srv.URL).Load(context.Background(), model.NewIdentifier(model.KindCharacter, 3))
	require.NoError(t, err)
	ch, ok := v.(model.Character)
	require.True(t, ok)
	assert.Equal(t, "Mirelle", ch.Name)
	assert.Equal(t, "No description", ch.Description)
}

func TestLoadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Load(context.Background(), model.NewIdentifier(model.KindItem, 9))
	assert.ErrorIs(t, err, ErrNotFound)

	// An unresolved identifier is not found by definition.
	_, err = NewClient(srv.URL).Load(context.Background(), model.Sentinel())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveSerializesSameShape(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/points/2", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := model.Point{
		ObjID:       model.NewIdentifier(model.KindPoint, 2),
		Name:        "The Crossing",
		Description: "No description",
	}
	err := NewClient(srv.URL).Save(context.Background(), p.ObjID, p)
	require.NoError(t, err)
	assert.Equal(t, "The Crossing", got["name"])
	assert.Equal(t, map[string]any{"prefix": "PT", "numeric": float64(2)}, got["obj_id"])
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/rules/1" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.NoError(t, client.Delete(context.Background(), model.NewIdentifier(model.KindRule, 1)))
	assert.ErrorIs(t, client.Delete(context.Background(), model.NewIdentifier(model.KindRule, 2)), ErrNotFound)
}
