package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacology-gateway/internal/models"
	"pharmacology-gateway/internal/upstream"
)

func TestListLigandsMolecularWeightFilter(t *testing.T) {
	fake := &fakeUpstream{body: []byte(`[{"ligandId":1,"name":"5-HT"}]`)}
	router := setupRouter(fake)

	w := performJSON(router, "POST", "/ligands", gin.H{"molWeightGt": 100, "molWeightLt": 500})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/ligands", fake.gotPath)
	// Exactly the two bound parameters, no other weight-related keys.
	assert.Equal(t, upstream.Params{"molWeightGt": "100", "molWeightLt": "500"}, fake.gotParams)
}

func TestListLigandsApprovalFilter(t *testing.T) {
	fake := &fakeUpstream{body: []byte(`[{"ligandId":1,"approved":true}]`)}
	router := setupRouter(fake)

	w := performJSON(router, "POST", "/ligands", gin.H{"approved": true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, upstream.Params{"approved": "true"}, fake.gotParams)

	var data []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, true, data[0]["approved"])
}

func TestListLigandsMalformedBody(t *testing.T) {
	fake := &fakeUpstream{body: []byte(`[]`)}
	router := setupRouter(fake)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/ligands", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeAPIError(t, w)
	assert.Equal(t, models.ErrorCodeValidation, apiErr.Code)
	assert.Zero(t, fake.calls)
}

func TestGetLigandByID(t *testing.T) {
	fake := &fakeUpstream{body: []byte(`{"ligandId":7,"name":"serotonin"}`)}
	router := setupRouter(fake)

	w := performJSON(router, "GET", "/ligands/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/ligands/7", fake.gotPath)
	var ligand map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ligand))
	assert.Equal(t, float64(7), ligand["ligandId"])
}

func TestGetLigandInteractionsWithFilter(t *testing.T) {
	fake := &fakeUpstream{body: []byte(`[]`)}
	router := setupRouter(fake)

	w := performJSON(router, "GET", "/ligands/7/interactions?species=Rat", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/ligands/7/interactions", fake.gotPath)
	assert.Equal(t, upstream.Params{"species": "Rat"}, fake.gotParams)
}

func TestExactStructureSearch(t *testing.T) {
	fake := &fakeUpstream{body: []byte(`[]`)}
	router := setupRouter(fake)

	w := performJSON(router, "POST", "/ligands/exact", gin.H{"smiles": "CCO"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/ligands/exact", fake.gotPath)
	assert.Equal(t, upstream.Params{"smiles": "CCO"}, fake.gotParams)

	var data []any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Empty(t, data, "no structural match is an empty list, not an error")
}

func TestExactStructureSearchRequiresSmiles(t *testing.T) {
	fake := &fakeUpstream{body: []byte(`[]`)}
	router := setupRouter(fake)

	w := performJSON(router, "POST", "/ligands/exact", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, fake.calls)
}
