package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacology-gateway/internal/models"
)

// listLigandsHandler godoc
// @Summary List ligands
// @Description List ligands, optionally narrowed by the supplied filter. Molecular weight bounds map to the upstream molWeightGt/molWeightLt parameters.
// @Tags ligands
// @Accept  json
// @Produce  json
// @Param   filter  body   models.LigandFilter   true  "Ligand filter (all fields optional)"
// @Success 200 {array} object "List of ligands as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (malformed filter payload)"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /ligands [post]
func (a *API) listLigandsHandler(c *gin.Context) {
	var filter models.LigandFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid filter payload", gin.H{"reason": err.Error()})
		return
	}
	a.relay(c, "/ligands", filter.Params())
}

// getLigandHandler godoc
// @Summary Get a ligand by ID
// @Tags ligands
// @Produce  json
// @Param   id  path   int  true  "Ligand ID"
// @Success 200 {object} object "Ligand as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (non-numeric ID)"
// @Failure 404 {object} models.APIError "Ligand not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /ligands/{id} [get]
func (a *API) getLigandHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/ligands/%d", id), nil)
}

// getLigandInteractionsHandler godoc
// @Summary List interactions of a ligand
// @Tags ligands
// @Produce  json
// @Param   id       path   int     true   "Ligand ID"
// @Param   species  query  string  false  "Species name, e.g. Human"
// @Param   type     query  string  false  "Interaction type"
// @Param   approved query  bool    false  "Only approved ligands"
// @Success 200 {array} object "Interactions as produced by the upstream service"
// @Failure 404 {object} models.APIError "Ligand not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /ligands/{id}/interactions [get]
func (a *API) getLigandInteractionsHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	var filter models.SubresourceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid query parameters", gin.H{"reason": err.Error()})
		return
	}
	a.relay(c, fmt.Sprintf("/ligands/%d/interactions", id), filter.Params())
}

// getLigandSynonymsHandler godoc
// @Summary List synonyms of a ligand
// @Tags ligands
// @Produce  json
// @Param   id  path   int  true  "Ligand ID"
// @Success 200 {array} object "Synonyms as produced by the upstream service"
// @Failure 404 {object} models.APIError "Ligand not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /ligands/{id}/synonyms [get]
func (a *API) getLigandSynonymsHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/ligands/%d/synonyms", id), nil)
}

// getLigandDatabaseLinksHandler godoc
// @Summary List database links of a ligand
// @Tags ligands
// @Produce  json
// @Param   id  path   int  true  "Ligand ID"
// @Success 200 {array} object "External database links as produced by the upstream service"
// @Failure 404 {object} models.APIError "Ligand not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /ligands/{id}/databaseLinks [get]
func (a *API) getLigandDatabaseLinksHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/ligands/%d/databaseLinks", id), nil)
}

// exactStructureSearchHandler godoc
// @Summary Exact structure search
// @Description Find ligands whose structure exactly matches the given SMILES string.
// @Tags ligands
// @Accept  json
// @Produce  json
// @Param   request  body   models.ExactStructureRequest   true  "SMILES string to match"
// @Success 200 {array} object "Matching ligands (possibly empty) as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (missing smiles)"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /ligands/exact [post]
func (a *API) exactStructureSearchHandler(c *gin.Context) {
	var req models.ExactStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid search payload", gin.H{"reason": err.Error()})
		return
	}
	a.relay(c, "/ligands/exact", req.Params())
}
