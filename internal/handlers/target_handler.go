package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacology-gateway/internal/models"
)

// listTargetsHandler godoc
// @Summary List targets
// @Description List pharmacological targets, optionally narrowed by the supplied filter. The filter is translated into upstream query parameters; the upstream JSON list is relayed verbatim.
// @Tags targets
// @Accept  json
// @Produce  json
// @Param   filter  body   models.TargetFilter   true  "Target filter (all fields optional)"
// @Success 200 {array} object "List of targets as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (malformed filter payload)"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets [post]
func (a *API) listTargetsHandler(c *gin.Context) {
	var filter models.TargetFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid filter payload", gin.H{"reason": err.Error()})
		return
	}
	a.relay(c, "/targets", filter.Params())
}

// getTargetHandler godoc
// @Summary Get a target by ID
// @Description Fetch a single target by its numeric upstream identifier.
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Target ID"
// @Success 200 {object} object "Target as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (non-numeric ID)"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id} [get]
func (a *API) getTargetHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d", id), nil)
}

// getTargetInteractionsHandler godoc
// @Summary List interactions of a target
// @Description List the ligand interactions recorded for one target, optionally narrowed by species, interaction type or approval status.
// @Tags targets
// @Produce  json
// @Param   id       path   int     true   "Target ID"
// @Param   species  query  string  false  "Species name, e.g. Human"
// @Param   type     query  string  false  "Interaction type, e.g. Agonist"
// @Param   approved query  bool    false  "Only approved ligands"
// @Success 200 {array} object "Interactions as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id}/interactions [get]
func (a *API) getTargetInteractionsHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	var filter models.SubresourceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid query parameters", gin.H{"reason": err.Error()})
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d/interactions", id), filter.Params())
}

// getTargetDiseasesHandler godoc
// @Summary List diseases linked to a target
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Target ID"
// @Success 200 {array} object "Disease links as produced by the upstream service"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id}/diseases [get]
func (a *API) getTargetDiseasesHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d/diseases", id), nil)
}

// getTargetSynonymsHandler godoc
// @Summary List synonyms of a target
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Target ID"
// @Success 200 {array} object "Synonyms as produced by the upstream service"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id}/synonyms [get]
func (a *API) getTargetSynonymsHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d/synonyms", id), nil)
}

// getTargetGeneProteinInformationHandler godoc
// @Summary List gene and protein information for a target
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Target ID"
// @Success 200 {array} object "Gene and protein records as produced by the upstream service"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id}/geneProteinInformation [get]
func (a *API) getTargetGeneProteinInformationHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d/geneProteinInformation", id), nil)
}

// getTargetDatabaseLinksHandler godoc
// @Summary List database links of a target
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Target ID"
// @Success 200 {array} object "External database links as produced by the upstream service"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id}/databaseLinks [get]
func (a *API) getTargetDatabaseLinksHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d/databaseLinks", id), nil)
}

// getTargetNaturalLigandsHandler godoc
// @Summary List natural ligands of a target
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Target ID"
// @Success 200 {array} object "Natural ligands as produced by the upstream service"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id}/naturalLigands [get]
func (a *API) getTargetNaturalLigandsHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d/naturalLigands", id), nil)
}

// getTargetFunctionHandler godoc
// @Summary Get functional annotation of a target
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Target ID"
// @Success 200 {array} object "Functional annotation as produced by the upstream service"
// @Failure 404 {object} models.APIError "Target not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/{id}/function [get]
func (a *API) getTargetFunctionHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/%d/function", id), nil)
}

// listFamiliesHandler godoc
// @Summary List target families
// @Tags targets
// @Produce  json
// @Success 200 {array} object "Target families as produced by the upstream service"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/families [get]
func (a *API) listFamiliesHandler(c *gin.Context) {
	a.relay(c, "/targets/families", nil)
}

// getFamilyHandler godoc
// @Summary Get a target family by ID
// @Tags targets
// @Produce  json
// @Param   id  path   int  true  "Family ID"
// @Success 200 {object} object "Target family as produced by the upstream service"
// @Failure 404 {object} models.APIError "Family not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /targets/families/{id} [get]
func (a *API) getFamilyHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/targets/families/%d", id), nil)
}
