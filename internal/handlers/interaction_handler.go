package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacology-gateway/internal/models"
)

// listInteractionsHandler godoc
// @Summary List interactions
// @Description List target-ligand interactions, optionally narrowed by target, ligand, species, type or approval status.
// @Tags interactions
// @Accept  json
// @Produce  json
// @Param   filter  body   models.InteractionFilter   true  "Interaction filter (all fields optional)"
// @Success 200 {array} object "List of interactions as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (malformed filter payload)"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /interactions [post]
func (a *API) listInteractionsHandler(c *gin.Context) {
	var filter models.InteractionFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid filter payload", gin.H{"reason": err.Error()})
		return
	}
	a.relay(c, "/interactions", filter.Params())
}

// getInteractionHandler godoc
// @Summary Get an interaction by ID
// @Tags interactions
// @Produce  json
// @Param   id  path   int  true  "Interaction ID"
// @Success 200 {object} object "Interaction as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (non-numeric ID)"
// @Failure 404 {object} models.APIError "Interaction not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /interactions/{id} [get]
func (a *API) getInteractionHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/interactions/%d", id), nil)
}
