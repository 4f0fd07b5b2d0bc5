package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// listDiseasesHandler godoc
// @Summary List diseases
// @Tags diseases
// @Produce  json
// @Success 200 {array} object "List of diseases as produced by the upstream service"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /diseases [get]
func (a *API) listDiseasesHandler(c *gin.Context) {
	a.relay(c, "/diseases", nil)
}

// getDiseaseHandler godoc
// @Summary Get a disease by ID
// @Tags diseases
// @Produce  json
// @Param   id  path   int  true  "Disease ID"
// @Success 200 {object} object "Disease as produced by the upstream service"
// @Failure 400 {object} models.APIError "Bad Request (non-numeric ID)"
// @Failure 404 {object} models.APIError "Disease not found upstream"
// @Failure 500 {object} models.APIError "Upstream, decode or connectivity failure"
// @Router /diseases/{id} [get]
func (a *API) getDiseaseHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	a.relay(c, fmt.Sprintf("/diseases/%d", id), nil)
}
