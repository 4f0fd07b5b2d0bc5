package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacology-gateway/internal/models"
)

// File-sink variants of the list operations. These exist for large result
// sets: the decoded upstream JSON goes to a caller-specified file and only
// the path comes back inline. Missing parent directories are created;
// existing files are overwritten.

// listTargetsToFileHandler godoc
// @Summary List targets into a file
// @Tags files
// @Accept  json
// @Produce  json
// @Param   request  body   models.TargetFileRequest   true  "Target filter plus destination path"
// @Success 200 {object} models.FileResponse "Path of the written file"
// @Failure 400 {object} models.APIError "Bad Request (missing filePath)"
// @Failure 500 {object} models.APIError "Upstream failure or local write failure (code FILE_WRITE_ERROR)"
// @Router /targets/file [post]
func (a *API) listTargetsToFileHandler(c *gin.Context) {
	var req models.TargetFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}
	a.sink(c, "/targets", req.Params(), req.FilePath)
}

// listLigandsToFileHandler godoc
// @Summary List ligands into a file
// @Tags files
// @Accept  json
// @Produce  json
// @Param   request  body   models.LigandFileRequest   true  "Ligand filter plus destination path"
// @Success 200 {object} models.FileResponse "Path of the written file"
// @Failure 400 {object} models.APIError "Bad Request (missing filePath)"
// @Failure 500 {object} models.APIError "Upstream failure or local write failure (code FILE_WRITE_ERROR)"
// @Router /ligands/file [post]
func (a *API) listLigandsToFileHandler(c *gin.Context) {
	var req models.LigandFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}
	a.sink(c, "/ligands", req.Params(), req.FilePath)
}

// getTargetInteractionsToFileHandler godoc
// @Summary List interactions of a target into a file
// @Tags files
// @Accept  json
// @Produce  json
// @Param   id       path   int                            true  "Target ID"
// @Param   request  body   models.InteractionFileRequest  true  "Interaction filter plus destination path"
// @Success 200 {object} models.FileResponse "Path of the written file"
// @Failure 400 {object} models.APIError "Bad Request"
// @Failure 500 {object} models.APIError "Upstream failure or local write failure (code FILE_WRITE_ERROR)"
// @Router /targets/{id}/interactions/file [post]
func (a *API) getTargetInteractionsToFileHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	var req models.InteractionFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}
	a.sink(c, fmt.Sprintf("/targets/%d/interactions", id), req.Params(), req.FilePath)
}

// getLigandInteractionsToFileHandler godoc
// @Summary List interactions of a ligand into a file
// @Tags files
// @Accept  json
// @Produce  json
// @Param   id       path   int                            true  "Ligand ID"
// @Param   request  body   models.InteractionFileRequest  true  "Interaction filter plus destination path"
// @Success 200 {object} models.FileResponse "Path of the written file"
// @Failure 400 {object} models.APIError "Bad Request"
// @Failure 500 {object} models.APIError "Upstream failure or local write failure (code FILE_WRITE_ERROR)"
// @Router /ligands/{id}/interactions/file [post]
func (a *API) getLigandInteractionsToFileHandler(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	var req models.InteractionFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}
	a.sink(c, fmt.Sprintf("/ligands/%d/interactions", id), req.Params(), req.FilePath)
}
