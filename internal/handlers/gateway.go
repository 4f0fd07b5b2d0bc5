package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharmacology-gateway/internal/models"
	"pharmacology-gateway/internal/upstream"
)

// API provides the gateway handlers. Every handler is a thin composition of
// filter encoding, one upstream fetch and a relay (or file sink); the
// outbound boundary is injected so tests can swap in a fake.
type API struct {
	fetcher upstream.Fetcher
}

// NewAPI creates the gateway API around the given upstream fetcher.
func NewAPI(fetcher upstream.Fetcher) *API {
	return &API{fetcher: fetcher}
}

// RegisterRoutes registers the gateway routes with the given Gin router.
// Paths deliberately mirror the upstream reference service so callers can
// move between the two without relearning the layout.
func (a *API) RegisterRoutes(router *gin.Engine) {
	targetRoutes := router.Group("/targets")
	{
		targetRoutes.POST("", a.listTargetsHandler)
		targetRoutes.POST("/file", a.listTargetsToFileHandler)
		targetRoutes.GET("/families", a.listFamiliesHandler)
		targetRoutes.GET("/families/:id", a.getFamilyHandler)
		targetRoutes.GET("/:id", a.getTargetHandler)
		targetRoutes.GET("/:id/interactions", a.getTargetInteractionsHandler)
		targetRoutes.POST("/:id/interactions/file", a.getTargetInteractionsToFileHandler)
		targetRoutes.GET("/:id/diseases", a.getTargetDiseasesHandler)
		targetRoutes.GET("/:id/synonyms", a.getTargetSynonymsHandler)
		targetRoutes.GET("/:id/geneProteinInformation", a.getTargetGeneProteinInformationHandler)
		targetRoutes.GET("/:id/databaseLinks", a.getTargetDatabaseLinksHandler)
		targetRoutes.GET("/:id/naturalLigands", a.getTargetNaturalLigandsHandler)
		targetRoutes.GET("/:id/function", a.getTargetFunctionHandler)
	}

	ligandRoutes := router.Group("/ligands")
	{
		ligandRoutes.POST("", a.listLigandsHandler)
		ligandRoutes.POST("/file", a.listLigandsToFileHandler)
		ligandRoutes.POST("/exact", a.exactStructureSearchHandler)
		ligandRoutes.GET("/:id", a.getLigandHandler)
		ligandRoutes.GET("/:id/interactions", a.getLigandInteractionsHandler)
		ligandRoutes.POST("/:id/interactions/file", a.getLigandInteractionsToFileHandler)
		ligandRoutes.GET("/:id/synonyms", a.getLigandSynonymsHandler)
		ligandRoutes.GET("/:id/databaseLinks", a.getLigandDatabaseLinksHandler)
	}

	interactionRoutes := router.Group("/interactions")
	{
		interactionRoutes.POST("", a.listInteractionsHandler)
		interactionRoutes.GET("/:id", a.getInteractionHandler)
	}

	diseaseRoutes := router.Group("/diseases")
	{
		diseaseRoutes.GET("", a.listDiseasesHandler)
		diseaseRoutes.GET("/:id", a.getDiseaseHandler)
	}
}

// relay performs one upstream fetch and returns the decoded JSON inline.
func (a *API) relay(c *gin.Context, path string, params upstream.Params) {
	body, err := a.fetcher.Fetch(c.Request.Context(), path, params)
	if err != nil {
		a.respondUpstreamError(c, err)
		return
	}
	value, err := upstream.Relay(body)
	if err != nil {
		a.respondUpstreamError(c, err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, value)
}

// sink performs one upstream fetch and writes the decoded JSON to destPath,
// answering with the path instead of the payload.
func (a *API) sink(c *gin.Context, path string, params upstream.Params, destPath string) {
	body, err := a.fetcher.Fetch(c.Request.Context(), path, params)
	if err != nil {
		a.respondUpstreamError(c, err)
		return
	}
	written, err := upstream.Sink(body, destPath)
	if err != nil {
		a.respondUpstreamError(c, err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, models.FileResponse{FilePath: written})
}

// respondUpstreamError maps a classified outbound failure onto the inbound
// response. Upstream statuses are mirrored verbatim (a 404 target stays a
// 404, a 429 stays a 429); everything that never produced a usable upstream
// answer is a 500 with a code naming the failure class.
func (a *API) respondUpstreamError(c *gin.Context, err error) {
	log.Printf("request %s: %s %s failed: %v", requestID(c), c.Request.Method, c.Request.URL.Path, err)

	var statusErr *upstream.StatusError
	var sinkErr *upstream.SinkError
	switch {
	case errors.As(err, &statusErr):
		code := models.ErrorCodeUpstreamError
		switch statusErr.Code {
		case http.StatusNotFound:
			code = models.ErrorCodeNotFound
		case http.StatusTooManyRequests:
			code = models.ErrorCodeRateLimited
		}
		RespondWithError(c, statusErr.Code, code, "Upstream service returned an error.",
			gin.H{"upstreamStatus": statusErr.Code, "upstreamBody": statusErr.Body})
	case errors.As(err, &sinkErr):
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeFileWrite,
			"Failed to write response to file.", gin.H{"filePath": sinkErr.Path})
	case errors.Is(err, upstream.ErrTimeout):
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeRequestTimeout,
			"Upstream request timed out.", nil)
	case errors.Is(err, upstream.ErrConnectivity):
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeUpstreamUnreachable,
			"Failed to reach upstream service.", nil)
	case errors.Is(err, upstream.ErrDecode):
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeUpstreamBadPayload,
			"Upstream returned an unparseable response.", nil)
	default:
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Unexpected gateway error.", nil)
	}
}

// entityID parses the numeric id path parameter, answering 400 itself when
// the value is not a number.
func entityID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidIDFormat,
			"Invalid numeric ID in path.", gin.H{"id": idStr})
		return 0, false
	}
	return id, true
}
