package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/logctx"
	"github.com/restobill/restobill/pkg/response"
)

// respondErr maps a service error to the response envelope. Internal detail
// is logged, never returned.
func respondErr(c *gin.Context, log *zap.SugaredLogger, err error) {
	code, status := response.CodeForError(err)
	if apperr.KindOf(err) == apperr.KindInternal {
		logctx.FromGin(c, log).Errorw("request failed", "err", err, "path", c.FullPath())
	}
	c.JSON(status, response.ErrorT(code, response.ErrorBody(err)))
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
}
