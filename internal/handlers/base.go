package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"olivier/internal/apperror"
	"olivier/internal/dto"
	"olivier/internal/store"
	"olivier/internal/utils"
)

// RenderError 将错误写为 JSON 响应；204 类错误不带响应体
func RenderError(c *gin.Context, err error) {
	e, ok := apperror.As(err)
	if !ok {
		e = apperror.FromDatabase(err)
	}

	if e.Kind == apperror.KindDatabase {
		slog.ErrorContext(c.Request.Context(), "database error",
			"request_id", requestid.Get(c),
			"code", e.Code,
			"err", err,
		)
	}

	if !e.HasBody() {
		c.AbortWithStatus(e.Status())
		return
	}
	c.AbortWithStatusJSON(e.Status(), dto.ErrorResponse{Code: e.Code, Message: e.Message})
}

// bindJSON decodes the body into obj, insisting on a JSON content type.
func bindJSON(c *gin.Context, obj any) error {
	mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if err != nil || mediaType != gin.MIMEJSON {
		return apperror.MissingJSONContentType()
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		return apperror.FromBind(err)
	}
	return nil
}

// pathID reads the :id path parameter.
func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, ok := utils.ParseID(raw)
	if !ok {
		return 0, apperror.BadPath("id", raw)
	}
	return id, nil
}

// notFound maps store.ErrNotFound onto the given error and everything
// else onto a database error.
func notFound(err error, nf *apperror.Error) error {
	if errors.Is(err, store.ErrNotFound) {
		return nf
	}
	return apperror.FromDatabase(err)
}

// Health 存活探针
//
//	@Summary	Liveness check
//	@Tags		Service
//	@Success	200
//	@Router		/health [get]
func Health(c *gin.Context) {
	c.Status(http.StatusOK)
}
