package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resp "voucher-management/internal/transport/http/response"
)

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, resp.OK(data))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, msg))
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, msg))
}

// fail records server-side errors on the context for the access log and
// answers with the mapped business code.
func fail(c *gin.Context, err error) {
	r := resp.FromError(err)
	if r.Code == resp.CodeServerError {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, r)
}

// nameOf trims raw and rejects blank or multi-line names.
func nameOf(c *gin.Context, raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		badRequest(c, "name must not be blank")
		return "", false
	case strings.ContainsAny(name, "\r\n"):
		badRequest(c, "name must be a single line")
		return "", false
	}
	return name, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
