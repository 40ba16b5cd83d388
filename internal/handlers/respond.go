package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jobboard/internal/apperr"
	"jobboard/internal/logging"
)

// Problem is the structured error payload every failing response carries.
type Problem struct {
	Title  string              `json:"title"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func respondProblem(c *gin.Context, status int, title string) {
	c.JSON(status, Problem{Title: title})
}

// respondBindError turns a binding failure into a field→messages map when
// it came from validation, or a generic BadRequest otherwise.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s (%s)", msg, fe.Param())
			}
			fields[fe.Field()] = append(fields[fe.Field()], msg)
		}
		c.JSON(http.StatusUnprocessableEntity, Problem{Title: "Validation failed", Errors: fields})
		return
	}
	respondProblem(c, http.StatusBadRequest, "Invalid request body")
}

// respondError maps service errors onto the HTTP taxonomy.
func respondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, Problem{Title: "Validation failed", Errors: verr.Fields})
	case errors.Is(err, apperr.ErrNotFound):
		respondProblem(c, http.StatusNotFound, "Not found")
	case errors.Is(err, apperr.ErrForbidden):
		respondProblem(c, http.StatusForbidden, "Not permitted")
	case errors.Is(err, apperr.ErrConflict):
		respondProblem(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrBadRequest):
		respondProblem(c, http.StatusBadRequest, err.Error())
	default:
		logging.Log.WithField("error", err.Error()).Error("Unhandled service error")
		respondProblem(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondList(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
