package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gdugdh24/topfive-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/topfive-backend/internal/domain"
	"github.com/gdugdh24/topfive-backend/pkg/log"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Success string `json:"success"`
}

const msgUnexpected = "An unexpected error occurred"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators reports fields by their json names and adds the choice=<kind> tag.
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("choice", func(fl validator.FieldLevel) bool {
		return domain.IsValidChoice(domain.ChoiceKind(fl.Param()), fl.Field().String())
	})
}

// respondError maps use case errors to a status and body. Anything unrecognised is logged
// and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrMatchNotFound),
		errors.Is(err, domain.ErrPromptNotFound),
		errors.Is(err, domain.ErrPromptResponseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: rootMessage(err)})
	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrIncorrectPassword):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: rootMessage(err)})
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrMatchExists),
		errors.Is(err, domain.ErrPromptAlreadyAnswered):
		c.JSON(http.StatusConflict, ErrorResponse{Error: rootMessage(err)})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired token"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have permission to perform this action."})
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.From(c.Request.Context()).Error("storage unavailable", "err", err, "path", c.FullPath())
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Photo storage is temporarily unavailable"})
	default:
		lg := log.From(c.Request.Context())
		if account, ok := middleware.CurrentAccount(c); ok {
			lg = lg.With("account_id", account.ID)
		}
		lg.Error("unexpected error", "err", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUnexpected})
	}
}

// respondTokenError is used where a supplied refresh token is request input, so a bad
// token is a client mistake rather than an authentication failure.
func respondTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenRevoked):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired token"})
	default:
		respondError(c, err)
	}
}

// rootMessage strips the op prefixes added while wrapping.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// bindJSON binds the body into dst and writes the 400 itself on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, validationFields(verrs))
			return false
		}
		var perr *domain.PhotoUpdateError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadRequest, map[string][]string{"picture_urls": {perr.Reason}})
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func validationFields(verrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i > 0 {
			field = field[:i]
		}
		out[field] = append(out[field], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "choice":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Ensure this field has no more than %s elements.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Ensure this field has at least %s elements.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	}
	return "Invalid value."
}

// pathID parses the :id segment.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// currentAccount returns the authenticated caller. RequireAuth guarantees it on protected
// routes; the 401 covers a misconfigured route.
func currentAccount(c *gin.Context) (*domain.Account, bool) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return nil, false
	}
	return account, true
}
