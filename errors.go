package trakt

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMissingToken is wrapped by a BuildError when an endpoint requires
// authentication and the Context carries no OAuth token.
var ErrMissingToken = errors.New("missing oauth token")

// ErrorCode is the machine-readable classification of an API failure status.
type ErrorCode string

const (
	CodeBadRequest           ErrorCode = "bad_request"
	CodeUnauthorized         ErrorCode = "unauthorized"
	CodeForbidden            ErrorCode = "forbidden"
	CodeNotFound             ErrorCode = "not_found"
	CodeAlreadyExists        ErrorCode = "already_exists"
	CodeExpired              ErrorCode = "expired"
	CodeInvalidContentType   ErrorCode = "invalid_content_type"
	CodeDenied               ErrorCode = "denied"
	CodeAccountLimitExceeded ErrorCode = "account_limit_exceeded"
	CodeValidation           ErrorCode = "validation_error"
	CodeLockedUserAccount    ErrorCode = "locked_user_account"
	CodeVIPOnly              ErrorCode = "vip_only"
	CodeRateLimitExceeded    ErrorCode = "rate_limit_exceeded"
	CodeServerError          ErrorCode = "server_error"
	CodeServiceUnavailable   ErrorCode = "service_unavailable"
	CodeCloudflare           ErrorCode = "cloudflare_error"
	CodeUnknown              ErrorCode = "unknown"
)

// CodeForStatus classifies an HTTP status code returned by the API.
func CodeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeAlreadyExists
	case http.StatusGone:
		return CodeExpired
	case http.StatusPreconditionFailed:
		return CodeInvalidContentType
	case http.StatusTeapot:
		return CodeDenied
	case 420:
		return CodeAccountLimitExceeded
	case http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusLocked:
		return CodeLockedUserAccount
	case http.StatusUpgradeRequired:
		return CodeVIPOnly
	case http.StatusTooManyRequests:
		return CodeRateLimitExceeded
	case http.StatusInternalServerError:
		return CodeServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return CodeServiceUnavailable
	case 520, 521, 522:
		return CodeCloudflare
	default:
		return CodeUnknown
	}
}

// HTTPStatus maps an ErrorCode to the canonical HTTP status the API uses for it.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeExpired:
		return http.StatusGone
	case CodeInvalidContentType:
		return http.StatusPreconditionFailed
	case CodeDenied:
		return http.StatusTeapot
	case CodeAccountLimitExceeded:
		return 420
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeLockedUserAccount:
		return http.StatusLocked
	case CodeVIPOnly:
		return http.StatusUpgradeRequired
	case CodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeCloudflare:
		return 520
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the failure reported by the API itself. Message and Description are
// taken from the response body when it carries the OAuth style error envelope.
type APIError struct {
	Code        ErrorCode `json:"-"`
	StatusCode  int       `json:"-"`
	Message     string    `json:"error,omitempty"`
	Description string    `json:"error_description,omitempty"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s (%d)", e.Code, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Description != "" {
		msg += ": " + e.Description
	}
	return msg
}

// NewAPIError returns the APIError for status with an optional message.
func NewAPIError(status int, message string) *APIError {
	return &APIError{
		Code:       CodeForStatus(status),
		StatusCode: status,
		Message:    message,
	}
}

// BuildErrorKind classifies a BuildError.
type BuildErrorKind uint8

const (
	// BuildMissingPathParam: a template placeholder had no value.
	BuildMissingPathParam BuildErrorKind = iota + 1
	// BuildSerialize: a path, query or body value could not be encoded.
	BuildSerialize
	// BuildMissingToken: the endpoint requires a token and the Context has none.
	BuildMissingToken
	// BuildInvalid: the Context or the request failed validation.
	BuildInvalid
)

func (k BuildErrorKind) String() string {
	switch k {
	case BuildMissingPathParam:
		return "missing path parameter"
	case BuildSerialize:
		return "serialize"
	case BuildMissingToken:
		return "missing token"
	case BuildInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// BuildError is returned when a request cannot be turned into an HTTPRequest.
type BuildError struct {
	Kind  BuildErrorKind
	Param string // path parameter or field name, when known
	Err   error
}

func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString("trakt: build: ")
	b.WriteString(e.Kind.String())
	if e.Param != "" {
		b.WriteString(" ")
		b.WriteString(e.Param)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *BuildError) Unwrap() error { return e.Err }

// ParseErrorKind classifies a ParseError.
type ParseErrorKind uint8

const (
	// ParseStatus: the API answered with a status the endpoint does not document as success.
	ParseStatus ParseErrorKind = iota + 1
	// ParseDecode: the body or a header value did not match the expected schema.
	ParseDecode
	// ParseMissingHeader: a required response header was absent.
	ParseMissingHeader
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseStatus:
		return "status"
	case ParseDecode:
		return "decode"
	case ParseMissingHeader:
		return "missing header"
	default:
		return "unknown"
	}
}

// ParseError is returned when an HTTPResponse cannot be turned into a typed response.
type ParseError struct {
	Kind       ParseErrorKind
	StatusCode int       // ParseStatus only
	API        *APIError // ParseStatus only
	Header     string    // ParseMissingHeader, or ParseDecode of a header value
	Err        error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("trakt: parse: ")
	b.WriteString(e.Kind.String())
	switch {
	case e.Kind == ParseStatus:
		fmt.Fprintf(&b, " %d", e.StatusCode)
		if e.API != nil {
			b.WriteString(": ")
			b.WriteString(e.API.Error())
		}
	case e.Header != "":
		b.WriteString(" ")
		b.WriteString(e.Header)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.API != nil {
		return e.API
	}
	return nil
}

func decodeError(err error) *ParseError {
	return &ParseError{Kind: ParseDecode, Err: err}
}

// IsStatus reports whether err is a ParseError for the given status code.
func IsStatus(err error, status int) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == ParseStatus && pe.StatusCode == status
}

// invalidError wraps validator failures in a BuildError with a readable summary.
func invalidError(err error) *BuildError {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return &BuildError{Kind: BuildInvalid, Err: err}
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Field()+": "+formatValidationError(ve))
	}
	param := ""
	if len(valErrs) == 1 {
		param = valErrs[0].Field()
	}
	return &BuildError{
		Kind:  BuildInvalid,
		Param: param,
		Err:   fmt.Errorf("%s: %w", strings.Join(messages, "; "), err),
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "minwords":
		return fmt.Sprintf("must contain at least %s words", ve.Param())
	case "twoletter":
		return "must be a two letter code"
	case "notrailingslash":
		return "must not end with a slash"
	case "excluded_with", "required_without", "exactly_one":
		return fmt.Sprintf("exactly one of %s must be set", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
