package errors

import "fmt"

// Error codes
const (
	CodeRankingError = "RANKING_ERROR"
	CodeFetch        = "FETCH_ERROR"
	CodeParse        = "PARSE_ERROR"
	CodeWrite        = "WRITE_ERROR"
	CodeMirror       = "MIRROR_ERROR"
	CodeValidation   = "VALIDATION_ERROR"
)

type RankingError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *RankingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RankingError) Unwrap() error {
	return e.Cause
}

func NewRankingError(message, code string, context map[string]any) *RankingError {
	return &RankingError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *RankingError) WithCause(cause error) *RankingError {
	e.Cause = cause
	return e
}

// FetchError is returned when a load-bearing source cannot be read.
// StatusCode is zero for transport failures.
type FetchError struct {
	*RankingError
	Source     string
	URL        string
	StatusCode int
}

func NewFetchError(source, url string, statusCode int, cause error) *FetchError {
	msg := fmt.Sprintf("%s fetch failed (%s)", source, url)
	if statusCode != 0 {
		msg = fmt.Sprintf("%s fetch failed with status %d (%s)", source, statusCode, url)
	}
	return &FetchError{
		RankingError: &RankingError{
			Message: msg,
			Code:    CodeFetch,
			Context: map[string]any{
				"source": source,
				"url":    url,
				"status": statusCode,
			},
			Cause: cause,
		},
		Source:     source,
		URL:        url,
		StatusCode: statusCode,
	}
}

type ParseError struct {
	*RankingError
	Source string
}

func NewParseError(message, source string, cause error) *ParseError {
	return &ParseError{
		RankingError: &RankingError{
			Message: message,
			Code:    CodeParse,
			Context: map[string]any{
				"source": source,
			},
			Cause: cause,
		},
		Source: source,
	}
}

type WriteError struct {
	*RankingError
	Path string
}

func NewWriteError(message, path string, cause error) *WriteError {
	return &WriteError{
		RankingError: &RankingError{
			Message: message,
			Code:    CodeWrite,
			Context: map[string]any{
				"path": path,
			},
			Cause: cause,
		},
		Path: path,
	}
}

type MirrorError struct {
	*RankingError
	Operation string
	Key       string
}

func NewMirrorError(message, operation, key string, cause error) *MirrorError {
	return &MirrorError{
		RankingError: &RankingError{
			Message: message,
			Code:    CodeMirror,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ValidationError struct {
	*RankingError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		RankingError: &RankingError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}
