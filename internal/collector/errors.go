package collector

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fetch failures so callers branch on the failure
// class instead of matching rendered message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMissingCredential
	KindTransport
	KindHTTPStatus
	KindProvider
	KindThrottled
	KindEmptyResult
	KindDateParse
	KindUnsupportedConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindProvider:
		return "provider"
	case KindThrottled:
		return "throttled"
	case KindEmptyResult:
		return "empty_result"
	case KindDateParse:
		return "date_parse"
	case KindUnsupportedConfig:
		return "unsupported_configuration"
	default:
		return "unknown"
	}
}

// FetchError is the error type every fetch operation returns. Message
// holds provider-supplied text verbatim when the provider sent any;
// Err holds the underlying Go error when there is one.
type FetchError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s failure", e.Op, e.Kind)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind carried by err, or KindUnknown when err
// is not a FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
