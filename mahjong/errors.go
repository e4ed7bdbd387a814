package mahjong

import "fmt"

// ErrorCode separates the scoring failure modes so the renderer can pick
// the right user-facing message.
type ErrorCode int

const (
	CodeInvalidHandShape ErrorCode = iota + 1
	CodeNoYakuFound
	CodeAmbiguousConfiguration
)

// ScoringError is the only error type the engine returns.
type ScoringError struct {
	Code    ErrorCode
	Message string
}

func (e *ScoringError) Error() string {
	if e.Message == "" {
		switch e.Code {
		case CodeInvalidHandShape:
			return "invalid hand shape"
		case CodeNoYakuFound:
			return "no yaku found"
		case CodeAmbiguousConfiguration:
			return "ambiguous configuration"
		}
	}
	return e.Message
}

// Is matches on the code, so errors.Is(err, ErrNoYakuFound) holds for any
// detail message.
func (e *ScoringError) Is(target error) bool {
	t, ok := target.(*ScoringError)
	return ok && t.Code == e.Code
}

// Sentinel instances for errors.Is checks.
var (
	ErrInvalidHandShape       = &ScoringError{Code: CodeInvalidHandShape}
	ErrNoYakuFound            = &ScoringError{Code: CodeNoYakuFound}
	ErrAmbiguousConfiguration = &ScoringError{Code: CodeAmbiguousConfiguration}
)

func invalidHand(detail string) error {
	return &ScoringError{Code: CodeInvalidHandShape, Message: "invalid hand shape: " + detail}
}

func ambiguous(detail string) error {
	return &ScoringError{Code: CodeAmbiguousConfiguration, Message: "ambiguous configuration: " + detail}
}

func noYaku() error {
	return &ScoringError{Code: CodeNoYakuFound, Message: "no yaku found"}
}

func invalidHandf(format string, args ...any) error {
	return invalidHand(fmt.Sprintf(format, args...))
}
