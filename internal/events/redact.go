package events

import (
	"net/url"
	"regexp"
	"strings"
)

var secretParamPattern = regexp.MustCompile(`(?i)(password|secret|token)=[^\s&]+`)

// RedactURL returns redisURL with its password and any secret-looking query
// values replaced, for use in logs. The username and address are kept.
func RedactURL(redisURL string) string {
	if redisURL == "" {
		return ""
	}

	u, err := url.Parse(redisURL)
	if err != nil {
		return "[redacted]"
	}

	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "redacted")
		}
	}
	if u.RawQuery != "" {
		u.RawQuery = secretParamPattern.ReplaceAllString(u.RawQuery, "${1}=redacted")
	}

	return u.String()
}

// scrubSecrets removes redisURL and its password from msg.
func scrubSecrets(msg, redisURL string) string {
	if redisURL == "" {
		return msg
	}

	msg = strings.ReplaceAll(msg, redisURL, RedactURL(redisURL))
	if u, err := url.Parse(redisURL); err == nil && u.User != nil {
		if password, ok := u.User.Password(); ok && password != "" {
			msg = strings.ReplaceAll(msg, password, "redacted")
		}
	}

	return secretParamPattern.ReplaceAllString(msg, "${1}=redacted")
}

// redactedError carries a scrubbed message while keeping the cause for errors.Is.
type redactedError struct {
	msg   string
	cause error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.cause }

func redactError(prefix string, err error, redisURL string) error {
	return &redactedError{
		msg:   prefix + " " + RedactURL(redisURL) + ": " + scrubSecrets(err.Error(), redisURL),
		cause: err,
	}
}
