package contract

import (
	"time"
)

// IAppLogger is the leveled logger injected into usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetPlaceholderImageBaseURL() string
}

// IValidator validates credentials-related input.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
