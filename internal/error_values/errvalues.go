package errorvalues

import "errors"

var (
	ErrUserExists         = errors.New("such user already exists")
	ErrUserNotFound       = errors.New("user doesn't exists")
	ErrWrongCredentials   = errors.New("wrong email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongOwner         = errors.New("resource belongs to another user")
	ErrRoleNotAllowed     = errors.New("action not allowed for this role")
	ErrSupportNotFound    = errors.New("support account doesn't exist")
	ErrTaskNotFound       = errors.New("task doesn't exist")
	ErrPhotoNotFound      = errors.New("photo doesn't exist")
	ErrResetTokenNotFound = errors.New("reset token expired or unknown")
	ErrInvalidCoordinator = errors.New("coordinator id is empty")
	ErrFeedUnavailable    = errors.New("live feed is not connected")
	ErrValidation         = errors.New("validation error")
)

// Messages shown to end users. Anything unlisted falls back to the generic one.
var userMessages = map[error]string{
	ErrUserExists:         "This email is already in use.",
	ErrUserNotFound:       "No account found with this email.",
	ErrWrongCredentials:   "The password is incorrect.",
	ErrSupportNotFound:    "The support account you are linking to doesn't exist.",
	ErrResetTokenNotFound: "This reset link has expired. Please request a new one.",
	ErrRoleNotAllowed:     "Your account can't do that.",
	ErrValidation:         "Some fields are invalid. Please check and try again.",
	ErrTaskNotFound:       "This task doesn't exist anymore.",
	ErrPhotoNotFound:      "No photo has been added yet.",
	ErrWrongOwner:         "You don't have access to this item.",
	ErrInvalidToken:       "Please sign in again.",
	ErrFeedUnavailable:    "Live updates are unavailable right now. Please try again later.",
}

const unexpectedMessage = "An unexpected error occurred. Please try again."

func UserMessage(err error) string {
	for target, msg := range userMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return unexpectedMessage
}
