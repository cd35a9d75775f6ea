package connection

// Form keys of a shot request body
// (application/x-www-form-urlencoded).
const (
	FormKeyX string = "x"
	FormKeyY string = "y"
)

const ContentTypeForm string = "application/x-www-form-urlencoded"

const (
	HeaderRequestID   string = "X-Request-Id"
	HeaderShotOutcome string = "X-Shot-Outcome"
)
