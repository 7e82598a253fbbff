package types

const (
	// AUTH_KEY_HEADER carries the pre-shared secret on mutating requests.
	AUTH_KEY_HEADER = "X-Custom-Auth-Key"

	MEDIA_PATH_PREFIX = "/media/"

	ENVIRONMENT_DEVELOPMENT = "development"
)
