package errors

import "net/http"

const CodeValidationError = "VALIDATION_ERROR"

var (
	ErrSiteNotFound = New(
		"SITE_NOT_FOUND",
		"Cultural site not found",
		http.StatusNotFound,
	)

	ErrFavoriteNotFound = New(
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	// Duplicate favorites are reported as a plain 400, not a 409
	ErrAlreadyFavorited = New(
		"ALREADY_FAVORITED",
		"Site is already in favorites",
		http.StatusBadRequest,
	)

	ErrEmailTaken = New(
		"EMAIL_ALREADY_REGISTERED",
		"A user with this email already exists",
		http.StatusConflict,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	// Generic 401 for every token failure mode; verification internals
	// are never exposed to the caller
	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Not authorized to access this resource",
		http.StatusUnauthorized,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrMalformedImportFile = New(
		"MALFORMED_IMPORT_FILE",
		"Import file could not be read or parsed",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
