package errors

// ErrorCode identifies a class of application error
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_FORBIDDEN
	ErrorCode_INVALID_PAYLOAD

	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
	ErrorCode_AUTH_USER_NOT_FOUND
	ErrorCode_AUTH_OAUTH_FAILED
	ErrorCode_AUTH_INVALID_STATE

	ErrorCode_ROOM_NOT_FOUND
	ErrorCode_ROOM_CREATION_FAILED
	ErrorCode_TOKEN_ISSUANCE_FAILED

	ErrorCode_TRANSCRIPT_NOT_FOUND
	ErrorCode_TRANSCRIPT_FETCH_FAILED

	ErrorCode_BRIEFING_FAILED

	ErrorCode_INTEGRATION_VIDEO_API_FAILED
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_INTEGRATION_CACHE_FAILED

	ErrorCode_DB_CONNECTION_FAILED
	ErrorCode_DB_QUERY_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                      "UNKNOWN",
	ErrorCode_HTTP_OK:                      "OK",
	ErrorCode_INTERNAL:                     "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:             "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                    "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:               "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:            "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:              "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                    "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:              "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:           "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:           "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_USER_NOT_FOUND:          "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_OAUTH_FAILED:            "AUTH_OAUTH_FAILED",
	ErrorCode_AUTH_INVALID_STATE:           "AUTH_INVALID_STATE",
	ErrorCode_ROOM_NOT_FOUND:               "ROOM_NOT_FOUND",
	ErrorCode_ROOM_CREATION_FAILED:         "ROOM_CREATION_FAILED",
	ErrorCode_TOKEN_ISSUANCE_FAILED:        "TOKEN_ISSUANCE_FAILED",
	ErrorCode_TRANSCRIPT_NOT_FOUND:         "TRANSCRIPT_NOT_FOUND",
	ErrorCode_TRANSCRIPT_FETCH_FAILED:      "TRANSCRIPT_FETCH_FAILED",
	ErrorCode_BRIEFING_FAILED:              "BRIEFING_FAILED",
	ErrorCode_INTEGRATION_VIDEO_API_FAILED: "INTEGRATION_VIDEO_API_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:   "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:     "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:         "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:              "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
