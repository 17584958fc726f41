package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
)

const (
	RoleAdmin   = "admin"
	RoleKitchen = "kitchen"
	RoleNone    = "none"
)

const (
	BookingStatusInquiry    = "INQUIRY"
	BookingStatusMenuOpen   = "MENU_OPEN"
	BookingStatusMenuLocked = "MENU_LOCKED"
)

const (
	NotificationPurposeNewInquiry    = "NEW_INQUIRY"
	NotificationPurposeMenuSubmitted = "MENU_SUBMITTED"
)

const (
	NotificationTransportKafka = "kafka"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID       = "id"
	RequestParamToken    = "token"
	RequestParamQuery    = "q"
	RequestParamConfirm  = "confirm"
	RequestParamFrom     = "from"
	RequestParamTo       = "to"
	RequestParamStart    = "start"
	RequestParamEnd      = "end"
	RequestParamCategory = "category_id"
)

const (
	DefaultValuePage   = 1
	DefaultValueLimit  = 10
	DefaultSortOrder   = 100
	MaxBookingListRows = 200
	MaxCalendarDays    = 366
)

const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeCheckViolation  = "23514"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelMailScopeName     = "mail"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorOperationFailed      = "operation failed, please try again"
	ResponseErrorNotAuthorized        = "not authorized"
	ResponseErrorMenuLocked           = "menu is locked"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
