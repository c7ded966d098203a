package constants

import "time"

// Echo context keys
const (
	ContextTokenData = "token_data"
	ContextRawToken  = "raw_token"
	ContextRequestID = "request_id"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Database pool
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis keys
const (
	RedisKeyTokenBlacklist  = "blacklist:token:"
	RedisKeyOAuthState      = "oauth:state:"
	RedisKeyUserProfile     = "user:profile:"
	RedisKeyRecommendations = "recommend:events:"
)

const (
	OAuthStateTTL   = 10 * time.Minute
	UserProfileTTL  = 5 * time.Minute
	MaxAvatarSize   = 5 << 20
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPageNumber   = 10000
)

// Notification types
const (
	NotificationTypeFriendRequest  = "friend_request"
	NotificationTypeFriendAccepted = "friend_accepted"
	NotificationTypeEventInvite    = "event_invitation"
)

// Background task types
const (
	TaskNotificationDeliver = "notification:deliver"
)
