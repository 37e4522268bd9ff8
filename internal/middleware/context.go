// internal/middleware/context.go
package middleware

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// ContextKey types the values interceptors attach to request contexts.
type ContextKey string

const (
	ContextKeyIPAddress ContextKey = "ip_address"
	ContextKeyUserAgent ContextKey = "user_agent"
	ContextKeyUserID    ContextKey = "user_id"
	ContextKeyUserEmail ContextKey = "user_email"
)

// WithUser attaches the authenticated caller's identity to the context.
// Tests use this directly; in production the auth interceptor calls it.
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUserID, userID)
	return context.WithValue(ctx, ContextKeyUserEmail, email)
}

// GetUserIDFromContext extracts the caller's user ID from context.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	return userID, ok
}

// GetUserEmailFromContext extracts the caller's email from context.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyUserEmail).(string)
	return email, ok
}

// MetadataExtractorInterceptor adds client IP and user agent to the
// context for the logging interceptor.
type MetadataExtractorInterceptor struct{}

// NewMetadataExtractorInterceptor creates a new metadata extractor interceptor
func NewMetadataExtractorInterceptor() *MetadataExtractorInterceptor {
	return &MetadataExtractorInterceptor{}
}

// Unary returns a unary server interceptor for metadata extraction
func (m *MetadataExtractorInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if ip := extractIPAddress(ctx); ip != "" {
			ctx = context.WithValue(ctx, ContextKeyIPAddress, ip)
		}
		if ua := extractUserAgent(ctx); ua != "" {
			ctx = context.WithValue(ctx, ContextKeyUserAgent, ua)
		}
		return handler(ctx, req)
	}
}

func extractIPAddress(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return ""
	}
	if tcpAddr, ok := p.Addr.(*net.TCPAddr); ok {
		return tcpAddr.IP.String()
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}

func extractUserAgent(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, header := range []string{"user-agent", "grpc-user-agent"} {
		if values := md.Get(header); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// ClientInfo bundles the request metadata used for logging.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	UserID    string
}

// GetClientInfoFromContext extracts all client information from context
func GetClientInfoFromContext(ctx context.Context) *ClientInfo {
	info := &ClientInfo{}
	if ip, ok := ctx.Value(ContextKeyIPAddress).(string); ok {
		info.IPAddress = ip
	}
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		info.UserAgent = ua
	}
	if userID, ok := GetUserIDFromContext(ctx); ok {
		info.UserID = userID
	}
	return info
}
