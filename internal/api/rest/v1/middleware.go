package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/bookings"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/catalog"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Context keys set by JWTAuth
const (
	ContextKeySub   = "sub"
	ContextKeyRole  = "role"
	ContextKeyEmail = "email"
)

const tracerName = "simone-rest-api"

// TokenParser verifies an access token and returns its caller
type TokenParser interface {
	ParseValidate(token string) (auth.Caller, error)
}

// JWTAuth rejects requests without a valid bearer token and stores the caller in the context
func JWTAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}
		caller, err := tokens.ParseValidate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token"})
			return
		}
		c.Set(ContextKeySub, caller.UserID)
		c.Set(ContextKeyRole, caller.Role)
		c.Set(ContextKeyEmail, caller.Email)
		c.Next()
	}
}

// RequireRole lets through callers holding one of roles; JWTAuth must run first
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString(ContextKeyRole)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient role"})
			return
		}
		c.Next()
	}
}

// TracingMiddleware opens one server span per request, continuing any incoming trace context
func TracingMiddleware() gin.HandlerFunc {
	tracer := otel.Tracer(tracerName)
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if sub := c.GetString(ContextKeySub); sub != "" {
			span.SetAttributes(attribute.String("enduser.id", sub))
		}
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// callerFrom returns the caller stored by JWTAuth
func callerFrom(c *gin.Context) (auth.Caller, bool) {
	sub := c.GetString(ContextKeySub)
	if sub == "" {
		return auth.Caller{}, false
	}
	return auth.Caller{
		UserID: sub,
		Role:   c.GetString(ContextKeyRole),
		Email:  c.GetString(ContextKeyEmail),
	}, true
}

// actorResolver turns the caller of a request into a booking actor
type actorResolver struct {
	contractors catalog.ContractorService
}

// resolve attaches the contractor profile of contractor callers. A contractor
// user without a profile acts with the permissions of a plain user.
func (r actorResolver) resolve(c *gin.Context) (bookings.Actor, error) {
	caller, ok := callerFrom(c)
	if !ok {
		return bookings.Actor{}, bookings.ErrForbidden
	}
	actor := bookings.Actor{Caller: caller}
	if caller.Role != auth.RoleContractor {
		return actor, nil
	}

	contractor, err := r.contractors.GetByUserID(c.Request.Context(), caller.UserID)
	switch {
	case errors.Is(err, catalog.ErrContractorNotFound):
		return actor, nil
	case err != nil:
		return bookings.Actor{}, fmt.Errorf("failed to resolve contractor: %w", err)
	}
	actor.ContractorID = contractor.ID
	return actor, nil
}
