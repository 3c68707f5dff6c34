package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/go-auth-keeper/internal/service"

// AuthServiceWrapper decorates an AuthService with cross-cutting behavior.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type authServiceTracingWrapper struct {
	provider trace.TracerProvider
}

// NewAuthServiceTracingWrapper returns a wrapper that records one span per
// AuthService call using provider.
func NewAuthServiceTracingWrapper(provider trace.TracerProvider) AuthServiceWrapper {
	return &authServiceTracingWrapper{provider: provider}
}

func (w *authServiceTracingWrapper) Wrap(next AuthService) AuthService {
	return &tracingAuthService{
		next:   next,
		tracer: w.provider.Tracer(tracerName),
	}
}

type tracingAuthService struct {
	next   AuthService
	tracer trace.Tracer
}

func (t *tracingAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	ctx, span := t.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	user, err := t.next.Register(ctx, req)
	if err == nil {
		span.SetAttributes(attribute.String("user.id", user.UserID))
	}
	endSpan(span, err)
	return user, err
}

func (t *tracingAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	ctx, span := t.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	token, err := t.next.Login(ctx, credentials)
	if err == nil {
		span.SetAttributes(attribute.String("user.id", token.UserID))
	}
	endSpan(span, err)
	return token, err
}

func (t *tracingAuthService) Authorize(ctx context.Context, rawToken string) (models.User, error) {
	ctx, span := t.tracer.Start(ctx, "AuthService.Authorize")
	defer span.End()

	user, err := t.next.Authorize(ctx, rawToken)
	if err == nil {
		span.SetAttributes(attribute.String("user.id", user.UserID))
	}
	endSpan(span, err)
	return user, err
}

func (t *tracingAuthService) Details(ctx context.Context, user models.User) models.Profile {
	return t.next.Details(ctx, user)
}

// endSpan marks span as failed when err is set. Credentials and tokens are
// never recorded.
func endSpan(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
