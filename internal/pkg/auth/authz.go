package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/rego"
)

type contextKey string

const allowedTenantsCtxKey contextKey = "allowed-tenants"

func WithAllowedTenants(ctx context.Context, tenants []string) context.Context {
	return context.WithValue(ctx, allowedTenantsCtxKey, tenants)
}

func GetAllowedTenantsFromContext(ctx context.Context) []string {
	tenants, ok := ctx.Value(allowedTenantsCtxKey).([]string)
	if !ok {
		return []string{}
	}
	return tenants
}

func NewAuthenticator(ctx context.Context, logger *slog.Logger, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read policy document: %w", err)
	}

	query, err := rego.New(
		rego.Query("x = data.example.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := tokenFromRequest(r)
			if err != nil {
				logger.Debug("no token found in request", "err", err.Error())
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"method": r.Method,
				"path":   strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/"),
				"token":  token,
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa query evaluation failed", "err", err.Error())
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if len(results) == 0 {
				logger.Error("opa query could not be satisfied")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			binding, ok := results[0].Bindings["x"].(map[string]any)
			if !ok {
				logger.Debug("access denied", "path", r.URL.Path)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			tenants, err := tenantsFromBinding(binding)
			if err != nil {
				logger.Error("could not get tenants from policy response", "err", err.Error())
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := WithAllowedTenants(r.Context(), tenants)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}, nil
}

func tokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return "", errors.New("authorization header is not a bearer token")
	}

	return token, nil
}

func tenantsFromBinding(binding map[string]any) ([]string, error) {
	value, ok := binding["tenants"]
	if !ok {
		return nil, errors.New("policy response contains no tenant information")
	}

	list, ok := value.([]any)
	if !ok {
		return nil, errors.New("tenant information is not a list")
	}

	tenants := make([]string, 0, len(list))
	for _, t := range list {
		s, ok := t.(string)
		if !ok {
			return nil, errors.New("tenant information contains non string values")
		}
		tenants = append(tenants, s)
	}

	return tenants, nil
}
