package auth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"marketplace/internal/entities"
)

type actorKey struct{}

// FromContext достаёт аутентифицированного актора, положенного Middleware.
func FromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}

// WithActor кладёт актора в контекст запроса.
func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := parseBearer(r.Header.Get("Authorization"), secret)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func parseBearer(header, secret string) (entities.Actor, error) {
	if secret == "" {
		return entities.Actor{}, errors.New("jwt secret is empty")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return entities.Actor{}, errors.New("invalid authorization header")
	}

	type claims struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
		jwt.RegisteredClaims
	}

	token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return entities.Actor{}, err
	}

	tokenClaims, _ := token.Claims.(*claims)
	if tokenClaims == nil || tokenClaims.Kind == "" || tokenClaims.Subject == "" {
		return entities.Actor{}, errors.New("invalid claims")
	}

	actorType := entities.ActorType(strings.ToLower(tokenClaims.Kind))
	switch actorType {
	case entities.ActorCustomer, entities.ActorVendor, entities.ActorDriver, entities.ActorAdmin:
	default:
		return entities.Actor{}, errors.New("unknown actor kind")
	}

	actorID, err := strconv.ParseInt(tokenClaims.Subject, 10, 64)
	if err != nil {
		return entities.Actor{}, errors.New("invalid subject")
	}

	return entities.Actor{
		Type: actorType,
		ID:   actorID,
		Name: tokenClaims.Name,
	}, nil
}
