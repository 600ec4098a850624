package tempo

import "fmt"

// TokenSource supplies the bearer token attached to every API request.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource backed by a fixed token from configuration.
type StaticToken string

// Token returns the configured token.
func (t StaticToken) Token() (string, error) {
	if t == "" {
		return "", fmt.Errorf("auth token is empty")
	}
	return string(t), nil
}
