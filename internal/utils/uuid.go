package utils

import "github.com/google/uuid"

// SecretGenerator produces random secrets such as the initial password of
// the default administrator.
type SecretGenerator struct {
}

func NewSecretGenerator() *SecretGenerator {
	return &SecretGenerator{}
}

// Generate returns a fresh UUIDv7 string, falling back to v4 if the v7
// clock sequence cannot be read.
func (g *SecretGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
