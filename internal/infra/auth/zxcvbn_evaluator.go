package auth

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"pantry/config"
	"pantry/internal/domain/service"
)

const defaultMinScore = 3

// zxcvbnEvaluator scores passwords with the zxcvbn guessability estimator.
// Unlike simple character-class rules, zxcvbn catches dictionary words,
// keyboard walks and common substitutions, so "pass1234"-class strings score
// low even when they satisfy length minimums.
type zxcvbnEvaluator struct {
	minScore int
}

// NewStrengthEvaluator is the constructor for zxcvbnEvaluator.
// The acceptance threshold comes from configuration.
func NewStrengthEvaluator(cfg *config.Config) service.StrengthEvaluator {
	minScore := defaultMinScore
	if cfg.PasswordStrength != nil {
		minScore = cfg.PasswordStrength.MinScore
	}

	return &zxcvbnEvaluator{minScore: minScore}
}

// Evaluate returns the zxcvbn score of the password, in the range 0..4.
func (e *zxcvbnEvaluator) Evaluate(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}

// Acceptable reports whether the password scores at or above the configured threshold.
func (e *zxcvbnEvaluator) Acceptable(password string) bool {
	return e.Evaluate(password) >= e.minScore
}
