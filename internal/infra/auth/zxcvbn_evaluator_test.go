package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pantry/config"
)

func TestStrengthEvaluator_RejectsLowEntropyPasswords(t *testing.T) {
	evaluator := NewStrengthEvaluator(&config.Config{})

	weakPasswords := []string{
		"pass1234",
		"password",
		"12345678",
		"qwerty123",
		"letmein1",
	}

	for _, password := range weakPasswords {
		assert.False(t, evaluator.Acceptable(password), "expected rejection for weak password: %s", password)
	}
}

func TestStrengthEvaluator_AcceptsHighEntropyPasswords(t *testing.T) {
	evaluator := NewStrengthEvaluator(&config.Config{})

	strongPasswords := []string{
		"mX9#kL2$pQ7vNwR4",
		"glacier-copper-anvil-29-thistle",
		"Tributary!Quartz42Meadow",
	}

	for _, password := range strongPasswords {
		assert.True(t, evaluator.Acceptable(password), "expected acceptance for strong password: %s", password)
	}
}

func TestStrengthEvaluator_ScoreRange(t *testing.T) {
	evaluator := NewStrengthEvaluator(&config.Config{})

	for _, password := range []string{"", "a", "pass1234", "mX9#kL2$pQ7vNwR4"} {
		score := evaluator.Evaluate(password)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 4)
	}
}

func TestStrengthEvaluator_ConfiguredThreshold(t *testing.T) {
	// With the threshold at zero everything passes; scoring stays pure.
	permissive := NewStrengthEvaluator(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{MinScore: 0},
	})
	assert.True(t, permissive.Acceptable("pass1234"))

	strict := NewStrengthEvaluator(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{MinScore: 4},
	})
	assert.False(t, strict.Acceptable("pass1234"))
}
