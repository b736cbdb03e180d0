package service

// StrengthEvaluator scores candidate passwords for guessability.
// Implementations are pure functions of the input string.
type StrengthEvaluator interface {
	// Evaluate returns a guessability score in the range 0..4,
	// where 0 is trivially guessable and 4 is very strong.
	Evaluate(password string) int

	// Acceptable reports whether the password meets the strength policy's
	// acceptance threshold. Common or guessable passwords are rejected even
	// when they satisfy simple length minimums.
	Acceptable(password string) bool
}
