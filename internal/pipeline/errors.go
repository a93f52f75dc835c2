package pipeline

// EmptyProfileError indicates the profile has no skills, work bullets, or
// certifications to rank or rewrite. Surfaced as a client error; the
// generation pipeline is never invoked.
type EmptyProfileError struct{}

func (e *EmptyProfileError) Error() string {
	return "profile has no content to generate a resume from"
}
