package service

// TokenGenerator produces opaque credential strings for login and session
// tokens. Generate is side-effect free; two calls are practically guaranteed
// to differ, but uniqueness is enforced by the store's constraint, not here.
type TokenGenerator interface {
	Generate() string
}
