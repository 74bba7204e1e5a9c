package dashgate

import "context"

type controllerContextKey struct{}

// WithController attaches the Controller to ctx so that guard and
// presentation code can reach it without ambient lookup. The Controller is
// constructed once at process start and passed by handle; there is no
// global instance.
func WithController(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, controllerContextKey{}, c)
}

// FromContext retrieves the Controller attached by [WithController].
// A missing controller is a configuration error on the caller's side and
// is reported loudly as [ErrControllerMissing], never masked.
func FromContext(ctx context.Context) (*Controller, error) {
	if ctx == nil {
		return nil, ErrControllerMissing
	}

	c, _ := ctx.Value(controllerContextKey{}).(*Controller)
	if c == nil {
		return nil, ErrControllerMissing
	}
	return c, nil
}
