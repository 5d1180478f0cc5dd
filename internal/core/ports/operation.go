package ports

// BoundOperation is the reference the interception layer supplies for each
// designated call: an operation bound to its owning instance. The cache core
// is agnostic to how the interception layer decided to intercept it.
//
//go:generate go run go.uber.org/mock/mockgen -source=operation.go -destination=mocks/mock_operation.go -package=mocks
type BoundOperation interface {
	// Target returns the owning instance.
	Target() any

	// Name returns the operation name.
	Name() string

	// Invoke executes the underlying operation with the given arguments.
	Invoke(args []any, kwargs map[string]any) (any, error)
}
