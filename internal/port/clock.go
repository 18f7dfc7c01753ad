package port

// Clock supplies order timestamps in Unix nanoseconds. Tests pin it to
// deterministic values.
type Clock interface {
	Now() int64
}
