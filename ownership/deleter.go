package ownership

import (
	"io"

	"go.uber.org/zap"
)

// Deleter disposes of an owned value once its last owner lets go.
type Deleter[T any] interface {
	Delete(T)
}

// DeleterFunc adapts an ordinary function to the Deleter interface.
type DeleterFunc[T any] func(T)

func (f DeleterFunc[T]) Delete(v T) { f(v) }

// CloseDeleter is the default deleter. Values implementing io.Closer are
// closed; anything else is left to the garbage collector.
type CloseDeleter[T any] struct{}

func (CloseDeleter[T]) Delete(v T) {
	closer, ok := any(v).(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		zap.L().Warn("failed to close released value",
			zap.String("type", typeName(v)),
			zap.Error(err),
		)
	}
}

// GetDeleter returns the deleter s was created with, if it has type D.
func GetDeleter[D any, T any](s Shared[T]) (D, bool) {
	var zero D
	if s.cb == nil {
		return zero, false
	}
	d, ok := s.cb.deleter.(D)
	if !ok {
		return zero, false
	}
	return d, true
}

func deleterOrDefault[T any](d Deleter[T]) Deleter[T] {
	if d == nil {
		return CloseDeleter[T]{}
	}
	return d
}
