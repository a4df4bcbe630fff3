package instance

import (
	"github.com/on-the-ground/shared_instance_go/ownership"
	"go.uber.org/zap/zapcore"
)

// String prints the identity of h's value, not the value itself.
func (h Handle[T, R]) String() string {
	return h.obj.String()
}

func (h Handle[T, R]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return h.obj.MarshalLogObject(enc)
}

// GetDeleter returns the deleter h's value was created with, if it has type D.
func GetDeleter[D any, T any, R Reporter](h Handle[T, R]) (D, bool) {
	return ownership.GetDeleter[D](h.obj)
}
