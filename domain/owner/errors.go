package owner

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEmpty is the panic value for dereferencing a handle that owns nothing.
	ErrEmpty = errors.New("owner: dereference of empty handle")
	// ErrCopied is the panic value for using a handle copied by value.
	ErrCopied = errors.New("owner: handle copied by value")
)

func fail[T any](handle string, err error) {
	panic(fmt.Errorf("%s[%s]: %w", handle, reflect.TypeOf((*T)(nil)).Elem(), err))
}

// noCopy trips go vet's copylocks check when a handle is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
