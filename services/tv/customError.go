package tv

import (
	"fmt"

	tvSessionRepo "obratrack/database/repository/tvsession"
)

// The service surfaces the store's guard errors unchanged so handlers can
// match on a single set of sentinels.
var (
	ErrSessionNotFound  = tvSessionRepo.ErrNotFound
	ErrAlreadyConnected = tvSessionRepo.ErrAlreadyConnected
	ErrForbidden        = tvSessionRepo.ErrForbidden
	ErrDuplicateToken   = tvSessionRepo.ErrDuplicateToken
)

// EncodingError signals that the visual code could not be generated. It is
// fatal to the creation request: no session is persisted without a usable code.
type EncodingError struct {
	Err error
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("failed to encode pairing code: %v", e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}
