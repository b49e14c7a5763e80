package api

import (
	"fmt"
	"net/http"
)

type jsonFunc func(r *http.Request) (any, error)

// jsonHandler runs fn and writes its payload. Any error or panic inside fn is
// logged with failure and answered with a 500 carrying message, so one
// endpoint failing never affects another.
func jsonHandler(failure, message string, fn jsonFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		payload, err := invoke(fn, r)
		if err == nil {
			err = WriteJSON(w, http.StatusOK, payload)
			if err == nil {
				return
			}
		}

		logger.WithError(err).Error(failure)
		_ = WriteError(w, http.StatusInternalServerError, message)
	}
}

func invoke(fn jsonFunc, r *http.Request) (payload any, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			payload = nil
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()
	return fn(r)
}
