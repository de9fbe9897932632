package middleware

import "errors"

var errInvalidToken = errors.New("malformed bearer token")
