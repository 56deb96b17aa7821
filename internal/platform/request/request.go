// Copyright (c) 2026 Pressroom. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pressroom/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter, percent-decoded.

chi matches against the raw path when the request carries one, so a
segment like "A%26B" arrives still encoded. Without a raw path the
segment is already decoded and is returned as is.

Returns:
  - string: The decoded value
  - error: A VALIDATION_ERROR naming the parameter if the escape is malformed
*/
func Param(request *http.Request, name string) (string, error) {
	value := chi.URLParam(request, name)
	if request.URL.RawPath == "" {
		return value, nil
	}

	value, err := url.PathUnescape(value)
	if err != nil {
		return "", validate.RequiredError(name, "Malformed percent-encoding")
	}
	return value, nil
}

/*
IntParam retrieves a named URL parameter and parses it as an integer.

Returns:
  - int: The parsed value
  - error: A VALIDATION_ERROR naming the parameter if it is not an integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}
	return value, nil
}

/*
Query retrieves a trimmed query-string value, or fallback when it is absent or blank.
*/
func Query(request *http.Request, name, fallback string) string {
	if value := strings.TrimSpace(request.URL.Query().Get(name)); value != "" {
		return value
	}
	return fallback
}
