// Package bind decodes and validates an HTTP request body into a struct.
//
// Two body shapes are supported: plain JSON, and multipart/form-data where
// the JSON payload travels in a "payload" part alongside an optional file
// part (how the order form submits an attachment with the record).
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/ordertrack/config"
	"github.com/shashiranjanraj/ordertrack/pkg/validate"
)

// File is an uploaded file read fully into memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// maxBodyBytes returns the configured request body size limit (default 8 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "8388608"), 10, 64)
	if err != nil || n <= 0 {
		return 8 << 20
	}
	return n
}

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is malformed JSON or too large.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// Multipart decodes a multipart/form-data request: the "payload" part is
// unmarshalled into dest and validated, and the named file part (if present)
// is read into memory. file is nil when the part was not sent.
func Multipart(r *http.Request, dest interface{}, filePart string) (file *File, errs map[string]string, err error) {
	if err = r.ParseMultipartForm(maxBodyBytes()); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart body: %w", err)
	}

	payload := r.FormValue("payload")
	if payload == "" {
		return nil, nil, fmt.Errorf("missing payload part")
	}
	if err = json.Unmarshal([]byte(payload), dest); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON payload: %w", err)
	}

	if f, hdr, ferr := r.FormFile(filePart); ferr == nil {
		defer f.Close()

		data, rerr := io.ReadAll(f)
		if rerr != nil {
			return nil, nil, fmt.Errorf("read %s part: %w", filePart, rerr)
		}
		file = &File{
			Name:        hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Data:        data,
		}
	} else if !errors.Is(ferr, http.ErrMissingFile) {
		return nil, nil, fmt.Errorf("read %s part: %w", filePart, ferr)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return file, errs, nil
	}

	return file, nil, nil
}

// IsMultipart reports whether the request carries a multipart/form-data body.
func IsMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
