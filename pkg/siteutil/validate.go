package siteutil

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.mau.fi/util/exmime"
)

// DefaultMaxUploadSize is the largest attachment the contact and job forms accept.
const DefaultMaxUploadSize int64 = 5 * 1024 * 1024

var (
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRE = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)

	AllowedUploadTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

func ValidateEmail(email string) bool {
	return emailRE.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRE.MatchString(phone)
}

// UploadError carries the message shown to the user when a file is rejected.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

// Upload describes a file picked in a form.
type Upload struct {
	Name     string
	Size     int64
	MimeType string
}

// Extension guesses a file extension from the upload's mimetype.
func (u Upload) Extension() string {
	return exmime.ExtensionFromMimetype(u.MimeType)
}

// CheckUpload validates size and type. A nil upload (no file chosen) is accepted.
// maxSize <= 0 means DefaultMaxUploadSize.
func CheckUpload(upload *Upload, maxSize int64) error {
	if upload == nil {
		return nil
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	if upload.Size > maxSize {
		return &UploadError{Message: fmt.Sprintf("File size must be less than %dMB", maxSize/(1024*1024))}
	}
	mimetype := strings.TrimSpace(strings.Split(upload.MimeType, ";")[0])
	if !slices.Contains(AllowedUploadTypes, mimetype) {
		return &UploadError{Message: "Only PDF and Word documents are allowed"}
	}
	return nil
}
