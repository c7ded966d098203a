package utils

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short random id.
func GenerateID() string {
	return GenerateRandomString(10)
}

// GenerateRandomString returns a nanoid of the given length from an alphanumeric alphabet.
func GenerateRandomString(length int) string {
	id, err := gonanoid.Generate(idAlphabet, length)
	if err != nil {
		return gonanoid.Must(length)
	}
	return id
}

// ObjectKey builds a storage key like avatars/42/my-photo-x1Y2z3.png.
func ObjectKey(prefix string, ownerID int64, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s/%d/%s-%s%s", prefix, ownerID, base, GenerateRandomString(8), ext)
}

func ToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID parses a positive integer id.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
