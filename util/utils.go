package util

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

var (
	RgxEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsEmail(value string) bool {
	if len(value) > 254 {
		return false
	}

	return RgxEmail.MatchString(value)
}

func GenerateVerificationCode() string {
	rand.Seed(time.Now().UnixNano())
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// GenerateOptionID builds a poll option id from the option's 1-based position
// and the creation timestamp in milliseconds, e.g. "option_2_1748531200123".
// Collisions are possible for polls created within the same millisecond.
func GenerateOptionID(position int, createdAt time.Time) string {
	return fmt.Sprintf("option_%d_%d", position, createdAt.UnixMilli())
}
