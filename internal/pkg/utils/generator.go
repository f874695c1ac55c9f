package utils

import (
	"fmt"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateFileName(prefix, owner, extension string) string {
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, uuid.NewString(), extension)
}
