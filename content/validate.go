package content

import (
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// "link" accepts in-page anchors, mailto: targets and absolute URLs.
		_ = validatorInst.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			return isLink(fl.Field().String())
		})
	})
	return validatorInst
}

func isLink(s string) bool {
	switch {
	case strings.HasPrefix(s, "#"):
		return true
	case strings.HasPrefix(s, "mailto:"):
		return len(s) > len("mailto:")
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
