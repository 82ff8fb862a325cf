package config

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sshGitPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("palette_color", func(fl validator.FieldLevel) bool {
			_, err := colorful.Hex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("svg_file", func(fl validator.FieldLevel) bool {
			return isValidAssetName(fl.Field().String())
		})

		_ = v.RegisterValidation("http_base", func(fl validator.FieldLevel) bool {
			parsed, err := url.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			return (scheme == "http" || scheme == "https") && parsed.Host != ""
		})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true
			}

			if strings.TrimSpace(urlStr) == "" {
				return false
			}

			if parsedURL, err := url.Parse(urlStr); err == nil {
				scheme := strings.ToLower(parsedURL.Scheme)
				if scheme == "http" || scheme == "https" {
					if parsedURL.Host != "" {
						return true
					}
				}
				if scheme == "file" && parsedURL.Path != "" {
					return true
				}
			}

			if sshGitPattern.MatchString(urlStr) {
				return true
			}

			return isValidFilePath(urlStr)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidAssetName accepts slash-separated relative names ending in .svg
// that stay inside the source root.
func isValidAssetName(name string) bool {
	if name == "" || strings.Contains(name, "\x00") || strings.Contains(name, `\`) {
		return false
	}
	if strings.HasPrefix(name, "/") {
		return false
	}
	if !strings.EqualFold(path.Ext(name), ".svg") {
		return false
	}
	clean := path.Clean(name)
	return clean == name && clean != ".." && !strings.HasPrefix(clean, "../")
}

// isValidFilePath performs syntactic validation of file paths without filesystem access
func isValidFilePath(path string) bool {
	if path == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}

	if strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return true
	}

	return false
}
