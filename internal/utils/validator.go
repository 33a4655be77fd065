package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"patrimonio-go/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	registerOnce sync.Once

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// InitValidator registers the custom tags on gin's binding engine so
// `binding:"..."` tags can use them, and keeps the engine for ValidateStruct.
func InitValidator() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
			v.SetTagName("binding")
		}

		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("username", validateUsername)
		_ = v.RegisterValidation("role", validateRole)
		_ = v.RegisterValidation("fieldtype", validateFieldType)
		_ = v.RegisterValidation("assetstatus", validateAssetStatus)

		validate = v
	})
}

// GetValidator returns the shared validator
func GetValidator() *validator.Validate {
	InitValidator()
	return validate
}

// jsonFieldName reports fields by their JSON name
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// validateUsername 3-150 chars: letters, digits and @.+-_
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 150 {
		return false
	}
	return usernamePattern.MatchString(username)
}

func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

func validateFieldType(fl validator.FieldLevel) bool {
	return models.FieldType(fl.Field().String()).Valid()
}

func validateAssetStatus(fl validator.FieldLevel) bool {
	return models.AssetStatus(fl.Field().String()).Valid()
}

// ValidateStruct validates s and returns a readable error
func ValidateStruct(s interface{}) error {
	if err := GetValidator().Struct(s); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// FormatValidationError turns validator errors into one readable message.
// Other errors (e.g. malformed JSON) are returned unchanged.
func FormatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		param := e.Param()

		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		case "username":
			message = fmt.Sprintf("%s may only contain letters, digits and @.+-_ (3-150 characters)", field)
		case "role":
			message = fmt.Sprintf("%s must be viewer, editor or admin", field)
		case "fieldtype":
			message = fmt.Sprintf("%s must be text, number or date", field)
		case "assetstatus":
			message = fmt.Sprintf("%s must be disponivel, em_uso, manutencao or inativo", field)
		default:
			message = fmt.Sprintf("%s failed on %s", field, e.Tag())
		}
		messages = append(messages, message)
	}

	return errors.New(strings.Join(messages, "; "))
}
