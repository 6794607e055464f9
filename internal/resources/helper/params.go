package helper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/olusolaa/azmgmt/internal/errors"
)

const tagParentDir = "parentdir"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func paramValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails on an empty tag or a nil func.
		_ = validate.RegisterValidation(tagParentDir, parentDirExists)
	})
	return validate
}

// parentDirExists holds for a file path whose directory is present.
func parentDirExists(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return true
	}
	info, err := os.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}

// ValidateParams checks the validate tags of a command's parameter struct.
// A missing export directory is reported as CodeDirectoryNotFound; every
// other failure as CodeValidation naming the field and value.
func ValidateParams(ctx context.Context, params any) error {
	err := paramValidator().StructCtx(ctx, params)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.Wrap(err, errors.CodeValidation, "invalid command parameters")
	}

	fe := validationErrors[0]
	if fe.Tag() == tagParentDir {
		path := fmt.Sprint(fe.Value())
		return errors.NewUserFacing(errors.CodeDirectoryNotFound,
			fmt.Sprintf("directory '%s' does not exist", filepath.Dir(path)),
			"Create the directory or choose another --export-to-file path.")
	}
	return errors.Validation(fe.Field(), fe.Value(), reason(fe))
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "a value is required"
	case "uuid":
		return "must be a GUID"
	case "oneof":
		return "must be one of [" + strings.ReplaceAll(fe.Param(), " ", ", ") + "]"
	case "min", "gte":
		return "must be at least " + fe.Param()
	}
	return fmt.Sprintf("failed on '%s'", fe.Tag())
}
