package errors

type Code string

const (
	CodeUnknown           Code = "UNKNOWN"
	CodeInternal          Code = "INTERNAL_ERROR"
	CodeConfigValidation  Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError   Code = "CONFIG_READ_ERROR"
	CodeConfigParseError  Code = "CONFIG_PARSE_ERROR"
	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodeResourceNotFound  Code = "RESOURCE_NOT_FOUND"
	CodeMappingError      Code = "MAPPING_ERROR"
	CodeNotImplemented    Code = "NOT_IMPLEMENTED"

	// Command input and output contract
	CodeValidation           Code = "VALIDATION_ERROR"
	CodeDirectoryNotFound    Code = "DIRECTORY_NOT_FOUND"
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeSchemaMismatch       Code = "SCHEMA_MISMATCH"
	CodeExportError          Code = "EXPORT_ERROR"
	CodePromptError          Code = "PROMPT_ERROR"
)

func (c Code) String() string {
	return string(c)
}
