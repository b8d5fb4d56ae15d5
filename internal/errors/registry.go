package errors

// Registered codes.
const (
	CodeUnmappedEnum    = "T001"
	CodeUnbalancedScope = "T010"
	CodeNonMonotonic    = "T011"
	CodeInvalidConfig   = "T020"
	CodeConfigNotFound  = "T021"
	CodeConfigAccess    = "T022"
	CodeUnknownCommand  = "T030"
)

const docBase = "https://github.com/vango-dev/treeseq/blob/main/docs/errors.md#"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (T001-T019)
	// ============================================

	CodeUnmappedEnum: {
		Category: CategoryRuntime,
		Message:  "Unmapped enum value",
		DocURL:   docBase + "t001",
	},
	CodeUnbalancedScope: {
		Category: CategoryRuntime,
		Message:  "Unbalanced builder scope",
		DocURL:   docBase + "t010",
	},
	CodeNonMonotonic: {
		Category: CategoryRuntime,
		Message:  "Sequence number did not increase",
		DocURL:   docBase + "t011",
	},

	// ============================================
	// Config Errors (T020-T029)
	// ============================================

	CodeInvalidConfig: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		DocURL:   docBase + "t020",
	},
	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		DocURL:   docBase + "t021",
	},
	CodeConfigAccess: {
		Category: CategoryConfig,
		Message:  "Cannot access configuration directory",
		DocURL:   docBase + "t022",
	},

	// ============================================
	// CLI Errors (T030-T039)
	// ============================================

	CodeUnknownCommand: {
		Category: CategoryCLI,
		Message:  "Unknown argument",
		DocURL:   docBase + "t030",
	},
}
