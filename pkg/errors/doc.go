// Package errors provides structured error types for better observability
// and programmatic error handling across whispver.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "descriptor counter is not numeric",
//	    cause,
//	    map[string]any{
//	        "key":  "plugin_patch",
//	        "path": "version.properties",
//	    },
//	)
package errors
