package upload

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// FileMeta is the caller-supplied metadata for a candidate upload.
// None of it is trusted.
type FileMeta struct {
	Name     string
	Size     int64
	MIMEType string
}

// CheckResult reports a policy decision: either valid with no error, or
// invalid with a human-readable reason.
type CheckResult struct {
	Valid bool
	Error string
}

// Executable-style extensions anywhere in the name, so "invoice.exe.jpg"
// is caught too.
var suspiciousNameRegex = regexp.MustCompile(`(?i)\.(exe|bat|cmd|com|scr|pif|msi|jar|sh|bash|php|phtml|pl|py|rb|js|vbs|wsf|hta|dll)(\.|$)`)

// Validate checks file metadata against the policy. Checks run in
// order and stop at the first failure: size, declared MIME type,
// suspicious filename, extension allow-list.
func Validate(meta FileMeta, policy Policy) CheckResult {
	maxBytes := policy.MaxSizeMB * 1024 * 1024
	if meta.Size > maxBytes {
		return CheckResult{Error: fmt.Sprintf("File size exceeds %dMB limit", policy.MaxSizeMB)}
	}

	if !slices.Contains(policy.AllowedMIMETypes, strings.ToLower(meta.MIMEType)) {
		return CheckResult{Error: "Invalid file type. Allowed types: " + strings.Join(policy.AllowedMIMETypes, ", ")}
	}

	// The declared MIME type is caller-supplied, so the filename check
	// runs even when the type looks like an image.
	if suspiciousNameRegex.MatchString(meta.Name) {
		return CheckResult{Error: "Suspicious file name rejected"}
	}

	ext := strings.ToLower(filepath.Ext(meta.Name))
	if !slices.Contains(policy.AllowedExtensions, ext) {
		return CheckResult{Error: fmt.Sprintf("File extension %q is not allowed", ext)}
	}

	return CheckResult{Valid: true}
}
