package upload

import (
	"slices"

	"github.com/h2non/filetype"
)

// SniffContent matches the leading bytes of a file against magic
// numbers and checks the detected type against the policy allow-list.
// Opt-in deeper check for callers that already hold the bytes; Validate
// itself never reads content.
func SniffContent(head []byte, policy Policy) CheckResult {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return CheckResult{Error: "Unrecognized file content"}
	}

	if !slices.Contains(policy.AllowedMIMETypes, kind.MIME.Value) {
		return CheckResult{Error: "Invalid file type. Content detected as " + kind.MIME.Value}
	}

	return CheckResult{Valid: true}
}
