package relcand

import (
	"fmt"
	"strings"
)

// DefaultMessage is the annotation of a created release-candidate tag.
const DefaultMessage = "Release candidate %s"

// BumpOptions configures Bump.
type BumpOptions struct {
	// DryRun computes the next tag without creating or pushing it.
	DryRun bool

	// Message is the tag annotation. A "%s" verb is replaced with the new tag
	// path; an empty Message uses DefaultMessage.
	Message string
}

// DefaultBumpOptions returns options that create and push the next tag
// with the default annotation.
func DefaultBumpOptions() BumpOptions {
	return BumpOptions{Message: DefaultMessage}
}

// message renders the annotation for tag.
func (o BumpOptions) message(tag TagRef) string {
	m := o.Message
	if m == "" {
		m = DefaultMessage
	}

	if strings.Contains(m, "%s") {
		return fmt.Sprintf(m, tag)
	}

	return m
}

// OutputFormat selects how a bump report is printed.
type OutputFormat uint8

const (
	// OutputText prints human-readable lines.
	OutputText OutputFormat = iota
	// OutputJSON prints the report as a JSON object.
	OutputJSON
)

// String returns a stable textual representation for OutputFormat.
func (f OutputFormat) String() string {
	switch f {
	case OutputJSON:
		return "json"
	default:
		return "text"
	}
}

// ParseOutput maps "json" to OutputJSON, case-insensitively.
// Anything else, the empty string included, is OutputText.
func ParseOutput(s string) OutputFormat {
	switch toTok(s) {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}
