// Package s2tw converts Simplified Chinese to Traditional Chinese (Taiwan)
// in file contents and in file and directory names.
//
// The conversion engine is injected as a Transformer so the traversal can be
// exercised with any idempotent text transformation. NewOpenCC builds the
// default engine, OpenCC's "s2twp" profile (Taiwan standard with phrases).
package s2tw

import (
	"errors"
	"fmt"

	"github.com/longbridgeapp/opencc"
)

// DefaultProfile is the OpenCC conversion profile used by NewOpenCC.
const DefaultProfile = "s2twp"

// ErrEngineUnavailable is returned when a conversion is requested without a
// transformation engine.
var ErrEngineUnavailable = errors.New("text conversion engine is not available")

// Transformer converts a piece of text. Implementations must be idempotent
// on their own output.
type Transformer interface {
	Convert(text string) (string, error)
}

// TransformFunc adapts a plain function to the Transformer interface.
type TransformFunc func(string) (string, error)

// Convert calls f(text).
func (f TransformFunc) Convert(text string) (string, error) {
	return f(text)
}

// NewOpenCC loads the OpenCC dictionaries for profile (DefaultProfile when empty).
// A load failure is reported as ErrEngineUnavailable.
func NewOpenCC(profile string) (Transformer, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	cc, err := opencc.New(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: opencc profile %q: %v", ErrEngineUnavailable, profile, err)
	}
	return cc, nil
}
