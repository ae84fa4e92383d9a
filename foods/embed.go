package foods

import _ "embed"

// Default is the built-in food rule table in YAML form.
//
//go:embed default.yaml
var Default []byte
