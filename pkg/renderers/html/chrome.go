package html

// chromeClasses returns the default CSS class hooks emitted by the built-in
// templates. Themes can restyle these; the names stay stable so downstream
// stylesheets keep working.
func chromeClasses() map[string]string {
	return map[string]string{
		"form":        "formstate-form",
		"group":       "formstate-field",
		"label":       "formstate-label",
		"input":       "formstate-input",
		"description": "formstate-description",
		"error":       "formstate-error",
		"formError":   "formstate-form-error",
		"success":     "formstate-success",
		"submit":      "formstate-submit",
	}
}
