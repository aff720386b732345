package game

// Translator produces human-visible strings. All display names and labels
// go through it; the English source strings are the hardcoded defaults.
type Translator interface {
	Translate(s string) string
}

// TranslatorFunc adapts a plain function to the Translator interface
type TranslatorFunc func(s string) string

// Translate implements Translator
func (f TranslatorFunc) Translate(s string) string {
	return f(s)
}

// NewIdentityTranslator returns a Translator that passes strings through unchanged
func NewIdentityTranslator() Translator {
	return TranslatorFunc(func(s string) string { return s })
}
