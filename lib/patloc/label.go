package patloc

// LabelProbe is the boundary to the browser-driver layer used for label
// association. Given the candidate locators of a label whose visible text is
// the field's display name, it returns the value of the label's "for"
// linking attribute, or "" when no such label (or attribute) exists on the
// live page. An empty result is not an error: the template then falls back
// to its other placeholders.
type LabelProbe interface {
	ForValue(candidates []string) (string, error)
}

// maxLabelDepth bounds recursive resolution during label association.
const maxLabelDepth = 2
