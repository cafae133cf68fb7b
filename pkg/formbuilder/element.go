// Package formbuilder holds the editing state of a form under construction:
// an ordered tree of element descriptors and the values captured for them.
// Nothing is persisted; a Builder lives for one editing session.
package formbuilder

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/JaimeStill/qc-lab/pkg/decode"
)

// Element describes one form control. Group elements carry Children.
type Element struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Label       string         `json:"label,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Required    bool           `json:"required,omitempty"`
	Props       map[string]any `json:"props,omitempty"`
	Children    []Element      `json:"children,omitempty"`
}

// DropItem is the payload of a drag-and-drop gesture onto the form.
// DidDrop is set when a nested drop target already handled the gesture.
type DropItem struct {
	IsNew   bool    `json:"isNew"`
	DidDrop bool    `json:"didDrop"`
	Element Element `json:"element"`
}

// Payload is what Submit hands to its handler.
type Payload struct {
	Values    map[string]any `json:"values"`
	Structure []Element      `json:"structure"`
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

// prepare assigns missing ids and strips markup from display text,
// recursing into children.
func prepare(el Element) Element {
	if el.ID == "" {
		el.ID = uuid.NewString()
	}
	el.Label = sanitizeText(el.Label)
	el.Placeholder = sanitizeText(el.Placeholder)

	if el.Children != nil {
		children := make([]Element, len(el.Children))
		for i, c := range el.Children {
			children[i] = prepare(c)
		}
		el.Children = children
	}
	return el
}

func cloneElements(src []Element) []Element {
	out := make([]Element, len(src))
	for i, el := range src {
		out[i] = cloneElement(el)
	}
	return out
}

func cloneElement(el Element) Element {
	if el.Props != nil {
		props := make(map[string]any, len(el.Props))
		for k, v := range el.Props {
			props[k] = v
		}
		el.Props = props
	}
	if el.Children != nil {
		el.Children = cloneElements(el.Children)
	}
	return el
}

func findElement(elements []Element, id string) *Element {
	for i := range elements {
		if elements[i].ID == id {
			return &elements[i]
		}
		if found := findElement(elements[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

func removeElement(elements []Element, id string) ([]Element, bool) {
	for i := range elements {
		if elements[i].ID == id {
			return append(elements[:i:i], elements[i+1:]...), true
		}
		if children, ok := removeElement(elements[i].Children, id); ok {
			elements[i].Children = children
			return elements, true
		}
	}
	return elements, false
}

// DecodeValues decodes a submitted payload's values into T, keyed by the
// json tags of T's fields.
func DecodeValues[T any](p Payload) (T, error) {
	return decode.FromMap[T](p.Values)
}
