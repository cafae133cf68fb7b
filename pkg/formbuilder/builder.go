package formbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrElementNotFound is returned when an operation names an unknown element.
var ErrElementNotFound = errors.New("form element not found")

// Option configures a Builder.
type Option func(*Builder)

// OnStructure registers fn to receive the element list whenever its
// serialized form changes.
func OnStructure(fn func([]Element)) Option {
	return func(b *Builder) { b.onStructure = fn }
}

// OnSelect registers fn to receive selection changes. It is called with nil
// whenever the element list becomes empty.
func OnSelect(fn func(*Element)) Option {
	return func(b *Builder) { b.onSelect = fn }
}

// Builder is safe for concurrent use. Callbacks run after the internal lock
// is released, so they may call back into the Builder.
type Builder struct {
	mu           sync.Mutex
	elements     []Element
	values       map[string]any
	lastNotified string

	onStructure func([]Element)
	onSelect    func(*Element)
}

// New creates an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		elements: []Element{},
		values:   map[string]any{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.lastNotified = b.serialize()
	return b
}

// Drop handles a drop onto the form root. The element is appended only for
// new elements whose drop was not already consumed by a nested target.
func (b *Builder) Drop(item DropItem) (Element, bool) {
	if item.DidDrop || !item.IsNew {
		return Element{}, false
	}
	return b.Add(item.Element), true
}

// Add appends el to the end of the form and returns it with its id assigned.
func (b *Builder) Add(el Element) Element {
	el = prepare(el)

	b.mu.Lock()
	b.elements = append(b.elements, el)
	b.mu.Unlock()

	b.structureChanged()
	return cloneElement(el)
}

// AddChild appends el to the children of the element identified by parentID.
func (b *Builder) AddChild(parentID string, el Element) (Element, error) {
	el = prepare(el)

	b.mu.Lock()
	parent := findElement(b.elements, parentID)
	if parent == nil {
		b.mu.Unlock()
		return Element{}, fmt.Errorf("%w: %s", ErrElementNotFound, parentID)
	}
	parent.Children = append(parent.Children, el)
	b.mu.Unlock()

	b.structureChanged()
	return cloneElement(el), nil
}

// Remove deletes the element with id, wherever it sits in the tree, along
// with its captured value.
func (b *Builder) Remove(id string) error {
	b.mu.Lock()
	elements, ok := removeElement(b.elements, id)
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	b.elements = elements
	delete(b.values, id)
	b.mu.Unlock()

	b.structureChanged()
	return nil
}

// Clear removes every element and value.
func (b *Builder) Clear() {
	b.mu.Lock()
	b.elements = []Element{}
	b.values = map[string]any{}
	b.mu.Unlock()

	b.structureChanged()
}

// Select reports the element with id to the OnSelect callback.
func (b *Builder) Select(id string) error {
	b.mu.Lock()
	found := findElement(b.elements, id)
	var el Element
	if found != nil {
		el = cloneElement(*found)
	}
	b.mu.Unlock()

	if found == nil {
		return fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	if b.onSelect != nil {
		b.onSelect(&el)
	}
	return nil
}

// SetValue records value for elementID. With an empty parentID the value is
// stored at the top level; otherwise it is stored in the map kept under
// parentID.
func (b *Builder) SetValue(elementID string, value any, parentID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if parentID == "" {
		b.values[elementID] = value
		return
	}

	nested, ok := b.values[parentID].(map[string]any)
	if !ok {
		nested = map[string]any{}
	}
	nested[elementID] = value
	b.values[parentID] = nested
}

// Elements returns a copy of the current element tree.
func (b *Builder) Elements() []Element {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneElements(b.elements)
}

// Payload snapshots the captured values and structure.
func (b *Builder) Payload() Payload {
	b.mu.Lock()
	defer b.mu.Unlock()

	values := make(map[string]any, len(b.values))
	for k, v := range b.values {
		if nested, ok := v.(map[string]any); ok {
			copied := make(map[string]any, len(nested))
			for nk, nv := range nested {
				copied[nk] = nv
			}
			v = copied
		}
		values[k] = v
	}

	return Payload{
		Values:    values,
		Structure: cloneElements(b.elements),
	}
}

// Submit passes the current payload to handler.
func (b *Builder) Submit(handler func(Payload)) {
	handler(b.Payload())
}

func (b *Builder) structureChanged() {
	b.mu.Lock()
	current := b.serialize()
	changed := current != b.lastNotified
	if changed {
		b.lastNotified = current
	}
	snapshot := cloneElements(b.elements)
	empty := len(b.elements) == 0
	b.mu.Unlock()

	if changed && b.onStructure != nil {
		b.onStructure(snapshot)
	}
	if empty && b.onSelect != nil {
		b.onSelect(nil)
	}
}

func (b *Builder) serialize() string {
	data, err := json.Marshal(b.elements)
	if err != nil {
		return ""
	}
	return string(data)
}
