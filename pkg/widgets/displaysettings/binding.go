package displaysettings

import (
	"fyne.io/fyne/v2/widget"

	"mapdisp/pkg/signal"
)

// propertyBinding keeps one checkbox and one display property in sync.
// External writes reach the checkbox through the property's change
// signal; user toggles are written back to the store with the signal
// disconnected, so a binding never observes its own write.
type propertyBinding struct {
	name  string
	check *widget.Check

	get func() bool
	set func(bool)
	sig *signal.Signal[bool]

	unsubscribe func()

	// runs after a user toggle has been written back, outside the
	// disconnect window
	afterToggle func()
}

func newPropertyBinding(name, label string, get func() bool, set func(bool), sig *signal.Signal[bool]) *propertyBinding {
	b := &propertyBinding{
		name: name,
		get:  get,
		set:  set,
		sig:  sig,
	}
	b.check = widget.NewCheck(label, nil)
	b.check.Checked = get() // seed without firing the callback
	b.check.OnChanged = b.onToggle
	b.connect()
	return b
}

func (b *propertyBinding) connect() {
	b.unsubscribe = b.sig.Subscribe(b.setValue)
}

func (b *propertyBinding) disconnect() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// setValue applies an externally written value to the checkbox. Assigning
// Checked directly keeps OnChanged out of the loop, so nothing is written
// back to the store.
func (b *propertyBinding) setValue(v bool) {
	b.check.Checked = v
	b.check.Refresh()
}

func (b *propertyBinding) onToggle(v bool) {
	b.disconnect()
	b.set(v)
	b.connect()
	if b.afterToggle != nil {
		b.afterToggle()
	}
}

// dispose disconnects from the property signal. Safe to call more than
// once; the store lives on.
func (b *propertyBinding) dispose() {
	b.disconnect()
}

// Widget returns the underlying checkbox.
func (b *propertyBinding) Widget() *widget.Check {
	return b.check
}
