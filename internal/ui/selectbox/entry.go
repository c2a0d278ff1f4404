package selectbox

// EntryKind distinguishes selectable items from decoration in the panel.
type EntryKind int

const (
	KindItem EntryKind = iota
	KindSeparator
	KindLabel
)

// Entry is one row of the content panel. Only items can be selected; Label
// is the item's display text or a group heading's text.
type Entry struct {
	Kind     EntryKind
	Value    string
	Label    string
	Disabled bool
}

// Item declares a selectable option. An empty label displays the value.
func Item(value, label string) Entry {
	return Entry{Kind: KindItem, Value: value, Label: label}
}

// DisabledItem declares an option that ignores selection.
func DisabledItem(value, label string) Entry {
	return Entry{Kind: KindItem, Value: value, Label: label, Disabled: true}
}

// Separator declares a divider row.
func Separator() Entry {
	return Entry{Kind: KindSeparator}
}

// GroupLabel declares a heading row.
func GroupLabel(text string) Entry {
	return Entry{Kind: KindLabel, Label: text}
}

// Selectable reports whether the entry is an enabled item.
func (e Entry) Selectable() bool {
	return e.Kind == KindItem && !e.Disabled
}

func (e Entry) text() string {
	if e.Label == "" {
		return e.Value
	}
	return e.Label
}
