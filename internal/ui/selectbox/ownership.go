package selectbox

// Ownership says who is authoritative for the selected value. It is fixed
// when the Select is created.
type Ownership int

const (
	// Owned selects keep the value themselves.
	Owned Ownership = iota
	// External selects display the host's value and only request changes.
	External
)

func (o Ownership) String() string {
	if o == External {
		return "external"
	}
	return "owned"
}

// valueSource is the tagged variant behind a Select's value.
type valueSource interface {
	ownership() Ownership
	current() (string, bool)
	// choose handles a committed selection.
	choose(value string)
}

// ownedValue tracks selections internally and reports them to notify.
type ownedValue struct {
	value  string
	set    bool
	notify func(string)
}

func (o *ownedValue) ownership() Ownership { return Owned }

func (o *ownedValue) current() (string, bool) { return o.value, o.set }

func (o *ownedValue) choose(value string) {
	o.value, o.set = value, true
	if o.notify != nil {
		o.notify(value)
	}
}

// externalValue shows what the host last supplied. Selections go to
// onChange, which is responsible for calling SetValue; without it the select
// can still open and close but its value never changes. set is false only
// while the host has supplied nothing: an empty initial value, or after
// ClearValue. An explicit SetValue("") selects an option whose value is "".
type externalValue struct {
	value    string
	set      bool
	onChange func(string)
}

func (e *externalValue) ownership() Ownership { return External }

func (e *externalValue) current() (string, bool) { return e.value, e.set }

func (e *externalValue) choose(value string) {
	if e.onChange != nil {
		e.onChange(value)
	}
}

func newValueSource(cfg Config) valueSource {
	if cfg.Value != nil {
		return &externalValue{
			value:    *cfg.Value,
			set:      *cfg.Value != "" || hasItem(cfg.Entries, ""),
			onChange: cfg.OnValueChange,
		}
	}
	return &ownedValue{
		value:  cfg.DefaultValue,
		set:    cfg.DefaultValue != "",
		notify: cfg.OnValueChange,
	}
}

func hasItem(entries []Entry, value string) bool {
	for _, e := range entries {
		if e.Kind == KindItem && e.Value == value {
			return true
		}
	}
	return false
}
