package a

type MessageDescriptor struct {
	ID             string
	DefaultMessage string
	Description    string
}

type FormattedMessage struct {
	ID             string
	DefaultMessage string
	Values         map[string]any
}

type Intl struct{}

func (Intl) FormatMessage(d MessageDescriptor, values ...any) string { return "" }

func DefineMessage(d MessageDescriptor) MessageDescriptor { return d }

func DefineMessages(m map[string]MessageDescriptor) map[string]MessageDescriptor { return m }

var intl Intl

const shared = "{n, plural, offset:3 other {#}}"

var dynamic = "{n, plural, offset:1 other {#}}"

func scenarios() {
	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: "{count, plural, offset:1 one {# item} other {# items}}"}) // want "offset are not allowed in plural rules"

	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: "{count, plural, one {# item} other {# items}}"})

	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: "{gender, select, male {{n, plural, offset:2 other {#}}} other {x}}"}) // want "offset are not allowed in plural rules"

	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: "{count, plural, offset:1 one {x}"})

	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: "{n, plural, offset:0 other {#}}"})

	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: "{n, selectordinal, offset:1 one {#st} other {#th}}"}) // want "offset are not allowed in plural rules"

	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: "<b>{n, plural, offset:1 other {#}}</b>"})
}

func sites() {
	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: shared}) // want "offset are not allowed in plural rules"
	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: shared}) // want "offset are not allowed in plural rules"

	_ = intl.FormatMessage(MessageDescriptor{DefaultMessage: dynamic})
	_ = intl.FormatMessage(MessageDescriptor{ID: "no-message"})
}

var messages = DefineMessages(map[string]MessageDescriptor{
	"ok":  {DefaultMessage: "{n, plural, =0 {none} other {#}}"},
	"bad": {DefaultMessage: "{n, plural, offset:1 other {#}}"}, // want "offset are not allowed in plural rules"
})

var single = DefineMessage(MessageDescriptor{
	ID:             "single",
	DefaultMessage: "{n, plural, offset:1 other {#}}", // want "offset are not allowed in plural rules"
})

var component = FormattedMessage{DefaultMessage: "{n, plural, offset:1 other {#}}"} // want "offset are not allowed in plural rules"

var notAMessage = MessageDescriptor{DefaultMessage: "{n, plural, offset:1 other {#}}"}
