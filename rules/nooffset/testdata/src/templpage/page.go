package templpage

type MessageDescriptor struct {
	DefaultMessage string
}

type FormattedMessage struct {
	DefaultMessage string
}

func FormatMessage(d any) string { return "" }

var handwritten = FormattedMessage{DefaultMessage: "{n, plural, offset:1 other {#}}"} // want "offset are not allowed in plural rules"

var wrapped = FormatMessage(FormattedMessage{DefaultMessage: "{n, plural, offset:2 other {#}}"}) // want "offset are not allowed in plural rules"
