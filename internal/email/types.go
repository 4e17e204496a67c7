package email

// Email is one outgoing message.
type Email struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is passed to message templates.
type TemplateData map[string]interface{}
