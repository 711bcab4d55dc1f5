package mail

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Message is a plain-text email ready for dispatch.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}
